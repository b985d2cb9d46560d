package model

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to TicketStatus
		ok       bool
	}{
		{TicketStatusOpen, TicketStatusOpen, true},
		{TicketStatusOpen, TicketStatusInProgress, true},
		{TicketStatusOpen, TicketStatusClosed, true},
		{TicketStatusInProgress, TicketStatusInProgress, true},
		{TicketStatusInProgress, TicketStatusClosed, true},
		{TicketStatusInProgress, TicketStatusOpen, false},
		{TicketStatusClosed, TicketStatusClosed, true},
		{TicketStatusClosed, TicketStatusOpen, false},
		{TicketStatusClosed, TicketStatusInProgress, false},
		{TicketStatusOpen, "reopened", false},
		{"bogus", TicketStatusClosed, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []TicketStatus{TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []TicketStatus{"", "done", "OPEN"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestNormalizeRole(t *testing.T) {
	cases := map[string]Role{
		"admin":      RoleAdmin,
		"trabajador": RoleTrabajador,
		"user":       RoleUser,
		"":           RoleUser,
		"worker":     RoleUser,
		"Admin":      RoleUser,
	}
	for in, want := range cases {
		if got := NormalizeRole(in); got != want {
			t.Errorf("NormalizeRole(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestCanManageTickets(t *testing.T) {
	if RoleUser.CanManageTickets() {
		t.Fatal("user must not manage tickets")
	}
	if !RoleTrabajador.CanManageTickets() || !RoleAdmin.CanManageTickets() {
		t.Fatal("trabajador and admin manage tickets")
	}
}
