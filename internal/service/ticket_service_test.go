package service

import (
	"errors"
	"testing"

	"github.com/mesadeayuda/helpdesk-service/internal/errs"
	"github.com/mesadeayuda/helpdesk-service/internal/model"
	"github.com/mesadeayuda/helpdesk-service/internal/session"
)

func int64ptr(v int64) *int64 { return &v }

func TestValidateNewTicket(t *testing.T) {
	base := func() *model.Ticket {
		return &model.Ticket{Asunto: "no puedo entrar", TipoProblemaID: 1}
	}

	tk := base()
	if err := validateNewTicket(tk); err != nil {
		t.Fatalf("valid ticket rejected: %v", err)
	}
	if tk.Priority != model.PriorityLow {
		t.Fatalf("priority defaulted to %q, want low", tk.Priority)
	}

	tk = base()
	tk.Asunto = "   "
	if err := validateNewTicket(tk); !errors.Is(err, errs.ErrEmptyAsunto) {
		t.Fatalf("blank asunto: got %v, want ErrEmptyAsunto", err)
	}

	tk = base()
	tk.TipoProblemaID = 0
	if err := validateNewTicket(tk); !errors.Is(err, errs.ErrMissingTipo) {
		t.Fatalf("missing tipo: got %v, want ErrMissingTipo", err)
	}

	tk = base()
	tk.Priority = "urgent"
	if err := validateNewTicket(tk); !errors.Is(err, errs.ErrInvalidPriority) {
		t.Fatalf("bad priority: got %v, want ErrInvalidPriority", err)
	}

	tk = base()
	tk.Asunto = "  recortar  "
	if err := validateNewTicket(tk); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.Asunto != "recortar" {
		t.Fatalf("asunto not trimmed: %q", tk.Asunto)
	}
}

func TestCanViewScoping(t *testing.T) {
	ownerID := "11111111-1111-1111-1111-111111111111"
	otherID := "22222222-2222-2222-2222-222222222222"
	ticket := &model.Ticket{UserID: ownerID, AreaID: int64ptr(3)}

	cases := []struct {
		name  string
		actor *session.Session
		want  bool
	}{
		{"admin sees all", &session.Session{UserID: otherID, Role: model.RoleAdmin}, true},
		{"owner sees own", &session.Session{UserID: ownerID, Role: model.RoleUser}, true},
		{"stranger blocked", &session.Session{UserID: otherID, Role: model.RoleUser}, false},
		{"worker same area", &session.Session{UserID: otherID, Role: model.RoleTrabajador, AreaID: int64ptr(3)}, true},
		{"worker other area", &session.Session{UserID: otherID, Role: model.RoleTrabajador, AreaID: int64ptr(7)}, false},
		{"worker without area", &session.Session{UserID: otherID, Role: model.RoleTrabajador}, false},
		{"worker owns ticket", &session.Session{UserID: ownerID, Role: model.RoleTrabajador, AreaID: int64ptr(9)}, true},
	}
	for _, tc := range cases {
		if got := canView(tc.actor, ticket); got != tc.want {
			t.Errorf("%s: canView = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanViewTicketWithoutArea(t *testing.T) {
	ticket := &model.Ticket{UserID: "u1"}
	worker := &session.Session{UserID: "w1", Role: model.RoleTrabajador, AreaID: int64ptr(3)}
	if canView(worker, ticket) {
		t.Fatal("area-less ticket must not leak into a worker's scope")
	}
}
