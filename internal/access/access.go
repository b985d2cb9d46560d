// Package access decides, for a role and a requested path, whether the
// route is reachable and where to send the client otherwise. It only
// computes targets; navigation belongs to the frontend router.
package access

import (
	"strings"

	"github.com/mesadeayuda/helpdesk-service/internal/model"
)

const PathLogin = "/login"

// Decision is the outcome of a route check. When Allowed is false,
// RedirectTo carries the path the client should land on instead; From
// preserves the originally requested path for a post-login bounce.
type Decision struct {
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirect_to,omitempty"`
	From       string `json:"from,omitempty"`
}

// Every reachable route per role is enumerable here by inspection.
// The first prefix is the role's primary landing page.
var rolePrefixes = map[model.Role][]string{
	model.RoleAdmin:      {"/admin-dashboard", "/create-ticket"},
	model.RoleTrabajador: {"/worker-dashboard", "/create-ticket"},
	model.RoleUser:       {"/my-tickets", "/create-ticket"},
}

// Prefixes returns the allowed path prefixes for a role. Total over the
// role enum: unknown roles are normalized to user first.
func Prefixes(role model.Role) []string {
	return rolePrefixes[model.NormalizeRole(string(role))]
}

// Landing returns the role's primary landing page.
func Landing(role model.Role) string {
	return Prefixes(role)[0]
}

// Resolve checks a path for an authenticated session with the given role.
// An authenticated client asking for the login page is always bounced to
// its landing page.
func Resolve(role model.Role, path string) Decision {
	prefixes := Prefixes(role)
	if strings.HasPrefix(path, PathLogin) {
		return Decision{Allowed: false, RedirectTo: prefixes[0]}
	}
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return Decision{Allowed: true}
		}
	}
	return Decision{Allowed: false, RedirectTo: prefixes[0]}
}

// ResolveUnauthenticated routes any request without a session to the login
// page, carrying the requested path. Honoring the bounce after login is up
// to the client.
func ResolveUnauthenticated(path string) Decision {
	if strings.HasPrefix(path, PathLogin) {
		return Decision{Allowed: true}
	}
	return Decision{Allowed: false, RedirectTo: PathLogin, From: path}
}
