package auth

import "strings"

// Outcome is the guard's verdict for a request against a protected
// boundary.
type Outcome int

const (
	Allow Outcome = iota
	RedirectLogin
	RedirectUnauthorized
	RedirectNotVerified
)

// Requirement describes what a protected page or route demands. An
// empty Roles set means any authenticated session is acceptable.
type Requirement struct {
	Roles           []Role
	RequireVerified bool
}

// Decision carries the verdict plus the context the caller needs to
// act on it: the callback path for a login redirect, or a
// machine-readable reason for a refusal.
type Decision struct {
	Outcome  Outcome
	Callback string
	Reason   string
}

// Reasons surfaced to the UI layer. Single-role requirements yield
// "<role>_only" so messaging can be specific.
const (
	ReasonNotVerified    = "not_verified"
	ReasonRoleNotAllowed = "role_not_allowed"
)

// Decide evaluates a session against a requirement. It is pure: the
// same inputs produce the same decision whether it runs in route
// middleware or inside a handler, so both layers always agree.
func Decide(s *Session, path string, req Requirement) Decision {
	if s == nil || s.UserID == "" || !s.IsActive {
		return Decision{Outcome: RedirectLogin, Callback: path}
	}
	if len(req.Roles) > 0 && !roleIn(s.Role, req.Roles) {
		return Decision{Outcome: RedirectUnauthorized, Reason: roleReason(req.Roles)}
	}
	if req.RequireVerified && (s.Role == RoleShelter || s.Role == RoleVendor) && !s.Verified {
		return Decision{Outcome: RedirectNotVerified, Reason: ReasonNotVerified}
	}
	return Decision{Outcome: Allow}
}

func roleIn(r Role, set []Role) bool {
	for _, allowed := range set {
		if r == allowed {
			return true
		}
	}
	return false
}

func roleReason(set []Role) string {
	if len(set) == 1 {
		return strings.ToLower(string(set[0])) + "_only"
	}
	return ReasonRoleNotAllowed
}
