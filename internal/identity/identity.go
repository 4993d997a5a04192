package identity

import "golang.org/x/exp/slices"

// Identity is the verified caller identity handed over by the external
// authenticator, normalized once at the HTTP boundary. It contains facts
// only, no decisions; role checks happen in middleware, never in the core.
type Identity struct {
	Subject string
	Name    string
	Email   string
	Roles   []string
}

const RoleAdmin = "admin"

func (id Identity) HasRole(role string) bool {
	return slices.Contains(id.Roles, role)
}
