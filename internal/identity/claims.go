package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultRolesClaim is the Auth0-style namespaced custom claim carrying the
// caller's roles.
const DefaultRolesClaim = "https://arc-check-in/roles"

var (
	ErrNoToken      = errors.New("identity: no bearer token")
	ErrInvalidToken = errors.New("identity: invalid token")
)

// Parser extracts an Identity from an access token. Signature verification
// is the gateway's responsibility; the parser rejects only tokens that are
// structurally invalid, expired, or missing a subject.
type Parser struct {
	RolesClaim string
}

func NewParser(rolesClaim string) *Parser {
	if rolesClaim == "" {
		rolesClaim = DefaultRolesClaim
	}
	return &Parser{RolesClaim: rolesClaim}
}

// FromAuthorization parses a "Bearer <token>" header value.
func (p *Parser) FromAuthorization(header string) (Identity, error) {
	scheme, raw, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || raw == "" {
		return Identity{}, ErrNoToken
	}
	return p.FromToken(raw)
}

// FromToken parses a raw JWT into an Identity.
func (p *Parser) FromToken(raw string) (Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if exp != nil && exp.Before(time.Now()) {
		return Identity{}, fmt.Errorf("%w: token expired", ErrInvalidToken)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return Identity{
		Subject: sub,
		Name:    stringClaim(claims, "name"),
		Email:   stringClaim(claims, "email"),
		Roles:   rolesClaim(claims, p.RolesClaim),
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	val, _ := claims[key].(string)
	return val
}

func rolesClaim(claims jwt.MapClaims, key string) []string {
	raw, ok := claims[key].([]any)
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if role, ok := r.(string); ok {
			roles = append(roles, role)
		}
	}
	return roles
}
