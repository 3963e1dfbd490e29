package identity

import "context"

type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

// Identity is the authenticated caller as reported by the external identity
// provider, enriched with the portal role.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Provider verifies an access token and resolves the caller's identity.
type Provider interface {
	Verify(ctx context.Context, accessToken string) (*Identity, error)
}
