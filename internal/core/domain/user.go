package domain

import "errors"

const (
	RoleGuest = "GUEST"
	RoleHost  = "HOST"
	RoleAdmin = "ADMIN"
)

var ErrInvalidClaims = errors.New("invalid token claims")

// User is a guest, host or admin profile as returned by the profile and auth
// services. Every field is optional because endpoints return partial views.
// Password is only ever set on create/auth flows.
type User struct {
	ID        string `json:"id,omitempty"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	Role      string `json:"role,omitempty"`
}

// JwtPayload holds the decoded claims of an authentication token.
type JwtPayload struct {
	Role     string `json:"role"`
	Username string `json:"username"`
}

// Validate reports ErrInvalidClaims when either claim is missing.
func (p JwtPayload) Validate() error {
	if p.Role == "" || p.Username == "" {
		return ErrInvalidClaims
	}
	return nil
}
