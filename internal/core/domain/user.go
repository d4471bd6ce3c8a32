package domain

import "time"

// Role determines which operations a user may invoke and which customer
// records they may see.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleSalePersonal Role = "sale personal"
	RoleSaleCompany  Role = "sale company"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleSalePersonal, RoleSaleCompany:
		return true
	}
	return false
}

// User models an account in the system. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the authenticated caller identity attached to a request after
// token verification.
type Principal struct {
	UserID   uint
	Username string
	Email    string
	Role     Role
}
