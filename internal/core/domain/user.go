package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

// User models an authenticated account principal. Accounts are identified
// by their normalized tax document number, which is unique and immutable
// once set. PasswordHash holds a bcrypt hash, or a legacy plaintext value
// pending migration on the next successful login.
type User struct {
	ID           string    `json:"id"`
	Document     string    `json:"document"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
