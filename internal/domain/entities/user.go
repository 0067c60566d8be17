package entities

import "time"

// Role gates access to the admin route tree.

type Role string

const (
	RoleRoot           Role = "root"
	RoleAdmin          Role = "admin"
	RoleProposalEditor Role = "proposal-editor"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleRoot, RoleAdmin, RoleProposalEditor:
		return true
	}
	return false
}

// User is an application (back-office) user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasRole reports membership in any of the given roles.
func (u User) HasRole(roles ...Role) bool {
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
