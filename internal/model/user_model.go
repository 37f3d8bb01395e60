package model

import "time"

type AdminRole string

const (
	RoleUser       AdminRole = "user"
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super_admin"
)

func (r AdminRole) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User represents an entry in the users table. The admin fields are stored and
// returned but nothing authorizes on them.
type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Country   string     `json:"country"`
	CreatedAt time.Time  `json:"created_at"`
	IsAdmin   bool       `json:"is_admin"`
	AdminRole AdminRole  `json:"admin_role"`
	LastLogin *time.Time `json:"last_login"`
}
