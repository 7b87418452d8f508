package models

import "time"

// Roles recognized by the route guard. Admin is the only privileged role.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Profile is one dashboard user. Identity provisioning happens outside this
// service; profiles are plain rows keyed by the external user id.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
