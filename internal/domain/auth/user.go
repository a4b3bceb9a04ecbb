package auth

import "time"

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleSalesStaff Role = "sales_staff"
)

// User is a staff account for the admin area.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
