package domain

import "time"

type Landlord struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
)

// ParseRole defaults an empty role to tenant, matching the signup form.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case "", RoleTenant:
		return RoleTenant, true
	case RoleLandlord:
		return RoleLandlord, true
	}
	return "", false
}
