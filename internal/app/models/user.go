package models

import "time"

// Role is the access level resolved for an authenticated principal.
type Role string

const (
	RoleGuest   Role = "guest"
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// roleRanks orders roles from least to most privileged.
var roleRanks = map[Role]int{
	RoleGuest:   0,
	RoleStudent: 1,
	RoleTeacher: 2,
	RoleAdmin:   3,
}

// Rank returns the privilege rank of the role. Unknown roles rank as guest.
func (r Role) Rank() int {
	return roleRanks[r]
}

// AtLeast reports whether the role matches or exceeds the required role.
func (r Role) AtLeast(required Role) bool {
	return r.Rank() >= required.Rank()
}

// ParseRole normalizes a stored role string. Anything unrecognized
// resolves to guest, matching the default for principals without a
// profile record.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s)
	default:
		return RoleGuest
	}
}

// User is a stored account record.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is the authenticated principal plus resolved role for the
// lifetime of a request. A nil *Session means unauthenticated.
type Session struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}
