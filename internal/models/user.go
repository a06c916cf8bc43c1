package models

import "slices"

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleGrader  UserRole = "grader"
	RoleAdmin   UserRole = "admin"
)

// User is the authenticated caller of a request. Accounts live in the
// identity provider; nothing here is persisted.
type User struct {
	ID    string     `json:"id"`
	Name  string     `json:"name,omitempty"`
	Roles []UserRole `json:"roles,omitempty"`
}

// HasRole reports whether the user holds role. Admins hold every role.
func (u *User) HasRole(role UserRole) bool {
	if u == nil {
		return false
	}
	return slices.Contains(u.Roles, role) || slices.Contains(u.Roles, RoleAdmin)
}

// Owns reports whether the user created a resource, or is an admin.
func (u *User) Owns(createdBy string) bool {
	if u == nil {
		return false
	}
	return (createdBy != "" && u.ID == createdBy) || slices.Contains(u.Roles, RoleAdmin)
}
