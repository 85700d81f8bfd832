// Package auth holds the dashboard's role-based user store. Two roles exist:
// admin has full access including the sheet connection controls, viewer only
// sees the dashboard itself.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Role determines which dashboard capabilities a user has.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

const (
	PermViewDashboard = "view_dashboard"
	PermEditSheet     = "edit_sheet"
	PermConnect       = "connect"
)

// Salt for password hashing (change in production via a rebuilt user store).
const passwordSalt = "event-dashboard-rbac-2024"

var rolePermissions = map[Role][]string{
	RoleAdmin:  {PermViewDashboard, PermEditSheet, PermConnect},
	RoleViewer: {PermViewDashboard},
}

type user struct {
	passwordHash string
	role         Role
}

// UserStore verifies credentials and resolves roles for the dashboard users.
type UserStore struct {
	users map[string]user
}

// NewUserStore returns the built-in user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users: map[string]user{
			"admin":  {passwordHash: HashPassword("h2s@2026"), role: RoleAdmin},
			"viewer": {passwordHash: HashPassword("viewer123"), role: RoleViewer},
		},
	}
}

// HashPassword returns the salted SHA-256 hex digest the user store compares
// against.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(passwordSalt + password))
	return hex.EncodeToString(sum[:])
}

// NormalizeUsername trims and lowercases a login name.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// VerifyLogin checks a username/password pair. The returned role is empty when
// the login fails.
func (s *UserStore) VerifyLogin(username, password string) (bool, Role) {
	if username == "" || password == "" {
		return false, ""
	}
	u, ok := s.users[NormalizeUsername(username)]
	if !ok {
		return false, ""
	}
	if u.passwordHash != HashPassword(password) {
		return false, ""
	}
	return true, u.role
}

// HasPermission reports whether the role grants the permission.
func HasPermission(role Role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// Permissions returns the permission list for a role.
func Permissions(role Role) []string {
	perms := rolePermissions[role]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// CanEditSheet reports whether the role may change the sheet URL, credentials
// path, and use the Connect action.
func CanEditSheet(role Role) bool {
	return HasPermission(role, PermEditSheet) || HasPermission(role, PermConnect)
}
