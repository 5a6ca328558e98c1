// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Operator Roles

// UserRole represents the authorization level carried by an admin token.
type UserRole string

const (
	// Full operational access, including snapshot reloads
	RoleAdmin UserRole = "admin"

	// Can flush caches but not swap the dataset
	RoleOperator UserRole = "operator"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleOperator:
		return 20
	default:
		return 0
	}
}
