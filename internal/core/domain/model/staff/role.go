package staff

import (
	"fmt"

	"barpos/internal/pkg/errs"
)

// Role represents a staff member's position, which determines the operations
// they may invoke. Roles are flat, not hierarchical; the access policy maps
// each capability to an explicit set of roles.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleWaiter serves tables: sees orders, moves them through the lifecycle.
	RoleWaiter

	// RoleManager runs the floor: everything a waiter does, plus removing
	// orders and managing staff roles.
	RoleManager

	// RoleAdmin owns the venue configuration: menu and staff management.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleWaiter:  "waiter",
		RoleManager: "manager",
		RoleAdmin:   "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleWaiter:  "waiter",
		RoleManager: "manager",
		RoleAdmin:   "admin",
	}
}

// RoleFromString parses a wire-format role name ("waiter", "manager",
// "admin") into a Role. Returns a ValueIsInvalidError for any other name.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role name", s),
	)
}

// Validate checks if the Role is one of the three valid roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire name of the role. Implements fmt.Stringer and is
// safe on any Role value; invalid values return "unknown".
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
