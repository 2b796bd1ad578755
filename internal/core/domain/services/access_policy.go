package services

import "barpos/internal/core/domain/model/staff"

// Capability is a named action a staff member may be allowed to perform.
// HTTP middleware gates endpoints on capabilities, not on raw role names,
// so a role's reach is readable in one place.
type Capability int

const (
	// CapabilityAdvanceOrder allows changing an order's status.
	// Placing an order carries no capability: the QR flow is public.
	CapabilityAdvanceOrder Capability = iota + 1

	// CapabilityRemoveOrder allows deleting an order.
	CapabilityRemoveOrder

	// CapabilityManageMenu allows creating and removing categories and
	// products.
	CapabilityManageMenu

	// CapabilityManageStaff allows listing staff, changing roles and
	// removing accounts.
	CapabilityManageStaff
)

// AccessPolicy maps staff roles to capabilities. Waiters run the floor,
// managers additionally remove orders and curate the menu, admins
// additionally manage staff.
type AccessPolicy struct{}

// NewAccessPolicy creates an AccessPolicy.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Allows reports whether role may exercise capability.
func (AccessPolicy) Allows(role staff.Role, capability Capability) bool {
	switch capability {
	case CapabilityAdvanceOrder:
		return role == staff.RoleWaiter || role == staff.RoleManager || role == staff.RoleAdmin
	case CapabilityRemoveOrder, CapabilityManageMenu:
		return role == staff.RoleManager || role == staff.RoleAdmin
	case CapabilityManageStaff:
		return role == staff.RoleAdmin
	default:
		return false
	}
}
