package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"barpos/internal/core/domain/model/staff"
)

func TestAccessPolicy_Allows(t *testing.T) {
	policy := NewAccessPolicy()

	assert.True(t, policy.Allows(staff.RoleWaiter, CapabilityAdvanceOrder))
	assert.True(t, policy.Allows(staff.RoleManager, CapabilityAdvanceOrder))
	assert.True(t, policy.Allows(staff.RoleAdmin, CapabilityAdvanceOrder))

	assert.False(t, policy.Allows(staff.RoleWaiter, CapabilityRemoveOrder))
	assert.True(t, policy.Allows(staff.RoleManager, CapabilityRemoveOrder))
	assert.True(t, policy.Allows(staff.RoleAdmin, CapabilityRemoveOrder))

	assert.False(t, policy.Allows(staff.RoleWaiter, CapabilityManageMenu))
	assert.True(t, policy.Allows(staff.RoleManager, CapabilityManageMenu))
	assert.True(t, policy.Allows(staff.RoleAdmin, CapabilityManageMenu))

	assert.False(t, policy.Allows(staff.RoleWaiter, CapabilityManageStaff))
	assert.False(t, policy.Allows(staff.RoleManager, CapabilityManageStaff))
	assert.True(t, policy.Allows(staff.RoleAdmin, CapabilityManageStaff))
}

func TestAccessPolicy_UnknownRoleAndCapability(t *testing.T) {
	policy := NewAccessPolicy()

	assert.False(t, policy.Allows(staff.RoleUnknown, CapabilityAdvanceOrder))
	assert.False(t, policy.Allows(staff.RoleAdmin, Capability(0)))
}
