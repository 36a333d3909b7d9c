package models

import (
	"testing"

	"orionhotel/constants"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(constants.RoleAdmin, constants.RoleAccountant))
	assert.True(t, HasPermission(constants.RoleManager, constants.RoleManager))
	assert.False(t, HasPermission(constants.RoleReceptionist, constants.RoleManager))

	s := &Staff{Role: constants.RoleHousekeeping, Status: constants.StaffStatusActive}
	assert.True(t, s.HasPermission(constants.RoleHousekeeping))
	assert.False(t, s.HasPermission(constants.RoleAdmin))
	assert.True(t, s.IsActive())
}

func TestNotificationVisibleTo(t *testing.T) {
	all := &Notification{TargetRole: constants.TargetAll}
	mgr := &Notification{TargetRole: constants.RoleManager}

	assert.True(t, all.VisibleTo(constants.RoleHousekeeping))
	assert.True(t, mgr.VisibleTo(constants.RoleManager))
	assert.False(t, mgr.VisibleTo(constants.RoleReceptionist))
}

func TestInventoryItemIsLowStock(t *testing.T) {
	assert.True(t, (&InventoryItem{Quantity: 5, MinLevel: 5}).IsLowStock())
	assert.False(t, (&InventoryItem{Quantity: 6, MinLevel: 5}).IsLowStock())
}
