package services

import (
	"testing"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) addStaff(t *testing.T, username, role string) *models.Staff {
	t.Helper()
	st := &models.Staff{Username: username, FullName: "Staff " + username, Role: role}
	require.NoError(t, e.staff.AddStaff(e.ctx, st, "password123"))
	return st
}

func TestCompletingCleaningFreesRoom(t *testing.T) {
	env := newTestEnv(t)
	env.addRoom(t, 101, constants.RoomTypeSingle, 0)
	maid := env.addStaff(t, "maid", constants.RoleHousekeeping)

	require.NoError(t, env.rooms.CheckoutRoom(env.ctx, 101))
	assert.Equal(t, constants.RoomStatusDirty, env.roomStatus(t, 101))

	tasks, err := env.housekeeping.ListTasks(env.ctx, constants.TaskStatusPending)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Unassigned", tasks[0].AssignedStaffName)

	_, err = env.housekeeping.AssignTask(env.ctx, tasks[0].ID, maid.ID)
	require.NoError(t, err)

	tasks, err = env.housekeeping.ListTasks(env.ctx, "")
	require.NoError(t, err)
	assert.Equal(t, maid.FullName, tasks[0].AssignedStaffName)

	done, err := env.housekeeping.UpdateTaskStatus(env.ctx, tasks[0].ID, constants.TaskStatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, env.clock.t, *done.CompletedAt)
	assert.Equal(t, constants.RoomStatusAvailable, env.roomStatus(t, 101))
	assert.Zero(t, env.pendingCleaning(t, 101))
}

func TestTaskValidation(t *testing.T) {
	env := newTestEnv(t)
	env.addRoom(t, 101, constants.RoomTypeSingle, 0)

	_, err := env.housekeeping.CreateTask(env.ctx, 101, "POLISH", nil)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	_, err = env.housekeeping.CreateTask(env.ctx, 404, constants.TaskTypeInspection, nil)
	assert.True(t, errors.Is(err, errors.ErrRoomNotFound))

	ghost := uint(777)
	_, err = env.housekeeping.CreateTask(env.ctx, 101, constants.TaskTypeInspection, &ghost)
	assert.True(t, errors.Is(err, errors.ErrStaffNotFound))

	task, err := env.housekeeping.CreateTask(env.ctx, 101, constants.TaskTypeInspection, nil)
	require.NoError(t, err)
	_, err = env.housekeeping.UpdateTaskStatus(env.ctx, task.ID, "DONE")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidStatus))

	_, err = env.housekeeping.UpdateTaskStatus(env.ctx, 9999, constants.TaskStatusCompleted)
	assert.True(t, errors.Is(err, errors.ErrTaskNotFound))
}

func TestMaintenanceLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.addRoom(t, 301, constants.RoomTypeSuite, 0)
	tech := env.addStaff(t, "tech", constants.RoleManager)

	req, err := env.housekeeping.CreateMaintenanceRequest(env.ctx, 301, constants.IssuePlumbing, "Leaking tap", "")
	require.NoError(t, err)
	assert.Equal(t, constants.PriorityMedium, req.Priority)
	assert.Equal(t, constants.MaintenanceStatusOpen, req.Status)
	assert.Equal(t, constants.RoomStatusMaintenance, env.roomStatus(t, 301))
	assert.Equal(t, []string{"Maintenance Needed: Room 301 (PLUMBING)"}, env.messagesFor(t, constants.RoleManager))

	list, err := env.housekeeping.ListMaintenance(env.ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Unassigned", list[0].TechnicianName)

	req, err = env.housekeeping.AssignTechnician(env.ctx, req.ID, tech.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.MaintenanceStatusInProgress, req.Status)

	list, err = env.housekeeping.ListMaintenance(env.ctx, constants.MaintenanceStatusInProgress)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, tech.FullName, list[0].TechnicianName)

	req, err = env.housekeeping.CompleteMaintenance(env.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.MaintenanceStatusFixed, req.Status)
	require.NotNil(t, req.ResolvedAt)
	assert.Equal(t, constants.RoomStatusDirty, env.roomStatus(t, 301))
	assert.Equal(t, 1, env.pendingCleaning(t, 301))

	_, err = env.housekeeping.CompleteMaintenance(env.ctx, req.ID)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidOperation))
	_, err = env.housekeeping.AssignTechnician(env.ctx, req.ID, tech.ID)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidOperation))
}

func TestMaintenanceNotificationCanBeDisabled(t *testing.T) {
	env := newTestEnv(t)
	env.addRoom(t, 101, constants.RoomTypeSingle, 0)
	require.NoError(t, env.store.Settings.Upsert(env.ctx, map[string]string{models.SettingNotifyMaintenance: "false"}))

	_, err := env.housekeeping.CreateMaintenanceRequest(env.ctx, 101, constants.IssueElectrical, "", constants.PriorityHigh)
	require.NoError(t, err)
	assert.Empty(t, env.messagesFor(t, constants.RoleManager))

	_, err = env.housekeeping.CreateMaintenanceRequest(env.ctx, 101, "FIRE", "", "")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
	_, err = env.housekeeping.CreateMaintenanceRequest(env.ctx, 101, constants.IssueOther, "", "URGENT")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestUnknownStaffName(t *testing.T) {
	env := newTestEnv(t)
	env.addRoom(t, 101, constants.RoomTypeSingle, 0)
	ghost := uint(4242)
	require.NoError(t, env.store.Housekeeping.CreateTask(env.ctx, &models.HousekeepingTask{
		RoomNumber: 101, TaskType: constants.TaskTypeCleaning, Status: constants.TaskStatusPending, AssignedStaffID: &ghost,
	}))

	tasks, err := env.housekeeping.ListTasks(env.ctx, "")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Unknown", tasks[0].AssignedStaffName)
}
