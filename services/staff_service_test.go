package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStaffAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	st := &models.Staff{Username: " frontdesk ", FullName: "Front Desk", Role: constants.RoleReceptionist}
	require.NoError(t, env.staff.AddStaff(env.ctx, st, "secret-pass"))
	assert.Equal(t, "frontdesk", st.Username)
	assert.Equal(t, constants.StaffStatusActive, st.Status)
	assert.NotEqual(t, "secret-pass", st.PasswordHash)

	dup := &models.Staff{Username: "frontdesk", Role: constants.RoleManager}
	err := env.staff.AddStaff(env.ctx, dup, "secret-pass")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUserExists))
	assert.True(t, errors.Is(err, errors.ErrStaffAlreadyExists))

	res, err := env.staff.Authenticate(env.ctx, "frontdesk", "secret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	require.NotNil(t, res.Staff.LastLogin)
	assert.Equal(t, env.clock.t, *res.Staff.LastLogin)

	claims, err := env.tokens.Parse(env.ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, st.ID, claims.UserInfo.UserId)
	assert.Equal(t, constants.RoleReceptionist, claims.UserInfo.Role)

	_, err = env.staff.Authenticate(env.ctx, "frontdesk", "wrong")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnauthorized))
	_, err = env.staff.Authenticate(env.ctx, "nobody", "secret-pass")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnauthorized))
}

func TestAddStaffValidation(t *testing.T) {
	env := newTestEnv(t)

	err := env.staff.AddStaff(env.ctx, &models.Staff{Username: "x", Role: "JANITOR"}, "secret-pass")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRole))

	err = env.staff.AddStaff(env.ctx, &models.Staff{Username: "x", Role: constants.RoleManager}, "short")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPassword))

	require.NoError(t, env.store.Settings.Upsert(env.ctx, map[string]string{models.SettingPasswordMinLength: "4"}))
	require.NoError(t, env.staff.AddStaff(env.ctx, &models.Staff{Username: "x", Role: constants.RoleManager}, "short"))
}

func TestInactiveStaffCannotLogin(t *testing.T) {
	env := newTestEnv(t)
	st := env.addStaff(t, "leaver", constants.RoleAccountant)
	require.NoError(t, env.staff.Deactivate(env.ctx, st.ID))

	_, err := env.staff.Authenticate(env.ctx, "leaver", "password123")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUserInactive))

	active, err := env.staff.ListStaff(env.ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)
	all, err := env.staff.ListStaff(env.ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLogoutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	env.addStaff(t, "manager", constants.RoleManager)

	res, err := env.staff.Authenticate(env.ctx, "manager", "password123")
	require.NoError(t, err)
	require.NoError(t, env.staff.Logout(env.ctx, res.Token))

	_, err = env.tokens.Parse(env.ctx, res.Token)
	assert.True(t, errors.Is(err, errors.ErrTokenRevoked))

	err = env.staff.Logout(env.ctx, res.Token)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidToken))
}

func TestSessionTimeoutDrivesExpiry(t *testing.T) {
	env := newTestEnv(t)
	env.addStaff(t, "manager", constants.RoleManager)
	require.NoError(t, env.store.Settings.Upsert(env.ctx, map[string]string{models.SettingSessionTimeout: "90"}))

	before := time.Now()
	res, err := env.staff.Authenticate(env.ctx, "manager", "password123")
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(90*time.Minute), res.ExpiresAt, 5*time.Second)
}

func TestGoogleLogin(t *testing.T) {
	env := newTestEnv(t)
	st := &models.Staff{Username: "gmail", Role: constants.RoleManager, Email: "boss@example.com"}
	require.NoError(t, env.staff.AddStaff(env.ctx, st, "password123"))

	verifier := func(_ context.Context, token, audience string) (string, error) {
		if audience != "client-id" {
			return "", fmt.Errorf("wrong audience %s", audience)
		}
		switch token {
		case "good":
			return "BOSS@example.com", nil
		case "stranger":
			return "who@example.com", nil
		}
		return "", fmt.Errorf("bad token")
	}
	svc := NewStaffService(StaffServiceOptions{
		Repo: env.store.Staff, Settings: env.settings, Tokens: env.tokens,
		GoogleClientID: "client-id", GoogleVerifier: verifier, Clock: env.clock.Now,
	})

	res, err := svc.AuthenticateGoogle(env.ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, st.ID, res.Staff.ID)

	_, err = svc.AuthenticateGoogle(env.ctx, "stranger")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnauthorized))

	_, err = svc.AuthenticateGoogle(env.ctx, "forged")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidToken))

	_, err = env.staff.AuthenticateGoogle(env.ctx, "good")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidOperation))
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	st := env.addStaff(t, "clerk", constants.RoleReceptionist)

	err := env.staff.ChangePassword(env.ctx, st.ID, "wrong", "new-password")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPassword))

	require.NoError(t, env.staff.ChangePassword(env.ctx, st.ID, "password123", "new-password"))
	_, err = env.staff.Authenticate(env.ctx, "clerk", "password123")
	assert.Error(t, err)
	_, err = env.staff.Authenticate(env.ctx, "clerk", "new-password")
	assert.NoError(t, err)
}

func TestUpdateStaffAndRoleCounts(t *testing.T) {
	env := newTestEnv(t)
	a := env.addStaff(t, "a", constants.RoleReceptionist)
	env.addStaff(t, "b", constants.RoleReceptionist)
	env.addStaff(t, "c", constants.RoleAdmin)

	updated, err := env.staff.UpdateStaff(env.ctx, a.ID, &models.Staff{FullName: "Anna", Role: constants.RoleManager, Email: "anna@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.FullName)
	assert.Equal(t, constants.RoleManager, updated.Role)

	_, err = env.staff.UpdateStaff(env.ctx, a.ID, &models.Staff{Email: "not-an-email"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidEmail))

	counts, err := env.staff.RoleCounts(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		constants.RoleAdmin:        1,
		constants.RoleManager:      1,
		constants.RoleReceptionist: 1,
		constants.RoleHousekeeping: 0,
		constants.RoleAccountant:   0,
	}, counts)

	_, err = env.staff.GetStaff(env.ctx, 999)
	assert.True(t, errors.Is(err, errors.ErrStaffNotFound))
}

func TestHasPermission(t *testing.T) {
	env := newTestEnv(t)
	assert.True(t, env.staff.HasPermission(constants.RoleAdmin, constants.RoleAccountant))
	assert.True(t, env.staff.HasPermission(constants.RoleManager, constants.RoleManager))
	assert.False(t, env.staff.HasPermission(constants.RoleReceptionist, constants.RoleManager))
}
