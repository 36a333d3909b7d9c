package services

import (
	"context"
	stderrors "errors"
	"testing"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"
	"orionhotel/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterGuestValidation(t *testing.T) {
	env := newTestEnv(t)

	g := env.registerGuest(t, "Ana Souza")
	assert.Equal(t, constants.GuestStatusRegistered, g.Status)
	assert.NotZero(t, g.ID)

	err := env.guests.RegisterGuest(env.ctx, &models.Guest{FullName: "No Phone"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))

	err = env.guests.RegisterGuest(env.ctx, &models.Guest{FullName: "Bad Mail", Phone: "5550100", Email: "bad@"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidEmail))
}

func TestSearchAndSuggestGuests(t *testing.T) {
	env := newTestEnv(t)
	env.registerGuest(t, "Nguyễn Văn An")
	env.registerGuest(t, "Maria Garcia")
	env.registerGuest(t, "Mario Rossi")

	found, err := env.guests.SearchGuests(env.ctx, "maria")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Maria Garcia", found[0].FullName)

	byPhone, err := env.guests.SearchGuests(env.ctx, "0100")
	require.NoError(t, err)
	assert.Len(t, byPhone, 3)

	suggested, err := env.guests.SuggestGuests(env.ctx, "nguyen van", 3)
	require.NoError(t, err)
	require.NotEmpty(t, suggested)
	assert.Equal(t, "Nguyễn Văn An", suggested[0].FullName)

	suggested, err = env.guests.SuggestGuests(env.ctx, "Mari", 2)
	require.NoError(t, err)
	assert.Len(t, suggested, 2)

	empty, err := env.guests.SuggestGuests(env.ctx, "   ", 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCheckInAndCheckOutFlow(t *testing.T) {
	env := newTestEnv(t)
	env.addRoom(t, 301, constants.RoomTypeSuite, 999)
	g := env.registerGuest(t, "Ana Souza")

	checkedIn, err := env.guests.CheckIn(env.ctx, g.ID, 301)
	require.NoError(t, err)
	assert.Equal(t, constants.GuestStatusCheckedIn, checkedIn.Status)
	require.NotNil(t, checkedIn.RoomNumber)
	assert.Equal(t, 301, *checkedIn.RoomNumber)
	assert.Equal(t, "2024-05-10", models.FormatDate(checkedIn.CheckInDate))
	assert.Equal(t, constants.RoomStatusOccupied, env.roomStatus(t, 301))

	// bill is opened straight away with the one night minimum
	bill, err := env.billing.GetOpenBill(env.ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, bill.RoomCharges)

	_, err = env.guests.CheckIn(env.ctx, g.ID, 301)
	assert.True(t, errors.Is(err, errors.ErrGuestAlreadyInRoom))

	env.clock.advance(3)
	_, err = env.billing.AddServiceCharge(env.ctx, g.ID, "Laundry", 100)
	require.NoError(t, err)

	out, final, err := env.guests.CheckOut(env.ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.GuestStatusCheckedOut, out.Status)
	assert.Nil(t, out.RoomNumber)
	assert.Equal(t, "2024-05-13", models.FormatDate(out.CheckOutDate))

	// 3 nights x 300 (suite default price) + 100 laundry, 12.5% tax
	assert.Equal(t, 900.0, final.RoomCharges)
	assert.Equal(t, 100.0, final.ServiceTotal)
	assert.Equal(t, 125.0, final.Taxes)
	assert.Equal(t, 1125.0, final.Total)
	assert.Equal(t, bill.ID, final.ID)

	assert.Equal(t, constants.RoomStatusDirty, env.roomStatus(t, 301))
	assert.Equal(t, 1, env.pendingCleaning(t, 301))

	stored, err := env.guests.GetGuest(env.ctx, g.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.RoomNumber)
}

func TestCheckInOccupiedRoomFails(t *testing.T) {
	env := newTestEnv(t)
	env.addRoom(t, 101, constants.RoomTypeSingle, 100)
	first := env.registerGuest(t, "First")
	second := env.registerGuest(t, "Second")

	_, err := env.guests.CheckIn(env.ctx, first.ID, 101)
	require.NoError(t, err)

	_, err = env.guests.CheckIn(env.ctx, second.ID, 101)
	assert.True(t, errors.Is(err, errors.ErrRoomNotAvailable))

	stored, err := env.guests.GetGuest(env.ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.GuestStatusRegistered, stored.Status)
}

func TestCheckOutRequiresCheckIn(t *testing.T) {
	env := newTestEnv(t)
	g := env.registerGuest(t, "Walk In")

	_, _, err := env.guests.CheckOut(env.ctx, g.ID)
	assert.True(t, errors.Is(err, errors.ErrGuestNotCheckedIn))

	_, _, err = env.guests.CheckOut(env.ctx, 9999)
	assert.True(t, errors.Is(err, errors.ErrGuestNotFound))
}

func TestUpdateGuestKeepsStayState(t *testing.T) {
	env := newTestEnv(t)
	g := env.registerGuest(t, "Ana")

	updated, err := env.guests.UpdateGuest(env.ctx, g.ID, &models.Guest{FullName: "Ana Maria", Phone: "5550199", Email: "ana@example.com", Status: constants.GuestStatusCheckedIn})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.FullName)
	assert.Equal(t, constants.GuestStatusRegistered, updated.Status)
	assert.Equal(t, "****4567", updated.MaskedNationalID())

	list, err := env.guests.ListByStatus(env.ctx, constants.GuestStatusRegistered)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = env.guests.ListByStatus(env.ctx, "GONE")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidStatus))
}

// brokenBills lỗi mọi lần ghi hóa đơn
type brokenBills struct {
	repository.BillRepository
}

func (brokenBills) Create(context.Context, *models.Bill) error {
	return stderrors.New("disk full")
}

func (brokenBills) Update(context.Context, *models.Bill) error {
	return stderrors.New("disk full")
}

func TestCheckOutLeavesRoomWhenBillingFails(t *testing.T) {
	env := newTestEnv(t)
	env.addRoom(t, 101, constants.RoomTypeSingle, 0)
	g := env.registerGuest(t, "Ana Souza")
	_, err := env.guests.CheckIn(env.ctx, g.ID, 101)
	require.NoError(t, err)
	env.clock.advance(1)

	billing := NewBillingService(BillingServiceOptions{
		Bills:    brokenBills{env.store.Bills},
		Guests:   env.store.Guests,
		Rooms:    env.store.Rooms,
		Settings: env.settings,
		Clock:    env.clock.Now,
	})
	guests := NewGuestService(GuestServiceOptions{
		Guests:  env.store.Guests,
		Rooms:   env.rooms,
		Billing: billing,
		Clock:   env.clock.Now,
	})

	_, _, err = guests.CheckOut(env.ctx, g.ID)
	require.Error(t, err)

	assert.Equal(t, constants.RoomStatusOccupied, env.roomStatus(t, 101))
	assert.Equal(t, 0, env.pendingCleaning(t, 101))
	stored, err := env.guests.GetGuest(env.ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.GuestStatusCheckedIn, stored.Status)
	require.NotNil(t, stored.RoomNumber)
	assert.Equal(t, 101, *stored.RoomNumber)
}
