package services

import (
	"testing"
	"time"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkedInGuest(t *testing.T, env *testEnv, room int, roomType string) *models.Guest {
	t.Helper()
	env.addRoom(t, room, roomType, 0)
	g := env.registerGuest(t, "Guest "+roomType)
	_, err := env.guests.CheckIn(env.ctx, g.ID, room)
	require.NoError(t, err)
	return g
}

func TestGenerateBillUsesSettingsPriceAndTax(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store.Settings.Upsert(env.ctx, map[string]string{
		models.SettingTaxRate:                        "10",
		models.RoomPriceKey(constants.RoomTypeDouble): "200",
	}))
	g := checkedInGuest(t, env, 201, constants.RoomTypeDouble)

	env.clock.advance(2)
	bill, err := env.billing.GenerateBillForGuest(env.ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 400.0, bill.RoomCharges)
	assert.Equal(t, 40.0, bill.Taxes)
	assert.Equal(t, 440.0, bill.Total)
	assert.Equal(t, constants.BillStatusUnpaid, bill.Status)

	again, err := env.billing.GenerateBillForGuest(env.ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.ID, again.ID)
}

func TestDailyRateFallsBackToRoomPrice(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store.Settings.Upsert(env.ctx, map[string]string{
		models.RoomPriceKey(constants.RoomTypeSingle): "0",
	}))

	rate, err := env.settings.DailyRate(env.ctx, &models.Room{RoomType: constants.RoomTypeSingle, Price: 80})
	require.NoError(t, err)
	assert.Equal(t, 80.0, rate)

	rate, err = env.settings.DailyRate(env.ctx, &models.Room{RoomType: constants.RoomTypeSingle})
	require.NoError(t, err)
	assert.Equal(t, DefaultDailyRate, rate)

	rate, err = env.settings.DailyRate(env.ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultDailyRate, rate)
}

func TestPaymentsAccumulate(t *testing.T) {
	env := newTestEnv(t)
	g := checkedInGuest(t, env, 101, constants.RoomTypeSingle)

	// 1 night x 100 + 12.5% = 112.5
	bill, err := env.billing.ProcessPayment(env.ctx, g.ID, 50, constants.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, 112.5, bill.Total)
	assert.Equal(t, constants.BillStatusPartial, bill.Status)
	assert.Equal(t, 62.5, bill.Balance())

	bill, err = env.billing.ProcessPayment(env.ctx, g.ID, 62.5, constants.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, constants.BillStatusPaid, bill.Status)
	assert.Equal(t, 112.5, bill.AmountPaid)

	_, err = env.billing.GetOpenBill(env.ctx, g.ID)
	assert.True(t, errors.Is(err, errors.ErrBillNotFound))

	_, err = env.billing.ProcessPayment(env.ctx, g.ID, 0, constants.PaymentCash)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidAmount))
	_, err = env.billing.ProcessPayment(env.ctx, g.ID, 10, "BITCOIN")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestApplyDiscountBounds(t *testing.T) {
	env := newTestEnv(t)
	g := checkedInGuest(t, env, 101, constants.RoomTypeSingle)

	bill, err := env.billing.ApplyDiscount(env.ctx, g.ID, 12.5)
	require.NoError(t, err)
	assert.Equal(t, 100.0, bill.Total)

	_, err = env.billing.ApplyDiscount(env.ctx, g.ID, 112.51)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidAmount))
	_, err = env.billing.ApplyDiscount(env.ctx, g.ID, -1)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidAmount))

	bill, err = env.billing.ApplyDiscount(env.ctx, g.ID, 112.5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, bill.Total)
}

func TestServiceChargeValidationAndDetail(t *testing.T) {
	env := newTestEnv(t)
	g := checkedInGuest(t, env, 101, constants.RoomTypeSingle)

	_, err := env.billing.AddServiceCharge(env.ctx, g.ID, "Minibar", -3)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidAmount))
	_, err = env.billing.AddServiceCharge(env.ctx, g.ID, "", 3)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	bill, err := env.billing.AddServiceCharge(env.ctx, g.ID, "Minibar", 20)
	require.NoError(t, err)
	bill, err = env.billing.AddServiceCharge(env.ctx, g.ID, "Spa", 30)
	require.NoError(t, err)
	assert.Equal(t, 50.0, bill.ServiceTotal)

	detail, err := env.billing.BillDetail(env.ctx, bill.ID)
	require.NoError(t, err)
	assert.Len(t, detail.ServiceCharges, 2)
	assert.Equal(t, 168.75, detail.Total)
}

func TestRevenueAndOutstanding(t *testing.T) {
	env := newTestEnv(t)
	paid := checkedInGuest(t, env, 101, constants.RoomTypeSingle)
	open := checkedInGuest(t, env, 201, constants.RoomTypeDouble)

	_, err := env.billing.ProcessPayment(env.ctx, paid.ID, 112.5, constants.PaymentCash)
	require.NoError(t, err)

	daily, err := env.billing.DailyRevenue(env.ctx, env.clock.t)
	require.NoError(t, err)
	assert.Equal(t, 112.5, daily)

	nextDay, err := env.billing.DailyRevenue(env.ctx, env.clock.t.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, nextDay)

	monthly, err := env.billing.MonthlyRevenue(env.ctx, 2024, time.May)
	require.NoError(t, err)
	assert.Equal(t, 112.5, monthly)

	_, err = env.billing.MonthlyRevenue(env.ctx, 2024, 13)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDate))

	outstanding, err := env.billing.OutstandingBalances(env.ctx)
	require.NoError(t, err)
	require.Len(t, outstanding, 1)
	assert.Equal(t, open.ID, outstanding[0].GuestID)
}

func TestRefreshOpenBills(t *testing.T) {
	env := newTestEnv(t)
	g := checkedInGuest(t, env, 101, constants.RoomTypeSingle)
	checkedInGuest(t, env, 301, constants.RoomTypeSuite)

	env.clock.advance(4)
	n, err := env.billing.RefreshOpenBills(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	bill, err := env.billing.GetOpenBill(env.ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 400.0, bill.RoomCharges)
}

func TestListBillsRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.billing.ListBills(env.ctx, "VOID")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidStatus))

	bills, err := env.billing.ListBills(env.ctx, "")
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestTaxRateDefaultsWhenUnset(t *testing.T) {
	env := newTestEnv(t)
	rate, err := env.settings.TaxRate(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultTaxRate, rate)

	require.NoError(t, env.store.Settings.Upsert(env.ctx, map[string]string{models.SettingTaxRate: "8.5"}))
	rate, err = env.settings.TaxRate(env.ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0.085, rate, 1e-9)
}

func checkedOutSuiteGuest(t *testing.T, env *testEnv) (*models.Guest, *models.Bill) {
	t.Helper()
	g := checkedInGuest(t, env, 301, constants.RoomTypeSuite)
	env.clock.advance(2)
	_, bill, err := env.guests.CheckOut(env.ctx, g.ID)
	require.NoError(t, err)
	return g, bill
}

func TestRegenerateAfterCheckOutKeepsRoomRate(t *testing.T) {
	env := newTestEnv(t)
	g, final := checkedOutSuiteGuest(t, env)
	assert.Equal(t, 600.0, final.RoomCharges)
	assert.Equal(t, 300.0, final.DailyRate)
	require.NotNil(t, final.RoomNumber)
	assert.Equal(t, 301, *final.RoomNumber)

	env.clock.advance(1)
	again, err := env.billing.GenerateBillForGuest(env.ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, final.ID, again.ID)
	assert.Equal(t, 600.0, again.RoomCharges)
	assert.Equal(t, 675.0, again.Total)
}

func TestPaidCheckedOutGuestGetsNoNewBill(t *testing.T) {
	env := newTestEnv(t)
	g, final := checkedOutSuiteGuest(t, env)
	assert.Equal(t, 675.0, final.Total)

	paid, err := env.billing.ProcessPayment(env.ctx, g.ID, 675, constants.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, constants.BillStatusPaid, paid.Status)

	_, err = env.billing.AddServiceCharge(env.ctx, g.ID, "Minibar", 10)
	assert.True(t, errors.Is(err, errors.ErrBillNotFound))
	assert.True(t, errors.HasCode(err, errors.ErrCodeDBNotFound))
	_, err = env.billing.ApplyDiscount(env.ctx, g.ID, 5)
	assert.True(t, errors.Is(err, errors.ErrBillNotFound))
	_, err = env.billing.ProcessPayment(env.ctx, g.ID, 5, constants.PaymentCash)
	assert.True(t, errors.Is(err, errors.ErrBillNotFound))
	_, err = env.billing.GenerateBillForGuest(env.ctx, g.ID)
	assert.True(t, errors.Is(err, errors.ErrBillNotFound))

	bills, err := env.billing.ListBills(env.ctx, "")
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, final.ID, bills[0].ID)
}
