package services

import (
	"bytes"
	"testing"
	"time"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// seedActivity: 3 phòng, 1 khách đang ở, 1 hóa đơn đã trả trong tháng 4 và 1 trong tháng 5
func seedActivity(t *testing.T, env *testEnv) {
	t.Helper()
	env.addRoom(t, 101, constants.RoomTypeSingle, 0)
	env.addRoom(t, 102, constants.RoomTypeSingle, 0)
	env.addRoom(t, 201, constants.RoomTypeDouble, 0)

	require.NoError(t, env.store.Bills.Create(env.ctx, &models.Bill{
		GuestID: 99, GuestName: "Old Guest", RoomCharges: 200, Total: 200, AmountPaid: 200,
		Status: constants.BillStatusPaid, BillDate: models.Day(time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)),
	}))

	g := env.registerGuest(t, "Guest")
	_, err := env.guests.CheckIn(env.ctx, g.ID, 101)
	require.NoError(t, err)
	_, err = env.billing.ProcessPayment(env.ctx, g.ID, 112.5, constants.PaymentCard)
	require.NoError(t, err)

	env.addItem(t, "Soap", 1, 5)
	towel := env.addItem(t, "Towel", 30, 5)
	_, err = env.inventory.Consume(env.ctx, towel.ItemID, 4)
	require.NoError(t, err)

	r := newReservation("Dave", constants.RoomTypeDouble, "2024-06-01", "2024-06-02", nil)
	require.NoError(t, env.booking.CreateReservation(env.ctx, r))
	_, err = env.booking.CancelReservation(env.ctx, r.ID)
	require.NoError(t, err)
}

func TestOverview(t *testing.T) {
	env := newTestEnv(t)
	seedActivity(t, env)

	ov, err := env.analytics.Overview(env.ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, ov.TotalRooms)
	assert.EqualValues(t, 1, ov.OccupiedRooms)
	assert.Equal(t, 33.3, ov.OccupancyRate)
	assert.Equal(t, 112.5, ov.RevenueThisMonth)
	assert.EqualValues(t, 1, ov.LowStockCount)
	assert.EqualValues(t, 1, ov.CancelledBookings)
	assert.EqualValues(t, 2, ov.RoomStatus[constants.RoomStatusAvailable])
	assert.EqualValues(t, 0, ov.RoomStatus[constants.RoomStatusMaintenance])
}

func TestOverviewWithoutRooms(t *testing.T) {
	env := newTestEnv(t)
	ov, err := env.analytics.Overview(env.ctx)
	require.NoError(t, err)
	assert.Zero(t, ov.TotalRooms)
	assert.Zero(t, ov.OccupancyRate)
}

func TestRevenueTrendFillsEmptyMonths(t *testing.T) {
	env := newTestEnv(t)
	seedActivity(t, env)

	trend, err := env.analytics.RevenueTrend(env.ctx, 3)
	require.NoError(t, err)
	require.Len(t, trend, 3)
	assert.Equal(t, "2024-03", trend[0].Month)
	assert.Zero(t, trend[0].Revenue)
	assert.Equal(t, "2024-04", trend[1].Month)
	assert.Equal(t, 200.0, trend[1].Revenue)
	assert.Equal(t, "2024-05", trend[2].Month)
	assert.Equal(t, 112.5, trend[2].Revenue)

	trend, err = env.analytics.RevenueTrend(env.ctx, 0)
	require.NoError(t, err)
	assert.Len(t, trend, 6)

	_, err = env.analytics.RevenueTrend(env.ctx, 48)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestInventoryUsage(t *testing.T) {
	env := newTestEnv(t)
	seedActivity(t, env)

	usage, err := env.analytics.InventoryUsage(env.ctx, 0)
	require.NoError(t, err)
	require.Len(t, usage, 1)
	assert.Equal(t, "Towel", usage[0].Name)
	assert.EqualValues(t, 4, usage[0].Used)
}

func TestExportXLSX(t *testing.T) {
	env := newTestEnv(t)
	seedActivity(t, env)

	data, err := env.analytics.ExportXLSX(env.ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Overview", "Revenue", "Inventory"}, f.GetSheetList())

	total, err := f.GetCellValue("Overview", "B2")
	require.NoError(t, err)
	assert.Equal(t, "3", total)

	rows, err := f.GetRows("Revenue")
	require.NoError(t, err)
	require.Len(t, rows, 13)
	assert.Equal(t, []string{"Month", "Revenue"}, rows[0])
	assert.Equal(t, "2024-05", rows[12][0])

	items, err := f.GetRows("Inventory")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []string{"Towel", "4"}, items[1])
}
