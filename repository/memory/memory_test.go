package memory

import (
	"context"
	"testing"
	"time"

	"orionhotel/constants"
	"orionhotel/models"
	"orionhotel/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRoomUniqueAndConditionalStatus(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Rooms.Create(ctx, &models.Room{RoomNumber: 101, RoomType: "Single", Status: constants.RoomStatusAvailable}))
	assert.ErrorIs(t, store.Rooms.Create(ctx, &models.Room{RoomNumber: 101}), repository.ErrDuplicate)

	require.NoError(t, store.Rooms.UpdateStatusIf(ctx, 101, constants.RoomStatusAvailable, constants.RoomStatusOccupied))
	assert.ErrorIs(t, store.Rooms.UpdateStatusIf(ctx, 101, constants.RoomStatusAvailable, constants.RoomStatusOccupied), repository.ErrConflict)
	assert.ErrorIs(t, store.Rooms.UpdateStatusIf(ctx, 999, constants.RoomStatusAvailable, constants.RoomStatusOccupied), repository.ErrNotFound)

	counts, err := store.Rooms.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[constants.RoomStatusOccupied])
}

func TestReservationOverlapIgnoresClosedBookings(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	room := 102

	active := &models.Reservation{RoomNumber: &room, CheckIn: models.Day(day("2024-06-01")), CheckOut: models.Day(day("2024-06-05")), Status: constants.ReservationStatusConfirmed}
	cancelled := &models.Reservation{RoomNumber: &room, CheckIn: models.Day(day("2024-06-01")), CheckOut: models.Day(day("2024-06-05")), Status: constants.ReservationStatusCancelled}
	require.NoError(t, store.Reservations.Create(ctx, active))
	require.NoError(t, store.Reservations.Create(ctx, cancelled))

	n, err := store.Reservations.CountOverlapping(ctx, room, day("2024-06-04"), day("2024-06-06"), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = store.Reservations.CountOverlapping(ctx, room, day("2024-06-05"), day("2024-06-06"), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = store.Reservations.CountOverlapping(ctx, room, day("2024-06-02"), day("2024-06-03"), active.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestInventoryConsumeAndUsage(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	towels := &models.InventoryItem{Name: "Towels", Quantity: 10, MinLevel: 3}
	require.NoError(t, store.Inventory.Create(ctx, towels))

	now := time.Now()
	item, err := store.Inventory.Consume(ctx, towels.ItemID, 8, now)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	_, err = store.Inventory.Consume(ctx, towels.ItemID, 5, now)
	assert.ErrorIs(t, err, repository.ErrConflict)

	_, err = store.Inventory.Restock(ctx, towels.ItemID, 20, now)
	require.NoError(t, err)

	logs, err := store.Inventory.Logs(ctx, constants.InventoryActionConsume, now.Add(-time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 8, logs[0].QuantityChanged)

	used, err := store.Inventory.MostUsed(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []models.ItemUsage{{Name: "Towels", Used: 8}}, used)
}

func TestNotificationsForRole(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Notifications.Create(ctx, &models.Notification{Message: "all", TargetRole: constants.TargetAll, CreatedAt: base}))
	require.NoError(t, store.Notifications.Create(ctx, &models.Notification{Message: "mgr", TargetRole: constants.RoleManager, CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, store.Notifications.Create(ctx, &models.Notification{Message: "desk", TargetRole: constants.RoleReceptionist, CreatedAt: base.Add(2 * time.Hour)}))

	list, err := store.Notifications.ListForRole(ctx, constants.RoleManager, false)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "mgr", list[0].Message)
	assert.Equal(t, "all", list[1].Message)

	require.NoError(t, store.Notifications.MarkAllAsRead(ctx, constants.RoleManager))
	unread, err := store.Notifications.ListForRole(ctx, constants.RoleReceptionist, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "desk", unread[0].Message)

	require.NoError(t, store.Notifications.ClearAll(ctx, constants.RoleReceptionist))
	left, err := store.Notifications.ListForRole(ctx, constants.RoleManager, false)
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

func TestBillRevenueAndCharges(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	paid := &models.Bill{GuestID: 1, Total: 250, Status: constants.BillStatusPaid, BillDate: models.Day(day("2024-02-10"))}
	open := &models.Bill{GuestID: 1, Total: 90, Status: constants.BillStatusUnpaid, BillDate: models.Day(day("2024-02-11"))}
	require.NoError(t, store.Bills.Create(ctx, paid))
	require.NoError(t, store.Bills.Create(ctx, open))
	require.NoError(t, store.Bills.AddServiceCharge(ctx, &models.ServiceCharge{BillID: open.ID, ServiceType: "Spa", Amount: 40}))

	found, err := store.Bills.FindOpenByGuest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, open.ID, found.ID)
	require.Len(t, found.ServiceCharges, 1)

	revenue, err := store.Bills.PaidRevenue(ctx, day("2024-02-01"), day("2024-03-01"))
	require.NoError(t, err)
	assert.Equal(t, 250.0, revenue)

	months, err := store.Reports.RevenueByMonth(ctx, day("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, []repository.MonthlyRevenue{{Month: "2024-02", Revenue: 250}}, months)
}

func TestDumperUsesTableNames(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Settings.Upsert(ctx, map[string]string{"tax_rate": "12.5"}))

	rows, err := store.Dumper.Dump(ctx, "system_settings")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "tax_rate", rows[0]["key"])

	for _, table := range store.Dumper.Tables() {
		_, err := store.Dumper.Dump(ctx, table)
		assert.NoError(t, err, table)
	}
}

func TestInventoryUpdateKeepsStoredQuantity(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	soap := &models.InventoryItem{Name: "Soap", Quantity: 10, MinLevel: 2}
	require.NoError(t, store.Inventory.Create(ctx, soap))

	stale, err := store.Inventory.FindByID(ctx, soap.ItemID)
	require.NoError(t, err)
	_, err = store.Inventory.Consume(ctx, soap.ItemID, 4, time.Now())
	require.NoError(t, err)

	stale.Name = "Hand Soap"
	require.NoError(t, store.Inventory.Update(ctx, stale))

	got, err := store.Inventory.FindByID(ctx, soap.ItemID)
	require.NoError(t, err)
	assert.Equal(t, "Hand Soap", got.Name)
	assert.Equal(t, 6, got.Quantity)
}
