package services

import (
	"context"
	"testing"
	"time"

	"orionhotel/constants"
	"orionhotel/models"
	"orionhotel/repository"
	"orionhotel/repository/memory"

	"github.com/stretchr/testify/require"
)

// testClock là đồng hồ chỉnh tay cho test
type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) advance(days int) { c.t = c.t.AddDate(0, 0, days) }

type testEnv struct {
	ctx   context.Context
	clock *testClock
	store *repository.Store

	settings      *SettingsService
	notifications *NotificationService
	rooms         *RoomService
	billing       *BillingService
	guests        *GuestService
	booking       *BookingService
	housekeeping  *HousekeepingService
	inventory     *InventoryService
	staff         *StaffService
	tokens        *TokenService
	analytics     *AnalyticsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := &testClock{t: time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)}
	store := memory.NewStore()
	env := &testEnv{ctx: context.Background(), clock: clock, store: store}

	c := NewContainer(ContainerOptions{Store: store, JWTSecret: "test-secret", Clock: clock.Now})
	env.settings = c.Settings
	env.notifications = c.Notifications
	env.rooms = c.Rooms
	env.billing = c.Billing
	env.guests = c.Guests
	env.booking = c.Booking
	env.housekeeping = c.Housekeeping
	env.inventory = c.Inventory
	env.tokens = c.Tokens
	env.staff = c.Staff
	env.analytics = c.Analytics
	return env
}

func (e *testEnv) addRoom(t *testing.T, number int, roomType string, price float64) {
	t.Helper()
	require.NoError(t, e.rooms.AddRoom(e.ctx, &models.Room{RoomNumber: number, RoomType: roomType, Price: price}))
}

func (e *testEnv) registerGuest(t *testing.T, name string) *models.Guest {
	t.Helper()
	g := &models.Guest{FullName: name, Phone: "5550100", NationalID: "AB1234567"}
	require.NoError(t, e.guests.RegisterGuest(e.ctx, g))
	return g
}

func (e *testEnv) messagesFor(t *testing.T, role string) []string {
	t.Helper()
	list, err := e.notifications.ListForRole(e.ctx, role, false)
	require.NoError(t, err)
	var out []string
	for _, n := range list {
		out = append(out, n.Message)
	}
	return out
}

func (e *testEnv) roomStatus(t *testing.T, number int) string {
	t.Helper()
	room, err := e.rooms.GetRoom(e.ctx, number)
	require.NoError(t, err)
	return room.Status
}

func (e *testEnv) pendingCleaning(t *testing.T, number int) int {
	t.Helper()
	tasks, err := e.housekeeping.ListTasks(e.ctx, constants.TaskStatusPending)
	require.NoError(t, err)
	n := 0
	for _, task := range tasks {
		if task.RoomNumber == number && task.TaskType == constants.TaskTypeCleaning {
			n++
		}
	}
	return n
}
