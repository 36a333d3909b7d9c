package services

import (
	"time"

	"orionhotel/repository"
	"orionhotel/services/logger"
	"orionhotel/services/notification"

	"github.com/redis/go-redis/v9"
)

// Container giữ toàn bộ service đã được nối với nhau trên một Store
type Container struct {
	Settings      *SettingsService
	Notifications *NotificationService
	Rooms         *RoomService
	Billing       *BillingService
	Guests        *GuestService
	Booking       *BookingService
	Housekeeping  *HousekeepingService
	Inventory     *InventoryService
	Tokens        *TokenService
	Staff         *StaffService
	Backups       *BackupService
	Analytics     *AnalyticsService
}

type ContainerOptions struct {
	Store          *repository.Store
	Redis          *redis.Client
	Pusher         notification.Service
	Uploader       BackupUploader
	JWTSecret      string
	GoogleClientID string
	GoogleVerifier GoogleVerifier
	BackupDir      string
	Logger         logger.Logger
	Clock          Clock
}

func NewContainer(opts ContainerOptions) *Container {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	store, log, clock := opts.Store, opts.Logger, opts.Clock

	c := &Container{}
	c.Settings = NewSettingsService(SettingsServiceOptions{Repo: store.Settings, Redis: opts.Redis, Logger: log})
	c.Notifications = NewNotificationService(NotificationServiceOptions{Repo: store.Notifications, Pusher: opts.Pusher, Logger: log})
	c.Rooms = NewRoomService(RoomServiceOptions{
		Rooms: store.Rooms, Housekeeping: store.Housekeeping, Redis: opts.Redis, Logger: log,
	})
	c.Billing = NewBillingService(BillingServiceOptions{
		Bills: store.Bills, Guests: store.Guests, Rooms: store.Rooms,
		Settings: c.Settings, Logger: log, Clock: clock,
	})
	c.Guests = NewGuestService(GuestServiceOptions{
		Guests: store.Guests, Rooms: c.Rooms, Billing: c.Billing, Logger: log, Clock: clock,
	})
	c.Booking = NewBookingService(BookingServiceOptions{
		Reservations: store.Reservations, Rooms: store.Rooms, Notifier: c.Notifications, Logger: log, Clock: clock,
	})
	c.Housekeeping = NewHousekeepingService(HousekeepingServiceOptions{
		Repo: store.Housekeeping, Staff: store.Staff, Rooms: c.Rooms,
		Settings: c.Settings, Notifier: c.Notifications, Logger: log, Clock: clock,
	})
	c.Inventory = NewInventoryService(InventoryServiceOptions{
		Repo: store.Inventory, Settings: c.Settings, Notifier: c.Notifications, Logger: log, Clock: clock,
	})
	c.Tokens = NewTokenService(opts.JWTSecret, opts.Redis)
	c.Staff = NewStaffService(StaffServiceOptions{
		Repo: store.Staff, Settings: c.Settings, Tokens: c.Tokens,
		GoogleClientID: opts.GoogleClientID, GoogleVerifier: opts.GoogleVerifier,
		Logger: log, Clock: clock,
	})
	c.Backups = NewBackupService(BackupServiceOptions{
		Dumper: store.Dumper, Dir: opts.BackupDir, Uploader: opts.Uploader, Logger: log, Clock: clock,
	})
	c.Analytics = NewAnalyticsService(AnalyticsServiceOptions{
		Rooms: c.Rooms, Billing: c.Billing, Reports: store.Reports, Logger: log, Clock: clock,
	})
	return c
}
