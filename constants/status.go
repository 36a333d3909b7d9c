package constants

// Staff roles
const (
	RoleAdmin        = "ADMIN"
	RoleManager      = "MANAGER"
	RoleReceptionist = "RECEPTIONIST"
	RoleHousekeeping = "HOUSEKEEPING"
	RoleAccountant   = "ACCOUNTANT"
)

// Notification targets ngoài các role của nhân viên
const (
	TargetAll    = "ALL"
	TargetSystem = "SYSTEM"
)

// Staff status
const (
	StaffStatusActive   = "ACTIVE"
	StaffStatusInactive = "INACTIVE"
)

// Guest status
const (
	GuestStatusRegistered = "REGISTERED"
	GuestStatusCheckedIn  = "CHECKED_IN"
	GuestStatusCheckedOut = "CHECKED_OUT"
)

// Room status
const (
	RoomStatusAvailable   = "AVAILABLE"
	RoomStatusOccupied    = "OCCUPIED"
	RoomStatusDirty       = "DIRTY"
	RoomStatusMaintenance = "MAINTENANCE"
)

// Room type
const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeSuite  = "Suite"
)

// Reservation status
const (
	ReservationStatusPending   = "PENDING"
	ReservationStatusConfirmed = "CONFIRMED"
	ReservationStatusCancelled = "CANCELLED"
	ReservationStatusCompleted = "COMPLETED"
)

// Bill status
const (
	BillStatusUnpaid  = "UNPAID"
	BillStatusPartial = "PARTIAL"
	BillStatusPaid    = "PAID"
)

// Payment method
const (
	PaymentCash   = "CASH"
	PaymentCard   = "CARD"
	PaymentMobile = "MOBILE"
	PaymentBank   = "BANK"
)

// Housekeeping task
const (
	TaskTypeCleaning   = "CLEANING"
	TaskTypeInspection = "INSPECTION"

	TaskStatusPending    = "PENDING"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusCompleted  = "COMPLETED"
)

// Maintenance request
const (
	IssueElectrical = "ELECTRICAL"
	IssuePlumbing   = "PLUMBING"
	IssueFurniture  = "FURNITURE"
	IssueOther      = "OTHER"

	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"

	MaintenanceStatusOpen       = "OPEN"
	MaintenanceStatusInProgress = "IN_PROGRESS"
	MaintenanceStatusFixed      = "FIXED"
)

// Inventory log action
const (
	InventoryActionConsume = "CONSUME"
	InventoryActionRestock = "RESTOCK"
)

var (
	StaffRoles          = []string{RoleAdmin, RoleManager, RoleReceptionist, RoleHousekeeping, RoleAccountant}
	NotificationTargets = []string{RoleAdmin, RoleManager, RoleReceptionist, RoleHousekeeping, RoleAccountant, TargetAll, TargetSystem}
	StaffStatuses       = []string{StaffStatusActive, StaffStatusInactive}
	GuestStatuses       = []string{GuestStatusRegistered, GuestStatusCheckedIn, GuestStatusCheckedOut}
	RoomStatuses        = []string{RoomStatusAvailable, RoomStatusOccupied, RoomStatusDirty, RoomStatusMaintenance}
	RoomTypes           = []string{RoomTypeSingle, RoomTypeDouble, RoomTypeSuite}
	ReservationStatuses = []string{ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled, ReservationStatusCompleted}
	BillStatuses        = []string{BillStatusUnpaid, BillStatusPartial, BillStatusPaid}
	PaymentMethods      = []string{PaymentCash, PaymentCard, PaymentMobile, PaymentBank}
	TaskTypes           = []string{TaskTypeCleaning, TaskTypeInspection}
	TaskStatuses        = []string{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}
	IssueTypes          = []string{IssueElectrical, IssuePlumbing, IssueFurniture, IssueOther}
	Priorities          = []string{PriorityLow, PriorityMedium, PriorityHigh}
	MaintenanceStatuses = []string{MaintenanceStatusOpen, MaintenanceStatusInProgress, MaintenanceStatusFixed}
)

// IsOneOf kiểm tra giá trị có nằm trong danh sách cho phép
func IsOneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
