package repository

import (
	"context"
	"errors"
	"time"

	"orionhotel/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	// ErrConflict được trả về khi điều kiện cập nhật không còn đúng,
	// ví dụ phòng đã bị người khác đặt hoặc kho không đủ hàng
	ErrConflict = errors.New("update condition not met")
)

type RoomFilter struct {
	Status   string
	RoomType string
}

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	FindByNumber(ctx context.Context, number int) (*models.Room, error)
	List(ctx context.Context, filter RoomFilter) ([]models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	UpdateStatus(ctx context.Context, number int, status string) error
	// UpdateStatusIf chỉ đổi trạng thái khi trạng thái hiện tại là from
	UpdateStatusIf(ctx context.Context, number int, from, to string) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type GuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	FindByID(ctx context.Context, id uint) (*models.Guest, error)
	List(ctx context.Context, status string) ([]models.Guest, error)
	Search(ctx context.Context, query string) ([]models.Guest, error)
	Update(ctx context.Context, guest *models.Guest) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *models.Reservation) error
	FindByID(ctx context.Context, id uint) (*models.Reservation, error)
	List(ctx context.Context, status string) ([]models.Reservation, error)
	Upcoming(ctx context.Context, after time.Time) ([]models.Reservation, error)
	// CountOverlapping đếm các đặt phòng còn hiệu lực của phòng đè lên [in,out), bỏ qua excludeID
	CountOverlapping(ctx context.Context, roomNumber int, in, out time.Time, excludeID uint) (int64, error)
	Update(ctx context.Context, r *models.Reservation) error
}

type BillRepository interface {
	Create(ctx context.Context, bill *models.Bill) error
	FindByID(ctx context.Context, id uint) (*models.Bill, error)
	// FindOpenByGuest trả về hóa đơn chưa thanh toán đủ mới nhất của khách
	FindOpenByGuest(ctx context.Context, guestID uint) (*models.Bill, error)
	List(ctx context.Context, status string) ([]models.Bill, error)
	Outstanding(ctx context.Context) ([]models.Bill, error)
	Update(ctx context.Context, bill *models.Bill) error
	AddServiceCharge(ctx context.Context, charge *models.ServiceCharge) error
	ServiceCharges(ctx context.Context, billID uint) ([]models.ServiceCharge, error)
	// PaidRevenue cộng total của hóa đơn PAID có bill_date trong [from,to)
	PaidRevenue(ctx context.Context, from, to time.Time) (float64, error)
}

type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	FindByID(ctx context.Context, id uint) (*models.InventoryItem, error)
	List(ctx context.Context) ([]models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	// Consume trừ kho và ghi log CONSUME trong cùng một transaction.
	// Trả về ErrConflict khi số lượng không đủ.
	Consume(ctx context.Context, id uint, amount int, at time.Time) (*models.InventoryItem, error)
	Restock(ctx context.Context, id uint, amount int, at time.Time) (*models.InventoryItem, error)
	LowStock(ctx context.Context) ([]models.InventoryItem, error)
	Logs(ctx context.Context, action string, from, to time.Time) ([]models.InventoryLog, error)
	MostUsed(ctx context.Context, limit int) ([]models.ItemUsage, error)
}

type HousekeepingRepository interface {
	CreateTask(ctx context.Context, task *models.HousekeepingTask) error
	FindTask(ctx context.Context, id uint) (*models.HousekeepingTask, error)
	ListTasks(ctx context.Context, status string) ([]models.HousekeepingTask, error)
	UpdateTask(ctx context.Context, task *models.HousekeepingTask) error
	CreateRequest(ctx context.Context, req *models.MaintenanceRequest) error
	FindRequest(ctx context.Context, id uint) (*models.MaintenanceRequest, error)
	ListRequests(ctx context.Context, status string) ([]models.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, req *models.MaintenanceRequest) error
}

type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	FindByID(ctx context.Context, id uint) (*models.Staff, error)
	FindByUsername(ctx context.Context, username string) (*models.Staff, error)
	FindByEmail(ctx context.Context, email string) (*models.Staff, error)
	List(ctx context.Context, activeOnly bool) ([]models.Staff, error)
	Update(ctx context.Context, staff *models.Staff) error
	CountActiveByRole(ctx context.Context) (map[string]int64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	// ListForRole trả về thông báo gửi cho role hoặc ALL, mới nhất trước
	ListForRole(ctx context.Context, role string, unreadOnly bool) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, id uint) error
	MarkAllAsRead(ctx context.Context, role string) error
	ClearAll(ctx context.Context, role string) error
}

type SettingsRepository interface {
	All(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, values map[string]string) error
}

// MonthlyRevenue là doanh thu đã thu của một tháng, Month dạng YYYY-MM
type MonthlyRevenue struct {
	Month   string  `json:"month" db:"month"`
	Revenue float64 `json:"revenue" db:"revenue"`
}

// ReportRepository phục vụ các truy vấn tổng hợp cho báo cáo
type ReportRepository interface {
	RevenueByMonth(ctx context.Context, since time.Time) ([]MonthlyRevenue, error)
	CountReservations(ctx context.Context, status string) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	InventoryUsage(ctx context.Context, limit int) ([]models.ItemUsage, error)
}

// TableDumper đọc toàn bộ dữ liệu một bảng dưới dạng các dòng key/value
type TableDumper interface {
	Tables() []string
	Dump(ctx context.Context, table string) ([]map[string]interface{}, error)
}

// Store gom các repository dùng chung một nguồn dữ liệu
type Store struct {
	Rooms         RoomRepository
	Guests        GuestRepository
	Reservations  ReservationRepository
	Bills         BillRepository
	Inventory     InventoryRepository
	Housekeeping  HousekeepingRepository
	Staff         StaffRepository
	Notifications NotificationRepository
	Settings      SettingsRepository
	Reports       ReportRepository
	Dumper        TableDumper
}

// BackupTables là danh sách bảng được sao lưu
var BackupTables = []string{
	"staff", "guests", "rooms", "reservations", "inventory", "inventory_logs",
	"notifications", "housekeeping_tasks", "maintenance_requests", "system_settings",
	"bills", "service_charges",
}
