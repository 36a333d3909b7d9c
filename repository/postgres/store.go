// Package postgres chứa các repository chạy trên gorm + postgres.
// Truy vấn báo cáo và sao lưu dùng sqlx trên cùng connection pool.
package postgres

import (
	"errors"
	"fmt"

	"orionhotel/repository"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// NewStore tạo toàn bộ repository trên một kết nối gorm dùng chung
func NewStore(db *gorm.DB) (*repository.Store, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	x := sqlx.NewDb(sqlDB, "postgres")

	return &repository.Store{
		Rooms:         NewRoomRepository(db),
		Guests:        NewGuestRepository(db),
		Reservations:  NewReservationRepository(db),
		Bills:         NewBillRepository(db),
		Inventory:     NewInventoryRepository(db),
		Housekeeping:  NewHousekeepingRepository(db),
		Staff:         NewStaffRepository(db),
		Notifications: NewNotificationRepository(db),
		Settings:      NewSettingsRepository(db),
		Reports:       NewReportRepository(x),
		Dumper:        NewTableDumper(x),
	}, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrDuplicate
	default:
		return err
	}
}

// affected trả về ErrNotFound khi câu lệnh không chạm dòng nào
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
