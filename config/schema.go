package config

import (
	"fmt"

	"orionhotel/models"

	"gorm.io/gorm"
)

// Models liệt kê 12 bảng của hệ thống theo thứ tự migrate
func Models() []interface{} {
	return []interface{}{
		&models.Staff{},
		&models.Guest{},
		&models.Room{},
		&models.Reservation{},
		&models.InventoryItem{},
		&models.InventoryLog{},
		&models.Notification{},
		&models.HousekeepingTask{},
		&models.MaintenanceRequest{},
		&models.SystemSetting{},
		&models.Bill{},
		&models.ServiceCharge{},
	}
}

// InitSchema tạo hoặc cập nhật các bảng
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
