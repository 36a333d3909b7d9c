package models

import "time"

type InventoryItem struct {
	ItemID      uint      `json:"itemId" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null;index"`
	Category    string    `json:"category" gorm:"size:50"`
	Quantity    int       `json:"quantity"`
	MinLevel    int       `json:"minLevel"`
	Unit        string    `json:"unit" gorm:"size:20"`
	LastUpdated time.Time `json:"lastUpdated" gorm:"autoUpdateTime"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}

// IsLowStock: số lượng chạm hoặc dưới ngưỡng tối thiểu
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinLevel
}

type InventoryLog struct {
	LogID           uint      `json:"logId" gorm:"primaryKey"`
	ItemID          uint      `json:"itemId" gorm:"not null;index"`
	ItemName        string    `json:"itemName" gorm:"size:100"`
	ActionType      string    `json:"actionType" gorm:"size:20;not null;index"`
	QuantityChanged int       `json:"quantityChanged"`
	LogDate         time.Time `json:"logDate" gorm:"index"`
}

// ItemUsage là tổng lượng tiêu thụ của một mặt hàng
type ItemUsage struct {
	Name string `json:"name" db:"name"`
	Used int64  `json:"used" db:"used"`
}
