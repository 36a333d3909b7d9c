package models

import (
	"fmt"
	"time"

	"orionhotel/constants"

	"github.com/lib/pq"
)

type Room struct {
	RoomNumber int            `json:"roomNumber" gorm:"primaryKey;autoIncrement:false"`
	RoomType   string         `json:"roomType" gorm:"size:20;not null;index"`
	Price      float64        `json:"price"`
	Status     string         `json:"status" gorm:"size:20;not null;index"`
	Amenities  pq.StringArray `json:"amenities" gorm:"type:text[]"`
	Floor      int            `json:"floor"`
	CreatedAt  time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (r *Room) ValidateStatus() error {
	if !constants.IsOneOf(r.Status, constants.RoomStatuses) {
		return fmt.Errorf("invalid room status: %q", r.Status)
	}
	return nil
}

func (r *Room) ValidateType() error {
	if !constants.IsOneOf(r.RoomType, constants.RoomTypes) {
		return fmt.Errorf("invalid room type: %q", r.RoomType)
	}
	return nil
}

func (r *Room) IsAvailable() bool {
	return r.Status == constants.RoomStatusAvailable
}
