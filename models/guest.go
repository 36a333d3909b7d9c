package models

import (
	"fmt"
	"time"

	"orionhotel/constants"

	"gorm.io/datatypes"
)

type Guest struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	FullName     string          `json:"fullName" gorm:"size:100;not null;index"`
	Phone        string          `json:"phone" gorm:"size:20;index"`
	Email        string          `json:"email" gorm:"size:100"`
	NationalID   string          `json:"-" gorm:"size:50"`
	Address      string          `json:"address"`
	Status       string          `json:"status" gorm:"size:20;not null;index"`
	RoomNumber   *int            `json:"roomNumber"`
	CheckInDate  *datatypes.Date `json:"checkInDate"`
	CheckOutDate *datatypes.Date `json:"checkOutDate"`
	CreatedAt    time.Time       `json:"createdAt" gorm:"autoCreateTime"`
}

func (g *Guest) ValidateStatus() error {
	if !constants.IsOneOf(g.Status, constants.GuestStatuses) {
		return fmt.Errorf("invalid guest status: %q", g.Status)
	}
	return nil
}

// MaskedNationalID chỉ để lộ 4 ký tự cuối
func (g *Guest) MaskedNationalID() string {
	if len(g.NationalID) < 4 {
		return "****"
	}
	return "****" + g.NationalID[len(g.NationalID)-4:]
}

// Nights tính số đêm lưu trú, tối thiểu 1. Khách chưa trả phòng được tính đến hôm nay.
func (g *Guest) Nights(now time.Time) int {
	if g.CheckInDate == nil {
		return 1
	}
	end := now
	if g.Status == constants.GuestStatusCheckedOut && g.CheckOutDate != nil {
		end = time.Time(*g.CheckOutDate)
	}
	nights := DaysBetween(time.Time(*g.CheckInDate), end)
	if nights <= 0 {
		return 1
	}
	return nights
}
