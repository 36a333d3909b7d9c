package models

import (
	"fmt"
	"time"

	"orionhotel/constants"

	"gorm.io/datatypes"
)

type Reservation struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	GuestName       string         `json:"guestName" gorm:"size:100;not null"`
	Phone           string         `json:"phone" gorm:"size:20"`
	Email           string         `json:"email" gorm:"size:100"`
	RoomType        string         `json:"roomType" gorm:"size:20;not null"`
	RoomNumber      *int           `json:"roomNumber" gorm:"index"`
	CheckIn         datatypes.Date `json:"checkIn" gorm:"not null;index"`
	CheckOut        datatypes.Date `json:"checkOut" gorm:"not null"`
	NumGuests       int            `json:"numGuests"`
	SpecialRequests string         `json:"specialRequests"`
	Status          string         `json:"status" gorm:"size:20;not null;index"`
	CreatedAt       time.Time      `json:"createdAt" gorm:"autoCreateTime"`
}

func (r *Reservation) ValidateStatus() error {
	if !constants.IsOneOf(r.Status, constants.ReservationStatuses) {
		return fmt.Errorf("invalid reservation status: %q", r.Status)
	}
	return nil
}

// IsActive: các đặt phòng đã hủy hoặc hoàn tất không còn giữ phòng
func (r *Reservation) IsActive() bool {
	return r.Status != constants.ReservationStatusCancelled && r.Status != constants.ReservationStatusCompleted
}

// Overlaps kiểm tra khoảng [in,out) có đè lên khoảng của đặt phòng này không
func (r *Reservation) Overlaps(in, out time.Time) bool {
	return RangesOverlap(time.Time(r.CheckIn), time.Time(r.CheckOut), civil(in), civil(out))
}

func (r *Reservation) Nights() int {
	return DaysBetween(time.Time(r.CheckIn), time.Time(r.CheckOut))
}
