package models

import (
	"fmt"
	"math"
	"time"

	"orionhotel/constants"

	"gorm.io/datatypes"
)

type Bill struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	GuestID        uint            `json:"guestId" gorm:"not null;index"`
	GuestName      string          `json:"guestName" gorm:"size:100"`
	RoomNumber     *int            `json:"roomNumber,omitempty"`
	DailyRate      float64         `json:"dailyRate"`
	RoomCharges    float64         `json:"roomCharges"`
	ServiceTotal   float64         `json:"serviceTotal"`
	Taxes          float64         `json:"taxes"`
	Discount       float64         `json:"discount"`
	Total          float64         `json:"total"`
	AmountPaid     float64         `json:"amountPaid"`
	PaymentMethod  string          `json:"paymentMethod" gorm:"size:20"`
	Status         string          `json:"status" gorm:"size:20;not null;index"`
	BillDate       datatypes.Date  `json:"billDate" gorm:"index"`
	ServiceCharges []ServiceCharge `json:"serviceCharges,omitempty" gorm:"foreignKey:BillID"`
	CreatedAt      time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

type ServiceCharge struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	BillID      uint      `json:"billId" gorm:"not null;index"`
	ServiceType string    `json:"serviceType" gorm:"size:50;not null"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (b *Bill) ValidateStatus() error {
	if !constants.IsOneOf(b.Status, constants.BillStatuses) {
		return fmt.Errorf("invalid bill status: %q", b.Status)
	}
	return nil
}

// Subtotal = tiền phòng + tổng phí dịch vụ
func (b *Bill) Subtotal() float64 {
	return b.RoomCharges + b.ServiceTotal
}

// Recalculate tính lại thuế và tổng tiền từ tiền phòng, phí dịch vụ và giảm giá
func (b *Bill) Recalculate(taxRate float64) {
	var services float64
	for _, c := range b.ServiceCharges {
		services += c.Amount
	}
	b.ServiceTotal = roundMoney(services)
	subtotal := b.Subtotal()
	b.Taxes = roundMoney(subtotal * taxRate)
	b.Total = roundMoney(subtotal + b.Taxes - b.Discount)
}

// Balance là số tiền còn phải trả
func (b *Bill) Balance() float64 {
	return roundMoney(b.Total - b.AmountPaid)
}

// ApplyPayment cộng dồn số tiền đã trả và cập nhật trạng thái
func (b *Bill) ApplyPayment(amount float64, method string) {
	b.AmountPaid = roundMoney(b.AmountPaid + amount)
	b.PaymentMethod = method
	if b.AmountPaid >= b.Total {
		b.Status = constants.BillStatusPaid
	} else {
		b.Status = constants.BillStatusPartial
	}
}

func (b *Bill) IsPaid() bool {
	return b.Status == constants.BillStatusPaid
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
