package builders

import (
	"time"

	"orionhotel/models"
)

// ReservationBuilder giúp tạo reservation theo từng bước
type ReservationBuilder struct {
	r *models.Reservation
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{r: &models.Reservation{NumGuests: 1}}
}

// WithGuestInfo thêm thông tin khách
func (b *ReservationBuilder) WithGuestInfo(name, phone, email string) *ReservationBuilder {
	b.r.GuestName = name
	b.r.Phone = phone
	b.r.Email = email
	return b
}

func (b *ReservationBuilder) WithRoomType(roomType string) *ReservationBuilder {
	b.r.RoomType = roomType
	return b
}

// WithRoom gán phòng cụ thể, nil nghĩa là gán sau
func (b *ReservationBuilder) WithRoom(number *int) *ReservationBuilder {
	b.r.RoomNumber = number
	return b
}

// WithStay thêm ngày nhận và trả phòng
func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.r.CheckIn = models.Day(checkIn)
	b.r.CheckOut = models.Day(checkOut)
	return b
}

// WithGuests bỏ qua giá trị <= 0 để giữ mặc định 1 khách
func (b *ReservationBuilder) WithGuests(n int) *ReservationBuilder {
	if n > 0 {
		b.r.NumGuests = n
	}
	return b
}

func (b *ReservationBuilder) WithSpecialRequests(s string) *ReservationBuilder {
	b.r.SpecialRequests = s
	return b
}

// Build trả về reservation, trạng thái do BookingService gán khi tạo
func (b *ReservationBuilder) Build() *models.Reservation {
	return b.r
}
