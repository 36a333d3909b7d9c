package dto

import (
	"time"

	"orionhotel/builders"
	"orionhotel/errors"
	"orionhotel/models"
)

type ReservationRequest struct {
	GuestName       string `json:"guestName" binding:"required"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	RoomType        string `json:"roomType" binding:"required"`
	RoomNumber      *int   `json:"roomNumber"`
	CheckIn         string `json:"checkIn" binding:"required"`
	CheckOut        string `json:"checkOut" binding:"required"`
	NumGuests       int    `json:"numGuests"`
	SpecialRequests string `json:"specialRequests"`
}

type ModifyReservationRequest struct {
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
	RoomType string `json:"roomType"`
}

type AssignRoomRequest struct {
	RoomNumber int `json:"roomNumber" binding:"required,gt=0"`
}

type ReservationResponse struct {
	ID              uint   `json:"id"`
	GuestName       string `json:"guestName"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	RoomType        string `json:"roomType"`
	RoomNumber      *int   `json:"roomNumber"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Nights          int    `json:"nights"`
	NumGuests       int    `json:"numGuests"`
	SpecialRequests string `json:"specialRequests"`
	Status          string `json:"status"`
}

// ParseDates đọc cặp ngày yyyy-MM-dd của request
func ParseDates(in, out string) (time.Time, time.Time, error) {
	checkIn, err := models.ParseDate(in)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày nhận phòng phải có dạng yyyy-MM-dd", errors.ErrInvalidFormat)
	}
	checkOut, err := models.ParseDate(out)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng phải có dạng yyyy-MM-dd", errors.ErrInvalidFormat)
	}
	return checkIn, checkOut, nil
}

func (r ReservationRequest) Model() (*models.Reservation, error) {
	in, out, err := ParseDates(r.CheckIn, r.CheckOut)
	if err != nil {
		return nil, err
	}
	return builders.NewReservationBuilder().
		WithGuestInfo(r.GuestName, r.Phone, r.Email).
		WithRoomType(r.RoomType).
		WithRoom(r.RoomNumber).
		WithStay(in, out).
		WithGuests(r.NumGuests).
		WithSpecialRequests(r.SpecialRequests).
		Build(), nil
}

func NewReservationResponse(r *models.Reservation) ReservationResponse {
	in, out := r.CheckIn, r.CheckOut
	return ReservationResponse{
		ID:              r.ID,
		GuestName:       r.GuestName,
		Phone:           r.Phone,
		Email:           r.Email,
		RoomType:        r.RoomType,
		RoomNumber:      r.RoomNumber,
		CheckIn:         models.FormatDate(&in),
		CheckOut:        models.FormatDate(&out),
		Nights:          r.Nights(),
		NumGuests:       r.NumGuests,
		SpecialRequests: r.SpecialRequests,
		Status:          r.Status,
	}
}

func NewReservationResponses(list []models.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(list))
	for i := range list {
		out = append(out, NewReservationResponse(&list[i]))
	}
	return out
}
