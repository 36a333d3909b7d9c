package dto

import (
	"time"

	"orionhotel/models"
)

type GuestRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email"`
	NationalID string `json:"nationalId"`
	Address    string `json:"address"`
}

type CheckInRequest struct {
	RoomNumber int `json:"roomNumber" binding:"required,gt=0"`
}

// GuestResponse che số giấy tờ, ngày trả về dạng yyyy-MM-dd
type GuestResponse struct {
	ID               uint      `json:"id"`
	FullName         string    `json:"fullName"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	MaskedNationalID string    `json:"maskedNationalId"`
	Address          string    `json:"address"`
	Status           string    `json:"status"`
	RoomNumber       *int      `json:"roomNumber"`
	CheckInDate      string    `json:"checkInDate"`
	CheckOutDate     string    `json:"checkOutDate"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CheckOutResponse struct {
	Guest GuestResponse `json:"guest"`
	Bill  *models.Bill  `json:"bill"`
}

func (r GuestRequest) Model() *models.Guest {
	return &models.Guest{
		FullName:   r.FullName,
		Phone:      r.Phone,
		Email:      r.Email,
		NationalID: r.NationalID,
		Address:    r.Address,
	}
}

func NewGuestResponse(g *models.Guest) GuestResponse {
	return GuestResponse{
		ID:               g.ID,
		FullName:         g.FullName,
		Phone:            g.Phone,
		Email:            g.Email,
		MaskedNationalID: g.MaskedNationalID(),
		Address:          g.Address,
		Status:           g.Status,
		RoomNumber:       g.RoomNumber,
		CheckInDate:      models.FormatDate(g.CheckInDate),
		CheckOutDate:     models.FormatDate(g.CheckOutDate),
		CreatedAt:        g.CreatedAt,
	}
}

func NewGuestResponses(list []models.Guest) []GuestResponse {
	out := make([]GuestResponse, 0, len(list))
	for i := range list {
		out = append(out, NewGuestResponse(&list[i]))
	}
	return out
}
