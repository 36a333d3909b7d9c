package dto

import (
	"orionhotel/models"

	"github.com/lib/pq"
)

type RoomRequest struct {
	RoomNumber int      `json:"roomNumber" binding:"required,gt=0"`
	RoomType   string   `json:"roomType" binding:"required"`
	Price      float64  `json:"price" binding:"gte=0"`
	Status     string   `json:"status"`
	Amenities  []string `json:"amenities"`
	Floor      int      `json:"floor"`
}

func (r RoomRequest) Model() *models.Room {
	return &models.Room{
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
		Price:      r.Price,
		Status:     r.Status,
		Amenities:  pq.StringArray(r.Amenities),
		Floor:      r.Floor,
	}
}
