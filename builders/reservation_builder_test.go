package builders

import (
	"testing"
	"time"

	"orionhotel/models"

	"github.com/stretchr/testify/assert"
)

func TestReservationBuilder(t *testing.T) {
	in := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	out := time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC)
	room := 201

	r := NewReservationBuilder().
		WithGuestInfo("Lan", "0901234567", "lan@example.com").
		WithRoomType("Double").
		WithRoom(&room).
		WithStay(in, out).
		WithGuests(2).
		WithSpecialRequests("Late arrival").
		Build()

	assert.Equal(t, "Lan", r.GuestName)
	assert.Equal(t, "Double", r.RoomType)
	assert.Equal(t, 201, *r.RoomNumber)
	assert.Equal(t, models.Day(in), r.CheckIn)
	assert.Equal(t, 3, r.Nights())
	assert.Equal(t, 2, r.NumGuests)
	assert.Equal(t, "Late arrival", r.SpecialRequests)
}

func TestReservationBuilderDefaultsToOneGuest(t *testing.T) {
	r := NewReservationBuilder().WithGuests(0).Build()
	assert.Equal(t, 1, r.NumGuests)
	assert.Nil(t, r.RoomNumber)
}
