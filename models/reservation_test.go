package models

import (
	"testing"
	"time"

	"orionhotel/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d string
		want       bool
	}{
		{"disjoint before", "2024-01-01", "2024-01-03", "2024-01-05", "2024-01-07", false},
		{"back to back", "2024-01-01", "2024-01-03", "2024-01-03", "2024-01-05", false},
		{"back to back reversed", "2024-01-03", "2024-01-05", "2024-01-01", "2024-01-03", false},
		{"partial overlap", "2024-01-01", "2024-01-04", "2024-01-03", "2024-01-06", true},
		{"contained", "2024-01-01", "2024-01-10", "2024-01-03", "2024-01-04", true},
		{"identical", "2024-01-01", "2024-01-02", "2024-01-01", "2024-01-02", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RangesOverlap(date(tt.a), date(tt.b), date(tt.c), date(tt.d))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReservationOverlapsAndNights(t *testing.T) {
	r := &Reservation{
		CheckIn:  Day(date("2024-03-10")),
		CheckOut: Day(date("2024-03-13")),
		Status:   constants.ReservationStatusConfirmed,
	}

	assert.Equal(t, 3, r.Nights())
	assert.True(t, r.Overlaps(date("2024-03-12"), date("2024-03-15")))
	assert.False(t, r.Overlaps(date("2024-03-13"), date("2024-03-15")))
	assert.True(t, r.IsActive())

	r.Status = constants.ReservationStatusCancelled
	assert.False(t, r.IsActive())
}

func TestReservationStateTransitions(t *testing.T) {
	r := &Reservation{Status: constants.ReservationStatusPending}

	require.NoError(t, GetReservationState(r.Status).Confirm(r))
	assert.Equal(t, constants.ReservationStatusConfirmed, r.Status)

	assert.Error(t, GetReservationState(r.Status).Confirm(r))

	require.NoError(t, GetReservationState(r.Status).CheckIn(r))
	assert.Equal(t, constants.ReservationStatusCompleted, r.Status)

	assert.Error(t, GetReservationState(r.Status).Cancel(r))
	assert.Error(t, GetReservationState(r.Status).CheckIn(r))
}

func TestCancelledReservationRejectsEverything(t *testing.T) {
	r := &Reservation{Status: constants.ReservationStatusCancelled}
	state := GetReservationState(r.Status)

	assert.Error(t, state.Confirm(r))
	assert.Error(t, state.Cancel(r))
	assert.Error(t, state.CheckIn(r))
	assert.Equal(t, constants.ReservationStatusCancelled, r.Status)
}

func TestPendingReservationCanCheckInDirectly(t *testing.T) {
	r := &Reservation{Status: constants.ReservationStatusPending}
	require.NoError(t, GetReservationState(r.Status).CheckIn(r))
	assert.Equal(t, constants.ReservationStatusCompleted, r.Status)
}
