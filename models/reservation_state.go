package models

import (
	"errors"

	"orionhotel/constants"
)

// ReservationState định nghĩa interface cho các trạng thái đặt phòng
type ReservationState interface {
	Confirm(r *Reservation) error
	Cancel(r *Reservation) error
	CheckIn(r *Reservation) error
}

// PendingState trạng thái chờ xác nhận. Khách có thể nhận phòng ngay khi chưa xác nhận.
type PendingState struct{}

func (s *PendingState) Confirm(r *Reservation) error {
	r.Status = constants.ReservationStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(r *Reservation) error {
	r.Status = constants.ReservationStatusCancelled
	return nil
}

func (s *PendingState) CheckIn(r *Reservation) error {
	r.Status = constants.ReservationStatusCompleted
	return nil
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(r *Reservation) error {
	return errors.New("reservation already confirmed")
}

func (s *ConfirmedState) Cancel(r *Reservation) error {
	r.Status = constants.ReservationStatusCancelled
	return nil
}

func (s *ConfirmedState) CheckIn(r *Reservation) error {
	r.Status = constants.ReservationStatusCompleted
	return nil
}

// CompletedState trạng thái khách đã nhận phòng
type CompletedState struct{}

func (s *CompletedState) Confirm(r *Reservation) error {
	return errors.New("reservation already completed")
}

func (s *CompletedState) Cancel(r *Reservation) error {
	return errors.New("cannot cancel completed reservation")
}

func (s *CompletedState) CheckIn(r *Reservation) error {
	return errors.New("reservation already completed")
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) Confirm(r *Reservation) error {
	return errors.New("cannot confirm cancelled reservation")
}

func (s *CancelledState) Cancel(r *Reservation) error {
	return errors.New("reservation already cancelled")
}

func (s *CancelledState) CheckIn(r *Reservation) error {
	return errors.New("cannot check in cancelled reservation")
}

// GetReservationState trả về state tương ứng với trạng thái đặt phòng
func GetReservationState(status string) ReservationState {
	switch status {
	case constants.ReservationStatusPending:
		return &PendingState{}
	case constants.ReservationStatusConfirmed:
		return &ConfirmedState{}
	case constants.ReservationStatusCompleted:
		return &CompletedState{}
	case constants.ReservationStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
