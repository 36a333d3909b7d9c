package services

import (
	"context"
	"fmt"
	"time"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"
	"orionhotel/repository"
	"orionhotel/services/logger"
	"orionhotel/validator"
)

type BookingService struct {
	reservations repository.ReservationRepository
	rooms        repository.RoomRepository
	notifier     Notifier
	logger       logger.Logger
	clock        Clock
}

type BookingServiceOptions struct {
	Reservations repository.ReservationRepository
	Rooms        repository.RoomRepository
	Notifier     Notifier
	Logger       logger.Logger
	Clock        Clock
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &BookingService{
		reservations: opts.Reservations,
		rooms:        opts.Rooms,
		notifier:     opts.Notifier,
		logger:       opts.Logger,
		clock:        opts.Clock,
	}
}

func roomNotAvailable(format string, args ...interface{}) error {
	return errors.NewAppError(errors.ErrCodeRoomNotAvailable, fmt.Sprintf(format, args...), errors.ErrRoomNotAvailable)
}

func (s *BookingService) notify(ctx context.Context, message string) {
	if s.notifier == nil {
		return
	}
	if _, err := s.notifier.Send(ctx, message, constants.RoleReceptionist); err != nil {
		s.logger.Error("❌ Lỗi gửi thông báo đặt phòng: %v", err)
	}
}

func (s *BookingService) CreateReservation(ctx context.Context, r *models.Reservation) error {
	if err := validator.ValidateReservation(r); err != nil {
		return err
	}
	in, out := time.Time(r.CheckIn), time.Time(r.CheckOut)

	if r.RoomNumber != nil {
		if err := s.checkRoomFor(ctx, r, *r.RoomNumber); err != nil {
			return err
		}
	} else {
		free, err := s.IsRoomTypeAvailable(ctx, r.RoomType, in, out)
		if err != nil {
			return err
		}
		if !free {
			return roomNotAvailable("Không còn phòng %s trống từ %s đến %s", r.RoomType, in.Format(models.DateLayout), out.Format(models.DateLayout))
		}
	}

	r.Status = constants.ReservationStatusPending
	if err := s.reservations.Create(ctx, r); err != nil {
		return wrapRepoError(err, nil, "đặt phòng")
	}
	s.logger.Info("Đã tạo đặt phòng %d cho %s", r.ID, r.GuestName)
	s.notify(ctx, "New Reservation: "+r.GuestName)
	return nil
}

// checkRoomFor: phòng phải tồn tại, đúng loại và trống trong khoảng ngày của đặt phòng
func (s *BookingService) checkRoomFor(ctx context.Context, r *models.Reservation, number int) error {
	room, err := s.rooms.FindByNumber(ctx, number)
	if err != nil {
		return wrapRepoError(err, errors.ErrRoomNotFound, fmt.Sprintf("phòng %d", number))
	}
	if room.RoomType != r.RoomType {
		return errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("Phòng %d là phòng %s, không phải %s", number, room.RoomType, r.RoomType), errors.ErrInvalidInput)
	}
	free, err := s.roomFree(ctx, number, time.Time(r.CheckIn), time.Time(r.CheckOut), r.ID)
	if err != nil {
		return err
	}
	if !free {
		return roomNotAvailable("Phòng %d đã được đặt trong khoảng thời gian này", number)
	}
	return nil
}

func (s *BookingService) roomFree(ctx context.Context, number int, in, out time.Time, excludeID uint) (bool, error) {
	n, err := s.reservations.CountOverlapping(ctx, number, in, out, excludeID)
	if err != nil {
		return false, wrapRepoError(err, nil, "đặt phòng")
	}
	return n == 0, nil
}

func (s *BookingService) typeFree(ctx context.Context, roomType string, in, out time.Time, excludeID uint) (bool, error) {
	rooms, err := s.rooms.List(ctx, repository.RoomFilter{RoomType: roomType})
	if err != nil {
		return false, wrapRepoError(err, nil, "phòng")
	}
	for _, room := range rooms {
		free, err := s.roomFree(ctx, room.RoomNumber, in, out, excludeID)
		if err != nil {
			return false, err
		}
		if free {
			return true, nil
		}
	}
	return false, nil
}

// IsRoomAvailable: không có đặt phòng còn hiệu lực nào của phòng đè lên [in,out)
func (s *BookingService) IsRoomAvailable(ctx context.Context, number int, in, out time.Time) (bool, error) {
	if err := validator.ValidateStay(in, out); err != nil {
		return false, err
	}
	return s.roomFree(ctx, number, in, out, 0)
}

func (s *BookingService) IsRoomTypeAvailable(ctx context.Context, roomType string, in, out time.Time) (bool, error) {
	if err := validator.ValidateStay(in, out); err != nil {
		return false, err
	}
	return s.typeFree(ctx, roomType, in, out, 0)
}

func (s *BookingService) ListReservations(ctx context.Context, status string) ([]models.Reservation, error) {
	if status != "" && !constants.IsOneOf(status, constants.ReservationStatuses) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, fmt.Sprintf("Trạng thái đặt phòng không hợp lệ: %s", status), errors.ErrInvalidInput)
	}
	list, err := s.reservations.List(ctx, status)
	if err != nil {
		return nil, wrapRepoError(err, nil, "đặt phòng")
	}
	return list, nil
}

func (s *BookingService) CancelledReservations(ctx context.Context) ([]models.Reservation, error) {
	return s.ListReservations(ctx, constants.ReservationStatusCancelled)
}

// UpcomingReservations: chưa hủy và nhận phòng sau hôm nay
func (s *BookingService) UpcomingReservations(ctx context.Context) ([]models.Reservation, error) {
	list, err := s.reservations.Upcoming(ctx, s.clock.now())
	if err != nil {
		return nil, wrapRepoError(err, nil, "đặt phòng")
	}
	return list, nil
}

func (s *BookingService) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	r, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrReservationNotFound, fmt.Sprintf("đặt phòng %d", id))
	}
	return r, nil
}

func (s *BookingService) openReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	r, err := s.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.IsActive() {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation,
			fmt.Sprintf("Đặt phòng %d đã %s", id, r.Status), errors.ErrReservationClosed)
	}
	return r, nil
}

// ModifyReservation đổi ngày và loại phòng. Phòng đã gán khác loại mới sẽ bị bỏ gán.
func (s *BookingService) ModifyReservation(ctx context.Context, id uint, checkIn, checkOut time.Time, roomType string) (*models.Reservation, error) {
	r, err := s.openReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	r.CheckIn = models.Day(checkIn)
	r.CheckOut = models.Day(checkOut)
	if roomType != "" {
		r.RoomType = roomType
	}
	if err := validator.ValidateReservation(r); err != nil {
		return nil, err
	}

	if r.RoomNumber != nil {
		room, err := s.rooms.FindByNumber(ctx, *r.RoomNumber)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, wrapRepoError(err, nil, "phòng")
		}
		if room == nil || room.RoomType != r.RoomType {
			r.RoomNumber = nil
		}
	}
	if r.RoomNumber != nil {
		if err := s.checkRoomFor(ctx, r, *r.RoomNumber); err != nil {
			return nil, err
		}
	} else {
		free, err := s.typeFree(ctx, r.RoomType, time.Time(r.CheckIn), time.Time(r.CheckOut), r.ID)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, roomNotAvailable("Không còn phòng %s trống cho khoảng thời gian mới", r.RoomType)
		}
	}

	if err := s.reservations.Update(ctx, r); err != nil {
		return nil, wrapRepoError(err, errors.ErrReservationNotFound, fmt.Sprintf("đặt phòng %d", id))
	}
	s.logger.Info("Đã sửa đặt phòng %d", id)
	return r, nil
}

func (s *BookingService) AssignRoom(ctx context.Context, id uint, number int) (*models.Reservation, error) {
	r, err := s.openReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRoomFor(ctx, r, number); err != nil {
		return nil, err
	}
	r.RoomNumber = &number
	if err := s.reservations.Update(ctx, r); err != nil {
		return nil, wrapRepoError(err, errors.ErrReservationNotFound, fmt.Sprintf("đặt phòng %d", id))
	}
	s.logger.Info("Gán phòng %d cho đặt phòng %d", number, id)
	return r, nil
}

func (s *BookingService) ConfirmReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.transition(ctx, id, func(state models.ReservationState, r *models.Reservation) error {
		return state.Confirm(r)
	})
}

func (s *BookingService) CancelReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	r, err := s.transition(ctx, id, func(state models.ReservationState, r *models.Reservation) error {
		return state.Cancel(r)
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, fmt.Sprintf("Reservation Cancelled: %d", r.ID))
	return r, nil
}

// CheckInReservation đánh dấu đặt phòng COMPLETED khi khách tới nhận phòng
func (s *BookingService) CheckInReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.transition(ctx, id, func(state models.ReservationState, r *models.Reservation) error {
		return state.CheckIn(r)
	})
}

func (s *BookingService) transition(ctx context.Context, id uint, apply func(models.ReservationState, *models.Reservation) error) (*models.Reservation, error) {
	r, err := s.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	from := r.Status
	if err := apply(models.GetReservationState(r.Status), r); err != nil {
		cause := err
		if !r.IsActive() {
			cause = errors.ErrReservationClosed
		}
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), cause)
	}
	if err := s.reservations.Update(ctx, r); err != nil {
		return nil, wrapRepoError(err, errors.ErrReservationNotFound, fmt.Sprintf("đặt phòng %d", id))
	}
	s.logger.Info("Đặt phòng %d: %s -> %s", id, from, r.Status)
	return r, nil
}
