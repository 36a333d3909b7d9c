package postgres

import (
	"context"
	"time"

	"orionhotel/constants"
	"orionhotel/models"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *models.Reservation) error {
	return translate(r.db.WithContext(ctx).Create(res).Error)
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ReservationRepository) List(ctx context.Context, status string) ([]models.Reservation, error) {
	q := r.db.WithContext(ctx).Model(&models.Reservation{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []models.Reservation
	if err := q.Order("check_in, id").Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *ReservationRepository) Upcoming(ctx context.Context, after time.Time) ([]models.Reservation, error) {
	var list []models.Reservation
	err := r.db.WithContext(ctx).
		Where("status <> ? AND check_in > ?", constants.ReservationStatusCancelled, models.Day(after)).
		Order("check_in, id").
		Find(&list).Error
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *ReservationRepository) CountOverlapping(ctx context.Context, roomNumber int, in, out time.Time, excludeID uint) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("room_number = ? AND status NOT IN ?", roomNumber,
			[]string{constants.ReservationStatusCancelled, constants.ReservationStatusCompleted}).
		Where("NOT (check_out <= ? OR check_in >= ?)", models.Day(in), models.Day(out))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *models.Reservation) error {
	return translate(r.db.WithContext(ctx).Save(res).Error)
}
