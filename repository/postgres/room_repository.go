package postgres

import (
	"context"

	"orionhotel/models"
	"orionhotel/repository"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	return translate(r.db.WithContext(ctx).Create(room).Error)
}

func (r *RoomRepository) FindByNumber(ctx context.Context, number int) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).Where("room_number = ?", number).First(&room).Error; err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context, filter repository.RoomFilter) ([]models.Room, error) {
	q := r.db.WithContext(ctx).Model(&models.Room{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.RoomType != "" {
		q = q.Where("room_type = ?", filter.RoomType)
	}
	var rooms []models.Room
	if err := q.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, translate(err)
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	res := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("room_number = ?", room.RoomNumber).
		Updates(map[string]interface{}{
			"room_type": room.RoomType,
			"price":     room.Price,
			"amenities": room.Amenities,
			"floor":     room.Floor,
		})
	return affected(res)
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, number int, status string) error {
	res := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("room_number = ?", number).
		Update("status", status)
	return affected(res)
}

func (r *RoomRepository) UpdateStatusIf(ctx context.Context, number int, from, to string) error {
	res := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("room_number = ? AND status = ?", number, from).
		Update("status", to)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	if _, err := r.FindByNumber(ctx, number); err != nil {
		return err
	}
	return repository.ErrConflict
}

func (r *RoomRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Room{}).
		Select("status, count(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
