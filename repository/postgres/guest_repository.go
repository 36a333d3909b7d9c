package postgres

import (
	"context"
	"strings"

	"orionhotel/models"

	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	return translate(r.db.WithContext(ctx).Create(guest).Error)
}

func (r *GuestRepository) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.WithContext(ctx).First(&guest, id).Error; err != nil {
		return nil, translate(err)
	}
	return &guest, nil
}

func (r *GuestRepository) List(ctx context.Context, status string) ([]models.Guest, error) {
	q := r.db.WithContext(ctx).Model(&models.Guest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var guests []models.Guest
	if err := q.Order("id").Find(&guests).Error; err != nil {
		return nil, translate(err)
	}
	return guests, nil
}

// Search khớp một phần tên (không phân biệt hoa thường) hoặc số điện thoại
func (r *GuestRepository) Search(ctx context.Context, query string) ([]models.Guest, error) {
	name := "%" + strings.ToLower(query) + "%"
	phone := "%" + query + "%"
	var guests []models.Guest
	err := r.db.WithContext(ctx).
		Where("LOWER(full_name) LIKE ? OR phone LIKE ?", name, phone).
		Order("id").
		Find(&guests).Error
	if err != nil {
		return nil, translate(err)
	}
	return guests, nil
}

func (r *GuestRepository) Update(ctx context.Context, guest *models.Guest) error {
	return translate(r.db.WithContext(ctx).Save(guest).Error)
}
