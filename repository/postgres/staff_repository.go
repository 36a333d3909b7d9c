package postgres

import (
	"context"

	"orionhotel/constants"
	"orionhotel/models"

	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	return translate(r.db.WithContext(ctx).Create(staff).Error)
}

func (r *StaffRepository) FindByID(ctx context.Context, id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		return nil, translate(err)
	}
	return &staff, nil
}

func (r *StaffRepository) FindByUsername(ctx context.Context, username string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&staff).Error; err != nil {
		return nil, translate(err)
	}
	return &staff, nil
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&staff).Error; err != nil {
		return nil, translate(err)
	}
	return &staff, nil
}

func (r *StaffRepository) List(ctx context.Context, activeOnly bool) ([]models.Staff, error) {
	q := r.db.WithContext(ctx).Model(&models.Staff{})
	if activeOnly {
		q = q.Where("status = ?", constants.StaffStatusActive)
	}
	var staff []models.Staff
	if err := q.Order("id").Find(&staff).Error; err != nil {
		return nil, translate(err)
	}
	return staff, nil
}

func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	return translate(r.db.WithContext(ctx).Save(staff).Error)
}

func (r *StaffRepository) CountActiveByRole(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Role  string
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&models.Staff{}).
		Select("role, count(*) AS count").
		Where("status = ?", constants.StaffStatusActive).
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}
