package postgres

import (
	"context"

	"orionhotel/models"

	"gorm.io/gorm"
)

type HousekeepingRepository struct {
	db *gorm.DB
}

func NewHousekeepingRepository(db *gorm.DB) *HousekeepingRepository {
	return &HousekeepingRepository{db: db}
}

func (r *HousekeepingRepository) CreateTask(ctx context.Context, task *models.HousekeepingTask) error {
	return translate(r.db.WithContext(ctx).Create(task).Error)
}

func (r *HousekeepingRepository) FindTask(ctx context.Context, id uint) (*models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (r *HousekeepingRepository) ListTasks(ctx context.Context, status string) ([]models.HousekeepingTask, error) {
	q := r.db.WithContext(ctx).Model(&models.HousekeepingTask{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var tasks []models.HousekeepingTask
	if err := q.Order("created_at DESC, id DESC").Find(&tasks).Error; err != nil {
		return nil, translate(err)
	}
	return tasks, nil
}

func (r *HousekeepingRepository) UpdateTask(ctx context.Context, task *models.HousekeepingTask) error {
	return translate(r.db.WithContext(ctx).Save(task).Error)
}

func (r *HousekeepingRepository) CreateRequest(ctx context.Context, req *models.MaintenanceRequest) error {
	return translate(r.db.WithContext(ctx).Create(req).Error)
}

func (r *HousekeepingRepository) FindRequest(ctx context.Context, id uint) (*models.MaintenanceRequest, error) {
	var req models.MaintenanceRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, translate(err)
	}
	return &req, nil
}

func (r *HousekeepingRepository) ListRequests(ctx context.Context, status string) ([]models.MaintenanceRequest, error) {
	q := r.db.WithContext(ctx).Model(&models.MaintenanceRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var reqs []models.MaintenanceRequest
	if err := q.Order("created_at DESC, id DESC").Find(&reqs).Error; err != nil {
		return nil, translate(err)
	}
	return reqs, nil
}

func (r *HousekeepingRepository) UpdateRequest(ctx context.Context, req *models.MaintenanceRequest) error {
	return translate(r.db.WithContext(ctx).Save(req).Error)
}
