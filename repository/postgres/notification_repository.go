package postgres

import (
	"context"

	"orionhotel/constants"
	"orionhotel/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return translate(r.db.WithContext(ctx).Create(n).Error)
}

func (r *NotificationRepository) forRole(ctx context.Context, role string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("(target_role = ? OR target_role = ?)", constants.TargetAll, role)
}

func (r *NotificationRepository) ListForRole(ctx context.Context, role string, unreadOnly bool) ([]models.Notification, error) {
	q := r.forRole(ctx, role)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	var list []models.Notification
	if err := q.Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true)
	return affected(res)
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, role string) error {
	return translate(r.forRole(ctx, role).Update("is_read", true).Error)
}

func (r *NotificationRepository) ClearAll(ctx context.Context, role string) error {
	return translate(r.db.WithContext(ctx).
		Where("(target_role = ? OR target_role = ?)", constants.TargetAll, role).
		Delete(&models.Notification{}).Error)
}
