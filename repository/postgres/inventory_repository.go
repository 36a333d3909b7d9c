package postgres

import (
	"context"
	"time"

	"orionhotel/constants"
	"orionhotel/models"
	"orionhotel/repository"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	return translate(r.db.WithContext(ctx).Create(item).Error)
}

func (r *InventoryRepository) FindByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "item_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).Order("name").Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// Update chỉ ghi các cột mô tả, quantity do Consume/Restock giữ
func (r *InventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	res := r.db.WithContext(ctx).Model(item).
		Select("name", "category", "min_level", "unit", "last_updated").
		Updates(item)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *InventoryRepository) Consume(ctx context.Context, id uint, amount int, at time.Time) (*models.InventoryItem, error) {
	return r.adjust(ctx, id, -amount, constants.InventoryActionConsume, at)
}

func (r *InventoryRepository) Restock(ctx context.Context, id uint, amount int, at time.Time) (*models.InventoryItem, error) {
	return r.adjust(ctx, id, amount, constants.InventoryActionRestock, at)
}

// adjust cộng delta vào tồn kho và ghi log trong một transaction.
// Khi trừ kho, điều kiện quantity >= -delta nằm ngay trong câu UPDATE.
func (r *InventoryRepository) adjust(ctx context.Context, id uint, delta int, action string, at time.Time) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&models.InventoryItem{}).Where("item_id = ?", id)
		if delta < 0 {
			q = q.Where("quantity >= ?", -delta)
		}
		res := q.Updates(map[string]interface{}{
			"quantity":     gorm.Expr("quantity + ?", delta),
			"last_updated": at,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&models.InventoryItem{}).Where("item_id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return repository.ErrNotFound
			}
			return repository.ErrConflict
		}
		if err := tx.First(&item, "item_id = ?", id).Error; err != nil {
			return err
		}
		changed := delta
		if changed < 0 {
			changed = -changed
		}
		return tx.Create(&models.InventoryLog{
			ItemID:          id,
			ItemName:        item.Name,
			ActionType:      action,
			QuantityChanged: changed,
			LogDate:         at,
		}).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *InventoryRepository) LowStock(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).Where("quantity <= min_level").Order("name").Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *InventoryRepository) Logs(ctx context.Context, action string, from, to time.Time) ([]models.InventoryLog, error) {
	var logs []models.InventoryLog
	err := r.db.WithContext(ctx).
		Where("action_type = ? AND log_date >= ? AND log_date < ?", action, from, to).
		Order("log_date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

func (r *InventoryRepository) MostUsed(ctx context.Context, limit int) ([]models.ItemUsage, error) {
	var usage []models.ItemUsage
	err := r.db.WithContext(ctx).Model(&models.InventoryLog{}).
		Select("item_name AS name, COALESCE(SUM(quantity_changed), 0) AS used").
		Where("action_type = ?", constants.InventoryActionConsume).
		Group("item_name").
		Order("used DESC").
		Limit(limit).
		Scan(&usage).Error
	if err != nil {
		return nil, translate(err)
	}
	return usage, nil
}
