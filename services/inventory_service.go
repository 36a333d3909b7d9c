package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"
	"orionhotel/repository"
	"orionhotel/services/logger"
	"orionhotel/validator"
)

const defaultMostUsedLimit = 5

type InventoryService struct {
	repo     repository.InventoryRepository
	settings *SettingsService
	notifier Notifier
	logger   logger.Logger
	clock    Clock
}

type InventoryServiceOptions struct {
	Repo     repository.InventoryRepository
	Settings *SettingsService
	Notifier Notifier
	Logger   logger.Logger
	Clock    Clock
}

func NewInventoryService(opts InventoryServiceOptions) *InventoryService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &InventoryService{
		repo:     opts.Repo,
		settings: opts.Settings,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		clock:    opts.Clock,
	}
}

func (s *InventoryService) AddItem(ctx context.Context, item *models.InventoryItem) error {
	if err := validator.ValidateInventoryItem(item); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return wrapRepoError(err, nil, "vật tư")
	}
	s.logger.Info("Đã thêm vật tư %d: %s", item.ItemID, item.Name)
	return nil
}

func (s *InventoryService) ListItems(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, wrapRepoError(err, nil, "vật tư")
	}
	return items, nil
}

func (s *InventoryService) GetItem(ctx context.Context, id uint) (*models.InventoryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrItemNotFound, fmt.Sprintf("vật tư %d", id))
	}
	return item, nil
}

// UpdateItem sửa thông tin mô tả. Số lượng chỉ đổi qua Consume/Restock để luôn có log.
func (s *InventoryService) UpdateItem(ctx context.Context, id uint, changes *models.InventoryItem) (*models.InventoryItem, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Name = changes.Name
	item.Category = changes.Category
	item.MinLevel = changes.MinLevel
	item.Unit = changes.Unit
	if err := validator.ValidateInventoryItem(item); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, wrapRepoError(err, errors.ErrItemNotFound, fmt.Sprintf("vật tư %d", id))
	}
	return item, nil
}

// Consume trừ kho, ghi log CONSUME và báo MANAGER khi chạm ngưỡng tối thiểu
func (s *InventoryService) Consume(ctx context.Context, id uint, amount int) (*models.InventoryItem, error) {
	if amount <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số lượng phải lớn hơn 0", errors.ErrInvalidAmount)
	}
	item, err := s.repo.Consume(ctx, id, amount, s.clock.now())
	if errors.Is(err, repository.ErrConflict) {
		return nil, errors.NewAppError(errors.ErrCodeInsufficientStock, fmt.Sprintf("Vật tư %d không đủ số lượng", id), errors.ErrInsufficientStock)
	}
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrItemNotFound, fmt.Sprintf("vật tư %d", id))
	}

	s.logger.Info("Xuất kho %d x %s, còn %d", amount, item.Name, item.Quantity)
	if item.IsLowStock() {
		s.alertLowStock(ctx, "Low Stock Alert: "+item.Name)
	}
	return item, nil
}

func (s *InventoryService) Restock(ctx context.Context, id uint, amount int) (*models.InventoryItem, error) {
	if amount <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số lượng phải lớn hơn 0", errors.ErrInvalidAmount)
	}
	item, err := s.repo.Restock(ctx, id, amount, s.clock.now())
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrItemNotFound, fmt.Sprintf("vật tư %d", id))
	}
	s.logger.Info("Nhập kho %d x %s, còn %d", amount, item.Name, item.Quantity)
	return item, nil
}

func (s *InventoryService) lowStockEnabled(ctx context.Context) bool {
	if s.settings == nil {
		return true
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		s.logger.Error("Lỗi đọc cấu hình thông báo: %v", err)
		return true
	}
	return settings.NotifyLowStock
}

func (s *InventoryService) alertLowStock(ctx context.Context, message string) {
	if s.notifier == nil || !s.lowStockEnabled(ctx) {
		return
	}
	if _, err := s.notifier.Send(ctx, message, constants.RoleManager); err != nil {
		s.logger.Error("❌ Lỗi gửi cảnh báo tồn kho: %v", err)
	}
}

func (s *InventoryService) LowStockItems(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.repo.LowStock(ctx)
	if err != nil {
		return nil, wrapRepoError(err, nil, "vật tư")
	}
	return items, nil
}

// SendLowStockDigest gửi một thông báo tổng hợp các mặt hàng sắp hết. Trả về số mặt hàng.
func (s *InventoryService) SendLowStockDigest(ctx context.Context) (int, error) {
	if !s.lowStockEnabled(ctx) {
		return 0, nil
	}
	items, err := s.LowStockItems(ctx)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 || s.notifier == nil {
		return len(items), nil
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, fmt.Sprintf("%s (%d/%d)", it.Name, it.Quantity, it.MinLevel))
	}
	if _, err := s.notifier.Send(ctx, "Low Stock Alert: "+strings.Join(names, ", "), constants.RoleManager); err != nil {
		return 0, err
	}
	return len(items), nil
}

// ConsumptionOn trả các lần xuất kho trong ngày
func (s *InventoryService) ConsumptionOn(ctx context.Context, day time.Time) ([]models.InventoryLog, error) {
	from := time.Time(models.Day(day))
	return s.logs(ctx, constants.InventoryActionConsume, from, from.AddDate(0, 0, 1))
}

func (s *InventoryService) RestocksIn(ctx context.Context, year int, month time.Month) ([]models.InventoryLog, error) {
	if month < time.January || month > time.December {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Tháng không hợp lệ", errors.ErrInvalidInput)
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return s.logs(ctx, constants.InventoryActionRestock, from, from.AddDate(0, 1, 0))
}

func (s *InventoryService) logs(ctx context.Context, action string, from, to time.Time) ([]models.InventoryLog, error) {
	logs, err := s.repo.Logs(ctx, action, from, to)
	if err != nil {
		return nil, wrapRepoError(err, nil, "nhật ký kho")
	}
	return logs, nil
}

func (s *InventoryService) MostUsedItems(ctx context.Context, limit int) ([]models.ItemUsage, error) {
	if limit <= 0 {
		limit = defaultMostUsedLimit
	}
	usage, err := s.repo.MostUsed(ctx, limit)
	if err != nil {
		return nil, wrapRepoError(err, nil, "nhật ký kho")
	}
	return usage, nil
}
