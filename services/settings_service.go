package services

import (
	"context"
	"strconv"
	"time"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"
	"orionhotel/repository"
	"orionhotel/services/logger"

	"github.com/redis/go-redis/v9"
)

const (
	settingsCacheKey = "settings:system"
	settingsCacheTTL = 10 * time.Minute

	// DefaultTaxRate được dùng khi bảng cấu hình chưa có dòng tax_rate
	DefaultTaxRate = 0.125
	// DefaultDailyRate khi cả cấu hình lẫn phòng đều không có giá
	DefaultDailyRate = 100.0
)

type SettingsService struct {
	repo   repository.SettingsRepository
	rdb    *redis.Client
	logger logger.Logger
}

type SettingsServiceOptions struct {
	Repo   repository.SettingsRepository
	Redis  *redis.Client
	Logger logger.Logger
}

func NewSettingsService(opts SettingsServiceOptions) *SettingsService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &SettingsService{repo: opts.Repo, rdb: opts.Redis, logger: opts.Logger}
}

// values đọc bảng key/value, ưu tiên cache Redis
func (s *SettingsService) values(ctx context.Context) (map[string]string, error) {
	var cached map[string]string
	found, err := GetFromRedis(ctx, s.rdb, settingsCacheKey, &cached)
	if err != nil {
		s.logger.Error("Lỗi đọc cache cấu hình: %v", err)
	}
	if found {
		return cached, nil
	}

	values, err := s.repo.All(ctx)
	if err != nil {
		return nil, wrapRepoError(err, nil, "cấu hình")
	}
	if err := SetToRedis(ctx, s.rdb, settingsCacheKey, values, settingsCacheTTL); err != nil {
		s.logger.Error("Lỗi lưu cache cấu hình: %v", err)
	}
	return values, nil
}

func (s *SettingsService) Get(ctx context.Context) (*models.SystemSettings, error) {
	values, err := s.values(ctx)
	if err != nil {
		return nil, err
	}
	settings := models.SettingsFromMap(values)
	return &settings, nil
}

func (s *SettingsService) Update(ctx context.Context, settings models.SystemSettings) error {
	if err := validateSettings(&settings); err != nil {
		return err
	}
	if err := s.repo.Upsert(ctx, settings.ToMap()); err != nil {
		return wrapRepoError(err, nil, "cấu hình")
	}
	if err := DeleteFromRedis(ctx, s.rdb, settingsCacheKey); err != nil {
		s.logger.Error("Lỗi xóa cache cấu hình: %v", err)
	}
	s.logger.Info("Đã cập nhật cấu hình hệ thống")
	return nil
}

// TaxRate trả về thuế dạng tỉ lệ, DefaultTaxRate khi chưa cấu hình
func (s *SettingsService) TaxRate(ctx context.Context) (float64, error) {
	values, err := s.values(ctx)
	if err != nil {
		return 0, err
	}
	raw, ok := values[models.SettingTaxRate]
	if !ok {
		return DefaultTaxRate, nil
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return DefaultTaxRate, nil
	}
	parsed := models.SettingsFromMap(map[string]string{models.SettingTaxRate: raw})
	return parsed.TaxRate, nil
}

// DailyRate: giá cấu hình theo loại phòng, sau đó tới giá của phòng, cuối cùng là DefaultDailyRate
func (s *SettingsService) DailyRate(ctx context.Context, room *models.Room) (float64, error) {
	if room == nil {
		return DefaultDailyRate, nil
	}
	settings, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	if price, ok := settings.RoomPrice(room.RoomType); ok {
		return price, nil
	}
	if room.Price > 0 {
		return room.Price, nil
	}
	return DefaultDailyRate, nil
}

func validateSettings(s *models.SystemSettings) error {
	if s.HotelName == "" {
		return validationError("Tên khách sạn là bắt buộc")
	}
	if s.TaxRate < 0 || s.TaxRate > 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Thuế phải nằm trong khoảng 0-100%", errors.ErrInvalidInput)
	}
	if s.ServiceChargeRate < 0 || s.ServiceChargeRate > 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Phí dịch vụ phải nằm trong khoảng 0-100%", errors.ErrInvalidInput)
	}
	if s.PasswordMinLength < 4 {
		return validationError("Độ dài mật khẩu tối thiểu phải từ 4 ký tự")
	}
	if s.SessionTimeoutMinutes <= 0 {
		return validationError("Thời gian phiên phải lớn hơn 0")
	}
	for roomType, price := range s.RoomPrices {
		if !constants.IsOneOf(roomType, constants.RoomTypes) {
			return validationError("Loại phòng không hợp lệ: " + roomType)
		}
		if price < 0 {
			return validationError("Giá phòng không được âm")
		}
	}
	if _, err := time.Parse("15:04", s.CheckoutTime); err != nil {
		return validationError("Giờ trả phòng phải có dạng HH:MM")
	}
	return nil
}
