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

	"github.com/redis/go-redis/v9"
)

const (
	roomCachePattern = "rooms:*"
	roomCacheTTL     = 5 * time.Minute
)

type RoomService struct {
	rooms        repository.RoomRepository
	housekeeping repository.HousekeepingRepository
	rdb          *redis.Client
	logger       logger.Logger
}

type RoomServiceOptions struct {
	Rooms        repository.RoomRepository
	Housekeeping repository.HousekeepingRepository
	Redis        *redis.Client
	Logger       logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &RoomService{
		rooms:        opts.Rooms,
		housekeeping: opts.Housekeeping,
		rdb:          opts.Redis,
		logger:       opts.Logger,
	}
}

func roomListKey(filter repository.RoomFilter) string {
	return fmt.Sprintf("rooms:list:%s:%s", filter.Status, filter.RoomType)
}

func (s *RoomService) invalidate(ctx context.Context) {
	if err := DeletePattern(ctx, s.rdb, roomCachePattern); err != nil {
		s.logger.Error("Lỗi xóa cache phòng: %v", err)
	}
}

func (s *RoomService) AddRoom(ctx context.Context, room *models.Room) error {
	if room.RoomNumber <= 0 {
		return validationError("Số phòng phải lớn hơn 0")
	}
	if room.Status == "" {
		room.Status = constants.RoomStatusAvailable
	}
	if err := room.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), errors.ErrInvalidInput)
	}
	if err := room.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, err.Error(), errors.ErrInvalidInput)
	}
	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá phòng không được âm", errors.ErrInvalidAmount)
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return errors.NewAppError(errors.ErrCodeDBDuplicate, fmt.Sprintf("Phòng %d đã tồn tại", room.RoomNumber), errors.ErrRoomExists)
		}
		return wrapRepoError(err, errors.ErrRoomNotFound, "phòng")
	}
	s.invalidate(ctx)
	s.logger.Info("Đã thêm phòng %d (%s)", room.RoomNumber, room.RoomType)
	return nil
}

func (s *RoomService) ListRooms(ctx context.Context, filter repository.RoomFilter) ([]models.Room, error) {
	key := roomListKey(filter)
	var rooms []models.Room
	found, err := GetFromRedis(ctx, s.rdb, key, &rooms)
	if err != nil {
		s.logger.Error("Lỗi đọc cache phòng: %v", err)
	}
	if found {
		return rooms, nil
	}

	rooms, err = s.rooms.List(ctx, filter)
	if err != nil {
		return nil, wrapRepoError(err, nil, "phòng")
	}
	if err := SetToRedis(ctx, s.rdb, key, rooms, roomCacheTTL); err != nil {
		s.logger.Error("Lỗi lưu cache phòng: %v", err)
	}
	return rooms, nil
}

func (s *RoomService) ListAvailableRooms(ctx context.Context) ([]models.Room, error) {
	return s.ListRooms(ctx, repository.RoomFilter{Status: constants.RoomStatusAvailable})
}

func (s *RoomService) GetRoom(ctx context.Context, number int) (*models.Room, error) {
	room, err := s.rooms.FindByNumber(ctx, number)
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrRoomNotFound, fmt.Sprintf("phòng %d", number))
	}
	return room, nil
}

// UpdateRoom sửa loại, giá, tiện nghi và tầng. Trạng thái đổi qua SetStatus.
func (s *RoomService) UpdateRoom(ctx context.Context, room *models.Room) error {
	if err := room.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), errors.ErrInvalidInput)
	}
	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá phòng không được âm", errors.ErrInvalidAmount)
	}
	if err := s.rooms.Update(ctx, room); err != nil {
		return wrapRepoError(err, errors.ErrRoomNotFound, fmt.Sprintf("phòng %d", room.RoomNumber))
	}
	s.invalidate(ctx)
	return nil
}

// BookRoom chỉ thành công khi phòng đang AVAILABLE
func (s *RoomService) BookRoom(ctx context.Context, number int) error {
	err := s.rooms.UpdateStatusIf(ctx, number, constants.RoomStatusAvailable, constants.RoomStatusOccupied)
	if errors.Is(err, repository.ErrConflict) {
		return errors.NewAppError(errors.ErrCodeRoomNotAvailable, fmt.Sprintf("Phòng %d không sẵn sàng", number), errors.ErrRoomNotAvailable)
	}
	if err != nil {
		return wrapRepoError(err, errors.ErrRoomNotFound, fmt.Sprintf("phòng %d", number))
	}
	s.invalidate(ctx)
	return nil
}

// CheckoutRoom chuyển phòng sang DIRTY và tạo việc dọn phòng
func (s *RoomService) CheckoutRoom(ctx context.Context, number int) error {
	if err := s.setStatus(ctx, number, constants.RoomStatusDirty); err != nil {
		return err
	}
	return s.queueCleaning(ctx, number)
}

func (s *RoomService) queueCleaning(ctx context.Context, number int) error {
	task := &models.HousekeepingTask{
		RoomNumber: number,
		TaskType:   constants.TaskTypeCleaning,
		Status:     constants.TaskStatusPending,
	}
	if err := s.housekeeping.CreateTask(ctx, task); err != nil {
		return wrapRepoError(err, nil, "công việc dọn phòng")
	}
	s.logger.Info("Đã tạo việc dọn phòng %d", number)
	return nil
}

func (s *RoomService) MarkCleaned(ctx context.Context, number int) error {
	return s.setStatus(ctx, number, constants.RoomStatusAvailable)
}

func (s *RoomService) MarkMaintenance(ctx context.Context, number int) error {
	return s.setStatus(ctx, number, constants.RoomStatusMaintenance)
}

// SetStatus đổi trạng thái thủ công
func (s *RoomService) SetStatus(ctx context.Context, number int, status string) error {
	if !constants.IsOneOf(status, constants.RoomStatuses) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, fmt.Sprintf("Trạng thái phòng không hợp lệ: %s", status), errors.ErrInvalidInput)
	}
	return s.setStatus(ctx, number, status)
}

func (s *RoomService) setStatus(ctx context.Context, number int, status string) error {
	if err := s.rooms.UpdateStatus(ctx, number, status); err != nil {
		return wrapRepoError(err, errors.ErrRoomNotFound, fmt.Sprintf("phòng %d", number))
	}
	s.invalidate(ctx)
	return nil
}

// StatusCounts luôn trả đủ các trạng thái, trạng thái không có phòng nào là 0
func (s *RoomService) StatusCounts(ctx context.Context) (map[string]int64, error) {
	counts, err := s.rooms.CountByStatus(ctx)
	if err != nil {
		return nil, wrapRepoError(err, nil, "phòng")
	}
	out := make(map[string]int64, len(constants.RoomStatuses))
	for _, status := range constants.RoomStatuses {
		out[status] = counts[status]
	}
	return out, nil
}
