package services

import (
	"context"

	"orionhotel/constants"
	"orionhotel/models"
	"orionhotel/repository"
	"orionhotel/services/logger"

	"github.com/lib/pq"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

var defaultRooms = []models.Room{
	{RoomNumber: 101, RoomType: constants.RoomTypeSingle, Price: 100, Floor: 1, Amenities: pq.StringArray{"WiFi", "TV"}},
	{RoomNumber: 102, RoomType: constants.RoomTypeSingle, Price: 100, Floor: 1, Amenities: pq.StringArray{"WiFi", "TV"}},
	{RoomNumber: 103, RoomType: constants.RoomTypeDouble, Price: 150, Floor: 1, Amenities: pq.StringArray{"WiFi", "TV", "Minibar"}},
	{RoomNumber: 104, RoomType: constants.RoomTypeDouble, Price: 150, Floor: 1, Amenities: pq.StringArray{"WiFi", "TV", "Minibar"}},
	{RoomNumber: 105, RoomType: constants.RoomTypeSuite, Price: 300, Floor: 1, Amenities: pq.StringArray{"WiFi", "TV", "Minibar", "Jacuzzi"}},
}

// SeedDefaults ghi cấu hình mặc định, tài khoản admin và các phòng mẫu khi bảng còn trống
func SeedDefaults(ctx context.Context, store *repository.Store, log logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}

	current, err := store.Settings.All(ctx)
	if err != nil {
		return wrapRepoError(err, nil, "cấu hình")
	}
	defaults := models.DefaultSystemSettings()
	missing := map[string]string{}
	for k, v := range defaults.ToMap() {
		if _, ok := current[k]; !ok {
			missing[k] = v
		}
	}
	if len(missing) > 0 {
		if err := store.Settings.Upsert(ctx, missing); err != nil {
			return wrapRepoError(err, nil, "cấu hình")
		}
		log.Info("Đã ghi %d cấu hình mặc định", len(missing))
	}

	staff, err := store.Staff.List(ctx, false)
	if err != nil {
		return wrapRepoError(err, nil, "nhân viên")
	}
	if len(staff) == 0 {
		hash, err := HashPassword(defaultAdminPassword)
		if err != nil {
			return err
		}
		admin := &models.Staff{
			Username:     defaultAdminUsername,
			PasswordHash: hash,
			FullName:     "System Administrator",
			Role:         constants.RoleAdmin,
			Status:       constants.StaffStatusActive,
		}
		if err := store.Staff.Create(ctx, admin); err != nil {
			return wrapRepoError(err, nil, "nhân viên")
		}
		log.Info("Đã tạo tài khoản %s mặc định, hãy đổi mật khẩu", defaultAdminUsername)
	}

	rooms, err := store.Rooms.List(ctx, repository.RoomFilter{})
	if err != nil {
		return wrapRepoError(err, nil, "phòng")
	}
	if len(rooms) == 0 {
		for _, r := range defaultRooms {
			room := r
			room.Status = constants.RoomStatusAvailable
			if err := store.Rooms.Create(ctx, &room); err != nil {
				return wrapRepoError(err, nil, "phòng")
			}
		}
		log.Info("Đã tạo %d phòng mẫu", len(defaultRooms))
	}
	return nil
}
