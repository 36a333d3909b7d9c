package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"

	playground "github.com/go-playground/validator/v10"
)

var (
	validate   = playground.New()
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,19}$`)
)

// ValidateStruct chạy các tag `validate` và gom lỗi theo field
func ValidateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}
	var parts []string
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return errors.NewAppError(errors.ErrCodeValidation, strings.Join(parts, ", "), errors.ErrInvalidInput)
}

// ValidateGuest: họ tên và số điện thoại bắt buộc, email kiểm tra khi có
func ValidateGuest(g *models.Guest) error {
	g.FullName = strings.TrimSpace(g.FullName)
	g.Phone = strings.TrimSpace(g.Phone)
	g.Email = strings.TrimSpace(g.Email)

	if g.FullName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Họ tên không được để trống", errors.ErrMissingRequired)
	}
	if g.Phone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", errors.ErrMissingRequired)
	}
	if !isValidPhone(g.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", errors.ErrInvalidFormat)
	}
	if g.Email != "" && !isValidEmail(g.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", errors.ErrInvalidFormat)
	}
	return nil
}

// ValidateStaff kiểm tra thông tin nhân viên, không kiểm tra mật khẩu
func ValidateStaff(s *models.Staff) error {
	s.Username = strings.TrimSpace(s.Username)
	if s.Username == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên đăng nhập không được để trống", errors.ErrMissingRequired)
	}
	if !constants.IsOneOf(s.Role, constants.StaffRoles) {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", errors.ErrInvalidInput)
	}
	if s.Status != "" && !constants.IsOneOf(s.Status, constants.StaffStatuses) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái nhân viên không hợp lệ", errors.ErrInvalidInput)
	}
	if s.Email != "" && !isValidEmail(s.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", errors.ErrInvalidFormat)
	}
	if s.Phone != "" && !isValidPhone(s.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", errors.ErrInvalidFormat)
	}
	return nil
}

func ValidatePassword(password string, minLength int) error {
	if password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", errors.ErrMissingRequired)
	}
	if len(password) < minLength {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, fmt.Sprintf("Mật khẩu phải có ít nhất %d ký tự", minLength), errors.ErrInvalidInput)
	}
	return nil
}

// ValidateStay kiểm tra khoảng ngày lưu trú: trả phòng phải sau nhận phòng
func ValidateStay(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày nhận và trả phòng là bắt buộc", errors.ErrMissingRequired)
	}
	if models.DaysBetween(checkIn, checkOut) <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng phải sau ngày nhận phòng", errors.ErrInvalidInput)
	}
	return nil
}

func ValidateReservation(r *models.Reservation) error {
	r.GuestName = strings.TrimSpace(r.GuestName)
	if r.GuestName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", errors.ErrMissingRequired)
	}
	if r.Email != "" && !isValidEmail(r.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", errors.ErrInvalidFormat)
	}
	if !constants.IsOneOf(r.RoomType, constants.RoomTypes) {
		return errors.NewAppError(errors.ErrCodeValidation, "Loại phòng không hợp lệ", errors.ErrInvalidInput)
	}
	if r.NumGuests < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số khách phải từ 1 trở lên", errors.ErrInvalidInput)
	}
	return ValidateStay(time.Time(r.CheckIn), time.Time(r.CheckOut))
}

// ValidateAmount: số tiền hoặc số lượng phải dương
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", errors.ErrInvalidAmount)
	}
	return nil
}

func ValidateInventoryItem(item *models.InventoryItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên vật tư không được để trống", errors.ErrMissingRequired)
	}
	if item.Quantity < 0 || item.MinLevel < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số lượng không được âm", errors.ErrInvalidAmount)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	return validate.Var(email, "email") == nil
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
