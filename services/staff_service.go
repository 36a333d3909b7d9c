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

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

// GoogleVerifier kiểm tra Google ID token và trả về email đã xác thực
type GoogleVerifier func(ctx context.Context, idToken, audience string) (string, error)

type AuthResult struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Staff     *models.Staff `json:"staff"`
}

type StaffService struct {
	repo           repository.StaffRepository
	settings       *SettingsService
	tokens         *TokenService
	googleClientID string
	verifyGoogle   GoogleVerifier
	logger         logger.Logger
	clock          Clock
}

type StaffServiceOptions struct {
	Repo           repository.StaffRepository
	Settings       *SettingsService
	Tokens         *TokenService
	GoogleClientID string
	GoogleVerifier GoogleVerifier
	Logger         logger.Logger
	Clock          Clock
}

func NewStaffService(opts StaffServiceOptions) *StaffService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.GoogleVerifier == nil {
		opts.GoogleVerifier = verifyGoogleIDToken
	}
	return &StaffService{
		repo:           opts.Repo,
		settings:       opts.Settings,
		tokens:         opts.Tokens,
		googleClientID: opts.GoogleClientID,
		verifyGoogle:   opts.GoogleVerifier,
		logger:         opts.Logger,
		clock:          opts.Clock,
	}
}

func verifyGoogleIDToken(ctx context.Context, token, clientID string) (string, error) {
	payload, err := idtoken.Validate(ctx, token, clientID)
	if err != nil {
		return "", err
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("google token does not carry an email")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return "", fmt.Errorf("google email %s is not verified", email)
	}
	return email, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func invalidCredentials() error {
	return errors.NewAppError(errors.ErrCodeUnauthorized, "Tên đăng nhập hoặc mật khẩu không đúng", errors.ErrInvalidPassword)
}

// Authenticate đăng nhập bằng username/password, chỉ nhân viên ACTIVE
func (s *StaffService) Authenticate(ctx context.Context, username, password string) (*AuthResult, error) {
	staff, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, invalidCredentials()
	}
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrStaffNotFound, "nhân viên")
	}
	if !CheckPassword(staff.PasswordHash, password) {
		s.logger.Info("Đăng nhập thất bại: %s", username)
		return nil, invalidCredentials()
	}
	return s.login(ctx, staff)
}

// AuthenticateGoogle đăng nhập bằng Google ID token, khớp theo email nhân viên
func (s *StaffService) AuthenticateGoogle(ctx context.Context, idToken string) (*AuthResult, error) {
	if s.googleClientID == "" {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, "Chưa cấu hình đăng nhập Google", nil)
	}
	email, err := s.verifyGoogle(ctx, idToken, s.googleClientID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Google ID token không hợp lệ", err)
	}
	staff, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Không có nhân viên nào dùng email này", errors.ErrStaffNotFound)
	}
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrStaffNotFound, "nhân viên")
	}
	return s.login(ctx, staff)
}

func (s *StaffService) login(ctx context.Context, staff *models.Staff) (*AuthResult, error) {
	if !staff.IsActive() {
		return nil, errors.NewAppError(errors.ErrCodeUserInactive, "Tài khoản đã bị khóa", errors.ErrUnauthorized)
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	staff.LastLogin = &now
	if err := s.repo.Update(ctx, staff); err != nil {
		return nil, wrapRepoError(err, errors.ErrStaffNotFound, "nhân viên")
	}

	token, expiresAt, err := s.tokens.Issue(staff, time.Duration(settings.SessionTimeoutMinutes)*time.Minute)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tạo được token", err)
	}
	s.logger.Info("✅ %s (%s) đăng nhập", staff.Username, staff.Role)
	return &AuthResult{Token: token, ExpiresAt: expiresAt, Staff: staff}, nil
}

// Logout thu hồi token hiện tại
func (s *StaffService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(ctx, token)
	if err != nil {
		return err
	}
	if err := s.tokens.Revoke(ctx, claims); err != nil {
		return errors.NewAppError(errors.ErrCodeExternalService, "Không thu hồi được token", err)
	}
	return nil
}

func (s *StaffService) HasPermission(role, required string) bool {
	return models.HasPermission(role, required)
}

func (s *StaffService) passwordMinLength(ctx context.Context) (int, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return 0, err
	}
	return settings.PasswordMinLength, nil
}

func (s *StaffService) AddStaff(ctx context.Context, staff *models.Staff, password string) error {
	if staff.Status == "" {
		staff.Status = constants.StaffStatusActive
	}
	if err := validator.ValidateStaff(staff); err != nil {
		return err
	}
	minLen, err := s.passwordMinLength(ctx)
	if err != nil {
		return err
	}
	if err := validator.ValidatePassword(password, minLen); err != nil {
		return err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Không mã hóa được mật khẩu", err)
	}
	staff.PasswordHash = hash

	if err := s.repo.Create(ctx, staff); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return errors.NewAppError(errors.ErrCodeUserExists, fmt.Sprintf("Tên đăng nhập %s đã tồn tại", staff.Username), errors.ErrStaffAlreadyExists)
		}
		return wrapRepoError(err, nil, "nhân viên")
	}
	s.logger.Info("Đã thêm nhân viên %s (%s)", staff.Username, staff.Role)
	return nil
}

func (s *StaffService) GetStaff(ctx context.Context, id uint) (*models.Staff, error) {
	staff, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrStaffNotFound, fmt.Sprintf("nhân viên %d", id))
	}
	return staff, nil
}

// UpdateStaff sửa họ tên, role, email và số điện thoại
func (s *StaffService) UpdateStaff(ctx context.Context, id uint, changes *models.Staff) (*models.Staff, error) {
	staff, err := s.GetStaff(ctx, id)
	if err != nil {
		return nil, err
	}
	staff.FullName = changes.FullName
	staff.Email = changes.Email
	staff.Phone = changes.Phone
	if changes.Role != "" {
		staff.Role = changes.Role
	}
	if err := validator.ValidateStaff(staff); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, staff); err != nil {
		return nil, wrapRepoError(err, errors.ErrStaffNotFound, fmt.Sprintf("nhân viên %d", id))
	}
	return staff, nil
}

// ChangePassword yêu cầu mật khẩu hiện tại đúng
func (s *StaffService) ChangePassword(ctx context.Context, id uint, current, next string) error {
	staff, err := s.GetStaff(ctx, id)
	if err != nil {
		return err
	}
	if !CheckPassword(staff.PasswordHash, current) {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu hiện tại không đúng", errors.ErrInvalidPassword)
	}
	minLen, err := s.passwordMinLength(ctx)
	if err != nil {
		return err
	}
	if err := validator.ValidatePassword(next, minLen); err != nil {
		return err
	}
	hash, err := HashPassword(next)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Không mã hóa được mật khẩu", err)
	}
	staff.PasswordHash = hash
	if err := s.repo.Update(ctx, staff); err != nil {
		return wrapRepoError(err, errors.ErrStaffNotFound, fmt.Sprintf("nhân viên %d", id))
	}
	return nil
}

func (s *StaffService) Deactivate(ctx context.Context, id uint) error {
	staff, err := s.GetStaff(ctx, id)
	if err != nil {
		return err
	}
	staff.Status = constants.StaffStatusInactive
	if err := s.repo.Update(ctx, staff); err != nil {
		return wrapRepoError(err, errors.ErrStaffNotFound, fmt.Sprintf("nhân viên %d", id))
	}
	s.logger.Info("Đã khóa tài khoản %s", staff.Username)
	return nil
}

func (s *StaffService) ListStaff(ctx context.Context, activeOnly bool) ([]models.Staff, error) {
	list, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, wrapRepoError(err, nil, "nhân viên")
	}
	return list, nil
}

// RoleCounts đếm nhân viên ACTIVE theo role, role không có ai là 0
func (s *StaffService) RoleCounts(ctx context.Context) (map[string]int64, error) {
	counts, err := s.repo.CountActiveByRole(ctx)
	if err != nil {
		return nil, wrapRepoError(err, nil, "nhân viên")
	}
	out := make(map[string]int64, len(constants.StaffRoles))
	for _, role := range constants.StaffRoles {
		out[role] = counts[role]
	}
	return out, nil
}
