package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"
	"orionhotel/repository"
	"orionhotel/services/logger"
	"orionhotel/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const defaultSuggestLimit = 5

type GuestService struct {
	guests  repository.GuestRepository
	rooms   *RoomService
	billing *BillingService
	logger  logger.Logger
	clock   Clock
}

type GuestServiceOptions struct {
	Guests  repository.GuestRepository
	Rooms   *RoomService
	Billing *BillingService
	Logger  logger.Logger
	Clock   Clock
}

func NewGuestService(opts GuestServiceOptions) *GuestService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &GuestService{
		guests:  opts.Guests,
		rooms:   opts.Rooms,
		billing: opts.Billing,
		logger:  opts.Logger,
		clock:   opts.Clock,
	}
}

func (s *GuestService) RegisterGuest(ctx context.Context, guest *models.Guest) error {
	if err := validator.ValidateGuest(guest); err != nil {
		return err
	}
	guest.Status = constants.GuestStatusRegistered
	guest.RoomNumber = nil
	guest.CheckInDate = nil
	guest.CheckOutDate = nil
	if err := s.guests.Create(ctx, guest); err != nil {
		return wrapRepoError(err, nil, "khách")
	}
	s.logger.Info("Đã đăng ký khách %d: %s", guest.ID, guest.FullName)
	return nil
}

func (s *GuestService) ListGuests(ctx context.Context) ([]models.Guest, error) {
	return s.ListByStatus(ctx, "")
}

func (s *GuestService) ListByStatus(ctx context.Context, status string) ([]models.Guest, error) {
	if status != "" && !constants.IsOneOf(status, constants.GuestStatuses) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, fmt.Sprintf("Trạng thái khách không hợp lệ: %s", status), errors.ErrInvalidInput)
	}
	guests, err := s.guests.List(ctx, status)
	if err != nil {
		return nil, wrapRepoError(err, nil, "khách")
	}
	return guests, nil
}

func (s *GuestService) GetGuest(ctx context.Context, id uint) (*models.Guest, error) {
	guest, err := s.guests.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrGuestNotFound, fmt.Sprintf("khách %d", id))
	}
	return guest, nil
}

// UpdateGuest chỉ sửa thông tin liên lạc, trạng thái lưu trú đổi qua CheckIn/CheckOut
func (s *GuestService) UpdateGuest(ctx context.Context, id uint, changes *models.Guest) (*models.Guest, error) {
	guest, err := s.GetGuest(ctx, id)
	if err != nil {
		return nil, err
	}
	guest.FullName = changes.FullName
	guest.Phone = changes.Phone
	guest.Email = changes.Email
	guest.Address = changes.Address
	if changes.NationalID != "" {
		guest.NationalID = changes.NationalID
	}
	if err := validator.ValidateGuest(guest); err != nil {
		return nil, err
	}
	if err := s.guests.Update(ctx, guest); err != nil {
		return nil, wrapRepoError(err, errors.ErrGuestNotFound, fmt.Sprintf("khách %d", id))
	}
	return guest, nil
}

// SearchGuests tìm theo tên (không phân biệt hoa thường) hoặc số điện thoại
func (s *GuestService) SearchGuests(ctx context.Context, query string) ([]models.Guest, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListGuests(ctx)
	}
	guests, err := s.guests.Search(ctx, query)
	if err != nil {
		return nil, wrapRepoError(err, nil, "khách")
	}
	return guests, nil
}

func normalizeName(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(input)))
}

func nameDistance(a, b string) int {
	return levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
}

// SuggestGuests gợi ý khách có tên gần giống, bỏ dấu trước khi so sánh
func (s *GuestService) SuggestGuests(ctx context.Context, query string, limit int) ([]models.Guest, error) {
	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	needle := normalizeName(query)
	if needle == "" {
		return []models.Guest{}, nil
	}
	guests, err := s.guests.List(ctx, "")
	if err != nil {
		return nil, wrapRepoError(err, nil, "khách")
	}

	byName := map[string][]models.Guest{}
	var names []string
	for _, g := range guests {
		key := normalizeName(g.FullName)
		if _, ok := byName[key]; !ok {
			names = append(names, key)
		}
		byName[key] = append(byName[key], g)
	}
	if len(names) == 0 {
		return []models.Guest{}, nil
	}

	cm := closestmatch.New(names, []int{2, 3})
	candidates := cm.ClosestN(needle, limit*2)
	// closestmatch bỏ sót tên rất ngắn, bổ sung các tên chứa chuỗi tìm kiếm
	for _, name := range names {
		if strings.Contains(name, needle) {
			candidates = append(candidates, name)
		}
	}

	seen := map[string]bool{}
	var ranked []string
	for _, name := range candidates {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		ranked = append(ranked, name)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return nameDistance(needle, ranked[i]) < nameDistance(needle, ranked[j])
	})

	out := []models.Guest{}
	for _, name := range ranked {
		for _, g := range byName[name] {
			if len(out) == limit {
				return out, nil
			}
			out = append(out, g)
		}
	}
	return out, nil
}

// CheckIn giữ phòng cho khách rồi mở hóa đơn. Phòng được trả lại nếu cập nhật khách thất bại.
func (s *GuestService) CheckIn(ctx context.Context, guestID uint, roomNumber int) (*models.Guest, error) {
	guest, err := s.GetGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if guest.Status == constants.GuestStatusCheckedIn {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, "Khách đã nhận phòng", errors.ErrGuestAlreadyInRoom)
	}
	if err := s.rooms.BookRoom(ctx, roomNumber); err != nil {
		return nil, err
	}

	number := roomNumber
	guest.Status = constants.GuestStatusCheckedIn
	guest.RoomNumber = &number
	guest.CheckInDate = models.DayPtr(s.clock.now())
	guest.CheckOutDate = nil
	if err := s.guests.Update(ctx, guest); err != nil {
		if rerr := s.rooms.MarkCleaned(ctx, roomNumber); rerr != nil {
			s.logger.Error("❌ Không trả lại được phòng %d: %v", roomNumber, rerr)
		}
		return nil, wrapRepoError(err, errors.ErrGuestNotFound, fmt.Sprintf("khách %d", guestID))
	}

	if _, err := s.billing.billGuest(ctx, guest); err != nil {
		return nil, err
	}
	s.logger.Info("✅ Khách %d nhận phòng %d", guest.ID, roomNumber)
	return guest, nil
}

// CheckOut chốt hóa đơn theo số đêm thực tế, trả phòng (DIRTY + việc dọn phòng) rồi bỏ số phòng của khách.
// Hóa đơn lỗi thì phòng chưa bị đụng tới; lưu khách lỗi thì phòng được trả về OCCUPIED.
func (s *GuestService) CheckOut(ctx context.Context, guestID uint) (*models.Guest, *models.Bill, error) {
	guest, err := s.GetGuest(ctx, guestID)
	if err != nil {
		return nil, nil, err
	}
	if guest.Status != constants.GuestStatusCheckedIn || guest.RoomNumber == nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeInvalidOperation, "Khách chưa nhận phòng", errors.ErrGuestNotCheckedIn)
	}
	roomNumber := *guest.RoomNumber

	guest.Status = constants.GuestStatusCheckedOut
	guest.CheckOutDate = models.DayPtr(s.clock.now())
	bill, err := s.billing.billGuest(ctx, guest)
	if err != nil {
		return nil, nil, err
	}

	if err := s.rooms.CheckoutRoom(ctx, roomNumber); err != nil {
		return nil, nil, err
	}

	guest.RoomNumber = nil
	if err := s.guests.Update(ctx, guest); err != nil {
		if rerr := s.rooms.SetStatus(ctx, roomNumber, constants.RoomStatusOccupied); rerr != nil {
			s.logger.Error("❌ Không trả lại trạng thái phòng %d: %v", roomNumber, rerr)
		}
		return nil, nil, wrapRepoError(err, errors.ErrGuestNotFound, fmt.Sprintf("khách %d", guestID))
	}
	s.logger.Info("✅ Khách %d trả phòng %d, hóa đơn %d: %.2f", guest.ID, roomNumber, bill.ID, bill.Total)
	return guest, bill, nil
}
