package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"
	"orionhotel/repository"
	"orionhotel/services/logger"
)

type BillingService struct {
	bills    repository.BillRepository
	guests   repository.GuestRepository
	rooms    repository.RoomRepository
	settings *SettingsService
	logger   logger.Logger
	clock    Clock
}

type BillingServiceOptions struct {
	Bills    repository.BillRepository
	Guests   repository.GuestRepository
	Rooms    repository.RoomRepository
	Settings *SettingsService
	Logger   logger.Logger
	Clock    Clock
}

func NewBillingService(opts BillingServiceOptions) *BillingService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &BillingService{
		bills:    opts.Bills,
		guests:   opts.Guests,
		rooms:    opts.Rooms,
		settings: opts.Settings,
		logger:   opts.Logger,
		clock:    opts.Clock,
	}
}

func (s *BillingService) GenerateBillForGuest(ctx context.Context, guestID uint) (*models.Bill, error) {
	guest, err := s.guests.FindByID(ctx, guestID)
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrGuestNotFound, fmt.Sprintf("khách %d", guestID))
	}
	return s.billGuest(ctx, guest)
}

// billGuest tính lại tiền phòng theo số đêm và cập nhật hóa đơn đang mở của khách,
// tạo hóa đơn UNPAID mới nếu khách chưa có. Khách đã trả phòng thì giữ giá phòng đã chốt
// trên hóa đơn và không mở hóa đơn mới.
func (s *BillingService) billGuest(ctx context.Context, guest *models.Guest) (*models.Bill, error) {
	now := s.clock.now()

	bill, err := s.bills.FindOpenByGuest(ctx, guest.ID)
	isNew := false
	switch {
	case errors.Is(err, repository.ErrNotFound):
		if guest.Status == constants.GuestStatusCheckedOut && guest.RoomNumber == nil {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound,
				fmt.Sprintf("Khách %d không còn hóa đơn đang mở", guest.ID), errors.ErrBillNotFound)
		}
		isNew = true
		bill = &models.Bill{
			GuestID:  guest.ID,
			Status:   constants.BillStatusUnpaid,
			BillDate: models.Day(now),
		}
	case err != nil:
		return nil, wrapRepoError(err, errors.ErrBillNotFound, "hóa đơn")
	}

	rate, err := s.rateFor(ctx, guest, bill)
	if err != nil {
		return nil, err
	}
	taxRate, err := s.settings.TaxRate(ctx)
	if err != nil {
		return nil, err
	}

	nights := guest.Nights(now)
	bill.GuestName = guest.FullName
	bill.DailyRate = rate
	bill.RoomCharges = math.Round(float64(nights)*rate*100) / 100
	bill.Recalculate(taxRate)
	refreshBillStatus(bill)

	if isNew {
		err = s.bills.Create(ctx, bill)
	} else {
		err = s.bills.Update(ctx, bill)
	}
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrBillNotFound, "hóa đơn")
	}
	s.logger.Debug("Hóa đơn %d của khách %d: %d đêm x %.2f, tổng %.2f", bill.ID, guest.ID, nights, rate, bill.Total)
	return bill, nil
}

// rateFor lấy giá theo phòng khách đang ở; khách đã rời phòng thì dùng giá đã lưu trên hóa đơn
func (s *BillingService) rateFor(ctx context.Context, guest *models.Guest, bill *models.Bill) (float64, error) {
	if guest.RoomNumber == nil && bill.DailyRate > 0 {
		return bill.DailyRate, nil
	}

	var room *models.Room
	if guest.RoomNumber != nil {
		r, err := s.rooms.FindByNumber(ctx, *guest.RoomNumber)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return 0, wrapRepoError(err, nil, "phòng")
		}
		room = r
		number := *guest.RoomNumber
		bill.RoomNumber = &number
	}
	return s.settings.DailyRate(ctx, room)
}

// refreshBillStatus giữ trạng thái khớp với số tiền đã trả sau khi tổng tiền thay đổi
func refreshBillStatus(b *models.Bill) {
	switch {
	case b.AmountPaid <= 0:
		b.Status = constants.BillStatusUnpaid
	case b.AmountPaid >= b.Total:
		b.Status = constants.BillStatusPaid
	default:
		b.Status = constants.BillStatusPartial
	}
}

// openBill trả hóa đơn đang mở, tạo mới nếu chưa có. Khách đã trả phòng mà hóa đơn
// đã thanh toán xong thì trả lỗi không tìm thấy.
func (s *BillingService) openBill(ctx context.Context, guestID uint) (*models.Bill, error) {
	bill, err := s.bills.FindOpenByGuest(ctx, guestID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.GenerateBillForGuest(ctx, guestID)
	}
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrBillNotFound, "hóa đơn")
	}
	return bill, nil
}

func (s *BillingService) GetOpenBill(ctx context.Context, guestID uint) (*models.Bill, error) {
	bill, err := s.bills.FindOpenByGuest(ctx, guestID)
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrBillNotFound, fmt.Sprintf("hóa đơn của khách %d", guestID))
	}
	return bill, nil
}

func (s *BillingService) ListBills(ctx context.Context, status string) ([]models.Bill, error) {
	if status != "" && !constants.IsOneOf(status, constants.BillStatuses) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, fmt.Sprintf("Trạng thái hóa đơn không hợp lệ: %s", status), errors.ErrInvalidInput)
	}
	bills, err := s.bills.List(ctx, status)
	if err != nil {
		return nil, wrapRepoError(err, nil, "hóa đơn")
	}
	return bills, nil
}

// BillDetail trả hóa đơn kèm các khoản phí dịch vụ
func (s *BillingService) BillDetail(ctx context.Context, billID uint) (*models.Bill, error) {
	bill, err := s.bills.FindByID(ctx, billID)
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrBillNotFound, fmt.Sprintf("hóa đơn %d", billID))
	}
	return bill, nil
}

func (s *BillingService) AddServiceCharge(ctx context.Context, guestID uint, serviceType string, amount float64) (*models.Bill, error) {
	if serviceType == "" {
		return nil, validationError("Loại dịch vụ là bắt buộc")
	}
	if amount <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", errors.ErrInvalidAmount)
	}
	bill, err := s.openBill(ctx, guestID)
	if err != nil {
		return nil, err
	}

	charge := &models.ServiceCharge{BillID: bill.ID, ServiceType: serviceType, Amount: amount}
	if err := s.bills.AddServiceCharge(ctx, charge); err != nil {
		return nil, wrapRepoError(err, errors.ErrBillNotFound, "hóa đơn")
	}
	bill.ServiceCharges = append(bill.ServiceCharges, *charge)
	if err := s.recalculate(ctx, bill); err != nil {
		return nil, err
	}
	s.logger.Info("Thêm phí %s %.2f vào hóa đơn %d", serviceType, amount, bill.ID)
	return bill, nil
}

// ApplyDiscount: 0 <= discount <= subtotal + thuế
func (s *BillingService) ApplyDiscount(ctx context.Context, guestID uint, discount float64) (*models.Bill, error) {
	bill, err := s.openBill(ctx, guestID)
	if err != nil {
		return nil, err
	}
	taxRate, err := s.settings.TaxRate(ctx)
	if err != nil {
		return nil, err
	}
	bill.Recalculate(taxRate)
	if discount < 0 || discount > bill.Subtotal()+bill.Taxes {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount,
			fmt.Sprintf("Giảm giá phải nằm trong khoảng 0 - %.2f", bill.Subtotal()+bill.Taxes), errors.ErrInvalidAmount)
	}
	bill.Discount = discount
	if err := s.recalculateWith(ctx, bill, taxRate); err != nil {
		return nil, err
	}
	return bill, nil
}

// ProcessPayment cộng dồn số tiền khách trả. Đủ tổng tiền thì chuyển PAID, chưa đủ là PARTIAL.
func (s *BillingService) ProcessPayment(ctx context.Context, guestID uint, amount float64, method string) (*models.Bill, error) {
	if amount <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền thanh toán phải lớn hơn 0", errors.ErrInvalidAmount)
	}
	if !constants.IsOneOf(method, constants.PaymentMethods) {
		return nil, validationError(fmt.Sprintf("Phương thức thanh toán không hợp lệ: %s", method))
	}
	bill, err := s.openBill(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if bill.IsPaid() {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, "Hóa đơn đã được thanh toán", errors.ErrBillPaid)
	}

	bill.ApplyPayment(amount, method)
	if err := s.bills.Update(ctx, bill); err != nil {
		return nil, wrapRepoError(err, errors.ErrBillNotFound, "hóa đơn")
	}
	s.logger.Info("✅ Hóa đơn %d nhận %.2f (%s), trạng thái %s", bill.ID, amount, method, bill.Status)
	return bill, nil
}

func (s *BillingService) recalculate(ctx context.Context, bill *models.Bill) error {
	taxRate, err := s.settings.TaxRate(ctx)
	if err != nil {
		return err
	}
	return s.recalculateWith(ctx, bill, taxRate)
}

func (s *BillingService) recalculateWith(ctx context.Context, bill *models.Bill, taxRate float64) error {
	bill.Recalculate(taxRate)
	refreshBillStatus(bill)
	if err := s.bills.Update(ctx, bill); err != nil {
		return wrapRepoError(err, errors.ErrBillNotFound, "hóa đơn")
	}
	return nil
}

func (s *BillingService) DailyRevenue(ctx context.Context, day time.Time) (float64, error) {
	from := time.Time(models.Day(day))
	total, err := s.bills.PaidRevenue(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return 0, wrapRepoError(err, nil, "doanh thu")
	}
	return total, nil
}

func (s *BillingService) MonthlyRevenue(ctx context.Context, year int, month time.Month) (float64, error) {
	if month < time.January || month > time.December {
		return 0, errors.NewAppError(errors.ErrCodeInvalidDate, "Tháng không hợp lệ", errors.ErrInvalidInput)
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	total, err := s.bills.PaidRevenue(ctx, from, from.AddDate(0, 1, 0))
	if err != nil {
		return 0, wrapRepoError(err, nil, "doanh thu")
	}
	return total, nil
}

func (s *BillingService) OutstandingBalances(ctx context.Context) ([]models.Bill, error) {
	bills, err := s.bills.Outstanding(ctx)
	if err != nil {
		return nil, wrapRepoError(err, nil, "hóa đơn")
	}
	return bills, nil
}

// RefreshOpenBills tính lại hóa đơn của mọi khách đang ở. Lỗi của một khách
// không dừng các khách còn lại; lỗi đầu tiên được trả về.
func (s *BillingService) RefreshOpenBills(ctx context.Context) (int, error) {
	guests, err := s.guests.List(ctx, constants.GuestStatusCheckedIn)
	if err != nil {
		return 0, wrapRepoError(err, nil, "khách")
	}
	var firstErr error
	refreshed := 0
	for i := range guests {
		if _, err := s.billGuest(ctx, &guests[i]); err != nil {
			s.logger.Error("❌ Lỗi cập nhật hóa đơn khách %d: %v", guests[i].ID, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		refreshed++
	}
	s.logger.Info("Đã cập nhật %d/%d hóa đơn đang mở", refreshed, len(guests))
	return refreshed, firstErr
}
