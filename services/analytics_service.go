package services

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"
	"orionhotel/repository"
	"orionhotel/services/logger"

	"github.com/xuri/excelize/v2"
)

const (
	defaultTrendMonths = 6
	defaultUsageLimit  = 10
)

type Overview struct {
	TotalRooms        int64            `json:"totalRooms"`
	OccupiedRooms     int64            `json:"occupiedRooms"`
	OccupancyRate     float64          `json:"occupancyRate"`
	RevenueThisMonth  float64          `json:"revenueThisMonth"`
	LowStockCount     int64            `json:"lowStockCount"`
	CancelledBookings int64            `json:"cancelledBookings"`
	RoomStatus        map[string]int64 `json:"roomStatus"`
}

type AnalyticsService struct {
	rooms   *RoomService
	billing *BillingService
	reports repository.ReportRepository
	logger  logger.Logger
	clock   Clock
}

type AnalyticsServiceOptions struct {
	Rooms   *RoomService
	Billing *BillingService
	Reports repository.ReportRepository
	Logger  logger.Logger
	Clock   Clock
}

func NewAnalyticsService(opts AnalyticsServiceOptions) *AnalyticsService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &AnalyticsService{
		rooms:   opts.Rooms,
		billing: opts.Billing,
		reports: opts.Reports,
		logger:  opts.Logger,
		clock:   opts.Clock,
	}
}

func (s *AnalyticsService) Overview(ctx context.Context) (*Overview, error) {
	counts, err := s.rooms.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	ov := &Overview{RoomStatus: counts}
	for _, n := range counts {
		ov.TotalRooms += n
	}
	ov.OccupiedRooms = counts[constants.RoomStatusOccupied]
	if ov.TotalRooms > 0 {
		ov.OccupancyRate = math.Round(float64(ov.OccupiedRooms)/float64(ov.TotalRooms)*1000) / 10
	}

	now := s.clock.now()
	if ov.RevenueThisMonth, err = s.billing.MonthlyRevenue(ctx, now.Year(), now.Month()); err != nil {
		return nil, err
	}
	if ov.LowStockCount, err = s.reports.CountLowStock(ctx); err != nil {
		return nil, wrapRepoError(err, nil, "báo cáo")
	}
	if ov.CancelledBookings, err = s.reports.CountReservations(ctx, constants.ReservationStatusCancelled); err != nil {
		return nil, wrapRepoError(err, nil, "báo cáo")
	}
	return ov, nil
}

// RevenueTrend trả doanh thu của months tháng gần nhất, tháng không có doanh thu là 0
func (s *AnalyticsService) RevenueTrend(ctx context.Context, months int) ([]repository.MonthlyRevenue, error) {
	if months <= 0 {
		months = defaultTrendMonths
	}
	if months > 36 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Chỉ hỗ trợ tối đa 36 tháng", errors.ErrInvalidInput)
	}
	now := s.clock.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	rows, err := s.reports.RevenueByMonth(ctx, first)
	if err != nil {
		return nil, wrapRepoError(err, nil, "báo cáo")
	}
	byMonth := make(map[string]float64, len(rows))
	for _, r := range rows {
		byMonth[r.Month] = r.Revenue
	}
	out := make([]repository.MonthlyRevenue, 0, months)
	for i := 0; i < months; i++ {
		key := first.AddDate(0, i, 0).Format("2006-01")
		out = append(out, repository.MonthlyRevenue{Month: key, Revenue: byMonth[key]})
	}
	return out, nil
}

func (s *AnalyticsService) InventoryUsage(ctx context.Context, limit int) ([]models.ItemUsage, error) {
	if limit <= 0 {
		limit = defaultUsageLimit
	}
	usage, err := s.reports.InventoryUsage(ctx, limit)
	if err != nil {
		return nil, wrapRepoError(err, nil, "báo cáo")
	}
	return usage, nil
}

// ExportXLSX xuất báo cáo gồm 3 sheet Overview, Revenue và Inventory
func (s *AnalyticsService) ExportXLSX(ctx context.Context) ([]byte, error) {
	ov, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}
	trend, err := s.RevenueTrend(ctx, 12)
	if err != nil {
		return nil, err
	}
	usage, err := s.InventoryUsage(ctx, defaultUsageLimit)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Overview"); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	overviewRows := [][]interface{}{
		{"Metric", "Value"},
		{"Total rooms", ov.TotalRooms},
		{"Occupied rooms", ov.OccupiedRooms},
		{"Occupancy rate (%)", ov.OccupancyRate},
		{"Revenue this month", ov.RevenueThisMonth},
		{"Low stock items", ov.LowStockCount},
		{"Cancelled bookings", ov.CancelledBookings},
	}
	statuses := make([]string, 0, len(ov.RoomStatus))
	for status := range ov.RoomStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		overviewRows = append(overviewRows, []interface{}{"Rooms " + status, ov.RoomStatus[status]})
	}
	if err := writeRows(f, "Overview", overviewRows); err != nil {
		return nil, err
	}

	revenueRows := [][]interface{}{{"Month", "Revenue"}}
	for _, r := range trend {
		revenueRows = append(revenueRows, []interface{}{r.Month, r.Revenue})
	}
	if err := writeSheet(f, "Revenue", revenueRows); err != nil {
		return nil, err
	}

	usageRows := [][]interface{}{{"Item", "Used"}}
	for _, u := range usage {
		usageRows = append(usageRows, []interface{}{u.Name, u.Used})
	}
	if err := writeSheet(f, "Inventory", usageRows); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
