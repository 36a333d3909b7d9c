package postgres

import (
	"context"
	"fmt"
	"time"

	"orionhotel/constants"
	"orionhotel/models"
	"orionhotel/repository"

	"github.com/jmoiron/sqlx"
)

// ReportRepository chạy các truy vấn tổng hợp bằng SQL thuần
type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) RevenueByMonth(ctx context.Context, since time.Time) ([]repository.MonthlyRevenue, error) {
	query := `SELECT to_char(bill_date, 'YYYY-MM') AS month, COALESCE(SUM(total), 0) AS revenue
		FROM bills WHERE status = $1 AND bill_date >= $2
		GROUP BY month ORDER BY month`
	var out []repository.MonthlyRevenue
	if err := r.db.SelectContext(ctx, &out, query, constants.BillStatusPaid, since); err != nil {
		return nil, fmt.Errorf("revenue by month: %w", err)
	}
	return out, nil
}

func (r *ReportRepository) CountReservations(ctx context.Context, status string) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM reservations WHERE status = $1`, status); err != nil {
		return 0, fmt.Errorf("count reservations: %w", err)
	}
	return n, nil
}

func (r *ReportRepository) CountLowStock(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM inventory WHERE quantity <= min_level`); err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

func (r *ReportRepository) InventoryUsage(ctx context.Context, limit int) ([]models.ItemUsage, error) {
	query := `SELECT item_name AS name, COALESCE(SUM(quantity_changed), 0) AS used
		FROM inventory_logs WHERE action_type = $1
		GROUP BY item_name ORDER BY used DESC LIMIT $2`
	var out []models.ItemUsage
	if err := r.db.SelectContext(ctx, &out, query, constants.InventoryActionConsume, limit); err != nil {
		return nil, fmt.Errorf("inventory usage: %w", err)
	}
	return out, nil
}
