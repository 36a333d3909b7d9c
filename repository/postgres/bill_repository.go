package postgres

import (
	"context"
	"time"

	"orionhotel/constants"
	"orionhotel/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BillRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

func (r *BillRepository) Create(ctx context.Context, bill *models.Bill) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(bill).Error)
}

func (r *BillRepository) FindByID(ctx context.Context, id uint) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.WithContext(ctx).
		Preload("ServiceCharges", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&bill, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &bill, nil
}

func (r *BillRepository) FindOpenByGuest(ctx context.Context, guestID uint) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.WithContext(ctx).
		Preload("ServiceCharges", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("guest_id = ? AND status <> ?", guestID, constants.BillStatusPaid).
		Order("id DESC").
		First(&bill).Error
	if err != nil {
		return nil, translate(err)
	}
	return &bill, nil
}

func (r *BillRepository) List(ctx context.Context, status string) ([]models.Bill, error) {
	q := r.db.WithContext(ctx).Model(&models.Bill{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var bills []models.Bill
	if err := q.Order("id DESC").Find(&bills).Error; err != nil {
		return nil, translate(err)
	}
	return bills, nil
}

func (r *BillRepository) Outstanding(ctx context.Context) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.WithContext(ctx).
		Where("status <> ?", constants.BillStatusPaid).
		Order("id DESC").
		Find(&bills).Error
	if err != nil {
		return nil, translate(err)
	}
	return bills, nil
}

func (r *BillRepository) Update(ctx context.Context, bill *models.Bill) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(bill).Error)
}

func (r *BillRepository) AddServiceCharge(ctx context.Context, charge *models.ServiceCharge) error {
	return translate(r.db.WithContext(ctx).Create(charge).Error)
}

func (r *BillRepository) ServiceCharges(ctx context.Context, billID uint) ([]models.ServiceCharge, error) {
	var charges []models.ServiceCharge
	if err := r.db.WithContext(ctx).Where("bill_id = ?", billID).Order("id").Find(&charges).Error; err != nil {
		return nil, translate(err)
	}
	return charges, nil
}

func (r *BillRepository) PaidRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Bill{}).
		Select("COALESCE(SUM(total), 0)").
		Where("status = ? AND bill_date >= ? AND bill_date < ?", constants.BillStatusPaid, models.Day(from), models.Day(to)).
		Scan(&total).Error
	if err != nil {
		return 0, translate(err)
	}
	return total, nil
}
