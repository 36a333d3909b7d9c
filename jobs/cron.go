package jobs

import (
	"context"
	"time"

	"orionhotel/services"
	"orionhotel/services/logger"

	"github.com/robfig/cron/v3"
)

const (
	BackupSchedule      = "0 2 * * *"
	RefreshBillSchedule = "0 0 * * *"
	LowStockSchedule    = "0 8 * * *"

	jobTimeout = 5 * time.Minute
)

type Backuper interface {
	CreateBackup(ctx context.Context) (*services.BackupInfo, error)
}

// BillRefresher tính lại hóa đơn đang mở theo số đêm đã ở
type BillRefresher interface {
	RefreshOpenBills(ctx context.Context) (int, error)
}

type LowStockNotifier interface {
	SendLowStockDigest(ctx context.Context) (int, error)
}

type Dependencies struct {
	Backups   Backuper
	Billing   BillRefresher
	Inventory LowStockNotifier
	Logger    logger.Logger
}

// Jobs chứa các hàm chạy định kỳ, tách riêng để test gọi trực tiếp
type Jobs struct {
	deps Dependencies
}

func New(deps Dependencies) *Jobs {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	return &Jobs{deps: deps}
}

func (j *Jobs) Backup() {
	if j.deps.Backups == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	info, err := j.deps.Backups.CreateBackup(ctx)
	if err != nil {
		j.deps.Logger.Error("❌ Sao lưu tự động thất bại: %v", err)
		return
	}
	j.deps.Logger.Info("Đã sao lưu dữ liệu: %s (%s)", info.Name, info.SizeHuman)
}

func (j *Jobs) RefreshBills() {
	if j.deps.Billing == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := j.deps.Billing.RefreshOpenBills(ctx)
	if err != nil {
		j.deps.Logger.Error("❌ Lỗi cập nhật hóa đơn: %v", err)
		return
	}
	j.deps.Logger.Info("Đã cập nhật %d hóa đơn đang mở", n)
}

func (j *Jobs) LowStockDigest() {
	if j.deps.Inventory == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := j.deps.Inventory.SendLowStockDigest(ctx)
	if err != nil {
		j.deps.Logger.Error("❌ Lỗi gửi cảnh báo tồn kho: %v", err)
		return
	}
	if n > 0 {
		j.deps.Logger.Info("Có %d mặt hàng dưới mức tối thiểu", n)
	}
}

// InitCronJobs đăng ký các cron job và khởi động scheduler
func InitCronJobs(c *cron.Cron, deps Dependencies) (*Jobs, error) {
	j := New(deps)
	schedule := []struct {
		spec string
		fn   func()
	}{
		{BackupSchedule, j.Backup},
		{RefreshBillSchedule, j.RefreshBills},
		{LowStockSchedule, j.LowStockDigest},
	}
	for _, s := range schedule {
		if _, err := c.AddFunc(s.spec, s.fn); err != nil {
			return nil, err
		}
	}

	c.Start()
	j.deps.Logger.Info("Cron jobs initialized successfully")
	return j, nil
}
