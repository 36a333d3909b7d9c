package jobs

import (
	"context"
	"errors"
	"testing"

	"orionhotel/services"
	"orionhotel/services/logger"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeBackuper struct {
	calls int
	err   error
}

func (f *fakeBackuper) CreateBackup(context.Context) (*services.BackupInfo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &services.BackupInfo{Name: "db_backup.zip", SizeHuman: "1.2 kB"}, nil
}

type fakeRefresher struct{ n int }

func (f *fakeRefresher) RefreshOpenBills(context.Context) (int, error) { return f.n, nil }

type fakeDigest struct {
	n   int
	err error
}

func (f *fakeDigest) SendLowStockDigest(context.Context) (int, error) { return f.n, f.err }

func observed() (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewZapFromLogger(zap.New(core)), logs
}

func TestJobsLogResults(t *testing.T) {
	log, logs := observed()
	backups := &fakeBackuper{}
	j := New(Dependencies{
		Backups:   backups,
		Billing:   &fakeRefresher{n: 3},
		Inventory: &fakeDigest{n: 2},
		Logger:    log,
	})

	j.Backup()
	j.RefreshBills()
	j.LowStockDigest()

	assert.Equal(t, 1, backups.calls)
	assert.Equal(t, 1, logs.FilterMessage("Đã sao lưu dữ liệu: db_backup.zip (1.2 kB)").Len())
	assert.Equal(t, 1, logs.FilterMessage("Đã cập nhật 3 hóa đơn đang mở").Len())
	assert.Equal(t, 1, logs.FilterMessage("Có 2 mặt hàng dưới mức tối thiểu").Len())
}

func TestJobsLogFailures(t *testing.T) {
	log, logs := observed()
	j := New(Dependencies{
		Backups:   &fakeBackuper{err: errors.New("disk full")},
		Inventory: &fakeDigest{err: errors.New("db down")},
		Logger:    log,
	})

	j.Backup()
	j.LowStockDigest()
	j.RefreshBills() // không có billing thì bỏ qua

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Message, "disk full")
	assert.Contains(t, errs[1].Message, "db down")
}

func TestInitCronJobsRegistersSchedules(t *testing.T) {
	c := cron.New()
	_, err := InitCronJobs(c, Dependencies{})
	require.NoError(t, err)
	defer c.Stop()

	assert.Len(t, c.Entries(), 3)
}
