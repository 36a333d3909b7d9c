package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"orionhotel/constants"
	"orionhotel/models"
	"orionhotel/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func setupMockSqlx(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return sqlx.NewDb(sqlDB, "postgres"), mock
}

func TestRoomFindByNumber(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRoomRepository(db)

	rows := sqlmock.NewRows([]string{"room_number", "room_type", "price", "status", "amenities", "floor"}).
		AddRow(101, "Single", 100.0, "AVAILABLE", "{WiFi,TV}", 1)
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE room_number = \$1`).WillReturnRows(rows)

	room, err := repo.FindByNumber(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, 101, room.RoomNumber)
	assert.Equal(t, constants.RoomStatusAvailable, room.Status)
	assert.Equal(t, []string{"WiFi", "TV"}, []string(room.Amenities))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomFindByNumberNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE room_number = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"room_number"}))

	_, err := repo.FindByNumber(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomUpdateStatusIfConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectExec(`UPDATE "rooms" SET "status"=\$1,"updated_at"=\$2 WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE room_number = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"room_number", "status"}).AddRow(101, "OCCUPIED"))

	err := repo.UpdateStatusIf(context.Background(), 101, constants.RoomStatusAvailable, constants.RoomStatusOccupied)
	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomUpdateStatusMissingRoom(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRoomRepository(db)

	mock.ExpectExec(`UPDATE "rooms" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 404, constants.RoomStatusDirty)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationCountOverlapping(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReservationRepository(db)

	in := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "reservations" WHERE`).
		WithArgs(102, constants.ReservationStatusCancelled, constants.ReservationStatusCompleted, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountOverlapping(context.Background(), 102, in, out, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryConsumeInsufficientStock(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInventoryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "inventory" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "inventory" WHERE item_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.Consume(context.Background(), 7, 50, time.Now())
	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRevenueByMonth(t *testing.T) {
	db, mock := setupMockSqlx(t)
	repo := NewReportRepository(db)
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT to_char(bill_date, 'YYYY-MM') AS month`)).
		WithArgs(constants.BillStatusPaid, since).
		WillReturnRows(sqlmock.NewRows([]string{"month", "revenue"}).
			AddRow("2024-01", 1200.5).
			AddRow("2024-02", 980.0))

	out, err := repo.RevenueByMonth(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, repository.MonthlyRevenue{Month: "2024-01", Revenue: 1200.5}, out[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportCounts(t *testing.T) {
	db, mock := setupMockSqlx(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM reservations WHERE status = $1`)).
		WithArgs(constants.ReservationStatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM inventory WHERE quantity <= min_level`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	cancelled, err := repo.CountReservations(context.Background(), constants.ReservationStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cancelled)

	low, err := repo.CountLowStock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), low)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportInventoryUsage(t *testing.T) {
	db, mock := setupMockSqlx(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT item_name AS name, COALESCE(SUM(quantity_changed), 0) AS used`)).
		WithArgs(constants.InventoryActionConsume, 5).
		WillReturnRows(sqlmock.NewRows([]string{"name", "used"}).AddRow("Towels", 40).AddRow("Soap", 12))

	out, err := repo.InventoryUsage(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []models.ItemUsage{{Name: "Towels", Used: 40}, {Name: "Soap", Used: 12}}, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableDumperDump(t *testing.T) {
	db, mock := setupMockSqlx(t)
	dumper := NewTableDumper(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "system_settings"`)).
		WillReturnRows(sqlmock.NewRows([]string{"setting_key", "setting_value"}).
			AddRow([]byte("tax_rate"), []byte("12.5")))

	rows, err := dumper.Dump(context.Background(), "system_settings")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "tax_rate", rows[0]["setting_key"])
	assert.Equal(t, "12.5", rows[0]["setting_value"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableDumperRejectsUnknownTable(t *testing.T) {
	db, _ := setupMockSqlx(t)
	_, err := NewTableDumper(db).Dump(context.Background(), "pg_shadow")
	assert.Error(t, err)
	assert.Len(t, NewTableDumper(db).Tables(), 12)
}

func TestInventoryUpdateSkipsQuantity(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInventoryRepository(db)

	mock.ExpectExec(`UPDATE "inventory" SET "name"=\$1,"category"=\$2,"min_level"=\$3,"unit"=\$4,"last_updated"=\$5 WHERE "item_id" = \$6`).
		WithArgs("Soap", "Amenities", 5, "pcs", sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	item := &models.InventoryItem{ItemID: 7, Name: "Soap", Category: "Amenities", Quantity: 99, MinLevel: 5, Unit: "pcs"}
	require.NoError(t, repo.Update(context.Background(), item))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryUpdateMissingItem(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInventoryRepository(db)

	mock.ExpectExec(`UPDATE "inventory" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.InventoryItem{ItemID: 8, Name: "Soap"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
