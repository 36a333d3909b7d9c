package postgres

import (
	"context"
	"fmt"

	"orionhotel/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// TableDumper đọc nguyên bảng để ghi vào bản sao lưu
type TableDumper struct {
	db *sqlx.DB
}

func NewTableDumper(db *sqlx.DB) *TableDumper {
	return &TableDumper{db: db}
}

func (d *TableDumper) Tables() []string {
	return repository.BackupTables
}

func (d *TableDumper) Dump(ctx context.Context, table string) ([]map[string]interface{}, error) {
	if !known(table) {
		return nil, fmt.Errorf("unknown table %q", table)
	}
	rows, err := d.db.QueryxContext(ctx, "SELECT * FROM "+pq.QuoteIdentifier(table))
	if err != nil {
		return nil, fmt.Errorf("dump %s: %w", table, err)
	}
	defer rows.Close()

	out := []map[string]interface{}{}
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func known(table string) bool {
	for _, t := range repository.BackupTables {
		if t == table {
			return true
		}
	}
	return false
}
