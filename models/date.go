package models

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout là định dạng ngày dùng cho API
const DateLayout = "2006-01-02"

// Day cắt phần giờ, chỉ giữ ngày/tháng/năm
func Day(t time.Time) datatypes.Date {
	return datatypes.Date(civil(t))
}

// DayPtr giống Day nhưng trả về con trỏ cho các cột nullable
func DayPtr(t time.Time) *datatypes.Date {
	d := Day(t)
	return &d
}

// DaysBetween đếm số ngày lịch giữa hai mốc, bỏ qua giờ và múi giờ
func DaysBetween(from, to time.Time) int {
	return int(civil(to).Sub(civil(from)).Hours() / 24)
}

// ParseDate đọc ngày theo DateLayout
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate trả về chuỗi rỗng khi ngày là nil
func FormatDate(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return time.Time(*d).Format(DateLayout)
}

// RangesOverlap: [a,b) và [c,d) giao nhau trừ khi b <= c hoặc a >= d
func RangesOverlap(a, b, c, d time.Time) bool {
	return !(!b.After(c) || !a.Before(d))
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
