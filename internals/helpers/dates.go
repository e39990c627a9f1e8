// file: internals/helpers/dates.go
package helper

import (
	"fmt"
	"strings"
	"time"
)

const DateLayoutYMD = "2006-01-02"

// AtStartOfDay memotong timestamp ke batas hari (00:00:00 UTC).
// Semua tanggal assignment disimpan pada granularitas hari.
func AtStartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayRange mengembalikan window half-open [hari 00:00, hari+1 00:00).
func DayRange(t time.Time) (start, end time.Time) {
	start = AtStartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// MonthRange mengembalikan [tanggal 1, tanggal terakhir] inklusif untuk (year, month).
func MonthRange(year, month int) (first, last time.Time, err error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("bulan tidak valid: %d", month)
	}
	first = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last, nil
}

// ParseDateYMD menerima "YYYY-MM-DD" atau timestamp RFC3339; hasilnya dipotong ke hari.
func ParseDateYMD(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayoutYMD, s); err == nil {
		return AtStartOfDay(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return AtStartOfDay(t), nil
	}
	return time.Time{}, fmt.Errorf("format tanggal tidak valid: %q (pakai YYYY-MM-DD)", s)
}

func FormatDateYMD(t time.Time) string {
	return t.UTC().Format(DateLayoutYMD)
}
