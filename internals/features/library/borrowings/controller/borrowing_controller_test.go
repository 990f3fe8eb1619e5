package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "perpustakaanku_backend/internals/features/library/borrowings/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Kolom jatuh tempo bertipe date. Batas query harus tanggal juga:
// pinjaman yang jatuh tempo hari ini belum terlambat, konsisten
// dengan IsOverdueAt.
func TestOverdueCutoff(t *testing.T) {
	due := date(2025, 1, 10)
	now := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC) // siang di hari jatuh tempo

	cutoff := overdueCutoff(now)

	// due < cutoff adalah predikat query → hari ini TIDAK overdue
	assert.False(t, due.Before(cutoff))

	// Konsisten dengan state machine model pada instant yang sama
	rec := &model.BorrowingRecordModel{
		BorrowingRecordsBorrowedDate:       date(2025, 1, 1),
		BorrowingRecordsExpectedReturnDate: due,
		BorrowingRecordsStatus:             model.BorrowingStatusBorrowed,
	}
	require.False(t, rec.IsOverdueAt(now))

	// Besoknya baru overdue, di query maupun di model
	nextDay := time.Date(2025, 1, 11, 0, 30, 0, 0, time.UTC)
	assert.True(t, due.Before(overdueCutoff(nextDay)))
	assert.True(t, rec.IsOverdueAt(nextDay))
}

func TestDueSoonWindow(t *testing.T) {
	now := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	from, until := dueSoonWindow(now, 3)

	assert.Equal(t, date(2025, 1, 10), from)
	assert.Equal(t, date(2025, 1, 13), until)

	// Jatuh tempo HARI INI masuk window (BETWEEN inklusif)
	dueToday := date(2025, 1, 10)
	assert.False(t, dueToday.Before(from))
	assert.False(t, dueToday.After(until))

	// Lewat window → tidak masuk
	assert.True(t, date(2025, 1, 14).After(until))
}
