package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeRecord(borrowed, due time.Time) *BorrowingRecordModel {
	return &BorrowingRecordModel{
		BorrowingRecordsBorrowedDate:       borrowed,
		BorrowingRecordsExpectedReturnDate: due,
		BorrowingRecordsStatus:             BorrowingStatusBorrowed,
		BorrowingRecordsMaxRenewals:        DefaultMaxRenewals,
	}
}

func TestIsOverdueAt(t *testing.T) {
	rec := activeRecord(date(2025, 1, 1), date(2025, 1, 10))

	t.Run("sebelum jatuh tempo", func(t *testing.T) {
		assert.False(t, rec.IsOverdueAt(date(2025, 1, 9)))
	})
	t.Run("tepat di jatuh tempo", func(t *testing.T) {
		assert.False(t, rec.IsOverdueAt(date(2025, 1, 10)))
	})
	t.Run("lewat jatuh tempo", func(t *testing.T) {
		assert.True(t, rec.IsOverdueAt(date(2025, 1, 11)))
	})
	t.Run("sudah dikembalikan tidak pernah overdue", func(t *testing.T) {
		returned := activeRecord(date(2025, 1, 1), date(2025, 1, 10))
		actual := date(2025, 1, 12)
		returned.BorrowingRecordsActualReturnDate = &actual
		returned.BorrowingRecordsStatus = BorrowingStatusReturned
		assert.False(t, returned.IsOverdueAt(date(2025, 1, 20)))
	})
}

func TestDaysOverdueAndFine(t *testing.T) {
	rec := activeRecord(date(2025, 1, 1), date(2025, 1, 10))
	now := date(2025, 1, 15) // telat 5 hari

	require.True(t, rec.IsOverdueAt(now))
	assert.Equal(t, int64(5), rec.DaysOverdueAt(now))
	assert.InDelta(t, 5.0, rec.CalculateFineAt(DailyFineRate, now), 0.0001)

	// Tidak telat → nol
	early := date(2025, 1, 5)
	assert.Equal(t, int64(0), rec.DaysOverdueAt(early))
	assert.InDelta(t, 0.0, rec.CalculateFineAt(DailyFineRate, early), 0.0001)

	// CalculateFineAt murni: state tidak berubah
	assert.InDelta(t, 0.0, rec.BorrowingRecordsFineAmount, 0.0001)
}

func TestRenewAt(t *testing.T) {
	t.Run("menggeser jatuh tempo dan menambah counter", func(t *testing.T) {
		rec := activeRecord(date(2025, 1, 1), date(2025, 1, 15))
		now := date(2025, 1, 10)

		require.True(t, rec.CanBeRenewedAt(now))
		require.True(t, rec.RenewAt(7, now))

		assert.Equal(t, date(2025, 1, 22), rec.BorrowingRecordsExpectedReturnDate)
		assert.Equal(t, 1, rec.BorrowingRecordsRenewalCount)
	})

	t.Run("jatah perpanjangan habis", func(t *testing.T) {
		rec := activeRecord(date(2025, 1, 1), date(2025, 1, 15))
		rec.BorrowingRecordsRenewalCount = DefaultMaxRenewals
		now := date(2025, 1, 10)
		due := rec.BorrowingRecordsExpectedReturnDate

		assert.False(t, rec.CanBeRenewedAt(now))
		assert.False(t, rec.RenewAt(7, now))
		// No-op: tidak ada state yang berubah
		assert.Equal(t, due, rec.BorrowingRecordsExpectedReturnDate)
		assert.Equal(t, DefaultMaxRenewals, rec.BorrowingRecordsRenewalCount)
	})

	t.Run("pinjaman terlambat tidak bisa diperpanjang", func(t *testing.T) {
		rec := activeRecord(date(2025, 1, 1), date(2025, 1, 10))
		assert.False(t, rec.RenewAt(7, date(2025, 1, 12)))
	})

	t.Run("pinjaman yang sudah kembali tidak bisa diperpanjang", func(t *testing.T) {
		rec := activeRecord(date(2025, 1, 1), date(2025, 1, 15))
		rec.BorrowingRecordsStatus = BorrowingStatusReturned
		assert.False(t, rec.RenewAt(7, date(2025, 1, 5)))
	})
}

func TestReturnBookAt(t *testing.T) {
	t.Run("tepat waktu tanpa denda", func(t *testing.T) {
		rec := activeRecord(date(2025, 1, 1), date(2025, 1, 15))
		now := date(2025, 1, 10)

		require.True(t, rec.ReturnBookAt(now))

		assert.Equal(t, BorrowingStatusReturned, rec.BorrowingRecordsStatus)
		require.NotNil(t, rec.BorrowingRecordsActualReturnDate)
		assert.Equal(t, date(2025, 1, 10), *rec.BorrowingRecordsActualReturnDate)
		assert.InDelta(t, 0.0, rec.BorrowingRecordsFineAmount, 0.0001)
	})

	t.Run("terlambat menghitung denda sebelum tanggal kembali diisi", func(t *testing.T) {
		rec := activeRecord(date(2025, 1, 1), date(2025, 1, 10))
		now := date(2025, 1, 15) // telat 5 hari

		require.True(t, rec.ReturnBookAt(now))

		assert.Equal(t, BorrowingStatusReturned, rec.BorrowingRecordsStatus)
		assert.InDelta(t, 5.0, rec.BorrowingRecordsFineAmount, 0.0001)
		require.NotNil(t, rec.BorrowingRecordsActualReturnDate)
		assert.Equal(t, date(2025, 1, 15), *rec.BorrowingRecordsActualReturnDate)
	})

	t.Run("pengembalian kedua ditolak", func(t *testing.T) {
		rec := activeRecord(date(2025, 1, 1), date(2025, 1, 15))
		require.True(t, rec.ReturnBookAt(date(2025, 1, 10)))
		assert.False(t, rec.ReturnBookAt(date(2025, 1, 11)))
	})

	t.Run("status LOST tidak bisa dikembalikan", func(t *testing.T) {
		rec := activeRecord(date(2025, 1, 1), date(2025, 1, 15))
		rec.BorrowingRecordsStatus = BorrowingStatusLost
		assert.False(t, rec.ReturnBookAt(date(2025, 1, 10)))
	})
}

func TestPayFineAt(t *testing.T) {
	t.Run("menandai lunas", func(t *testing.T) {
		rec := activeRecord(date(2025, 1, 1), date(2025, 1, 10))
		require.True(t, rec.ReturnBookAt(date(2025, 1, 15)))
		require.InDelta(t, 5.0, rec.BorrowingRecordsFineAmount, 0.0001)

		require.True(t, rec.PayFineAt(date(2025, 1, 16)))

		assert.True(t, rec.IsFinePaid())
		require.NotNil(t, rec.BorrowingRecordsFinePaidDate)
		assert.Equal(t, date(2025, 1, 16), *rec.BorrowingRecordsFinePaidDate)
	})

	t.Run("tanpa denda tidak ada yang dibayar", func(t *testing.T) {
		rec := activeRecord(date(2025, 1, 1), date(2025, 1, 15))
		assert.False(t, rec.PayFineAt(date(2025, 1, 10)))
		assert.False(t, rec.IsFinePaid())
	})

	t.Run("pembayaran kedua ditolak", func(t *testing.T) {
		rec := activeRecord(date(2025, 1, 1), date(2025, 1, 10))
		require.True(t, rec.ReturnBookAt(date(2025, 1, 15)))
		require.True(t, rec.PayFineAt(date(2025, 1, 16)))
		assert.False(t, rec.PayFineAt(date(2025, 1, 17)))
	})
}

func TestBorrowingDurationDaysAt(t *testing.T) {
	rec := activeRecord(date(2025, 1, 1), date(2025, 1, 15))

	// Belum kembali: dihitung sampai now
	assert.Equal(t, int64(9), rec.BorrowingDurationDaysAt(date(2025, 1, 10)))

	// Sudah kembali: dihitung sampai tanggal kembali, now tidak berpengaruh
	require.True(t, rec.ReturnBookAt(date(2025, 1, 12)))
	assert.Equal(t, int64(11), rec.BorrowingDurationDaysAt(date(2025, 2, 1)))
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2025, 1, 10, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, date(2025, 1, 10), DateOnly(in))

	// Non-UTC dinormalisasi ke hari kalender UTC
	jakarta := time.FixedZone("WIB", 7*3600)
	early := time.Date(2025, 1, 11, 5, 0, 0, 0, jakarta) // 2025-01-10 22:00 UTC
	assert.Equal(t, date(2025, 1, 10), DateOnly(early))
}

func TestIsValidBorrowingStatus(t *testing.T) {
	for _, s := range []string{
		BorrowingStatusBorrowed, BorrowingStatusReturned,
		BorrowingStatusOverdue, BorrowingStatusLost, BorrowingStatusDamaged,
	} {
		assert.True(t, IsValidBorrowingStatus(s), s)
	}
	assert.False(t, IsValidBorrowingStatus("borrowed"))
	assert.False(t, IsValidBorrowingStatus("UNKNOWN"))
}
