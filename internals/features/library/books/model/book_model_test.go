package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBook(total, available int, status string) *BookModel {
	return &BookModel{
		BooksTotalCopies:     total,
		BooksCopiesAvailable: available,
		BooksStatus:          status,
	}
}

func TestBorrowCopy(t *testing.T) {
	t.Run("mengurangi satu copy", func(t *testing.T) {
		b := newBook(5, 3, BookStatusAvailable)

		require.True(t, b.BorrowCopy())

		assert.Equal(t, 2, b.BooksCopiesAvailable)
		assert.Equal(t, 5, b.BooksTotalCopies)
		assert.Equal(t, BookStatusAvailable, b.BooksStatus)
	})

	t.Run("copy terakhir membuat status BORROWED", func(t *testing.T) {
		b := newBook(3, 1, BookStatusAvailable)

		require.True(t, b.BorrowCopy())

		assert.Equal(t, 0, b.BooksCopiesAvailable)
		assert.Equal(t, BookStatusBorrowed, b.BooksStatus)
	})

	t.Run("gagal kalau copy habis", func(t *testing.T) {
		b := newBook(3, 0, BookStatusBorrowed)

		assert.False(t, b.BorrowCopy())
		assert.Equal(t, 0, b.BooksCopiesAvailable)
	})
}

func TestReturnCopy(t *testing.T) {
	t.Run("menambah copy dan memulihkan status", func(t *testing.T) {
		b := newBook(3, 0, BookStatusBorrowed)

		require.True(t, b.ReturnCopy())

		assert.Equal(t, 1, b.BooksCopiesAvailable)
		assert.Equal(t, BookStatusAvailable, b.BooksStatus)
	})

	t.Run("over-return ditolak", func(t *testing.T) {
		b := newBook(3, 3, BookStatusAvailable)

		assert.False(t, b.ReturnCopy())
		assert.Equal(t, 3, b.BooksCopiesAvailable)
	})
}

func TestBorrowReturnRoundTrip(t *testing.T) {
	// Satu-satunya copy: pinjam → habis → pinjam kedua gagal → kembali → tersedia lagi.
	b := newBook(1, 1, BookStatusAvailable)

	require.True(t, b.IsAvailable())
	require.True(t, b.BorrowCopy())
	assert.Equal(t, BookStatusBorrowed, b.BooksStatus)
	assert.False(t, b.IsAvailable())
	assert.False(t, b.BorrowCopy())

	require.True(t, b.ReturnCopy())
	assert.Equal(t, 1, b.BooksCopiesAvailable)
	assert.Equal(t, BookStatusAvailable, b.BooksStatus)
	assert.True(t, b.IsAvailable())
}

func TestAddCopies(t *testing.T) {
	t.Run("menambah total dan available", func(t *testing.T) {
		b := newBook(3, 0, BookStatusBorrowed)

		require.True(t, b.AddCopies(2))

		assert.Equal(t, 5, b.BooksTotalCopies)
		assert.Equal(t, 2, b.BooksCopiesAvailable)
		assert.Equal(t, BookStatusAvailable, b.BooksStatus)
	})

	t.Run("jumlah non-positif ditolak", func(t *testing.T) {
		b := newBook(3, 3, BookStatusAvailable)

		assert.False(t, b.AddCopies(0))
		assert.False(t, b.AddCopies(-1))
		assert.Equal(t, 3, b.BooksTotalCopies)
	})
}

func TestRemoveCopies(t *testing.T) {
	t.Run("mengurangi total dan available", func(t *testing.T) {
		b := newBook(5, 4, BookStatusAvailable)

		require.True(t, b.RemoveCopies(2))

		assert.Equal(t, 3, b.BooksTotalCopies)
		assert.Equal(t, 2, b.BooksCopiesAvailable)
	})

	t.Run("copy yang sedang dipinjam tidak boleh ikut dihapus", func(t *testing.T) {
		// total 5, available 2 → 3 copy sedang di luar. Hapus 3 harus gagal.
		b := newBook(5, 2, BookStatusAvailable)

		assert.False(t, b.RemoveCopies(3))
		assert.Equal(t, 5, b.BooksTotalCopies)
		assert.Equal(t, 2, b.BooksCopiesAvailable)
	})

	t.Run("melebihi total ditolak", func(t *testing.T) {
		b := newBook(3, 3, BookStatusAvailable)

		assert.False(t, b.RemoveCopies(4))
	})

	t.Run("available jadi nol membuat status BORROWED", func(t *testing.T) {
		b := newBook(5, 2, BookStatusAvailable)

		require.True(t, b.RemoveCopies(2))

		assert.Equal(t, 0, b.BooksCopiesAvailable)
		assert.Equal(t, BookStatusBorrowed, b.BooksStatus)
	})
}

func TestAddRemoveRoundTrip(t *testing.T) {
	b := newBook(3, 3, BookStatusAvailable)

	require.True(t, b.AddCopies(2))
	require.True(t, b.RemoveCopies(2))

	assert.Equal(t, 3, b.BooksTotalCopies)
	assert.Equal(t, 3, b.BooksCopiesAvailable)
	assert.Equal(t, BookStatusAvailable, b.BooksStatus)
}

func TestReconcileStatus(t *testing.T) {
	t.Run("AVAILABLE dengan stok kosong jadi BORROWED", func(t *testing.T) {
		b := newBook(3, 0, BookStatusAvailable)
		b.ReconcileStatus()
		assert.Equal(t, BookStatusBorrowed, b.BooksStatus)
	})

	t.Run("BORROWED dengan stok tersisa jadi AVAILABLE", func(t *testing.T) {
		b := newBook(3, 2, BookStatusBorrowed)
		b.ReconcileStatus()
		assert.Equal(t, BookStatusAvailable, b.BooksStatus)
	})

	t.Run("pasangan yang sudah selaras tidak berubah", func(t *testing.T) {
		b := newBook(3, 2, BookStatusAvailable)
		b.ReconcileStatus()
		assert.Equal(t, BookStatusAvailable, b.BooksStatus)

		b = newBook(3, 0, BookStatusBorrowed)
		b.ReconcileStatus()
		assert.Equal(t, BookStatusBorrowed, b.BooksStatus)
	})

	t.Run("status administratif dibiarkan", func(t *testing.T) {
		for _, s := range []string{
			BookStatusReserved, BookStatusMaintenance, BookStatusLost, BookStatusDamaged,
		} {
			b := newBook(3, 0, s)
			b.ReconcileStatus()
			assert.Equal(t, s, b.BooksStatus, s)
		}
	})
}

func TestAvailabilityPercentage(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		available int
		want      float64
	}{
		{"penuh", 4, 4, 100},
		{"setengah", 4, 2, 50},
		{"habis", 4, 0, 0},
		{"total nol", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBook(tt.total, tt.available, BookStatusAvailable)
			assert.InDelta(t, tt.want, b.AvailabilityPercentage(), 0.0001)
		})
	}
}

func TestIsValidBookStatus(t *testing.T) {
	for _, s := range []string{
		BookStatusAvailable, BookStatusBorrowed, BookStatusReserved,
		BookStatusMaintenance, BookStatusLost, BookStatusDamaged,
	} {
		assert.True(t, IsValidBookStatus(s), s)
	}
	assert.False(t, IsValidBookStatus("UNKNOWN"))
	assert.False(t, IsValidBookStatus("available"))
}
