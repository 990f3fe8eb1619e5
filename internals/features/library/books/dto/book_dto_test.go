package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "perpustakaanku_backend/internals/features/library/books/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestBookCreateRequestNormalize(t *testing.T) {
	req := BookCreateRequest{
		BooksTitle:       "  Laskar Pelangi  ",
		BooksAuthor:      " Andrea Hirata ",
		BooksISBN:        " 9780306406157 ",
		BooksPublisher:   " Bentang ",
		BooksCategory:    " Novel ",
		BooksDescription: strPtr("   "),
		BooksLanguage:    strPtr(" Indonesia "),
	}

	req.Normalize()

	assert.Equal(t, "Laskar Pelangi", req.BooksTitle)
	assert.Equal(t, "Andrea Hirata", req.BooksAuthor)
	assert.Equal(t, "9780306406157", req.BooksISBN)
	assert.Equal(t, "Bentang", req.BooksPublisher)
	assert.Equal(t, "Novel", req.BooksCategory)
	assert.Nil(t, req.BooksDescription) // whitespace-only jadi nil
	require.NotNil(t, req.BooksLanguage)
	assert.Equal(t, "Indonesia", *req.BooksLanguage)
}

func TestBookCreateRequestToModel(t *testing.T) {
	base := BookCreateRequest{
		BooksTitle:           "Laskar Pelangi",
		BooksAuthor:          "Andrea Hirata",
		BooksISBN:            "9780306406157",
		BooksPublisher:       "Bentang",
		BooksPublicationDate: "2005-09-01",
		BooksCategory:        "Novel",
		BooksPages:           529,
		BooksPrice:           12.5,
	}

	t.Run("default total 1, available = total", func(t *testing.T) {
		m, err := base.ToModel()
		require.NoError(t, err)

		assert.Equal(t, 1, m.BooksTotalCopies)
		assert.Equal(t, 1, m.BooksCopiesAvailable)
		assert.Equal(t, "English", m.BooksLanguage)
		assert.Equal(t, model.BookStatusAvailable, m.BooksStatus)
		assert.Equal(t, "2005-09-01", m.BooksPublicationDate.Format("2006-01-02"))
	})

	t.Run("available mengikuti total kalau tidak dikirim", func(t *testing.T) {
		req := base
		req.BooksTotalCopies = intPtr(5)

		m, err := req.ToModel()
		require.NoError(t, err)

		assert.Equal(t, 5, m.BooksTotalCopies)
		assert.Equal(t, 5, m.BooksCopiesAvailable)
	})

	t.Run("available eksplisit dipakai apa adanya", func(t *testing.T) {
		req := base
		req.BooksTotalCopies = intPtr(5)
		req.BooksCopiesAvailable = intPtr(3)

		m, err := req.ToModel()
		require.NoError(t, err)

		assert.Equal(t, 3, m.BooksCopiesAvailable)
	})

	t.Run("tanggal terbit invalid", func(t *testing.T) {
		req := base
		req.BooksPublicationDate = "01-09-2005"

		_, err := req.ToModel()
		assert.Error(t, err)
	})
}

func TestBookUpdateRequestNormalize(t *testing.T) {
	req := BookUpdateRequest{
		BooksTitle:  strPtr("  Bumi Manusia "),
		BooksAuthor: strPtr("   "),
		BooksStatus: strPtr(" available "),
	}

	req.Normalize()

	require.NotNil(t, req.BooksTitle)
	assert.Equal(t, "Bumi Manusia", *req.BooksTitle)
	assert.Nil(t, req.BooksAuthor)
	require.NotNil(t, req.BooksStatus)
	assert.Equal(t, "AVAILABLE", *req.BooksStatus)
}
