package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	t.Run("halaman tengah", func(t *testing.T) {
		p := BuildPaginationFromPage(45, 2, 20)
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, 20, p.PerPage)
		assert.Equal(t, int64(45), p.Total)
		assert.Equal(t, 3, p.TotalPages) // ceil(45/20)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("halaman pertama", func(t *testing.T) {
		p := BuildPaginationFromPage(45, 1, 20)
		assert.False(t, p.HasPrev)
		assert.True(t, p.HasNext)
	})

	t.Run("halaman terakhir", func(t *testing.T) {
		p := BuildPaginationFromPage(45, 3, 20)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("data kosong tetap satu halaman", func(t *testing.T) {
		p := BuildPaginationFromPage(0, 1, 20)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("input invalid dinormalisasi", func(t *testing.T) {
		p := BuildPaginationFromPage(10, 0, 0)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
	})
}
