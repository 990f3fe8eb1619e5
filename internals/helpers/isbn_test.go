package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeISBN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"978-0-306-40615-7", "9780306406157"},
		{"ISBN 0-306-40615-2", "0306406152"},
		{"isbn-13: 978 0306406157", "9780306406157"},
		{" 043942089x ", "043942089X"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeISBN(tt.in), tt.in)
	}
}

func TestIsValidISBN(t *testing.T) {
	t.Run("ISBN-10 valid", func(t *testing.T) {
		assert.True(t, IsValidISBN("0306406152"))
		assert.True(t, IsValidISBN("0-306-40615-2"))
		assert.True(t, IsValidISBN("043942089X")) // check digit X
	})

	t.Run("ISBN-10 invalid", func(t *testing.T) {
		assert.False(t, IsValidISBN("0306406153"))  // check digit salah
		assert.False(t, IsValidISBN("030640615X"))  // X bukan check digit yang benar
		assert.False(t, IsValidISBN("03064061X2"))  // X di tengah
		assert.False(t, IsValidISBN("03064061ab"))
	})

	t.Run("ISBN-13 valid", func(t *testing.T) {
		assert.True(t, IsValidISBN("9780306406157"))
		assert.True(t, IsValidISBN("978-0-306-40615-7"))
	})

	t.Run("ISBN-13 invalid", func(t *testing.T) {
		assert.False(t, IsValidISBN("9780306406158")) // check digit salah
		assert.False(t, IsValidISBN("9770306406157")) // prefix bukan 978/979
	})

	t.Run("panjang salah", func(t *testing.T) {
		assert.False(t, IsValidISBN(""))
		assert.False(t, IsValidISBN("12345"))
		assert.False(t, IsValidISBN("97803064061577"))
	})
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("budi_santoso"))
	assert.True(t, IsValidUsername("User123"))
	assert.False(t, IsValidUsername(""))
	assert.False(t, IsValidUsername("budi santoso"))
	assert.False(t, IsValidUsername("budi-santoso"))
	assert.False(t, IsValidUsername("budi@kampus"))
}
