package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NormalizeISBN membuang prefix "ISBN", tanda hubung, dan spasi,
// lalu mengembalikan digit mentah (uppercase untuk check digit X).
func NormalizeISBN(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "ISBN-13")
	s = strings.TrimPrefix(s, "ISBN-10")
	s = strings.TrimPrefix(s, "ISBN")
	s = strings.TrimPrefix(s, ":")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// IsValidISBN menerima ISBN-10 atau ISBN-13 (boleh dengan hyphen/spasi).
func IsValidISBN(raw string) bool {
	s := NormalizeISBN(raw)
	switch len(s) {
	case 10:
		return isValidISBN10(s)
	case 13:
		return isValidISBN13(s)
	}
	return false
}

func isValidISBN10(s string) bool {
	sum := 0
	for i := 0; i < 10; i++ {
		ch := s[i]
		var v int
		switch {
		case ch >= '0' && ch <= '9':
			v = int(ch - '0')
		case ch == 'X' && i == 9: // X hanya boleh sebagai check digit
			v = 10
		default:
			return false
		}
		sum += v * (10 - i)
	}
	return sum%11 == 0
}

func isValidISBN13(s string) bool {
	if !strings.HasPrefix(s, "978") && !strings.HasPrefix(s, "979") {
		return false
	}
	sum := 0
	for i := 0; i < 13; i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return false
		}
		v := int(ch - '0')
		if i%2 == 1 {
			v *= 3
		}
		sum += v
	}
	return sum%10 == 0
}

// IsValidUsername: huruf, angka, dan underscore saja.
func IsValidUsername(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == '_':
		default:
			return false
		}
	}
	return true
}

// RegisterCustomValidators mendaftarkan tag `isbn` dan `username`
// ke instance validator.v10 milik package controller.
func RegisterCustomValidators(v *validator.Validate) {
	_ = v.RegisterValidation("isbn", func(fl validator.FieldLevel) bool {
		return IsValidISBN(fl.Field().String())
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return IsValidUsername(fl.Field().String())
	})
}
