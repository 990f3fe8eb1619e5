package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perpustakaanku_backend/internals/constants"
	bookModel "perpustakaanku_backend/internals/features/library/books/model"
	userModel "perpustakaanku_backend/internals/features/library/users/model"
)

func borrower(role, status string) *userModel.UserModel {
	return &userModel.UserModel{
		UsersRole:   role,
		UsersStatus: status,
	}
}

func availableBook() *bookModel.BookModel {
	return &bookModel.BookModel{
		BooksTotalCopies:     3,
		BooksCopiesAvailable: 2,
		BooksStatus:          bookModel.BookStatusAvailable,
	}
}

func TestLoanNotActiveError(t *testing.T) {
	// Pengembalian pada record non-BORROWED (sudah kembali, hilang,
	// atau rusak) ditolak 400 tanpa mengklaim record sudah kembali.
	assert.Equal(t, fiber.StatusBadRequest, errLoanNotActive.Code)
	assert.Contains(t, errLoanNotActive.Message, "tidak aktif")
}

func TestCheckBorrowEligibility(t *testing.T) {
	t.Run("student aktif boleh meminjam", func(t *testing.T) {
		err := CheckBorrowEligibility(
			borrower(constants.RoleStudent, constants.UserStatusActive), 0, availableBook())
		assert.NoError(t, err)
	})

	t.Run("faculty aktif boleh meminjam sampai batas 10", func(t *testing.T) {
		u := borrower(constants.RoleFaculty, constants.UserStatusActive)
		assert.NoError(t, CheckBorrowEligibility(u, 9, availableBook()))
		assert.Error(t, CheckBorrowEligibility(u, 10, availableBook()))
	})

	t.Run("student dengan 5 pinjaman aktif ditolak", func(t *testing.T) {
		err := CheckBorrowEligibility(
			borrower(constants.RoleStudent, constants.UserStatusActive), 5, availableBook())
		require.Error(t, err)

		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	})

	t.Run("guest tidak boleh meminjam", func(t *testing.T) {
		err := CheckBorrowEligibility(
			borrower(constants.RoleGuest, constants.UserStatusActive), 0, availableBook())
		assert.Error(t, err)
	})

	t.Run("staff tidak meminjam lewat sirkulasi member", func(t *testing.T) {
		assert.Error(t, CheckBorrowEligibility(
			borrower(constants.RoleLibrarian, constants.UserStatusActive), 0, availableBook()))
		assert.Error(t, CheckBorrowEligibility(
			borrower(constants.RoleAdmin, constants.UserStatusActive), 0, availableBook()))
	})

	t.Run("user non-aktif ditolak", func(t *testing.T) {
		for _, status := range []string{
			constants.UserStatusInactive,
			constants.UserStatusSuspended,
			constants.UserStatusBanned,
		} {
			err := CheckBorrowEligibility(
				borrower(constants.RoleStudent, status), 0, availableBook())
			assert.Error(t, err, status)
		}
	})

	t.Run("buku tanpa copy tersedia ditolak", func(t *testing.T) {
		b := availableBook()
		b.BooksCopiesAvailable = 0
		b.BooksStatus = bookModel.BookStatusBorrowed

		err := CheckBorrowEligibility(
			borrower(constants.RoleStudent, constants.UserStatusActive), 0, b)
		require.Error(t, err)

		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	})

	t.Run("buku MAINTENANCE ditolak walau ada copy", func(t *testing.T) {
		b := availableBook()
		b.BooksStatus = bookModel.BookStatusMaintenance

		assert.Error(t, CheckBorrowEligibility(
			borrower(constants.RoleStudent, constants.UserStatusActive), 0, b))
	})
}
