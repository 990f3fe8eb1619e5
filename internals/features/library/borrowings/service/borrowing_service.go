// internals/features/library/borrowings/service/borrowing_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookModel "perpustakaanku_backend/internals/features/library/books/model"
	model "perpustakaanku_backend/internals/features/library/borrowings/model"
	userModel "perpustakaanku_backend/internals/features/library/users/model"
)

// BorrowingService memegang orkestrasi lifecycle pinjaman.
// Mutasi copy count + baris borrowing_records SELALU satu transaksi:
// dua write itu commit bareng atau rollback bareng. Baris buku dikunci
// FOR UPDATE supaya dua request borrow paralel pada buku yang sama
// diserialisasi dan tidak bisa sama-sama lolos cek copies_available.
type BorrowingService struct {
	DB *gorm.DB
}

func NewBorrowingService(db *gorm.DB) *BorrowingService {
	return &BorrowingService{DB: db}
}

/* =========================================================
   Keputusan eligibility (pure, tanpa DB)
   ========================================================= */

// CheckBorrowEligibility memutuskan boleh/tidaknya satu pinjaman dibuat.
// Dipisah sebagai fungsi murni supaya kontraknya bisa diuji tanpa database.
func CheckBorrowEligibility(u *userModel.UserModel, activeLoans int64, b *bookModel.BookModel) error {
	if !u.CanBorrowBooks() {
		return fiber.NewError(fiber.StatusBadRequest,
			"User tidak boleh meminjam (status harus ACTIVE dan role STUDENT/FACULTY)")
	}
	if activeLoans >= int64(u.MaxBooksAllowed()) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Batas pinjaman tercapai (maksimal %d buku untuk role %s)",
				u.MaxBooksAllowed(), u.UsersRole))
	}
	if !b.IsAvailable() {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada copy yang tersedia untuk dipinjam")
	}
	return nil
}

/* =========================================================
   Operasi transaksional
   ========================================================= */

// BorrowBook membuat pinjaman baru: kunci baris buku, cek eligibility,
// kurangi copy, insert record — semuanya dalam satu transaksi.
func (s *BorrowingService) BorrowBook(
	ctx context.Context,
	userID, bookID uuid.UUID,
	expectedReturnOverride *time.Time,
	notes *string,
) (*model.BorrowingRecordModel, error) {
	var created *model.BorrowingRecordModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock baris buku dulu: ini titik serialisasi per-entity.
		var book bookModel.BookModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, "books_id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Buku tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data buku")
		}

		// Baris user ikut dikunci: dua borrow paralel oleh patron yang
		// sama pada buku berbeda tidak boleh sama-sama lolos cek kuota.
		var user userModel.UserModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, "users_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
		}

		var activeLoans int64
		if err := tx.Model(&model.BorrowingRecordModel{}).
			Where("borrowing_records_user_id = ? AND borrowing_records_status = ?",
				userID, model.BorrowingStatusBorrowed).
			Count(&activeLoans).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung pinjaman aktif")
		}

		if err := CheckBorrowEligibility(&user, activeLoans, &book); err != nil {
			return err
		}

		if !book.BorrowCopy() {
			// IsAvailable() lolos tapi copy habis — tidak mungkin selama
			// semua mutasi lewat operasi ini, tapi tetap dijaga.
			return fiber.NewError(fiber.StatusConflict, "Copy buku sudah habis dipinjam")
		}
		if err := tx.Model(&bookModel.BookModel{}).
			Where("books_id = ?", book.BooksID).
			Updates(map[string]any{
				"books_copies_available": book.BooksCopiesAvailable,
				"books_status":           book.BooksStatus,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui stok buku")
		}

		today := model.DateOnly(time.Now())
		due := today.AddDate(0, 0, user.BorrowingPeriodDays())
		if expectedReturnOverride != nil {
			due = model.DateOnly(*expectedReturnOverride)
		}

		rec := &model.BorrowingRecordModel{
			BorrowingRecordsUserID:             userID,
			BorrowingRecordsBookID:             bookID,
			BorrowingRecordsBorrowedDate:       today,
			BorrowingRecordsExpectedReturnDate: due,
			BorrowingRecordsStatus:             model.BorrowingStatusBorrowed,
			BorrowingRecordsMaxRenewals:        model.DefaultMaxRenewals,
			BorrowingRecordsNotes:              notes,
		}
		if err := tx.Create(rec).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat record peminjaman")
		}

		created = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ReturnBook menutup pinjaman: set tanggal kembali + denda (kalau telat)
// dan kembalikan copy ke stok, dalam satu transaksi.
func (s *BorrowingService) ReturnBook(ctx context.Context, recordID uuid.UUID) (*model.BorrowingRecordModel, error) {
	var updated *model.BorrowingRecordModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := lockRecord(tx, recordID)
		if err != nil {
			return err
		}

		var book bookModel.BookModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, "books_id = ?", rec.BorrowingRecordsBookID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data buku")
		}

		if !rec.ReturnBookAt(time.Now()) {
			return errLoanNotActive
		}
		if !book.ReturnCopy() {
			// Semua copy sudah di rak padahal masih ada record aktif:
			// inventori korup, bukan kesalahan input.
			return fiber.NewError(fiber.StatusInternalServerError, "Inventori tidak konsisten (over-return)")
		}

		if err := tx.Model(&bookModel.BookModel{}).
			Where("books_id = ?", book.BooksID).
			Updates(map[string]any{
				"books_copies_available": book.BooksCopiesAvailable,
				"books_status":           book.BooksStatus,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui stok buku")
		}
		if err := tx.Model(&model.BorrowingRecordModel{}).
			Where("borrowing_records_id = ?", rec.BorrowingRecordsID).
			Updates(map[string]any{
				"borrowing_records_actual_return_date": rec.BorrowingRecordsActualReturnDate,
				"borrowing_records_status":             rec.BorrowingRecordsStatus,
				"borrowing_records_fine_amount":        rec.BorrowingRecordsFineAmount,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui record peminjaman")
		}

		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RenewBook memperpanjang jatuh tempo. Pinjaman yang terlambat atau
// jatah perpanjangannya habis tidak bisa memperpanjang diri.
func (s *BorrowingService) RenewBook(ctx context.Context, recordID uuid.UUID, additionalDays *int) (*model.BorrowingRecordModel, error) {
	var updated *model.BorrowingRecordModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := lockRecord(tx, recordID)
		if err != nil {
			return err
		}

		days := 0
		if additionalDays != nil {
			days = *additionalDays
		} else {
			var user userModel.UserModel
			if err := tx.First(&user, "users_id = ?", rec.BorrowingRecordsUserID).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
			}
			days = user.BorrowingPeriodDays()
		}
		if days <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Jumlah hari perpanjangan tidak valid")
		}

		if !rec.RenewAt(days, time.Now()) {
			return fiber.NewError(fiber.StatusBadRequest,
				"Pinjaman tidak bisa diperpanjang (terlambat, sudah kembali, atau jatah perpanjangan habis)")
		}

		if err := tx.Model(&model.BorrowingRecordModel{}).
			Where("borrowing_records_id = ?", rec.BorrowingRecordsID).
			Updates(map[string]any{
				"borrowing_records_expected_return_date": rec.BorrowingRecordsExpectedReturnDate,
				"borrowing_records_renewal_count":        rec.BorrowingRecordsRenewalCount,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui record peminjaman")
		}

		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// PayFine menandai denda lunas (tanggal hari ini).
func (s *BorrowingService) PayFine(ctx context.Context, recordID uuid.UUID) (*model.BorrowingRecordModel, error) {
	var updated *model.BorrowingRecordModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := lockRecord(tx, recordID)
		if err != nil {
			return err
		}

		if !rec.PayFineAt(time.Now()) {
			return fiber.NewError(fiber.StatusBadRequest, "Tidak ada denda yang harus dibayar (atau sudah lunas)")
		}

		if err := tx.Model(&model.BorrowingRecordModel{}).
			Where("borrowing_records_id = ?", rec.BorrowingRecordsID).
			Update("borrowing_records_fine_paid_date", rec.BorrowingRecordsFinePaidDate).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui record peminjaman")
		}

		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// MarkLost: terminal state administratif. Record ditutup sebagai LOST;
// copy yang hilang tetap tercatat keluar dari rak (stok tidak bertambah).
func (s *BorrowingService) MarkLost(ctx context.Context, recordID uuid.UUID, notes *string) (*model.BorrowingRecordModel, error) {
	var updated *model.BorrowingRecordModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := lockRecord(tx, recordID)
		if err != nil {
			return err
		}
		if rec.BorrowingRecordsStatus != model.BorrowingStatusBorrowed {
			return fiber.NewError(fiber.StatusBadRequest, "Hanya pinjaman aktif yang bisa ditandai hilang")
		}

		rec.BorrowingRecordsStatus = model.BorrowingStatusLost
		if notes != nil {
			t := strings.TrimSpace(*notes)
			if t != "" {
				rec.BorrowingRecordsNotes = &t
			}
		}

		if err := tx.Model(&model.BorrowingRecordModel{}).
			Where("borrowing_records_id = ?", rec.BorrowingRecordsID).
			Updates(map[string]any{
				"borrowing_records_status": rec.BorrowingRecordsStatus,
				"borrowing_records_notes":  rec.BorrowingRecordsNotes,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui record peminjaman")
		}

		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

/* =========================================================
   Helpers
   ========================================================= */

// Record yang statusnya bukan BORROWED (sudah kembali, hilang, atau
// rusak) tidak bisa dikembalikan lagi.
var errLoanNotActive = fiber.NewError(fiber.StatusBadRequest,
	"Pinjaman tidak aktif (sudah dikembalikan, hilang, atau rusak)")

func lockRecord(tx *gorm.DB, recordID uuid.UUID) (*model.BorrowingRecordModel, error) {
	var rec model.BorrowingRecordModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&rec, "borrowing_records_id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Record peminjaman tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil record peminjaman")
	}
	return &rec, nil
}
