// internals/features/library/books/controller/book_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "perpustakaanku_backend/internals/features/library/books/dto"
	model "perpustakaanku_backend/internals/features/library/books/model"
	borrowingModel "perpustakaanku_backend/internals/features/library/borrowings/model"
	helper "perpustakaanku_backend/internals/helpers"
)

type BookController struct {
	DB *gorm.DB
}

var validate = validator.New()

func init() {
	helper.RegisterCustomValidators(validate)
}

// =========================================================
// CREATE - POST /api/a/books
// =========================================================
func (h *BookController) Create(c *fiber.Ctx) error {
	var req dto.BookCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal terbit tidak valid")
	}

	// Aturan bisnis: tanggal terbit tidak boleh di masa depan,
	// dan available tidak boleh melebihi total.
	if m.BooksPublicationDate.After(time.Now()) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal terbit tidak boleh di masa depan")
	}
	if m.BooksCopiesAvailable > m.BooksTotalCopies {
		return helper.JsonError(c, fiber.StatusBadRequest, "Copies available tidak boleh melebihi total copies")
	}

	// Cek unik ISBN (soft-delete aware)
	var cnt int64
	if err := h.DB.Model(&model.BookModel{}).
		Where("books_isbn = ?", m.BooksISBN).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi ISBN")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Buku dengan ISBN tersebut sudah terdaftar")
	}

	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "uq_books_isbn") || strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Buku dengan ISBN tersebut sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data buku")
	}

	return helper.JsonCreated(c, "Buku berhasil dibuat", dto.ToBookResponse(m))
}

// =========================================================
// UPDATE - PUT /api/a/books/:id
// =========================================================
func (h *BookController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.BookUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.BooksStatus != nil && !model.IsValidBookStatus(*req.BooksStatus) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status buku tidak dikenal")
	}

	var m model.BookModel
	if err := h.DB.First(&m, "books_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data buku")
	}

	// ISBN berubah → cek duplikasi lagi
	if req.BooksISBN != nil && *req.BooksISBN != m.BooksISBN {
		var cnt int64
		if err := h.DB.Model(&model.BookModel{}).
			Where("books_isbn = ? AND books_id <> ?", *req.BooksISBN, m.BooksID).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi ISBN")
		}
		if cnt > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Buku dengan ISBN tersebut sudah terdaftar")
		}
		m.BooksISBN = *req.BooksISBN
	}

	if req.BooksTitle != nil {
		m.BooksTitle = *req.BooksTitle
	}
	if req.BooksAuthor != nil {
		m.BooksAuthor = *req.BooksAuthor
	}
	if req.BooksPublisher != nil {
		m.BooksPublisher = *req.BooksPublisher
	}
	if req.BooksPublicationDate != nil {
		pub, err := time.Parse("2006-01-02", *req.BooksPublicationDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal terbit tidak valid")
		}
		if pub.After(time.Now()) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal terbit tidak boleh di masa depan")
		}
		m.BooksPublicationDate = pub
	}
	if req.BooksCategory != nil {
		m.BooksCategory = *req.BooksCategory
	}
	if req.BooksPages != nil {
		m.BooksPages = *req.BooksPages
	}
	if req.BooksPrice != nil {
		m.BooksPrice = *req.BooksPrice
	}
	if req.BooksDescription != nil {
		m.BooksDescription = req.BooksDescription
	}
	if req.BooksLanguage != nil {
		m.BooksLanguage = *req.BooksLanguage
	}
	if req.BooksCoverImageURL != nil {
		m.BooksCoverImageURL = req.BooksCoverImageURL
	}
	if req.BooksStatus != nil {
		m.BooksStatus = *req.BooksStatus
	}

	// Total copies berubah: copy yang sedang dipinjam harus tetap muat.
	if req.BooksTotalCopies != nil {
		borrowed := m.BooksTotalCopies - m.BooksCopiesAvailable
		if *req.BooksTotalCopies < borrowed {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Total copies tidak boleh lebih kecil dari jumlah copy yang sedang dipinjam")
		}
		m.BooksTotalCopies = *req.BooksTotalCopies
		m.BooksCopiesAvailable = *req.BooksTotalCopies - borrowed
	}

	// Status AVAILABLE/BORROWED harus tetap selaras dengan stok,
	// juga setelah update manual.
	m.ReconcileStatus()

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data buku")
	}

	return helper.JsonUpdated(c, "Buku berhasil diperbarui", dto.ToBookResponse(&m))
}

// =========================================================
// DELETE - DELETE /api/a/books/:id (soft delete)
// Buku dengan pinjaman aktif tidak boleh dihapus (409).
// =========================================================
func (h *BookController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var m model.BookModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "books_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Buku tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data buku")
		}

		var active int64
		if err := tx.Model(&borrowingModel.BorrowingRecordModel{}).
			Where("borrowing_records_book_id = ? AND borrowing_records_status = ?",
				m.BooksID, borrowingModel.BorrowingStatusBorrowed).
			Count(&active).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek pinjaman aktif")
		}
		if active > 0 {
			return fiber.NewError(fiber.StatusConflict, "Buku masih punya pinjaman aktif, tidak bisa dihapus")
		}

		if err := tx.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus data buku")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "Buku berhasil dihapus", fiber.Map{"books_id": id})
}

// =========================================================
// ADD COPIES - POST /api/a/books/:id/add-copies
// =========================================================
func (h *BookController) AddCopies(c *fiber.Ctx) error {
	return h.adjustCopies(c, true)
}

// =========================================================
// REMOVE COPIES - POST /api/a/books/:id/remove-copies
// Copy yang sedang dipinjam tidak boleh ikut dihapus.
// =========================================================
func (h *BookController) RemoveCopies(c *fiber.Ctx) error {
	return h.adjustCopies(c, false)
}

func (h *BookController) adjustCopies(c *fiber.Ctx, add bool) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.BookAdjustCopiesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jumlah copies harus lebih dari 0")
	}

	var m model.BookModel
	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "books_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Buku tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data buku")
		}

		if add {
			if !m.AddCopies(req.Copies) {
				return fiber.NewError(fiber.StatusBadRequest, "Jumlah copies harus lebih dari 0")
			}
		} else {
			if !m.RemoveCopies(req.Copies) {
				return fiber.NewError(fiber.StatusBadRequest,
					"Tidak bisa menghapus copy melebihi stok yang tersedia (copy yang sedang dipinjam tidak dihitung)")
			}
		}

		if err := tx.Model(&model.BookModel{}).
			Where("books_id = ?", m.BooksID).
			Updates(map[string]any{
				"books_total_copies":     m.BooksTotalCopies,
				"books_copies_available": m.BooksCopiesAvailable,
				"books_status":           m.BooksStatus,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui stok buku")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Copies berhasil ditambahkan"
	if !add {
		msg = "Copies berhasil dikurangi"
	}
	return helper.JsonUpdated(c, msg, dto.ToBookResponse(&m))
}
