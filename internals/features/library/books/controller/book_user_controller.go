// internals/features/library/books/controller/book_user_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "perpustakaanku_backend/internals/features/library/books/dto"
	model "perpustakaanku_backend/internals/features/library/books/model"
	borrowingModel "perpustakaanku_backend/internals/features/library/borrowings/model"
	helper "perpustakaanku_backend/internals/helpers"
)

// =========================================================
// DETAIL - GET /api/public/books/:id
// =========================================================
func (h *BookController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.BookModel
	if err := h.DB.First(&m, "books_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data buku")
	}
	return helper.JsonOK(c, "ok", dto.ToBookResponse(&m))
}

// =========================================================
// DETAIL BY ISBN - GET /api/public/books/isbn/:isbn
// =========================================================
func (h *BookController) GetByISBN(c *fiber.Ctx) error {
	isbn := strings.TrimSpace(c.Params("isbn"))
	if !helper.IsValidISBN(isbn) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ISBN tidak valid")
	}

	var m model.BookModel
	if err := h.DB.First(&m, "books_isbn = ?", isbn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data buku")
	}
	return helper.JsonOK(c, "ok", dto.ToBookResponse(&m))
}

// =========================================================
// LIST + FILTER - GET /api/public/books
// Query: q, title, author, category, status, language,
//        min_price, max_price, published_from, published_to,
//        sort (recent|title), page, per_page
// =========================================================
func (h *BookController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.BookModel{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where(
			"lower(books_title) LIKE ? OR lower(books_author) LIKE ? OR lower(books_category) LIKE ?",
			like, like, like,
		)
	}
	if title := strings.TrimSpace(c.Query("title")); title != "" {
		tx = tx.Where("lower(books_title) LIKE ?", "%"+strings.ToLower(title)+"%")
	}
	if author := strings.TrimSpace(c.Query("author")); author != "" {
		tx = tx.Where("lower(books_author) LIKE ?", "%"+strings.ToLower(author)+"%")
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		tx = tx.Where("lower(books_category) LIKE ?", "%"+strings.ToLower(category)+"%")
	}
	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		if !model.IsValidBookStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status buku tidak dikenal")
		}
		tx = tx.Where("books_status = ?", status)
	}
	if language := strings.TrimSpace(c.Query("language")); language != "" {
		tx = tx.Where("lower(books_language) = lower(?)", language)
	}
	if minStr := strings.TrimSpace(c.Query("min_price")); minStr != "" {
		if v, err := strconv.ParseFloat(minStr, 64); err == nil {
			tx = tx.Where("books_price >= ?", v)
		}
	}
	if maxStr := strings.TrimSpace(c.Query("max_price")); maxStr != "" {
		if v, err := strconv.ParseFloat(maxStr, 64); err == nil {
			tx = tx.Where("books_price <= ?", v)
		}
	}
	if from := strings.TrimSpace(c.Query("published_from")); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			tx = tx.Where("books_publication_date >= ?", t)
		}
	}
	if to := strings.TrimSpace(c.Query("published_to")); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			tx = tx.Where("books_publication_date <= ?", t)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data buku")
	}

	order := "books_created_at DESC"
	if c.Query("sort") == "title" {
		order = "books_title ASC"
	}

	var items []model.BookModel
	if err := tx.Order(order).
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data buku")
	}

	return helper.JsonList(c, "ok",
		dto.ToBookResponses(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =========================================================
// AVAILABLE - GET /api/public/books/available
// =========================================================
func (h *BookController) Available(c *fiber.Ctx) error {
	var items []model.BookModel
	if err := h.DB.
		Where("books_status = ? AND books_copies_available > 0", model.BookStatusAvailable).
		Order("books_title ASC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data buku")
	}
	return helper.JsonOK(c, "ok", dto.ToBookResponses(items))
}

// =========================================================
// LOW AVAILABILITY - GET /api/a/books/low-availability?min_copies=N
// =========================================================
func (h *BookController) LowAvailability(c *fiber.Ctx) error {
	minCopies := 2
	if v, err := strconv.Atoi(c.Query("min_copies", "2")); err == nil && v > 0 {
		minCopies = v
	}

	var items []model.BookModel
	if err := h.DB.
		Where("books_copies_available < ?", minCopies).
		Order("books_copies_available ASC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data buku")
	}
	return helper.JsonOK(c, "ok", dto.ToBookResponses(items))
}

// =========================================================
// NEEDING RESTOCK - GET /api/a/books/needing-restock
// Semua copy habis dipinjam.
// =========================================================
func (h *BookController) NeedingRestock(c *fiber.Ctx) error {
	var items []model.BookModel
	if err := h.DB.
		Where("books_copies_available = 0 AND books_status = ?", model.BookStatusBorrowed).
		Order("books_title ASC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data buku")
	}
	return helper.JsonOK(c, "ok", dto.ToBookResponses(items))
}

// =========================================================
// POPULAR - GET /api/public/books/popular
// Diurutkan berdasarkan jumlah record peminjaman.
// =========================================================
func (h *BookController) Popular(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	var items []model.BookModel
	if err := h.DB.
		Joins("LEFT JOIN borrowing_records ON borrowing_records.borrowing_records_book_id = books.books_id AND borrowing_records.borrowing_records_deleted_at IS NULL").
		Group("books.books_id").
		Order("COUNT(borrowing_records.borrowing_records_id) DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data buku")
	}
	return helper.JsonOK(c, "ok", dto.ToBookResponses(items))
}

// =========================================================
// STATISTICS - GET /api/a/books/statistics
// =========================================================
func (h *BookController) Statistics(c *fiber.Ctx) error {
	var stats dto.BookStatisticsResponse

	if err := h.DB.Model(&model.BookModel{}).Count(&stats.TotalBooks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	if err := h.DB.Model(&model.BookModel{}).
		Where("books_status = ?", model.BookStatusAvailable).
		Count(&stats.AvailableBooks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	if err := h.DB.Model(&model.BookModel{}).
		Where("books_status = ?", model.BookStatusBorrowed).
		Count(&stats.BorrowedBooks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	if err := h.DB.Model(&model.BookModel{}).
		Where("books_copies_available = 0 AND books_status = ?", model.BookStatusBorrowed).
		Count(&stats.BooksNeedingRestock).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}

	// Buku yang punya pinjaman lewat jatuh tempo. Kolom jatuh tempo
	// bertipe date: pembandingnya tanggal hari ini, bukan timestamp,
	// supaya jatuh tempo hari ini belum dihitung terlambat.
	if err := h.DB.Model(&model.BookModel{}).
		Where("books_id IN (?)",
			h.DB.Model(&borrowingModel.BorrowingRecordModel{}).
				Select("borrowing_records_book_id").
				Where("borrowing_records_status = ? AND borrowing_records_expected_return_date < ?",
					borrowingModel.BorrowingStatusBorrowed, borrowingModel.DateOnly(time.Now())),
		).
		Count(&stats.OverdueBooks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}

	// Rata-rata persentase ketersediaan (0 untuk total 0, defensif)
	row := h.DB.Model(&model.BookModel{}).
		Select(`COALESCE(AVG(
			CASE WHEN books_total_copies = 0 THEN 0
			ELSE books_copies_available::float / books_total_copies * 100 END
		), 0)`).Row()
	if err := row.Scan(&stats.AverageAvailabilityPercentage); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}

	return helper.JsonOK(c, "ok", stats)
}
