// internals/features/library/borrowings/controller/borrowing_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "perpustakaanku_backend/internals/features/library/borrowings/dto"
	model "perpustakaanku_backend/internals/features/library/borrowings/model"
	service "perpustakaanku_backend/internals/features/library/borrowings/service"
	helper "perpustakaanku_backend/internals/helpers"
)

type BorrowingController struct {
	DB      *gorm.DB
	Service *service.BorrowingService
}

func NewBorrowingController(db *gorm.DB) *BorrowingController {
	return &BorrowingController{
		DB:      db,
		Service: service.NewBorrowingService(db),
	}
}

var validate = validator.New()

// =========================================================
// BORROW - POST /api/a/borrowings
// Decrement copy + insert record = satu transaksi (di service).
// =========================================================
func (h *BorrowingController) Borrow(c *fiber.Ctx) error {
	var req dto.BorrowRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	override, err := req.ParseExpectedReturnDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal jatuh tempo tidak valid")
	}
	if override != nil && !override.After(time.Now()) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal jatuh tempo harus di masa depan")
	}

	rec, err := h.Service.BorrowBook(c.Context(), req.UserID, req.BookID, override, req.Notes)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Peminjaman berhasil dibuat", dto.ToBorrowingRecordResponse(rec))
}

// =========================================================
// RETURN - POST /api/a/borrowings/:id/return
// =========================================================
func (h *BorrowingController) Return(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	rec, err := h.Service.ReturnBook(c.Context(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Buku berhasil dikembalikan"
	if rec.BorrowingRecordsFineAmount > 0 {
		msg = "Buku dikembalikan terlambat, denda tercatat"
	}
	return helper.JsonUpdated(c, msg, dto.ToBorrowingRecordResponse(rec))
}

// =========================================================
// RENEW - POST /api/a/borrowings/:id/renew
// =========================================================
func (h *BorrowingController) Renew(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.RenewRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
		if err := validate.Struct(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	rec, err := h.Service.RenewBook(c.Context(), id, req.AdditionalDays)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Pinjaman berhasil diperpanjang", dto.ToBorrowingRecordResponse(rec))
}

// =========================================================
// PAY FINE - POST /api/a/borrowings/:id/pay-fine
// =========================================================
func (h *BorrowingController) PayFine(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	rec, err := h.Service.PayFine(c.Context(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Denda berhasil dibayar", dto.ToBorrowingRecordResponse(rec))
}

// =========================================================
// MARK LOST - POST /api/a/borrowings/:id/mark-lost
// =========================================================
func (h *BorrowingController) MarkLost(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.MarkLostRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
		if err := validate.Struct(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	rec, err := h.Service.MarkLost(c.Context(), id, req.Notes)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Pinjaman ditandai hilang", dto.ToBorrowingRecordResponse(rec))
}

// =========================================================
// DETAIL - GET /api/a/borrowings/:id
// =========================================================
func (h *BorrowingController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.BorrowingRecordModel
	if err := h.DB.First(&m, "borrowing_records_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record peminjaman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil record peminjaman")
	}
	return helper.JsonOK(c, "ok", dto.ToBorrowingRecordResponse(&m))
}

// =========================================================
// LIST + FILTER - GET /api/a/borrowings
// Query: user_id, book_id, status, page, per_page
// =========================================================
func (h *BorrowingController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.BorrowingRecordModel{})

	if raw := strings.TrimSpace(c.Query("user_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
		}
		tx = tx.Where("borrowing_records_user_id = ?", id)
	}
	if raw := strings.TrimSpace(c.Query("book_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "book_id tidak valid")
		}
		tx = tx.Where("borrowing_records_book_id = ?", id)
	}
	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		if !model.IsValidBorrowingStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status peminjaman tidak dikenal")
		}
		tx = tx.Where("borrowing_records_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung record peminjaman")
	}

	var items []model.BorrowingRecordModel
	if err := tx.Order("borrowing_records_borrowed_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil record peminjaman")
	}

	return helper.JsonList(c, "ok",
		dto.ToBorrowingRecordResponses(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =========================================================
// ACTIVE - GET /api/a/borrowings/active
// =========================================================
func (h *BorrowingController) Active(c *fiber.Ctx) error {
	var items []model.BorrowingRecordModel
	if err := h.DB.
		Where("borrowing_records_status = ?", model.BorrowingStatusBorrowed).
		Order("borrowing_records_expected_return_date ASC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil record peminjaman")
	}
	return helper.JsonOK(c, "ok", dto.ToBorrowingRecordResponses(items))
}

// overdueCutoff: batas overdue untuk query. Kolom jatuh tempo bertipe
// date, jadi pembandingnya juga tanggal (bukan timestamp) — pinjaman
// yang jatuh tempo HARI INI belum terlambat, sama seperti IsOverdueAt.
func overdueCutoff(now time.Time) time.Time {
	return model.DateOnly(now)
}

// dueSoonWindow: rentang [hari ini, hari ini+days] inklusif, sehingga
// record yang jatuh tempo hari ini masih masuk due-soon.
func dueSoonWindow(now time.Time, days int) (time.Time, time.Time) {
	from := model.DateOnly(now)
	return from, from.AddDate(0, 0, days)
}

// =========================================================
// OVERDUE - GET /api/a/borrowings/overdue
// Overdue = kondisi derived: masih BORROWED dan lewat jatuh tempo.
// =========================================================
func (h *BorrowingController) Overdue(c *fiber.Ctx) error {
	var items []model.BorrowingRecordModel
	if err := h.DB.
		Where("borrowing_records_status = ? AND borrowing_records_expected_return_date < ?",
			model.BorrowingStatusBorrowed, overdueCutoff(time.Now())).
		Order("borrowing_records_expected_return_date ASC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil record peminjaman")
	}
	return helper.JsonOK(c, "ok", dto.ToBorrowingRecordResponses(items))
}

// =========================================================
// DUE SOON - GET /api/a/borrowings/due-soon?days=N
// =========================================================
func (h *BorrowingController) DueSoon(c *fiber.Ctx) error {
	days := 3
	if v, err := strconv.Atoi(c.Query("days", "3")); err == nil && v > 0 {
		days = v
	}
	from, until := dueSoonWindow(time.Now(), days)

	var items []model.BorrowingRecordModel
	if err := h.DB.
		Where("borrowing_records_status = ? AND borrowing_records_expected_return_date BETWEEN ? AND ?",
			model.BorrowingStatusBorrowed, from, until).
		Order("borrowing_records_expected_return_date ASC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil record peminjaman")
	}
	return helper.JsonOK(c, "ok", dto.ToBorrowingRecordResponses(items))
}

// =========================================================
// OUTSTANDING FINES - GET /api/a/borrowings/outstanding-fines
// =========================================================
func (h *BorrowingController) OutstandingFines(c *fiber.Ctx) error {
	var items []model.BorrowingRecordModel
	if err := h.DB.
		Where("borrowing_records_fine_amount > 0 AND borrowing_records_fine_paid_date IS NULL").
		Order("borrowing_records_fine_amount DESC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil record peminjaman")
	}
	return helper.JsonOK(c, "ok", dto.ToBorrowingRecordResponses(items))
}

// =========================================================
// MY BORROWINGS - GET /api/u/borrowings
// Riwayat pinjaman milik user yang sedang login.
// =========================================================
func (h *BorrowingController) MyBorrowings(c *fiber.Ctx) error {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.BorrowingRecordModel{}).
		Where("borrowing_records_user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung record peminjaman")
	}

	var items []model.BorrowingRecordModel
	if err := tx.Order("borrowing_records_borrowed_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil record peminjaman")
	}

	return helper.JsonList(c, "ok",
		dto.ToBorrowingRecordResponses(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
