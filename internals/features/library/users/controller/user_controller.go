// internals/features/library/users/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpustakaanku_backend/internals/constants"
	borrowingModel "perpustakaanku_backend/internals/features/library/borrowings/model"
	dto "perpustakaanku_backend/internals/features/library/users/dto"
	model "perpustakaanku_backend/internals/features/library/users/model"
	helper "perpustakaanku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

// =========================================================
// DETAIL - GET /api/a/users/:id
// =========================================================
func (h *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.UserModel
	if err := h.DB.First(&m, "users_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(&m))
}

// =========================================================
// LIST + FILTER - GET /api/a/users
// Query: q (nama/email/username), role, status, page, per_page
// =========================================================
func (h *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.UserModel{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where(
			"lower(users_first_name) LIKE ? OR lower(users_last_name) LIKE ? OR lower(users_email) LIKE ? OR lower(users_username) LIKE ?",
			like, like, like, like,
		)
	}
	if role := strings.ToUpper(strings.TrimSpace(c.Query("role"))); role != "" {
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
		}
		tx = tx.Where("users_role = ?", role)
	}
	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		if !constants.IsValidUserStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status user tidak dikenal")
		}
		tx = tx.Where("users_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data user")
	}

	var items []model.UserModel
	if err := tx.Order("users_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonList(c, "ok",
		dto.ToUserResponses(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =========================================================
// UPDATE - PUT /api/a/users/:id
// Role/status hanya lewat endpoint staff ini.
// =========================================================
func (h *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.UsersRole != nil && !constants.IsValidRole(*req.UsersRole) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
	}
	if req.UsersStatus != nil && !constants.IsValidUserStatus(*req.UsersStatus) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status user tidak dikenal")
	}

	var m model.UserModel
	if err := h.DB.First(&m, "users_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	if req.UsersFirstName != nil {
		m.UsersFirstName = *req.UsersFirstName
	}
	if req.UsersLastName != nil {
		m.UsersLastName = *req.UsersLastName
	}
	if req.UsersPhoneNumber != nil {
		m.UsersPhoneNumber = *req.UsersPhoneNumber
	}
	if req.UsersAddress != nil {
		m.UsersAddress = *req.UsersAddress
	}
	if req.UsersDepartment != nil {
		m.UsersDepartment = req.UsersDepartment
	}
	if req.UsersProfileImageURL != nil {
		m.UsersProfileImageURL = req.UsersProfileImageURL
	}
	if req.UsersRole != nil {
		m.UsersRole = *req.UsersRole
	}
	if req.UsersStatus != nil {
		m.UsersStatus = *req.UsersStatus
	}

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data user")
	}
	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.ToUserResponse(&m))
}

// =========================================================
// DELETE - DELETE /api/a/users/:id (soft delete)
// User dengan pinjaman aktif tidak boleh dihapus (409).
// =========================================================
func (h *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var m model.UserModel
		if err := tx.First(&m, "users_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
		}

		var active int64
		if err := tx.Model(&borrowingModel.BorrowingRecordModel{}).
			Where("borrowing_records_user_id = ? AND borrowing_records_status = ?",
				m.UsersID, borrowingModel.BorrowingStatusBorrowed).
			Count(&active).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek pinjaman aktif")
		}
		if active > 0 {
			return fiber.NewError(fiber.StatusConflict, "User masih punya pinjaman aktif, tidak bisa dihapus")
		}

		if err := tx.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus data user")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"users_id": id})
}

// =========================================================
// ACTIVE LOAN COUNT - GET /api/a/users/:id/active-loans
// =========================================================
func (h *UserController) ActiveLoanCount(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.UserModel
	if err := h.DB.First(&m, "users_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	var active int64
	if err := h.DB.Model(&borrowingModel.BorrowingRecordModel{}).
		Where("borrowing_records_user_id = ? AND borrowing_records_status = ?",
			m.UsersID, borrowingModel.BorrowingStatusBorrowed).
		Count(&active).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pinjaman aktif")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"users_id":          m.UsersID,
		"active_loans":      active,
		"max_books_allowed": m.MaxBooksAllowed(),
		"remaining_quota":   int64(m.MaxBooksAllowed()) - active,
	})
}
