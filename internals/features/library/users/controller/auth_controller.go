// internals/features/library/users/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"perpustakaanku_backend/internals/configs"
	"perpustakaanku_backend/internals/constants"
	dto "perpustakaanku_backend/internals/features/library/users/dto"
	model "perpustakaanku_backend/internals/features/library/users/model"
	helper "perpustakaanku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

var validate = validator.New()

func init() {
	helper.RegisterCustomValidators(validate)
}

const accessTokenTTL = 24 * time.Hour

// =========================================================
// REGISTER - POST /api/auth/register
// =========================================================
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	dob, err := time.Parse("2006-01-02", req.UsersDateOfBirth)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal lahir tidak valid")
	}
	if !dob.Before(time.Now()) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal lahir harus di masa lalu")
	}

	// Self-register hanya untuk role peminjam/guest; staff dibuat admin.
	role := constants.RoleStudent
	if req.UsersRole != nil {
		switch *req.UsersRole {
		case constants.RoleStudent, constants.RoleFaculty, constants.RoleGuest:
			role = *req.UsersRole
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak diizinkan untuk pendaftaran mandiri")
		}
	}

	// Cek unik email/username (soft-delete aware lewat default scope)
	var cnt int64
	if err := h.DB.Model(&model.UserModel{}).
		Where("users_email = ? OR users_username = ?", req.UsersEmail, req.UsersUsername).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi akun")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email atau username sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UsersPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := &model.UserModel{
		UsersFirstName:   req.UsersFirstName,
		UsersLastName:    req.UsersLastName,
		UsersEmail:       req.UsersEmail,
		UsersUsername:    req.UsersUsername,
		UsersPassword:    string(hash),
		UsersPhoneNumber: req.UsersPhoneNumber,
		UsersDateOfBirth: dob,
		UsersAddress:     req.UsersAddress,
		UsersRole:        role,
		UsersStatus:      constants.UserStatusActive,
		UsersStudentID:   req.UsersStudentID,
		UsersDepartment:  req.UsersDepartment,
	}

	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email atau username sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil", dto.ToUserResponse(m))
}

// =========================================================
// LOGIN - POST /api/auth/login
// Identifier boleh email atau username.
// =========================================================
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	identifier := strings.ToLower(strings.TrimSpace(req.Identifier))

	var m model.UserModel
	if err := h.DB.
		Where("users_email = ? OR users_username = ?", identifier, strings.TrimSpace(req.Identifier)).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data akun")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.UsersPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
	}

	if !m.IsActive() {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda tidak aktif")
	}

	token, exp, err := issueAccessToken(&m)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   exp,
		User:        dto.ToUserResponse(&m),
	})
}

// =========================================================
// ME - GET /api/u/users/me
// =========================================================
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var m model.UserModel
	if err := h.DB.First(&m, "users_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(&m))
}

func issueAccessToken(m *model.UserModel) (string, int64, error) {
	now := time.Now()
	exp := now.Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"user_id": m.UsersID.String(),
		"role":    m.UsersRole,
		"iat":     now.Unix(),
		"exp":     exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return signed, int64(accessTokenTTL.Seconds()), nil
}
