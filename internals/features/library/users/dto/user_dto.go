// internals/features/library/users/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "perpustakaanku_backend/internals/features/library/users/model"
)

/* =========================
   REQUEST
   ========================= */

type RegisterRequest struct {
	UsersFirstName   string  `json:"users_first_name" validate:"required,min=1,max=100"`
	UsersLastName    string  `json:"users_last_name"  validate:"required,min=1,max=100"`
	UsersEmail       string  `json:"users_email"      validate:"required,email,max=255"`
	UsersUsername    string  `json:"users_username"   validate:"required,min=3,max=50,username"`
	UsersPassword    string  `json:"users_password"   validate:"required,min=8"`
	UsersPhoneNumber string  `json:"users_phone_number" validate:"required,e164|numeric"`
	UsersDateOfBirth string  `json:"users_date_of_birth" validate:"required,datetime=2006-01-02"`
	UsersAddress     string  `json:"users_address"    validate:"required,min=10,max=500"`
	UsersRole        *string `json:"users_role,omitempty"`
	UsersStudentID   *string `json:"users_student_id,omitempty" validate:"omitempty,max=50"`
	UsersDepartment  *string `json:"users_department,omitempty" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email atau username
	Password   string `json:"password"   validate:"required"`
}

type UserUpdateRequest struct {
	UsersFirstName       *string `json:"users_first_name,omitempty" validate:"omitempty,min=1,max=100"`
	UsersLastName        *string `json:"users_last_name,omitempty"  validate:"omitempty,min=1,max=100"`
	UsersPhoneNumber     *string `json:"users_phone_number,omitempty" validate:"omitempty,e164|numeric"`
	UsersAddress         *string `json:"users_address,omitempty"    validate:"omitempty,min=10,max=500"`
	UsersDepartment      *string `json:"users_department,omitempty" validate:"omitempty,max=100"`
	UsersProfileImageURL *string `json:"users_profile_image_url,omitempty" validate:"omitempty,max=500"`
	// Hanya boleh diubah oleh staff:
	UsersRole   *string `json:"users_role,omitempty"`
	UsersStatus *string `json:"users_status,omitempty"`
}

/* =========================
   NORMALIZER
   ========================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (r *RegisterRequest) Normalize() {
	r.UsersFirstName = strings.TrimSpace(r.UsersFirstName)
	r.UsersLastName = strings.TrimSpace(r.UsersLastName)
	r.UsersEmail = strings.ToLower(strings.TrimSpace(r.UsersEmail))
	r.UsersUsername = strings.TrimSpace(r.UsersUsername)
	r.UsersPhoneNumber = strings.TrimSpace(r.UsersPhoneNumber)
	r.UsersAddress = strings.TrimSpace(r.UsersAddress)
	r.UsersStudentID = trimPtr(r.UsersStudentID)
	r.UsersDepartment = trimPtr(r.UsersDepartment)
	if r.UsersRole != nil {
		role := strings.ToUpper(strings.TrimSpace(*r.UsersRole))
		r.UsersRole = &role
	}
}

func (r *UserUpdateRequest) Normalize() {
	r.UsersFirstName = trimPtr(r.UsersFirstName)
	r.UsersLastName = trimPtr(r.UsersLastName)
	r.UsersPhoneNumber = trimPtr(r.UsersPhoneNumber)
	r.UsersAddress = trimPtr(r.UsersAddress)
	r.UsersDepartment = trimPtr(r.UsersDepartment)
	r.UsersProfileImageURL = trimPtr(r.UsersProfileImageURL)
	if r.UsersRole != nil {
		role := strings.ToUpper(strings.TrimSpace(*r.UsersRole))
		r.UsersRole = &role
	}
	if r.UsersStatus != nil {
		st := strings.ToUpper(strings.TrimSpace(*r.UsersStatus))
		r.UsersStatus = &st
	}
}

/* =========================
   RESPONSE
   ========================= */

type UserResponse struct {
	UsersID              uuid.UUID `json:"users_id"`
	UsersFirstName       string    `json:"users_first_name"`
	UsersLastName        string    `json:"users_last_name"`
	UsersFullName        string    `json:"users_full_name"`
	UsersEmail           string    `json:"users_email"`
	UsersUsername        string    `json:"users_username"`
	UsersPhoneNumber     string    `json:"users_phone_number"`
	UsersDateOfBirth     string    `json:"users_date_of_birth"`
	UsersAddress         string    `json:"users_address"`
	UsersRole            string    `json:"users_role"`
	UsersStatus          string    `json:"users_status"`
	UsersStudentID       *string   `json:"users_student_id,omitempty"`
	UsersDepartment      *string   `json:"users_department,omitempty"`
	UsersProfileImageURL *string   `json:"users_profile_image_url,omitempty"`
	UsersMaxBooks        int       `json:"users_max_books_allowed"`
	UsersBorrowingDays   int       `json:"users_borrowing_period_days"`
	UsersCreatedAt       time.Time `json:"users_created_at"`
	UsersUpdatedAt       time.Time `json:"users_updated_at"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UsersID:              m.UsersID,
		UsersFirstName:       m.UsersFirstName,
		UsersLastName:        m.UsersLastName,
		UsersFullName:        m.FullName(),
		UsersEmail:           m.UsersEmail,
		UsersUsername:        m.UsersUsername,
		UsersPhoneNumber:     m.UsersPhoneNumber,
		UsersDateOfBirth:     m.UsersDateOfBirth.Format("2006-01-02"),
		UsersAddress:         m.UsersAddress,
		UsersRole:            m.UsersRole,
		UsersStatus:          m.UsersStatus,
		UsersStudentID:       m.UsersStudentID,
		UsersDepartment:      m.UsersDepartment,
		UsersProfileImageURL: m.UsersProfileImageURL,
		UsersMaxBooks:        m.MaxBooksAllowed(),
		UsersBorrowingDays:   m.BorrowingPeriodDays(),
		UsersCreatedAt:       m.UsersCreatedAt,
		UsersUpdatedAt:       m.UsersUpdatedAt,
	}
}

func ToUserResponses(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToUserResponse(&ms[i]))
	}
	return out
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}
