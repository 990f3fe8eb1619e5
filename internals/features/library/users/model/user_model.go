// internals/features/library/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpustakaanku_backend/internals/constants"
)

type UserModel struct {
	// PK
	UsersID uuid.UUID `json:"users_id" gorm:"column:users_id;type:uuid;default:gen_random_uuid();primaryKey"`

	UsersFirstName string `json:"users_first_name" gorm:"column:users_first_name;type:varchar(100);not null"`
	UsersLastName  string `json:"users_last_name"  gorm:"column:users_last_name;type:varchar(100);not null"`

	// Natural keys (unik selama baris alive)
	UsersEmail    string `json:"users_email"    gorm:"column:users_email;type:varchar(255);not null;index:uq_users_email_alive,unique,where:users_deleted_at IS NULL"`
	UsersUsername string `json:"users_username" gorm:"column:users_username;type:varchar(50);not null;index:uq_users_username_alive,unique,where:users_deleted_at IS NULL"`

	// Hash bcrypt, tidak pernah keluar di response
	UsersPassword string `json:"-" gorm:"column:users_password;type:varchar(255);not null"`

	UsersPhoneNumber string    `json:"users_phone_number" gorm:"column:users_phone_number;type:varchar(20);not null"`
	UsersDateOfBirth time.Time `json:"users_date_of_birth" gorm:"column:users_date_of_birth;type:date;not null"`
	UsersAddress     string    `json:"users_address" gorm:"column:users_address;type:varchar(500);not null"`

	UsersRole   string `json:"users_role"   gorm:"column:users_role;type:varchar(20);not null;default:'STUDENT';index:idx_users_role"`
	UsersStatus string `json:"users_status" gorm:"column:users_status;type:varchar(20);not null;default:'ACTIVE';index:idx_users_status"`

	UsersStudentID       *string `json:"users_student_id,omitempty" gorm:"column:users_student_id;type:varchar(50)"`
	UsersDepartment      *string `json:"users_department,omitempty" gorm:"column:users_department;type:varchar(100)"`
	UsersProfileImageURL *string `json:"users_profile_image_url,omitempty" gorm:"column:users_profile_image_url;type:varchar(500)"`

	// Timestamps
	UsersCreatedAt time.Time      `json:"users_created_at" gorm:"column:users_created_at;type:timestamptz;not null;autoCreateTime"`
	UsersUpdatedAt time.Time      `json:"users_updated_at" gorm:"column:users_updated_at;type:timestamptz;not null;autoUpdateTime"`
	UsersDeletedAt gorm.DeletedAt `json:"users_deleted_at,omitempty" gorm:"column:users_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UsersID == uuid.Nil {
		u.UsersID = uuid.New()
	}
	if u.UsersRole == "" {
		u.UsersRole = constants.RoleStudent
	}
	if u.UsersStatus == "" {
		u.UsersStatus = constants.UserStatusActive
	}
	return nil
}

func (u *UserModel) FullName() string {
	return u.UsersFirstName + " " + u.UsersLastName
}

func (u *UserModel) IsActive() bool {
	return u.UsersStatus == constants.UserStatusActive
}

func (u *UserModel) IsLibrarian() bool {
	return u.UsersRole == constants.RoleLibrarian || u.UsersRole == constants.RoleAdmin
}

func (u *UserModel) IsAdmin() bool {
	return u.UsersRole == constants.RoleAdmin
}

// CanBorrowBooks: hanya STUDENT/FACULTY berstatus ACTIVE yang boleh meminjam.
func (u *UserModel) CanBorrowBooks() bool {
	return u.IsActive() && constants.IsBorrowerRole(u.UsersRole)
}

// MaxBooksAllowed: batas pinjaman aktif sesuai kebijakan role.
func (u *UserModel) MaxBooksAllowed() int {
	return constants.MaxBooksForRole(u.UsersRole)
}

// BorrowingPeriodDays: lama pinjam default sesuai kebijakan role.
func (u *UserModel) BorrowingPeriodDays() int {
	return constants.BorrowingPeriodForRole(u.UsersRole)
}
