package constants

import "fmt"

// Role pengguna perpustakaan
const (
	RoleAdmin     = "ADMIN"
	RoleLibrarian = "LIBRARIAN"
	RoleStudent   = "STUDENT"
	RoleFaculty   = "FACULTY"
	RoleGuest     = "GUEST"
)

// Status akun pengguna
const (
	UserStatusActive    = "ACTIVE"
	UserStatusInactive  = "INACTIVE"
	UserStatusSuspended = "SUSPENDED"
	UserStatusBanned    = "BANNED"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess = "❌ Hanya librarian atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleLibrarian,
		RoleStudent,
		RoleFaculty,
		RoleGuest,
	}

	StaffAndAbove = []string{
		RoleLibrarian,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	// Role yang boleh meminjam buku (harus juga berstatus ACTIVE)
	BorrowerRoles = []string{
		RoleStudent,
		RoleFaculty,
	}
)

// ==========================
// Kebijakan peminjaman per role
// ==========================

// MaxBooksAllowed: batas pinjaman aktif per role.
var MaxBooksAllowed = map[string]int{
	RoleStudent:   5,
	RoleFaculty:   10,
	RoleLibrarian: 15,
	RoleAdmin:     15,
	RoleGuest:     0,
}

// BorrowingPeriodDays: lama pinjam default per role (hari).
var BorrowingPeriodDays = map[string]int{
	RoleStudent:   14, // 2 minggu
	RoleFaculty:   30, // 1 bulan
	RoleLibrarian: 60, // 2 bulan
	RoleAdmin:     60,
	RoleGuest:     0,
}

func MaxBooksForRole(role string) int {
	return MaxBooksAllowed[role]
}

func BorrowingPeriodForRole(role string) int {
	return BorrowingPeriodDays[role]
}

func IsBorrowerRole(role string) bool {
	for _, r := range BorrowerRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsValidUserStatus(status string) bool {
	switch status {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended, UserStatusBanned:
		return true
	}
	return false
}
