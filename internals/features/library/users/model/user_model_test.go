package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"perpustakaanku_backend/internals/constants"
)

func userWith(role, status string) *UserModel {
	return &UserModel{
		UsersFirstName: "Budi",
		UsersLastName:  "Santoso",
		UsersRole:      role,
		UsersStatus:    status,
	}
}

func TestFullName(t *testing.T) {
	u := userWith(constants.RoleStudent, constants.UserStatusActive)
	assert.Equal(t, "Budi Santoso", u.FullName())
}

func TestCanBorrowBooks(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		status string
		want   bool
	}{
		{"student aktif", constants.RoleStudent, constants.UserStatusActive, true},
		{"faculty aktif", constants.RoleFaculty, constants.UserStatusActive, true},
		{"student suspended", constants.RoleStudent, constants.UserStatusSuspended, false},
		{"faculty banned", constants.RoleFaculty, constants.UserStatusBanned, false},
		{"guest aktif", constants.RoleGuest, constants.UserStatusActive, false},
		{"librarian aktif", constants.RoleLibrarian, constants.UserStatusActive, false},
		{"admin aktif", constants.RoleAdmin, constants.UserStatusActive, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userWith(tt.role, tt.status).CanBorrowBooks())
		})
	}
}

func TestRolePolicies(t *testing.T) {
	tests := []struct {
		role       string
		maxBooks   int
		periodDays int
	}{
		{constants.RoleStudent, 5, 14},
		{constants.RoleFaculty, 10, 30},
		{constants.RoleLibrarian, 15, 60},
		{constants.RoleAdmin, 15, 60},
		{constants.RoleGuest, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			u := userWith(tt.role, constants.UserStatusActive)
			assert.Equal(t, tt.maxBooks, u.MaxBooksAllowed())
			assert.Equal(t, tt.periodDays, u.BorrowingPeriodDays())
		})
	}
}

func TestStaffChecks(t *testing.T) {
	assert.True(t, userWith(constants.RoleLibrarian, constants.UserStatusActive).IsLibrarian())
	assert.True(t, userWith(constants.RoleAdmin, constants.UserStatusActive).IsLibrarian())
	assert.False(t, userWith(constants.RoleStudent, constants.UserStatusActive).IsLibrarian())

	assert.True(t, userWith(constants.RoleAdmin, constants.UserStatusActive).IsAdmin())
	assert.False(t, userWith(constants.RoleLibrarian, constants.UserStatusActive).IsAdmin())
}
