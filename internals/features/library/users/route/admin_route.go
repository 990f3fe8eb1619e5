package route

import (
	"perpustakaanku_backend/internals/constants"
	userController "perpustakaanku_backend/internals/features/library/users/controller"
	"perpustakaanku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Panggil dengan: route.UserAdminRoutes(app.Group("/api/a"), db)
// Hasil endpoint:
//   /api/a/users
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &userController.UserController{DB: db}

	staffGuard := auth.OnlyRolesSlice(
		constants.RoleErrorStaff("pengelolaan user"),
		constants.StaffAndAbove,
	)

	users := r.Group("/users", staffGuard)
	users.Get("/", ctl.List)
	users.Get("/:id", ctl.GetByID)
	users.Get("/:id/active-loans", ctl.ActiveLoanCount)
	users.Put("/:id", ctl.Update)
	users.Delete("/:id", ctl.Delete)
}
