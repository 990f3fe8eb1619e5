package route

import (
	userController "perpustakaanku_backend/internals/features/library/users/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Panggil dengan: route.UserRoutes(app.Group("/api/u"), db)
// Hasil endpoint:
//   /api/u/users/me
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &userController.AuthController{DB: db}

	users := r.Group("/users")
	users.Get("/me", ctl.Me)
}
