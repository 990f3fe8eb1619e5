package route

import (
	userController "perpustakaanku_backend/internals/features/library/users/controller"
	"perpustakaanku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Panggil dengan: route.AuthRoutes(app.Group("/api/auth"), db)
// Hasil endpoint:
//   /api/auth/register
//   /api/auth/login
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &userController.AuthController{DB: db}

	// Rate limiter khusus endpoint sensitif
	r.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}
