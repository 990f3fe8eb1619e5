// file: internals/route/index.go
package routes

import (
	"log"

	bookRoute "perpustakaanku_backend/internals/features/library/books/route"
	borrowingRoute "perpustakaanku_backend/internals/features/library/borrowings/route"
	userRoute "perpustakaanku_backend/internals/features/library/users/route"
	"perpustakaanku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(app.Group("/api/auth"), db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa login (katalog buku)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → wajib JWT, status akun dicek
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", auth.AuthMiddleware(db))

	// ADMIN → wajib JWT + role check per route
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a", auth.AuthMiddleware(db))

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Book routes...")
	bookRoute.BookPublicRoutes(public, db)
	bookRoute.BookAdminRoutes(admin, db)

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserRoutes(private, db)
	userRoute.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Borrowing routes...")
	borrowingRoute.BorrowingUserRoutes(private, db)
	borrowingRoute.BorrowingAdminRoutes(admin, db)
}
