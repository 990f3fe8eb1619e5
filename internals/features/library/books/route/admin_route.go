package route

import (
	"perpustakaanku_backend/internals/constants"
	bookController "perpustakaanku_backend/internals/features/library/books/controller"
	"perpustakaanku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Panggil dengan: route.BookAdminRoutes(app.Group("/api/a"), db)
// Hasil endpoint:
//   /api/a/books
func BookAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &bookController.BookController{DB: db}

	// Wajib role librarian/admin
	staffGuard := auth.OnlyRolesSlice(
		constants.RoleErrorStaff("pengelolaan buku"),
		constants.StaffAndAbove,
	)

	books := r.Group("/books", staffGuard)

	// Static path dulu, baru :id
	books.Get("/low-availability", ctl.LowAvailability)
	books.Get("/needing-restock", ctl.NeedingRestock)
	books.Get("/statistics", ctl.Statistics)

	books.Post("/", ctl.Create)
	books.Put("/:id", ctl.Update)
	books.Delete("/:id", ctl.Delete)
	books.Post("/:id/add-copies", ctl.AddCopies)
	books.Post("/:id/remove-copies", ctl.RemoveCopies)
}
