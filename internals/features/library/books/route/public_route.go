package route

import (
	bookController "perpustakaanku_backend/internals/features/library/books/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Panggil dengan: route.BookPublicRoutes(app.Group("/api/public"), db)
// Hasil endpoint:
//   /api/public/books (katalog read-only, tanpa login)
func BookPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &bookController.BookController{DB: db}

	books := r.Group("/books")
	books.Get("/", ctl.List)
	books.Get("/available", ctl.Available)
	books.Get("/popular", ctl.Popular)
	books.Get("/isbn/:isbn", ctl.GetByISBN)
	books.Get("/:id", ctl.GetByID)
}
