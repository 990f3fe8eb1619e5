package route

import (
	borrowingController "perpustakaanku_backend/internals/features/library/borrowings/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Panggil dengan: route.BorrowingUserRoutes(app.Group("/api/u"), db)
// Hasil endpoint:
//   /api/u/borrowings (riwayat pinjaman milik sendiri)
func BorrowingUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := borrowingController.NewBorrowingController(db)

	b := r.Group("/borrowings")
	b.Get("/", ctl.MyBorrowings)
}
