package route

import (
	"perpustakaanku_backend/internals/constants"
	borrowingController "perpustakaanku_backend/internals/features/library/borrowings/controller"
	"perpustakaanku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Panggil dengan: route.BorrowingAdminRoutes(app.Group("/api/a"), db)
// Hasil endpoint:
//   /api/a/borrowings (sirkulasi: pinjam, kembali, perpanjang, denda)
func BorrowingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := borrowingController.NewBorrowingController(db)

	staffGuard := auth.OnlyRolesSlice(
		constants.RoleErrorStaff("sirkulasi peminjaman"),
		constants.StaffAndAbove,
	)

	b := r.Group("/borrowings", staffGuard)

	// Static path dulu, baru :id
	b.Get("/active", ctl.Active)
	b.Get("/overdue", ctl.Overdue)
	b.Get("/due-soon", ctl.DueSoon)
	b.Get("/outstanding-fines", ctl.OutstandingFines)

	b.Get("/", ctl.List)
	b.Post("/", ctl.Borrow)
	b.Get("/:id", ctl.GetByID)
	b.Post("/:id/return", ctl.Return)
	b.Post("/:id/renew", ctl.Renew)
	b.Post("/:id/pay-fine", ctl.PayFine)
	b.Post("/:id/mark-lost", ctl.MarkLost)
}
