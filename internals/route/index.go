// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"admissionku_backend/internals/constants"
	admissionRoute "admissionku_backend/internals/features/admission/route"
	"admissionku_backend/internals/features/admission/wizard"
	feeTypeRoute "admissionku_backend/internals/features/finance/feetypes/route"
	voucherRoute "admissionku_backend/internals/features/finance/vouchers/route"
	authRoute "admissionku_backend/internals/features/users/auth/route"
	authMiddleware "admissionku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, store *wizard.Store) {
	startTime = time.Now()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).Round(time.Second).String(),
		})
	})

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	public := app.Group("/api")
	authRoute.AuthRoutes(public, db)

	// ===================== ADMIN (JWT required) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("the admission desk"),
			constants.StaffAndAbove,
		),
	)

	log.Println("[INFO] Setting up FeeTypeRoutes...")
	feeTypeRoute.FeeTypeRoutes(admin, db)

	log.Println("[INFO] Setting up AdmissionRoutes...")
	admissionRoute.AdmissionRoutes(admin, db, store)

	log.Println("[INFO] Setting up VoucherRoutes...")
	voucherRoute.VoucherRoutes(admin, db)
}
