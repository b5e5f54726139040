// file: internals/features/finance/feetypes/route/fee_type_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeTypeController "admissionku_backend/internals/features/finance/feetypes/controller"
)

func FeeTypeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := &feeTypeController.FeeTypeController{DB: db}
	api.Get("/fee-types", ctrl.ListFeeTypes)
}
