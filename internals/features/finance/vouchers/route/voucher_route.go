// file: internals/features/finance/vouchers/route/voucher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	voucherController "admissionku_backend/internals/features/finance/vouchers/controller"
)

func VoucherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := &voucherController.VoucherController{DB: db}

	v := api.Group("/vouchers")
	v.Get("/:student_id", ctrl.GetVoucherDocument)
	v.Get("/:student_id/print", ctrl.PrintVoucherHTML)
	v.Get("/:student_id/print.xlsx", ctrl.ExportVoucherXLSX)
}
