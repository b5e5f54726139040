// file: internals/features/finance/feetypes/controller/fee_type_controller.go
package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "admissionku_backend/internals/features/finance/feetypes/dto"
	model "admissionku_backend/internals/features/finance/feetypes/model"
	helper "admissionku_backend/internals/helpers"
)

type FeeTypeController struct {
	DB *gorm.DB
}

// GET /fee-types — the selectable enumeration, paged
func (h *FeeTypeController) ListFeeTypes(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.FeeType{}).Where("fee_type_is_active = TRUE")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "could not count fee types")
	}

	var rows []model.FeeType
	if err := q.Order("fee_type_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "could not list fee types")
	}

	return helper.JsonList(c, "fee types",
		dto.ToFeeTypeResponses(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
