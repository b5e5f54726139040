// file: internals/features/finance/vouchers/controller/voucher_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"admissionku_backend/internals/configs"
	"admissionku_backend/internals/features/finance/vouchers/layout"
	"admissionku_backend/internals/features/finance/vouchers/service"
	helper "admissionku_backend/internals/helpers"
)

type VoucherController struct {
	DB *gorm.DB
}

func parseStudentID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("student_id"))
}

func (h *VoucherController) buildDocument(c *fiber.Ctx) (layout.VoucherDocument, error) {
	studentID, err := parseStudentID(c)
	if err != nil {
		return layout.VoucherDocument{}, fiber.NewError(http.StatusBadRequest, "invalid student_id")
	}

	model, err := service.BuildPrintModel(c.UserContext(), h.DB, studentID)
	if err != nil {
		switch {
		case errors.Is(err, layout.ErrMissingStudent):
			return layout.VoucherDocument{}, fiber.NewError(http.StatusNotFound, "student not found")
		case errors.Is(err, service.ErrVoucherNotFound):
			return layout.VoucherDocument{}, fiber.NewError(http.StatusNotFound, "no voucher for this student")
		default:
			return layout.VoucherDocument{}, fiber.NewError(http.StatusInternalServerError, "could not load voucher")
		}
	}

	doc, err := layout.RenderDocument(model, configs.InstitutionName)
	if err != nil {
		return layout.VoucherDocument{}, fiber.NewError(http.StatusUnprocessableEntity, err.Error())
	}
	return doc, nil
}

// GET /vouchers/:student_id — the raw three-copy document model
func (h *VoucherController) GetVoucherDocument(c *fiber.Ctx) error {
	doc, err := h.buildDocument(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "voucher document", doc)
}

// GET /vouchers/:student_id/print — landscape printable page, 3 copies side by side
func (h *VoucherController) PrintVoucherHTML(c *fiber.Ctx) error {
	doc, err := h.buildDocument(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.Render("voucher", fiber.Map{
		"Doc": doc,
	})
}

// GET /vouchers/:student_id/print.xlsx — the same document as a worksheet
func (h *VoucherController) ExportVoucherXLSX(c *fiber.Ctx) error {
	doc, err := h.buildDocument(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	// three copies laid out as column pairs: A-B, D-E, G-H
	for i, cp := range doc.Copies {
		base := i * 3 // 0, 3, 6
		set := func(row int, col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(base+col, row)
			f.SetCellValue(sheet, cell, v)
		}

		set(1, 1, cp.Institution)
		set(2, 1, cp.Style.Label)
		set(4, 1, "Student")
		set(4, 2, cp.Identity.StudentName)
		set(5, 1, "Father")
		set(5, 2, cp.Identity.FatherName)
		set(6, 1, "Class")
		set(6, 2, cp.Identity.ClassName+" "+cp.Identity.SectionName)
		set(7, 1, "Reg. No")
		set(7, 2, cp.Identity.RegistrationNumber)
		set(8, 1, "Month")
		set(8, 2, cp.Identity.VoucherMonth)
		set(9, 1, "Due Date")
		set(9, 2, cp.Identity.DueDate)

		row := 11
		for _, r := range cp.Rows {
			set(row, 1, r.Label)
			set(row, 2, r.Amount)
			row++
		}
		row++
		set(row, 1, "In Words")
		set(row, 2, cp.TotalInWords)
		row += 2
		set(row, 1, "Remarks")
		set(row, 2, cp.Remarks)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "could not build the export")
	}

	studentID := c.Params("student_id")
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="voucher-%s.xlsx"`, studentID))
	return c.Send(buf.Bytes())
}
