// file: internals/features/finance/vouchers/layout/layout.go
package layout

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"admissionku_backend/internals/features/finance/fees"
)

// DefaultRemarks is printed when the voucher carries no remarks of its own.
const DefaultRemarks = "Please pay before the due date to avoid late fee."

var ErrMissingStudent = errors.New("print model has no student identifier")

// PrintModel is the denormalized, read-only view a voucher is printed from.
// Identifiers are already resolved to display names; it is never persisted.
type PrintModel struct {
	StudentID          uuid.UUID
	RegistrationNumber string
	StudentName        string
	FatherName         string
	ClassName          string
	SectionName        string

	Items      []PrintLineItem
	TuitionFee int

	VoucherMonth *time.Time
	DueDate      *time.Time
	Remarks      string
}

type PrintLineItem struct {
	FeeTypeName string
	Amount      int
}

/* =======================================================
   FEE TABLE
======================================================= */

type RowKind string

const (
	RowHeader  RowKind = "header"
	RowItem    RowKind = "item"
	RowTuition RowKind = "tuition"
	RowTotal   RowKind = "total"
)

type TableRow struct {
	Kind   RowKind `json:"kind"`
	Label  string  `json:"label"`
	Amount string  `json:"amount"` // right-aligned by the renderer
}

// BuildFeeTable lays out the charge table: header, one row per line item, the
// tuition row, and the total row. A voucher with zero selected items still
// yields the tuition and total rows.
func BuildFeeTable(m PrintModel) []TableRow {
	rows := make([]TableRow, 0, len(m.Items)+3)
	rows = append(rows, TableRow{Kind: RowHeader, Label: "Particulars", Amount: "Amount"})
	for _, it := range m.Items {
		rows = append(rows, TableRow{Kind: RowItem, Label: it.FeeTypeName, Amount: strconv.Itoa(it.Amount)})
	}
	rows = append(rows, TableRow{Kind: RowTuition, Label: "Tuition Fee", Amount: strconv.Itoa(m.TuitionFee)})
	rows = append(rows, TableRow{Kind: RowTotal, Label: "Total", Amount: strconv.Itoa(Total(m))})
	return rows
}

// Total folds the print model back through the fee engine.
func Total(m PrintModel) int {
	items := make([]fees.FeeLineItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, fees.FeeLineItem{FeeAmount: it.Amount})
	}
	return fees.ComputeTotal(items, m.TuitionFee)
}

/* =======================================================
   COPIES & DOCUMENT
======================================================= */

// CopyStyle distinguishes the three retained copies; content stays identical.
type CopyStyle struct {
	Label  string `json:"label"`
	Accent string `json:"accent"` // CSS color of the label band
}

var copyStyles = [3]CopyStyle{
	{Label: "Bank Copy", Accent: "#1a5276"},
	{Label: "Office Copy", Accent: "#196f3d"},
	{Label: "Personal Copy", Accent: "#7b241c"},
}

type IdentityBlock struct {
	StudentName        string `json:"student_name"`
	FatherName         string `json:"father_name"`
	ClassName          string `json:"class_name"`
	SectionName        string `json:"section_name"`
	RegistrationNumber string `json:"registration_number"`
	VoucherMonth       string `json:"voucher_month"` // e.g. "March 2026", blank when unset
	DueDate            string `json:"due_date"`      // DD-MM-YYYY, blank when unset
}

type VoucherCopy struct {
	Institution  string        `json:"institution"`
	Style        CopyStyle     `json:"style"`
	Identity     IdentityBlock `json:"identity"`
	Rows         []TableRow    `json:"rows"`
	TotalInWords string        `json:"total_in_words"`
	Remarks      string        `json:"remarks"`
	Signature    string        `json:"signature"`
	GeneratedAt  time.Time     `json:"generated_at"`
}

// VoucherDocument is one landscape page: three equal-width columns, one per copy.
type VoucherDocument struct {
	Copies [3]VoucherCopy `json:"copies"`
}

// RenderCopy assembles one copy block. Missing optional fields degrade to
// blank or default text; only a missing student identifier rejects.
func RenderCopy(m PrintModel, institution string, style CopyStyle, generatedAt time.Time) (VoucherCopy, error) {
	if m.StudentID == uuid.Nil {
		return VoucherCopy{}, ErrMissingStudent
	}

	identity := IdentityBlock{
		StudentName:        m.StudentName,
		FatherName:         m.FatherName,
		ClassName:          m.ClassName,
		SectionName:        m.SectionName,
		RegistrationNumber: m.RegistrationNumber,
	}
	if m.VoucherMonth != nil {
		identity.VoucherMonth = m.VoucherMonth.Format("January 2006")
	}
	if m.DueDate != nil {
		identity.DueDate = m.DueDate.Format("02-01-2006")
	}

	remarks := m.Remarks
	if remarks == "" {
		remarks = DefaultRemarks
	}

	return VoucherCopy{
		Institution:  institution,
		Style:        style,
		Identity:     identity,
		Rows:         BuildFeeTable(m),
		TotalInWords: fees.AmountToWords(Total(m)),
		Remarks:      remarks,
		Signature:    "Authorized Signature: ____________________",
		GeneratedAt:  generatedAt,
	}, nil
}

// RenderDocument produces the triplicate printable document: three copies,
// content-identical except for label and accent.
func RenderDocument(m PrintModel, institution string) (VoucherDocument, error) {
	var doc VoucherDocument
	generatedAt := time.Now()
	for i, style := range copyStyles {
		cp, err := RenderCopy(m, institution, style, generatedAt)
		if err != nil {
			return VoucherDocument{}, err
		}
		doc.Copies[i] = cp
	}
	return doc, nil
}
