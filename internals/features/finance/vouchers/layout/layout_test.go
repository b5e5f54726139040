package layout

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func sampleModel() PrintModel {
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	return PrintModel{
		StudentID:          uuid.New(),
		RegistrationNumber: "REG-2026-001",
		StudentName:        "Ayesha Khan",
		FatherName:         "Imran Khan",
		ClassName:          "Grade 5",
		SectionName:        "Blue",
		Items:              []PrintLineItem{{FeeTypeName: "Admission Fee", Amount: 5000}},
		TuitionFee:         3000,
		VoucherMonth:       &month,
		DueDate:            &due,
	}
}

func TestBuildFeeTable_FullVoucher(t *testing.T) {
	rows := BuildFeeTable(sampleModel())
	want := []TableRow{
		{RowHeader, "Particulars", "Amount"},
		{RowItem, "Admission Fee", "5000"},
		{RowTuition, "Tuition Fee", "3000"},
		{RowTotal, "Total", "8000"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %+v\nwant %+v", rows, want)
	}
}

func TestBuildFeeTable_NoItemsStillHasTuitionAndTotal(t *testing.T) {
	m := sampleModel()
	m.Items = nil
	m.TuitionFee = 0

	rows := BuildFeeTable(m)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header+tuition+total", len(rows))
	}
	if rows[1].Kind != RowTuition || rows[1].Amount != "0" {
		t.Errorf("tuition row = %+v", rows[1])
	}
	if rows[2].Kind != RowTotal || rows[2].Amount != "0" {
		t.Errorf("total row = %+v", rows[2])
	}
}

func TestRenderDocument_ThreeIdenticalCopies(t *testing.T) {
	doc, err := RenderDocument(sampleModel(), "Admissionku School")
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	labels := map[string]bool{}
	first := doc.Copies[0]
	for _, cp := range doc.Copies {
		labels[cp.Style.Label] = true
		if !reflect.DeepEqual(cp.Rows, first.Rows) {
			t.Errorf("copy %q rows differ from first copy", cp.Style.Label)
		}
		if cp.TotalInWords != "Eight Thousand Only" {
			t.Errorf("copy %q total in words = %q", cp.Style.Label, cp.TotalInWords)
		}
		if cp.Identity != first.Identity {
			t.Errorf("copy %q identity differs", cp.Style.Label)
		}
		if !cp.GeneratedAt.Equal(first.GeneratedAt) {
			t.Errorf("copy %q generated at differs", cp.Style.Label)
		}
	}
	if len(labels) != 3 {
		t.Errorf("labels = %v, want 3 distinct", labels)
	}
}

func TestRenderDocument_RejectsMissingStudent(t *testing.T) {
	m := sampleModel()
	m.StudentID = uuid.Nil
	if _, err := RenderDocument(m, "Admissionku School"); err != ErrMissingStudent {
		t.Fatalf("err = %v, want ErrMissingStudent", err)
	}
}

func TestRenderCopy_OptionalFieldsDegrade(t *testing.T) {
	m := sampleModel()
	m.VoucherMonth = nil
	m.DueDate = nil
	m.Remarks = ""

	cp, err := RenderCopy(m, "Admissionku School", copyStyles[0], time.Now())
	if err != nil {
		t.Fatalf("RenderCopy: %v", err)
	}
	if cp.Identity.VoucherMonth != "" || cp.Identity.DueDate != "" {
		t.Errorf("identity = %+v, want blank month/due date", cp.Identity)
	}
	if cp.Remarks != DefaultRemarks {
		t.Errorf("remarks = %q, want default", cp.Remarks)
	}
}

func TestRenderCopy_FormatsDueDateDayMonthYear(t *testing.T) {
	cp, err := RenderCopy(sampleModel(), "Admissionku School", copyStyles[0], time.Now())
	if err != nil {
		t.Fatalf("RenderCopy: %v", err)
	}
	if cp.Identity.DueDate != "10-03-2026" {
		t.Errorf("due date = %q, want 10-03-2026", cp.Identity.DueDate)
	}
	if cp.Identity.VoucherMonth != "March 2026" {
		t.Errorf("voucher month = %q, want March 2026", cp.Identity.VoucherMonth)
	}
}
