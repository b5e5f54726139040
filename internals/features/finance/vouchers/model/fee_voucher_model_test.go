package model

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"admissionku_backend/internals/features/finance/fees"
)

func TestFeeVoucher_BeforeSave_NormalizesMonthAndTotal(t *testing.T) {
	picked := time.Date(2026, time.March, 17, 14, 30, 0, 0, time.UTC)
	m := FeeVoucher{
		FeeVoucherStudentID:  uuid.New(),
		FeeVoucherTuitionFee: 3000,
		FeeVoucherMonth:      &picked,
	}
	if err := m.SetItems([]fees.FeeLineItem{{FeeTypeID: uuid.New(), FeeAmount: 5000}}); err != nil {
		t.Fatalf("SetItems: %v", err)
	}

	if err := m.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}

	want := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !m.FeeVoucherMonth.Equal(want) {
		t.Errorf("month = %v, want first of month %v", m.FeeVoucherMonth, want)
	}
	if m.FeeVoucherTotalAmount != 8000 {
		t.Errorf("total = %d, want 8000", m.FeeVoucherTotalAmount)
	}
}

func TestFeeVoucher_SetItems_DeduplicatesSelection(t *testing.T) {
	feeType := uuid.New()
	var m FeeVoucher
	err := m.SetItems([]fees.FeeLineItem{
		{FeeTypeID: feeType, FeeAmount: 5000},
		{FeeTypeID: feeType, FeeAmount: 4000},
	})
	if err != nil {
		t.Fatalf("SetItems: %v", err)
	}

	items, err := m.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 || items[0].FeeAmount != 4000 {
		t.Fatalf("items = %+v, want single later entry", items)
	}
}

func TestFeeVoucher_BeforeSave_EmptyItems(t *testing.T) {
	var m FeeVoucher
	if err := m.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if m.FeeVoucherTotalAmount != 0 {
		t.Errorf("total = %d, want 0", m.FeeVoucherTotalAmount)
	}
}
