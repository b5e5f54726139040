// file: internals/features/finance/vouchers/model/fee_voucher_model.go
package model

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"admissionku_backend/internals/features/finance/fees"
)

// FeeVoucher is the committed billing record for one charge period.
type FeeVoucher struct {
	// PK
	FeeVoucherID uuid.UUID `gorm:"column:fee_voucher_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_voucher_id"`

	// FK → students(student_id); one live voucher per student
	FeeVoucherStudentID uuid.UUID `gorm:"column:fee_voucher_student_id;type:uuid;not null;uniqueIndex:uniq_fee_voucher_student" json:"fee_voucher_student_id"`

	// Selected fee line items, JSONB: [{"fee_type_id":"...","fee_amount":5000}]
	FeeVoucherItems datatypes.JSON `gorm:"column:fee_voucher_items;type:jsonb;not null;default:'[]'" json:"fee_voucher_items"`

	// Amounts
	FeeVoucherTuitionFee  int `gorm:"column:fee_voucher_tuition_fee;not null;default:0;check:fee_voucher_tuition_fee>=0" json:"fee_voucher_tuition_fee"`
	FeeVoucherTotalAmount int `gorm:"column:fee_voucher_total_amount;not null;default:0;check:fee_voucher_total_amount>=0" json:"fee_voucher_total_amount"`

	// Period & terms
	FeeVoucherMonth   *time.Time `gorm:"column:fee_voucher_month;type:date" json:"fee_voucher_month,omitempty"`
	FeeVoucherDueDate *time.Time `gorm:"column:fee_voucher_due_date;type:date" json:"fee_voucher_due_date,omitempty"`
	FeeVoucherRemarks string     `gorm:"column:fee_voucher_remarks;type:text" json:"fee_voucher_remarks"`

	// Timestamps (explicit)
	FeeVoucherCreatedAt time.Time      `gorm:"column:fee_voucher_created_at;not null;default:now()" json:"fee_voucher_created_at"`
	FeeVoucherUpdatedAt time.Time      `gorm:"column:fee_voucher_updated_at;not null;default:now()" json:"fee_voucher_updated_at"`
	FeeVoucherDeletedAt gorm.DeletedAt `gorm:"column:fee_voucher_deleted_at;index" json:"-"`
}

func (FeeVoucher) TableName() string { return "fee_vouchers" }

// Items decodes the JSONB line items.
func (m *FeeVoucher) Items() ([]fees.FeeLineItem, error) {
	if len(m.FeeVoucherItems) == 0 {
		return nil, nil
	}
	var items []fees.FeeLineItem
	if err := sonic.Unmarshal(m.FeeVoucherItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetItems normalizes the selection (last write wins per fee type) and stores it.
func (m *FeeVoucher) SetItems(selection []fees.FeeLineItem) error {
	raw, err := sonic.Marshal(fees.SelectFeeItems(selection))
	if err != nil {
		return err
	}
	m.FeeVoucherItems = datatypes.JSON(raw)
	return nil
}

// BeforeSave keeps the stored invariants: voucher month snaps to the first day
// of its month and the total always equals sum(items) + max(tuition, 0).
func (m *FeeVoucher) BeforeSave(tx *gorm.DB) error {
	if m.FeeVoucherMonth != nil {
		t := *m.FeeVoucherMonth
		first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		m.FeeVoucherMonth = &first
	}
	items, err := m.Items()
	if err != nil {
		return err
	}
	m.FeeVoucherTotalAmount = fees.ComputeTotal(items, m.FeeVoucherTuitionFee)
	return nil
}

func (m *FeeVoucher) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeVoucherCreatedAt.IsZero() {
		m.FeeVoucherCreatedAt = now
	}
	m.FeeVoucherUpdatedAt = now
	return nil
}

func (m *FeeVoucher) BeforeUpdate(tx *gorm.DB) error {
	m.FeeVoucherUpdatedAt = time.Now()
	return nil
}
