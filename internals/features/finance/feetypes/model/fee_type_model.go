// file: internals/features/finance/feetypes/model/fee_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeeType is one selectable entry of the fee catalog.
type FeeType struct {
	FeeTypeID   uuid.UUID `gorm:"column:fee_type_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_type_id"`
	FeeTypeName string    `gorm:"column:fee_type_name;type:varchar(80);not null;uniqueIndex:uniq_fee_type_name" json:"fee_type_name"`

	FeeTypeDefaultAmount  int  `gorm:"column:fee_type_default_amount;not null;default:0;check:fee_type_default_amount>=0" json:"fee_type_default_amount"`
	FeeTypeIsDiscountable bool `gorm:"column:fee_type_is_discountable;not null;default:false" json:"fee_type_is_discountable"`
	FeeTypeIsActive       bool `gorm:"column:fee_type_is_active;not null;default:true" json:"fee_type_is_active"`

	FeeTypeCreatedAt time.Time      `gorm:"column:fee_type_created_at;not null;default:now()" json:"fee_type_created_at"`
	FeeTypeUpdatedAt time.Time      `gorm:"column:fee_type_updated_at;not null;default:now()" json:"fee_type_updated_at"`
	FeeTypeDeletedAt gorm.DeletedAt `gorm:"column:fee_type_deleted_at;index" json:"-"`
}

func (FeeType) TableName() string { return "fee_types" }

func (m *FeeType) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeTypeCreatedAt.IsZero() {
		m.FeeTypeCreatedAt = now
	}
	m.FeeTypeUpdatedAt = now
	return nil
}

func (m *FeeType) BeforeUpdate(tx *gorm.DB) error {
	m.FeeTypeUpdatedAt = time.Now()
	return nil
}
