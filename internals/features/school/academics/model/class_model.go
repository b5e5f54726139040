// file: internals/features/school/academics/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Class struct {
	ClassID   uuid.UUID `gorm:"column:class_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	ClassName string    `gorm:"column:class_name;type:varchar(80);not null;uniqueIndex:uniq_class_name" json:"class_name"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;not null;default:now()" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;not null;default:now()" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`
}

func (Class) TableName() string { return "classes" }

func (m *Class) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ClassCreatedAt.IsZero() {
		m.ClassCreatedAt = now
	}
	m.ClassUpdatedAt = now
	return nil
}

func (m *Class) BeforeUpdate(tx *gorm.DB) error {
	m.ClassUpdatedAt = time.Now()
	return nil
}

type ClassSection struct {
	ClassSectionID      uuid.UUID `gorm:"column:class_section_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"class_section_id"`
	ClassSectionClassID uuid.UUID `gorm:"column:class_section_class_id;type:uuid;not null;index" json:"class_section_class_id"`
	ClassSectionName    string    `gorm:"column:class_section_name;type:varchar(40);not null" json:"class_section_name"`

	ClassSectionCreatedAt time.Time      `gorm:"column:class_section_created_at;not null;default:now()" json:"class_section_created_at"`
	ClassSectionUpdatedAt time.Time      `gorm:"column:class_section_updated_at;not null;default:now()" json:"class_section_updated_at"`
	ClassSectionDeletedAt gorm.DeletedAt `gorm:"column:class_section_deleted_at;index" json:"-"`
}

func (ClassSection) TableName() string { return "class_sections" }

func (m *ClassSection) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ClassSectionCreatedAt.IsZero() {
		m.ClassSectionCreatedAt = now
	}
	m.ClassSectionUpdatedAt = now
	return nil
}

func (m *ClassSection) BeforeUpdate(tx *gorm.DB) error {
	m.ClassSectionUpdatedAt = time.Now()
	return nil
}
