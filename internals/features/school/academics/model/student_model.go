// file: internals/features/school/academics/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student is the committed admission record created by the wizard's
// admission commit step.
type Student struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	// Registration number is the external dedup key for re-submitted admissions.
	StudentRegistrationNumber string `gorm:"column:student_registration_number;type:varchar(40);not null;uniqueIndex:uniq_student_regno" json:"student_registration_number"`

	// Personal
	StudentFirstName   string     `gorm:"column:student_first_name;type:varchar(80);not null" json:"student_first_name"`
	StudentLastName    string     `gorm:"column:student_last_name;type:varchar(80)" json:"student_last_name"`
	StudentGender      string     `gorm:"column:student_gender;type:varchar(10)" json:"student_gender"`
	StudentDateOfBirth *time.Time `gorm:"column:student_date_of_birth" json:"student_date_of_birth,omitempty"`

	// Contact
	StudentEmail   string `gorm:"column:student_email;type:varchar(120)" json:"student_email"`
	StudentPhone   string `gorm:"column:student_phone;type:varchar(20)" json:"student_phone"`
	StudentAddress string `gorm:"column:student_address;type:text" json:"student_address"`

	// Guardian
	StudentFatherName    string `gorm:"column:student_father_name;type:varchar(120)" json:"student_father_name"`
	StudentGuardianPhone string `gorm:"column:student_guardian_phone;type:varchar(20)" json:"student_guardian_phone"`
	StudentGuardianCNIC  string `gorm:"column:student_guardian_cnic;type:varchar(30)" json:"student_guardian_cnic"`

	// Prior academic
	StudentPreviousSchool string `gorm:"column:student_previous_school;type:varchar(160)" json:"student_previous_school"`
	StudentPreviousClass  string `gorm:"column:student_previous_class;type:varchar(80)" json:"student_previous_class"`
	StudentPreviousMarks  *int   `gorm:"column:student_previous_marks" json:"student_previous_marks,omitempty"`

	// Placement (FKs)
	StudentClassID   *uuid.UUID `gorm:"column:student_class_id;type:uuid;index" json:"student_class_id,omitempty"`
	StudentSectionID *uuid.UUID `gorm:"column:student_section_id;type:uuid;index" json:"student_section_id,omitempty"`

	// Timestamps (explicit)
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;default:now()" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (Student) TableName() string { return "students" }

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) error {
	m.StudentUpdatedAt = time.Now()
	return nil
}
