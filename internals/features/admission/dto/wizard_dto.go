// file: internals/features/admission/dto/wizard_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"admissionku_backend/internals/features/admission/wizard"
	"admissionku_backend/internals/features/finance/fees"
)

////////////////////////////////////////////////////////////////////////////////
// WIZARD — DTO
////////////////////////////////////////////////////////////////////////////////

// Open: a student_id switches the wizard into edit mode for an existing admission.
type OpenWizardDTO struct {
	StudentID *uuid.UUID `json:"student_id,omitempty"`
}

type PersonalStepDTO struct {
	RegistrationNumber string     `json:"registration_number"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	Gender             string     `json:"gender"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
}

type ContactStepDTO struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type GuardianStepDTO struct {
	FatherName    string `json:"father_name"`
	GuardianPhone string `json:"guardian_phone"`
	GuardianCNIC  string `json:"guardian_cnic"`
}

type PriorAcademicStepDTO struct {
	PreviousSchool string     `json:"previous_school"`
	PreviousClass  string     `json:"previous_class"`
	PreviousMarks  *int       `json:"previous_marks,omitempty"`
	ClassID        *uuid.UUID `json:"class_id,omitempty"`
	SectionID      *uuid.UUID `json:"section_id,omitempty"`
}

type FeeStepDTO struct {
	Items        []fees.FeeLineItem `json:"items"`
	TuitionFee   int                `json:"tuition_fee"`
	DueDate      *time.Time         `json:"due_date,omitempty"`
	VoucherMonth *time.Time         `json:"voucher_month,omitempty"`
	Remarks      string             `json:"remarks"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — DTO -> Draft
////////////////////////////////////////////////////////////////////////////////

func (d PersonalStepDTO) Apply(draft *wizard.Draft) {
	draft.Admission.Personal = wizard.PersonalInfo{
		RegistrationNumber: d.RegistrationNumber,
		FirstName:          d.FirstName,
		LastName:           d.LastName,
		Gender:             d.Gender,
		DateOfBirth:        d.DateOfBirth,
	}
}

func (d ContactStepDTO) Apply(draft *wizard.Draft) {
	draft.Admission.Contact = wizard.ContactInfo{
		Email:   d.Email,
		Phone:   d.Phone,
		Address: d.Address,
	}
}

func (d GuardianStepDTO) Apply(draft *wizard.Draft) {
	draft.Admission.Guardian = wizard.GuardianInfo{
		FatherName:    d.FatherName,
		GuardianPhone: d.GuardianPhone,
		GuardianCNIC:  d.GuardianCNIC,
	}
}

func (d PriorAcademicStepDTO) Apply(draft *wizard.Draft) {
	draft.Admission.PriorAcademic = wizard.PriorAcademicInfo{
		PreviousSchool: d.PreviousSchool,
		PreviousClass:  d.PreviousClass,
		PreviousMarks:  d.PreviousMarks,
		ClassID:        d.ClassID,
		SectionID:      d.SectionID,
	}
}

func (d FeeStepDTO) Apply(draft *wizard.Draft) {
	draft.Fee = wizard.FeeFields{
		Items:        d.Items,
		TuitionFee:   d.TuitionFee,
		DueDate:      d.DueDate,
		VoucherMonth: d.VoucherMonth,
		Remarks:      d.Remarks,
	}
}
