// file: internals/features/admission/wizard/draft.go
package wizard

import (
	"time"

	"github.com/google/uuid"

	"admissionku_backend/internals/features/finance/fees"
)

// Step indices of the admission wizard. Forward motion is gated per step;
// StepFee is the terminal step whose submit closes the session.
const (
	StepPersonal = iota
	StepContact
	StepGuardian
	StepPriorAcademic
	StepFee

	StepCount = StepFee + 1
)

// CommitStep is the step whose successful Advance creates the admission record.
const CommitStep = StepFee - 1

type PersonalInfo struct {
	RegistrationNumber string     `json:"registration_number"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	Gender             string     `json:"gender"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
}

type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type GuardianInfo struct {
	FatherName    string `json:"father_name"`
	GuardianPhone string `json:"guardian_phone"`
	GuardianCNIC  string `json:"guardian_cnic"`
}

type PriorAcademicInfo struct {
	PreviousSchool string     `json:"previous_school"`
	PreviousClass  string     `json:"previous_class"`
	PreviousMarks  *int       `json:"previous_marks,omitempty"`
	ClassID        *uuid.UUID `json:"class_id,omitempty"`
	SectionID      *uuid.UUID `json:"section_id,omitempty"`
}

// AdmissionFields holds everything the admission-creation collaborator needs.
type AdmissionFields struct {
	Personal      PersonalInfo      `json:"personal"`
	Contact       ContactInfo       `json:"contact"`
	Guardian      GuardianInfo      `json:"guardian"`
	PriorAcademic PriorAcademicInfo `json:"prior_academic"`
}

// FeeFields holds the voucher side of the session, kept separate from the
// admission fields so each step's logic stays independently testable.
type FeeFields struct {
	Items        []fees.FeeLineItem `json:"items"`
	TuitionFee   int                `json:"tuition_fee"`
	DueDate      *time.Time         `json:"due_date,omitempty"`
	VoucherMonth *time.Time         `json:"voucher_month,omitempty"`
	Remarks      string             `json:"remarks"`
}

// Draft is the session aggregate: two sub-records composed by value.
type Draft struct {
	Admission AdmissionFields `json:"admission"`
	Fee       FeeFields       `json:"fee"`
}

// CatalogFeeType mirrors one entry of the fee-type enumeration collaborator.
type CatalogFeeType struct {
	ID             uuid.UUID `json:"fee_type_id"`
	Name           string    `json:"fee_type_name"`
	DefaultAmount  int       `json:"default_amount"`
	IsDiscountable bool      `json:"is_discountable"`
}
