// file: internals/features/admission/service/resume.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"admissionku_backend/internals/features/admission/wizard"
	academicModel "admissionku_backend/internals/features/school/academics/model"
)

var ErrStudentNotFound = errors.New("student not found")

// LoadAdmissionFields maps an existing admission record back into the draft
// shape so the wizard can reopen it in edit mode.
func LoadAdmissionFields(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (wizard.AdmissionFields, error) {
	var m academicModel.Student
	if err := db.WithContext(ctx).First(&m, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return wizard.AdmissionFields{}, ErrStudentNotFound
		}
		return wizard.AdmissionFields{}, err
	}

	return wizard.AdmissionFields{
		Personal: wizard.PersonalInfo{
			RegistrationNumber: m.StudentRegistrationNumber,
			FirstName:          m.StudentFirstName,
			LastName:           m.StudentLastName,
			Gender:             m.StudentGender,
			DateOfBirth:        m.StudentDateOfBirth,
		},
		Contact: wizard.ContactInfo{
			Email:   m.StudentEmail,
			Phone:   m.StudentPhone,
			Address: m.StudentAddress,
		},
		Guardian: wizard.GuardianInfo{
			FatherName:    m.StudentFatherName,
			GuardianPhone: m.StudentGuardianPhone,
			GuardianCNIC:  m.StudentGuardianCNIC,
		},
		PriorAcademic: wizard.PriorAcademicInfo{
			PreviousSchool: m.StudentPreviousSchool,
			PreviousClass:  m.StudentPreviousClass,
			PreviousMarks:  m.StudentPreviousMarks,
			ClassID:        m.StudentClassID,
			SectionID:      m.StudentSectionID,
		},
	}, nil
}
