// file: internals/features/finance/vouchers/service/print_model.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feetypeModel "admissionku_backend/internals/features/finance/feetypes/model"
	"admissionku_backend/internals/features/finance/vouchers/layout"
	voucherModel "admissionku_backend/internals/features/finance/vouchers/model"
	academicModel "admissionku_backend/internals/features/school/academics/model"
)

var ErrVoucherNotFound = errors.New("no fee voucher for this student")

// BuildPrintModel resolves a student's voucher into the denormalized view the
// layout generator consumes: identifiers replaced by display names, stale fee
// types silently dropped.
func BuildPrintModel(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (layout.PrintModel, error) {
	var student academicModel.Student
	if err := db.WithContext(ctx).First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return layout.PrintModel{}, layout.ErrMissingStudent
		}
		return layout.PrintModel{}, err
	}

	var voucher voucherModel.FeeVoucher
	if err := db.WithContext(ctx).First(&voucher, "fee_voucher_student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return layout.PrintModel{}, ErrVoucherNotFound
		}
		return layout.PrintModel{}, err
	}

	m := layout.PrintModel{
		StudentID:          student.StudentID,
		RegistrationNumber: student.StudentRegistrationNumber,
		StudentName:        studentDisplayName(student),
		FatherName:         student.StudentFatherName,
		TuitionFee:         voucher.FeeVoucherTuitionFee,
		VoucherMonth:       voucher.FeeVoucherMonth,
		DueDate:            voucher.FeeVoucherDueDate,
		Remarks:            voucher.FeeVoucherRemarks,
	}

	if student.StudentClassID != nil {
		var class academicModel.Class
		if err := db.WithContext(ctx).First(&class, "class_id = ?", *student.StudentClassID).Error; err == nil {
			m.ClassName = class.ClassName
		}
	}
	if student.StudentSectionID != nil {
		var section academicModel.ClassSection
		if err := db.WithContext(ctx).First(&section, "class_section_id = ?", *student.StudentSectionID).Error; err == nil {
			m.SectionName = section.ClassSectionName
		}
	}

	items, err := voucher.Items()
	if err != nil {
		return layout.PrintModel{}, err
	}
	if len(items) > 0 {
		ids := make([]uuid.UUID, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.FeeTypeID)
		}
		var types []feetypeModel.FeeType
		if err := db.WithContext(ctx).Where("fee_type_id IN ?", ids).Find(&types).Error; err != nil {
			return layout.PrintModel{}, err
		}
		names := make(map[uuid.UUID]string, len(types))
		for _, t := range types {
			names[t.FeeTypeID] = t.FeeTypeName
		}
		// a fee type deleted from the catalog drops off the printed voucher
		for _, it := range items {
			if name, ok := names[it.FeeTypeID]; ok {
				m.Items = append(m.Items, layout.PrintLineItem{FeeTypeName: name, Amount: it.FeeAmount})
			}
		}
	}
	return m, nil
}

func studentDisplayName(s academicModel.Student) string {
	if s.StudentLastName == "" {
		return s.StudentFirstName
	}
	return s.StudentFirstName + " " + s.StudentLastName
}
