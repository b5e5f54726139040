// file: internals/features/admission/service/collaborators.go
package service

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"admissionku_backend/internals/features/admission/wizard"
	feetypeModel "admissionku_backend/internals/features/finance/feetypes/model"
	voucherModel "admissionku_backend/internals/features/finance/vouchers/model"
	academicModel "admissionku_backend/internals/features/school/academics/model"

	"github.com/google/uuid"
)

const pgUniqueViolation = "23505"

// GormCollaborators backs every wizard collaborator contract with the database.
type GormCollaborators struct {
	DB *gorm.DB
}

func NewDeps(db *gorm.DB) wizard.Deps {
	g := &GormCollaborators{DB: db}
	return wizard.Deps{
		Creator:   g,
		Catalog:   g,
		Vouchers:  g,
		Submitter: g,
	}
}

/* =======================================================
   createAdmission
======================================================= */

func (g *GormCollaborators) CreateAdmission(ctx context.Context, f wizard.AdmissionFields) (uuid.UUID, error) {
	m := academicModel.Student{
		StudentRegistrationNumber: f.Personal.RegistrationNumber,
		StudentFirstName:          f.Personal.FirstName,
		StudentLastName:           f.Personal.LastName,
		StudentGender:             f.Personal.Gender,
		StudentDateOfBirth:        f.Personal.DateOfBirth,
		StudentEmail:              f.Contact.Email,
		StudentPhone:              f.Contact.Phone,
		StudentAddress:            f.Contact.Address,
		StudentFatherName:         f.Guardian.FatherName,
		StudentGuardianPhone:      f.Guardian.GuardianPhone,
		StudentGuardianCNIC:       f.Guardian.GuardianCNIC,
		StudentPreviousSchool:     f.PriorAcademic.PreviousSchool,
		StudentPreviousClass:      f.PriorAcademic.PreviousClass,
		StudentPreviousMarks:      f.PriorAcademic.PreviousMarks,
		StudentClassID:            f.PriorAcademic.ClassID,
		StudentSectionID:          f.PriorAcademic.SectionID,
	}

	if err := g.DB.WithContext(ctx).Create(&m).Error; err != nil {
		// the registration number is the external dedup key: a duplicate means
		// this admission was already created (e.g. a retried submit)
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return uuid.Nil, &wizard.CommitError{
				Op:      "create_admission",
				Message: "registration number is already admitted",
			}
		}
		return uuid.Nil, &wizard.CommitError{
			Op:      "create_admission",
			Message: "could not save the admission, please try again",
		}
	}
	return m.StudentID, nil
}

/* =======================================================
   fetchFeeTypeEnumeration
======================================================= */

func (g *GormCollaborators) ListFeeTypes(ctx context.Context) ([]wizard.CatalogFeeType, error) {
	var rows []feetypeModel.FeeType
	if err := g.DB.WithContext(ctx).
		Where("fee_type_is_active = TRUE").
		Order("fee_type_name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]wizard.CatalogFeeType, 0, len(rows))
	for _, r := range rows {
		out = append(out, wizard.CatalogFeeType{
			ID:             r.FeeTypeID,
			Name:           r.FeeTypeName,
			DefaultAmount:  r.FeeTypeDefaultAmount,
			IsDiscountable: r.FeeTypeIsDiscountable,
		})
	}
	return out, nil
}

/* =======================================================
   fetchExistingVoucher
======================================================= */

func (g *GormCollaborators) ExistingVoucher(ctx context.Context, studentID uuid.UUID) (*wizard.FeeFields, error) {
	var m voucherModel.FeeVoucher
	err := g.DB.WithContext(ctx).
		First(&m, "fee_voucher_student_id = ?", studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := m.Items()
	if err != nil {
		return nil, err
	}
	return &wizard.FeeFields{
		Items:        items,
		TuitionFee:   m.FeeVoucherTuitionFee,
		DueDate:      m.FeeVoucherDueDate,
		VoucherMonth: m.FeeVoucherMonth,
		Remarks:      m.FeeVoucherRemarks,
	}, nil
}

/* =======================================================
   submitVoucher
======================================================= */

func (g *GormCollaborators) SubmitVoucher(ctx context.Context, studentID uuid.UUID, fee wizard.FeeFields) error {
	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m voucherModel.FeeVoucher
		err := tx.First(&m, "fee_voucher_student_id = ?", studentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m = voucherModel.FeeVoucher{FeeVoucherStudentID: studentID}
		} else if err != nil {
			return err
		}

		if err := m.SetItems(fee.Items); err != nil {
			return err
		}
		m.FeeVoucherTuitionFee = fee.TuitionFee
		m.FeeVoucherDueDate = fee.DueDate
		m.FeeVoucherMonth = fee.VoucherMonth
		m.FeeVoucherRemarks = fee.Remarks

		return tx.Save(&m).Error
	})
	if err != nil {
		return &wizard.CommitError{
			Op:      "submit_voucher",
			Message: "could not save the fee voucher, please try again",
		}
	}
	return nil
}
