// file: internals/features/admission/wizard/validation.go
package wizard

import (
	"github.com/go-playground/validator/v10"
)

// fieldRule is one declarative validation entry: a step-scoped field, how to
// read it from the draft, and its validator/v10 tag.
type fieldRule struct {
	Field   string
	Tag     string
	Message string
	Value   func(d *Draft) any
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// phone numbers on the intake form: digits only, 10 or 11 of them
	_ = v.RegisterValidation("phone1011", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) < 10 || len(s) > 11 {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
	return v
}

// stepRules maps each wizard step to the rules it owns. ValidateStep never
// looks at fields outside the requested step.
var stepRules = map[int][]fieldRule{
	StepPersonal: {
		{Field: "registration_number", Tag: "required", Message: "registration number is required",
			Value: func(d *Draft) any { return d.Admission.Personal.RegistrationNumber }},
		{Field: "first_name", Tag: "required", Message: "first name is required",
			Value: func(d *Draft) any { return d.Admission.Personal.FirstName }},
		{Field: "gender", Tag: "omitempty,oneof=male female", Message: "gender must be male or female",
			Value: func(d *Draft) any { return d.Admission.Personal.Gender }},
		{Field: "date_of_birth", Tag: "required", Message: "date of birth is required",
			Value: func(d *Draft) any { return d.Admission.Personal.DateOfBirth }},
	},
	StepContact: {
		{Field: "email", Tag: "required,email", Message: "a valid email is required",
			Value: func(d *Draft) any { return d.Admission.Contact.Email }},
		{Field: "phone", Tag: "required,phone1011", Message: "phone must be 10-11 digits",
			Value: func(d *Draft) any { return d.Admission.Contact.Phone }},
		{Field: "address", Tag: "required", Message: "address is required",
			Value: func(d *Draft) any { return d.Admission.Contact.Address }},
	},
	StepGuardian: {
		{Field: "father_name", Tag: "required", Message: "father name is required",
			Value: func(d *Draft) any { return d.Admission.Guardian.FatherName }},
		{Field: "guardian_phone", Tag: "required,phone1011", Message: "guardian phone must be 10-11 digits",
			Value: func(d *Draft) any { return d.Admission.Guardian.GuardianPhone }},
	},
	StepPriorAcademic: {
		{Field: "previous_marks", Tag: "omitempty,min=0", Message: "previous marks cannot be negative",
			Value: func(d *Draft) any { return d.Admission.PriorAcademic.PreviousMarks }},
		{Field: "class_id", Tag: "required", Message: "admission class is required",
			Value: func(d *Draft) any { return d.Admission.PriorAcademic.ClassID }},
		{Field: "section_id", Tag: "required", Message: "section is required",
			Value: func(d *Draft) any { return d.Admission.PriorAcademic.SectionID }},
	},
	StepFee: {
		{Field: "tuition_fee", Tag: "min=0", Message: "tuition fee cannot be negative",
			Value: func(d *Draft) any { return d.Fee.TuitionFee }},
	},
}

// ValidateStep evaluates only the rules owned by the given step. Pure and
// idempotent: identical drafts yield identical error maps.
func ValidateStep(d *Draft, step int) map[string][]string {
	errs := map[string][]string{}
	for _, rule := range stepRules[step] {
		if err := validate.Var(rule.Value(d), rule.Tag); err != nil {
			errs[rule.Field] = append(errs[rule.Field], rule.Message)
		}
	}

	// fee items carry their own per-line amount rule
	if step == StepFee {
		for _, it := range d.Fee.Items {
			if it.FeeAmount < 0 {
				errs["items"] = append(errs["items"], "fee amounts cannot be negative")
				break
			}
		}
	}
	return errs
}
