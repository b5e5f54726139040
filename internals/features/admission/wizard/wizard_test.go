package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"admissionku_backend/internals/features/finance/fees"
)

/* =======================================================
   FAKE COLLABORATORS
======================================================= */

type fakeCreator struct {
	calls int
	err   error
	id    uuid.UUID
	block chan struct{} // when set, CreateAdmission waits until closed
}

func (f *fakeCreator) CreateAdmission(ctx context.Context, fields AdmissionFields) (uuid.UUID, error) {
	f.calls++
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return uuid.Nil, f.err
	}
	if f.id == uuid.Nil {
		f.id = uuid.New()
	}
	return f.id, nil
}

type fakeCatalog struct {
	types []CatalogFeeType
	calls int
}

func (f *fakeCatalog) ListFeeTypes(ctx context.Context) ([]CatalogFeeType, error) {
	f.calls++
	return f.types, nil
}

type fakeVouchers struct{ existing *FeeFields }

func (f *fakeVouchers) ExistingVoucher(ctx context.Context, studentID uuid.UUID) (*FeeFields, error) {
	return f.existing, nil
}

type fakeSubmitter struct {
	calls int
	err   error
}

func (f *fakeSubmitter) SubmitVoucher(ctx context.Context, studentID uuid.UUID, fee FeeFields) error {
	f.calls++
	return f.err
}

func testDeps() (Deps, *fakeCreator, *fakeCatalog, *fakeSubmitter) {
	creator := &fakeCreator{}
	catalog := &fakeCatalog{}
	submitter := &fakeSubmitter{}
	return Deps{
		Creator:   creator,
		Catalog:   catalog,
		Vouchers:  &fakeVouchers{},
		Submitter: submitter,
	}, creator, catalog, submitter
}

func fillStep(t *testing.T, s *Session, step int) {
	t.Helper()
	dob := time.Date(2015, time.June, 2, 0, 0, 0, 0, time.UTC)
	classID, sectionID := uuid.New(), uuid.New()
	err := s.SaveStep(step, func(d *Draft) {
		switch step {
		case StepPersonal:
			d.Admission.Personal = PersonalInfo{
				RegistrationNumber: "REG-2026-001",
				FirstName:          "Ayesha",
				LastName:           "Khan",
				Gender:             "female",
				DateOfBirth:        &dob,
			}
		case StepContact:
			d.Admission.Contact = ContactInfo{
				Email:   "parent@example.com",
				Phone:   "03001234567",
				Address: "House 12, Street 4",
			}
		case StepGuardian:
			d.Admission.Guardian = GuardianInfo{
				FatherName:    "Imran Khan",
				GuardianPhone: "03007654321",
			}
		case StepPriorAcademic:
			d.Admission.PriorAcademic = PriorAcademicInfo{
				PreviousSchool: "City Grammar",
				ClassID:        &classID,
				SectionID:      &sectionID,
			}
		case StepFee:
			d.Fee.TuitionFee = 3000
		}
	})
	if err != nil {
		t.Fatalf("SaveStep(%d): %v", step, err)
	}
}

func advanceTo(t *testing.T, s *Session, target int) {
	t.Helper()
	for s.Snapshot().CurrentStep < target {
		step := s.Snapshot().CurrentStep
		fillStep(t, s, step)
		if _, err := s.Advance(context.Background()); err != nil {
			t.Fatalf("Advance from step %d: %v", step, err)
		}
	}
}

/* =======================================================
   TESTS
======================================================= */

func TestAdvance_BlockedByValidation(t *testing.T) {
	deps, creator, _, _ := testDeps()
	s := NewSession(deps)

	// step 0 with empty first name: advance must not move
	st, err := s.Advance(context.Background())
	if !errors.Is(err, ErrStepInvalid) {
		t.Fatalf("err = %v, want ErrStepInvalid", err)
	}
	if st.CurrentStep != 0 {
		t.Errorf("current = %d, want 0", st.CurrentStep)
	}
	if _, ok := st.FieldErrors["first_name"]; !ok {
		t.Errorf("field_errors = %v, want first_name entry", st.FieldErrors)
	}
	if creator.calls != 0 {
		t.Errorf("CreateAdmission called %d times before commit step", creator.calls)
	}
}

func TestValidateStep_Idempotent(t *testing.T) {
	s := NewSession(Deps{})
	first := ValidateStep(&s.draft, StepPersonal)
	second := ValidateStep(&s.draft, StepPersonal)
	if len(first) != len(second) {
		t.Fatalf("error maps differ: %v vs %v", first, second)
	}
	for field, msgs := range first {
		other := second[field]
		if len(msgs) != len(other) {
			t.Fatalf("field %s differs: %v vs %v", field, msgs, other)
		}
		for i := range msgs {
			if msgs[i] != other[i] {
				t.Fatalf("field %s differs: %v vs %v", field, msgs, other)
			}
		}
	}
}

func TestAdvance_CommitsAdmissionAtPenultimateStep(t *testing.T) {
	deps, creator, catalog, _ := testDeps()
	catalog.types = []CatalogFeeType{{ID: uuid.New(), Name: "Admission Fee", DefaultAmount: 5000}}
	s := NewSession(deps)

	advanceTo(t, s, StepFee)

	st := s.Snapshot()
	if creator.calls != 1 {
		t.Fatalf("CreateAdmission calls = %d, want 1", creator.calls)
	}
	if !st.Committed || st.CurrentStep != StepFee {
		t.Errorf("state = committed:%v step:%d, want committed at fee step", st.Committed, st.CurrentStep)
	}
	if catalog.calls == 0 {
		t.Errorf("fee enumeration not refreshed on entering fee step")
	}
}

func TestAdvance_CommittedDraftSkipsResubmission(t *testing.T) {
	deps, creator, _, _ := testDeps()
	s, err := ResumeSession(context.Background(), deps, uuid.New(), AdmissionFields{})
	if err != nil {
		t.Fatalf("ResumeSession: %v", err)
	}

	advanceTo(t, s, StepFee)

	if creator.calls != 0 {
		t.Errorf("CreateAdmission calls = %d, want 0 for committed draft", creator.calls)
	}
	if st := s.Snapshot(); st.CurrentStep != StepFee {
		t.Errorf("current = %d, want fee step", st.CurrentStep)
	}
}

func TestAdvance_CommitFailureKeepsStepAndRetries(t *testing.T) {
	deps, creator, _, _ := testDeps()
	creator.err = errors.New("registration number already admitted")
	s := NewSession(deps)

	advanceTo(t, s, CommitStep)
	fillStep(t, s, CommitStep)

	st, err := s.Advance(context.Background())
	var ce *CommitError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want CommitError", err)
	}
	if st.CurrentStep != CommitStep {
		t.Errorf("current = %d, want unchanged %d", st.CurrentStep, CommitStep)
	}
	if st.CommitMessage == "" {
		t.Errorf("commit message not surfaced")
	}

	// user retries without re-entering data
	creator.err = nil
	st, err = s.Advance(context.Background())
	if err != nil {
		t.Fatalf("retry Advance: %v", err)
	}
	if st.CurrentStep != StepFee || !st.Committed {
		t.Errorf("retry state = step:%d committed:%v", st.CurrentStep, st.Committed)
	}
	if creator.calls != 2 {
		t.Errorf("CreateAdmission calls = %d, want 2", creator.calls)
	}
}

func TestAdvance_SingleCommitInFlight(t *testing.T) {
	deps, creator, _, _ := testDeps()
	creator.block = make(chan struct{})
	s := NewSession(deps)
	advanceTo(t, s, CommitStep)
	fillStep(t, s, CommitStep)

	firstDone := make(chan error, 1)
	go func() {
		_, err := s.Advance(context.Background())
		firstDone <- err
	}()

	// wait for the commit to be in flight
	deadline := time.Now().Add(2 * time.Second)
	for !s.Snapshot().IsSubmitting {
		if time.Now().After(deadline) {
			t.Fatal("commit never became in-flight")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := s.Advance(context.Background()); !errors.Is(err, ErrCommitInFlight) {
		t.Fatalf("second Advance err = %v, want ErrCommitInFlight", err)
	}

	close(creator.block)
	if err := <-firstDone; err != nil {
		t.Fatalf("first Advance: %v", err)
	}
	if creator.calls != 1 {
		t.Errorf("CreateAdmission calls = %d, want 1", creator.calls)
	}
}

func TestRetreat_NoValidationAndFloorAtZero(t *testing.T) {
	deps, _, _, _ := testDeps()
	s := NewSession(deps)
	advanceTo(t, s, StepGuardian)

	// wipe a previously valid step, retreat must still succeed
	_ = s.SaveStep(StepContact, func(d *Draft) { d.Admission.Contact = ContactInfo{} })

	st, err := s.Retreat()
	if err != nil || st.CurrentStep != StepContact {
		t.Fatalf("Retreat = step:%d err:%v, want step %d", st.CurrentStep, err, StepContact)
	}
	st, _ = s.Retreat()
	st, _ = s.Retreat()
	if st.CurrentStep != 0 {
		t.Fatalf("current = %d, want floor at 0", st.CurrentStep)
	}
}

func TestJumpTo_OnlyVisitedSteps(t *testing.T) {
	deps, _, _, _ := testDeps()
	s := NewSession(deps)
	advanceTo(t, s, StepGuardian)

	ctx := context.Background()
	if _, err := s.JumpTo(ctx, StepPersonal); err != nil {
		t.Fatalf("jump back: %v", err)
	}
	if st, err := s.JumpTo(ctx, StepGuardian); err != nil || st.CurrentStep != StepGuardian {
		t.Fatalf("jump to max reached: step:%d err:%v", st.CurrentStep, err)
	}
	if _, err := s.JumpTo(ctx, StepFee); !errors.Is(err, ErrJumpForward) {
		t.Fatalf("jump forward err = %v, want ErrJumpForward", err)
	}
}

func TestJumpTo_FeeStepRefreshesEnumeration(t *testing.T) {
	deps, _, catalog, _ := testDeps()
	s := NewSession(deps)
	advanceTo(t, s, StepFee)

	before := catalog.calls
	if _, err := s.JumpTo(context.Background(), StepPersonal); err != nil {
		t.Fatalf("jump back: %v", err)
	}
	if _, err := s.JumpTo(context.Background(), StepFee); err != nil {
		t.Fatalf("jump to fee step: %v", err)
	}
	if catalog.calls != before+1 {
		t.Errorf("catalog calls = %d, want %d (refetched on re-entry)", catalog.calls, before+1)
	}
}

func TestFinalSubmit_ClosesSession(t *testing.T) {
	deps, _, _, submitter := testDeps()
	s := NewSession(deps)
	advanceTo(t, s, StepFee)
	fillStep(t, s, StepFee)

	st, err := s.Advance(context.Background())
	if err != nil {
		t.Fatalf("final Advance: %v", err)
	}
	if submitter.calls != 1 {
		t.Errorf("SubmitVoucher calls = %d, want 1", submitter.calls)
	}
	if !st.Done {
		t.Errorf("session not marked done after final submit")
	}
	if _, err := s.Advance(context.Background()); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("post-close Advance err = %v, want ErrSessionClosed", err)
	}
}

func TestState_PrunesStaleFeeTypesFromTotal(t *testing.T) {
	deps, _, catalog, _ := testDeps()
	known := uuid.New()
	stale := uuid.New()
	catalog.types = []CatalogFeeType{{ID: known, Name: "Admission Fee", DefaultAmount: 5000}}

	s := NewSession(deps)
	advanceTo(t, s, StepFee)
	_ = s.SaveStep(StepFee, func(d *Draft) {
		d.Fee.TuitionFee = 3000
		d.Fee.Items = []fees.FeeLineItem{
			{FeeTypeID: known, FeeAmount: 5000},
			{FeeTypeID: stale, FeeAmount: 999},
		}
	})

	st := s.Snapshot()
	if st.ComputedTotal != 8000 {
		t.Errorf("computed total = %d, want 8000 (stale item dropped)", st.ComputedTotal)
	}
	if st.ComputedTotalInWords != "Eight Thousand Only" {
		t.Errorf("total in words = %q", st.ComputedTotalInWords)
	}
}

func TestResumeSession_PrefillsExistingVoucher(t *testing.T) {
	feeType := uuid.New()
	due := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	deps, _, _, _ := testDeps()
	deps.Vouchers = &fakeVouchers{existing: &FeeFields{
		Items:      []fees.FeeLineItem{{FeeTypeID: feeType, FeeAmount: 1200}},
		TuitionFee: 4500,
		DueDate:    &due,
		Remarks:    "carried forward",
	}}

	s, err := ResumeSession(context.Background(), deps, uuid.New(), AdmissionFields{})
	if err != nil {
		t.Fatalf("ResumeSession: %v", err)
	}
	st := s.Snapshot()
	if st.Draft.Fee.TuitionFee != 4500 || len(st.Draft.Fee.Items) != 1 {
		t.Errorf("prefill = %+v, want existing voucher fields", st.Draft.Fee)
	}
}
