// file: internals/features/admission/wizard/wizard.go
package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"admissionku_backend/internals/features/finance/fees"
)

/* =======================================================
   COLLABORATOR CONTRACTS (injected; GORM-backed in prod)
======================================================= */

type AdmissionCreator interface {
	CreateAdmission(ctx context.Context, fields AdmissionFields) (uuid.UUID, error)
}

type FeeTypeCatalog interface {
	ListFeeTypes(ctx context.Context) ([]CatalogFeeType, error)
}

type VoucherReader interface {
	// ExistingVoucher returns nil when the student has no voucher yet.
	ExistingVoucher(ctx context.Context, studentID uuid.UUID) (*FeeFields, error)
}

type VoucherSubmitter interface {
	SubmitVoucher(ctx context.Context, studentID uuid.UUID, fee FeeFields) error
}

type Deps struct {
	Creator   AdmissionCreator
	Catalog   FeeTypeCatalog
	Vouchers  VoucherReader
	Submitter VoucherSubmitter
}

/* =======================================================
   ERRORS
======================================================= */

var (
	ErrSessionClosed  = errors.New("wizard session is closed")
	ErrCommitInFlight = errors.New("a commit is already in progress")
	ErrJumpForward    = errors.New("cannot jump past the highest step reached")
	ErrStepInvalid    = errors.New("current step has validation errors")
)

// CommitError carries the single user-visible message of a failed admission or
// voucher commit. The underlying cause never leaves the wizard.
type CommitError struct {
	Op      string // "create_admission" | "submit_voucher"
	Message string
}

func (e *CommitError) Error() string { return e.Message }

/* =======================================================
   SESSION
======================================================= */

// Session owns one AdmissionDraft. All methods are safe for concurrent use;
// at most one commit is in flight per session.
type Session struct {
	ID uuid.UUID

	mu          sync.Mutex
	deps        Deps
	draft       Draft
	currentStep int
	maxReached  int
	committed   bool
	studentID   uuid.UUID
	fieldErrors map[string][]string
	commitMsg   string
	submitting  bool
	closed      bool
	done        bool // terminal: final submit succeeded
	catalog     []CatalogFeeType
	lastTouch   time.Time
}

// NewSession opens a fresh wizard session at step 0.
func NewSession(deps Deps) *Session {
	return &Session{
		ID:          uuid.New(),
		deps:        deps,
		fieldErrors: map[string][]string{},
		lastTouch:   time.Now(),
	}
}

// ResumeSession opens a session for an already-admitted student: the draft is
// prefilled, the session starts committed, and Advance at the commit step will
// not resubmit the admission.
func ResumeSession(ctx context.Context, deps Deps, studentID uuid.UUID, fields AdmissionFields) (*Session, error) {
	s := NewSession(deps)
	s.committed = true
	s.studentID = studentID
	s.draft.Admission = fields
	s.RefreshCatalog(ctx)

	if deps.Vouchers != nil {
		existing, err := deps.Vouchers.ExistingVoucher(ctx, studentID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			s.draft.Fee = *existing
		}
	}
	return s, nil
}

/* =======================================================
   FIELD EDITS
======================================================= */

// SaveStep replaces the fields owned by one step. Edits clear that step's
// stale field errors; validation happens on Advance.
func (s *Session) SaveStep(step int, apply func(d *Draft)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	apply(&s.draft)
	s.draft.Fee.Items = fees.SelectFeeItems(s.draft.Fee.Items)
	s.fieldErrors = map[string][]string{}
	s.commitMsg = ""
	s.lastTouch = time.Now()
	return nil
}

/* =======================================================
   TRANSITIONS
======================================================= */

// Advance validates the current step and moves forward. At CommitStep it first
// commits the admission (unless already committed); at the terminal fee step it
// submits the voucher and, on success, closes the session.
func (s *Session) Advance(ctx context.Context) (State, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return State{}, ErrSessionClosed
	}
	if s.submitting {
		st := s.stateLocked()
		s.mu.Unlock()
		return st, ErrCommitInFlight
	}

	step := s.currentStep
	if errs := ValidateStep(&s.draft, step); len(errs) > 0 {
		s.fieldErrors = errs
		st := s.stateLocked()
		s.mu.Unlock()
		return st, ErrStepInvalid
	}
	s.fieldErrors = map[string][]string{}

	switch {
	case step == CommitStep && !s.committed:
		return s.commitAdmission(ctx)
	case step == CommitStep:
		// editing an existing admission: skip resubmission, go straight to fees
		s.enterFeeStepLocked(ctx)
		st := s.stateLocked()
		s.mu.Unlock()
		return st, nil
	case step == StepFee:
		return s.submitVoucher(ctx)
	default:
		s.moveToLocked(step + 1)
		st := s.stateLocked()
		s.mu.Unlock()
		return st, nil
	}
}

// Retreat moves one step back without validation. At step 0 it is a no-op;
// closing the wizard is the caller's affordance there.
func (s *Session) Retreat() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return State{}, ErrSessionClosed
	}
	if s.currentStep > 0 {
		s.currentStep--
	}
	s.lastTouch = time.Now()
	return s.stateLocked(), nil
}

// JumpTo moves directly to a previously reached step. Re-entering the fee step
// refreshes the enumeration like Advance does.
func (s *Session) JumpTo(ctx context.Context, step int) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return State{}, ErrSessionClosed
	}
	if step < 0 || step >= StepCount || step > s.maxReached {
		return s.stateLocked(), ErrJumpForward
	}
	if step == StepFee {
		s.refreshCatalogLocked(ctx)
	}
	s.currentStep = step
	s.lastTouch = time.Now()
	return s.stateLocked(), nil
}

// Close discards the draft. An in-flight commit is not aborted; its eventual
// result is dropped because the session no longer accepts it.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

/* =======================================================
   COMMITS (single in-flight per session)
======================================================= */

// commitAdmission is entered with s.mu held; the lock is released around the
// collaborator call so Snapshot/Close stay responsive while the commit runs.
func (s *Session) commitAdmission(ctx context.Context) (State, error) {
	s.submitting = true
	fields := s.draft.Admission
	s.mu.Unlock()

	studentID, err := s.deps.Creator.CreateAdmission(ctx, fields)

	s.mu.Lock()
	s.submitting = false
	if s.closed {
		s.mu.Unlock()
		return State{}, ErrSessionClosed
	}
	if err != nil {
		// progression halts at the current step; the draft stays editable
		s.commitMsg = commitMessage(err)
		st := s.stateLocked()
		s.mu.Unlock()
		return st, &CommitError{Op: "create_admission", Message: s.commitMsg}
	}

	s.committed = true
	s.studentID = studentID
	s.commitMsg = ""
	s.enterFeeStepLocked(ctx)
	st := s.stateLocked()
	s.mu.Unlock()
	return st, nil
}

// submitVoucher is entered with s.mu held, same locking shape as commitAdmission.
func (s *Session) submitVoucher(ctx context.Context) (State, error) {
	s.submitting = true
	studentID := s.studentID
	fee := s.draft.Fee
	fee.Items = s.prunedItemsLocked()
	s.mu.Unlock()

	err := s.deps.Submitter.SubmitVoucher(ctx, studentID, fee)

	s.mu.Lock()
	s.submitting = false
	if s.closed {
		s.mu.Unlock()
		return State{}, ErrSessionClosed
	}
	if err != nil {
		s.commitMsg = commitMessage(err)
		st := s.stateLocked()
		s.mu.Unlock()
		return st, &CommitError{Op: "submit_voucher", Message: s.commitMsg}
	}

	s.done = true
	s.closed = true
	st := s.stateLocked()
	s.mu.Unlock()
	return st, nil
}

// RefreshCatalog refetches the fee-type enumeration, e.g. on wizard open.
func (s *Session) RefreshCatalog(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshCatalogLocked(ctx)
}

// refreshCatalogLocked is non-fatal: on error the previous enumeration stays.
func (s *Session) refreshCatalogLocked(ctx context.Context) {
	if s.deps.Catalog != nil {
		if types, err := s.deps.Catalog.ListFeeTypes(ctx); err == nil {
			s.catalog = types
		}
	}
}

// enterFeeStepLocked advances to the fee step, refreshing the enumeration and
// prefilling from an existing voucher when one exists.
func (s *Session) enterFeeStepLocked(ctx context.Context) {
	s.refreshCatalogLocked(ctx)
	if s.committed && len(s.draft.Fee.Items) == 0 && s.deps.Vouchers != nil {
		if existing, err := s.deps.Vouchers.ExistingVoucher(ctx, s.studentID); err == nil && existing != nil {
			s.draft.Fee = *existing
		}
	}
	s.moveToLocked(StepFee)
}

func (s *Session) moveToLocked(step int) {
	s.currentStep = step
	if step > s.maxReached {
		s.maxReached = step
	}
	s.lastTouch = time.Now()
}

func commitMessage(err error) string {
	var ce *CommitError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}

/* =======================================================
   EXPOSED STATE
======================================================= */

// State is the read-only view handed to the UI shell.
type State struct {
	SessionID            uuid.UUID           `json:"session_id"`
	CurrentStep          int                 `json:"current_step"`
	MaxReached           int                 `json:"max_reached"`
	Committed            bool                `json:"committed"`
	Done                 bool                `json:"done"`
	IsSubmitting         bool                `json:"is_submitting"`
	CanAdvance           bool                `json:"can_advance"`
	CanRetreat           bool                `json:"can_retreat"`
	FieldErrors          map[string][]string `json:"field_errors"`
	CommitMessage        string              `json:"commit_message,omitempty"`
	ComputedTotal        int                 `json:"computed_total"`
	ComputedTotalInWords string              `json:"computed_total_in_words"`
	Catalog              []CatalogFeeType    `json:"catalog,omitempty"`
	Draft                Draft               `json:"draft"`
}

// Snapshot returns the current exposed state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	items := s.prunedItemsLocked()
	total := fees.ComputeTotal(items, s.draft.Fee.TuitionFee)

	errsCopy := make(map[string][]string, len(s.fieldErrors))
	for k, v := range s.fieldErrors {
		errsCopy[k] = append([]string(nil), v...)
	}

	return State{
		SessionID:            s.ID,
		CurrentStep:          s.currentStep,
		MaxReached:           s.maxReached,
		Committed:            s.committed,
		Done:                 s.done,
		IsSubmitting:         s.submitting,
		CanAdvance:           !s.submitting && len(ValidateStep(&s.draft, s.currentStep)) == 0,
		CanRetreat:           s.currentStep > 0,
		FieldErrors:          errsCopy,
		CommitMessage:        s.commitMsg,
		ComputedTotal:        total,
		ComputedTotalInWords: fees.AmountToWords(total),
		Catalog:              s.catalog,
		Draft:                s.draft,
	}
}

// prunedItemsLocked drops selections whose fee type left the enumeration.
// Stale items vanish from display and totals without blocking the user.
func (s *Session) prunedItemsLocked() []fees.FeeLineItem {
	if len(s.catalog) == 0 {
		return s.draft.Fee.Items
	}
	ids := make([]uuid.UUID, 0, len(s.catalog))
	for _, t := range s.catalog {
		ids = append(ids, t.ID)
	}
	return fees.PruneToCatalog(s.draft.Fee.Items, ids)
}

// StudentID reports the committed admission's id (zero until committed).
func (s *Session) StudentID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.studentID
}

// Done reports whether the final submit succeeded.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// IdleSince reports the last interaction time, used by the store janitor.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouch
}
