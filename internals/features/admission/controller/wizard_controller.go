// file: internals/features/admission/controller/wizard_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "admissionku_backend/internals/features/admission/dto"
	"admissionku_backend/internals/features/admission/service"
	"admissionku_backend/internals/features/admission/wizard"
	helper "admissionku_backend/internals/helpers"
)

type WizardController struct {
	DB    *gorm.DB
	Store *wizard.Store
	Deps  wizard.Deps
}

func NewWizardController(db *gorm.DB, store *wizard.Store) *WizardController {
	return &WizardController{
		DB:    db,
		Store: store,
		Deps:  service.NewDeps(db),
	}
}

func (h *WizardController) session(c *fiber.Ctx) (*wizard.Session, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "invalid session id")
	}
	s, ok := h.Store.Get(id)
	if !ok {
		return nil, fiber.NewError(http.StatusNotFound, "wizard session not found")
	}
	return s, nil
}

/* =======================================================
   SESSION LIFECYCLE
======================================================= */

// POST /admission-wizard
func (h *WizardController) OpenWizard(c *fiber.Ctx) error {
	var in dto.OpenWizardDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid json")
		}
	}

	var s *wizard.Session
	if in.StudentID != nil {
		fields, err := service.LoadAdmissionFields(c.UserContext(), h.DB, *in.StudentID)
		if err != nil {
			if errors.Is(err, service.ErrStudentNotFound) {
				return helper.JsonError(c, http.StatusNotFound, "student not found")
			}
			return helper.JsonError(c, http.StatusInternalServerError, "could not load the admission")
		}
		s, err = wizard.ResumeSession(c.UserContext(), h.Deps, *in.StudentID, fields)
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, "could not open the wizard")
		}
	} else {
		s = wizard.NewSession(h.Deps)
		s.RefreshCatalog(c.UserContext())
	}

	h.Store.Put(s)
	return helper.JsonCreated(c, "wizard opened", s.Snapshot())
}

// GET /admission-wizard/:id
func (h *WizardController) GetWizard(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "wizard state", s.Snapshot())
}

// DELETE /admission-wizard/:id — discard the draft
func (h *WizardController) CloseWizard(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid session id")
	}
	h.Store.Remove(id)
	return helper.JsonDeleted(c, "wizard closed", fiber.Map{"session_id": id})
}

/* =======================================================
   FIELD EDITS
======================================================= */

// PUT /admission-wizard/:id/steps/:step
func (h *WizardController) SaveStep(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	step, err := strconv.Atoi(c.Params("step"))
	if err != nil || step < 0 || step >= wizard.StepCount {
		return helper.JsonError(c, http.StatusBadRequest, "invalid step")
	}

	var apply func(d *wizard.Draft)
	switch step {
	case wizard.StepPersonal:
		var in dto.PersonalStepDTO
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid json")
		}
		apply = in.Apply
	case wizard.StepContact:
		var in dto.ContactStepDTO
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid json")
		}
		apply = in.Apply
	case wizard.StepGuardian:
		var in dto.GuardianStepDTO
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid json")
		}
		apply = in.Apply
	case wizard.StepPriorAcademic:
		var in dto.PriorAcademicStepDTO
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid json")
		}
		apply = in.Apply
	case wizard.StepFee:
		var in dto.FeeStepDTO
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid json")
		}
		apply = in.Apply
	}

	if err := s.SaveStep(step, apply); err != nil {
		return helper.JsonError(c, http.StatusGone, "wizard session is closed")
	}
	return helper.JsonOK(c, "step saved", s.Snapshot())
}

/* =======================================================
   TRANSITIONS
======================================================= */

// POST /admission-wizard/:id/advance
func (h *WizardController) Advance(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	st, err := s.Advance(c.UserContext())
	switch {
	case err == nil:
		if st.Done {
			// terminal submit succeeded: the session is gone for good
			h.Store.Drop(s.ID)
			return helper.JsonOK(c, "admission completed", st)
		}
		return helper.JsonOK(c, "advanced", st)
	case errors.Is(err, wizard.ErrStepInvalid):
		return helper.JsonValidationError(c, st.FieldErrors)
	case errors.Is(err, wizard.ErrCommitInFlight):
		return helper.JsonError(c, http.StatusConflict, "a submit is already in progress")
	case errors.Is(err, wizard.ErrSessionClosed):
		return helper.JsonError(c, http.StatusGone, "wizard session is closed")
	default:
		var ce *wizard.CommitError
		if errors.As(err, &ce) {
			return helper.JsonError(c, http.StatusBadGateway, ce.Message)
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
}

// POST /admission-wizard/:id/retreat
func (h *WizardController) Retreat(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	st, err := s.Retreat()
	if err != nil {
		return helper.JsonError(c, http.StatusGone, "wizard session is closed")
	}
	return helper.JsonOK(c, "retreated", st)
}

// POST /admission-wizard/:id/jump/:step
func (h *WizardController) JumpTo(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	step, err := strconv.Atoi(c.Params("step"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid step")
	}

	st, err := s.JumpTo(c.UserContext(), step)
	switch {
	case err == nil:
		return helper.JsonOK(c, "jumped", st)
	case errors.Is(err, wizard.ErrJumpForward):
		return helper.JsonError(c, http.StatusForbidden, "step not reached yet")
	default:
		return helper.JsonError(c, http.StatusGone, "wizard session is closed")
	}
}
