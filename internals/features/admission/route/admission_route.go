// file: internals/features/admission/route/admission_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wizardController "admissionku_backend/internals/features/admission/controller"
	"admissionku_backend/internals/features/admission/wizard"
)

// AdmissionRoutes mounts the wizard session endpoints on the guarded group.
func AdmissionRoutes(api fiber.Router, db *gorm.DB, store *wizard.Store) {
	ctrl := wizardController.NewWizardController(db, store)

	wiz := api.Group("/admission-wizard")
	wiz.Post("/", ctrl.OpenWizard)
	wiz.Get("/:id", ctrl.GetWizard)
	wiz.Delete("/:id", ctrl.CloseWizard)
	wiz.Put("/:id/steps/:step", ctrl.SaveStep)
	wiz.Post("/:id/advance", ctrl.Advance)
	wiz.Post("/:id/retreat", ctrl.Retreat)
	wiz.Post("/:id/jump/:step", ctrl.JumpTo)
}
