// file: internals/features/exam/exams/controller/invigilator_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "examhall_backend/internals/features/exam/exams/dto"
	m "examhall_backend/internals/features/exam/exams/model"
	svc "examhall_backend/internals/features/exam/exams/service"
	helper "examhall_backend/internals/helpers"
)

type InvigilatorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewInvigilatorController(db *gorm.DB, v *validator.Validate) *InvigilatorController {
	return &InvigilatorController{DB: db, Validate: v}
}

// Assign sets the invigilator for (exam, hall) and propagates it to sibling
// exams in the slot that still lack one for that hall.
func (ctl *InvigilatorController) Assign(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var req d.AssignInvigilatorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	assigned, err := svc.NewInvigilatorPropagator(ctl.DB).Assign(examID, req.HallID, req.TeacherID)
	if err != nil {
		if errors.Is(err, svc.ErrHallNotInExam) {
			return helper.Error(c, http.StatusBadRequest, err.Error())
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Exam or teacher not found")
		}
		return writePGError(c, err)
	}

	return helper.Success(c, "Invigilator assigned.", fiber.Map{
		"assigned_count": assigned,
	})
}

func (ctl *InvigilatorController) ListForExam(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var rows []m.InvigilationAssignmentModel
	if err := ctl.DB.
		Preload("Hall").
		Preload("Teacher").
		Where("invigilation_assignment_exam_id = ?", examID).
		Order("invigilation_assignment_created_at").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

// DeleteAssignment removes one (exam, hall) assignment only; siblings that
// received the same teacher by propagation keep theirs.
func (ctl *InvigilatorController) DeleteAssignment(c *fiber.Ctx) error {
	assignmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var row m.InvigilationAssignmentModel
	if err := ctl.DB.First(&row, "invigilation_assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Assignment not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.Success(c, "Invigilation assignment deleted.", nil)
}
