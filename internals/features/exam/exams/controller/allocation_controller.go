// file: internals/features/exam/exams/controller/allocation_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "examhall_backend/internals/features/exam/exams/dto"
	m "examhall_backend/internals/features/exam/exams/model"
	svc "examhall_backend/internals/features/exam/exams/service"
	masterModel "examhall_backend/internals/features/exam/masters/model"
	helper "examhall_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

// AllocationController exposes the slot/conflict/seating tooling directly:
// dry-run slot resolution, the two pre-save checks, and manual re-allocation
// with a caller-chosen hall walk order.
type AllocationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAllocationController(db *gorm.DB, v *validator.Validate) *AllocationController {
	return &AllocationController{DB: db, Validate: v}
}

/*
========================= Slot resolution =========================
*/

func (ctl *AllocationController) ResolveSlot(c *fiber.Ctx) error {
	var req d.ResolveSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := helper.ParseDateYYYYMMDD(req.Date)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	start, err := helper.ParseClockHHMM(req.StartTime)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	slot, err := svc.ResolveSlot(ctl.DB, date, start, req.HallIDs)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	resp := d.SlotResponse{
		ExamIDs:       slot.ExamIDs(),
		DepartmentIDs: slot.DepartmentIDs,
	}
	for i := range slot.Students {
		resp.StudentIDs = append(resp.StudentIDs, slot.Students[i].StudentID)
	}
	return helper.Success(c, "OK", resp)
}

/*
========================= Pre-save checks =========================
*/

func (ctl *AllocationController) CheckDepartmentConflict(c *fiber.Ctx) error {
	var req d.DepartmentConflictCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := helper.ParseDateYYYYMMDD(req.Date)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	start, err := helper.ParseClockHHMM(req.StartTime)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	findings, err := svc.NewConflictDetector(ctl.DB).
		CheckDepartmentConflict(req.ExamName, date, start, req.HallIDs, req.DepartmentIDs, req.ExcludeExamID)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{
		"has_conflict": len(findings) > 0,
		"conflicts":    findings,
	})
}

func (ctl *AllocationController) CheckStudentOverlap(c *fiber.Ctx) error {
	var req d.StudentOverlapCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := helper.ParseDateYYYYMMDD(req.Date)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	start, err := helper.ParseClockHHMM(req.StartTime)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	end, err := helper.ParseClockHHMM(req.EndTime)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if end <= start {
		return helper.Error(c, http.StatusBadRequest, "end_time must be after start_time")
	}

	findings, err := svc.NewConflictDetector(ctl.DB).
		CheckStudentOverlap(date, start, end, req.DepartmentIDs, req.ExcludeExamID)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{
		"has_overlap": len(findings) > 0,
		"overlaps":    findings,
	})
}

/*
========================= Manual allocation =========================
*/

// AllocateSeats recomputes seating for the exam's slot. The request's hall
// list is walked in the order given, so the caller controls which halls fill
// first. Every listed hall must belong to the exam.
func (ctl *AllocationController) AllocateSeats(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var req d.AllocateSeatsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var exam m.ExamModel
	if err := ctl.DB.Preload("Halls").First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Exam not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	examHalls := make(map[uuid.UUID]*masterModel.HallModel, len(exam.Halls))
	for i := range exam.Halls {
		examHalls[exam.Halls[i].HallID] = &exam.Halls[i]
	}
	halls := make([]masterModel.HallModel, 0, len(req.HallIDs))
	for _, id := range req.HallIDs {
		h, ok := examHalls[id]
		if !ok {
			return helper.Error(c, http.StatusBadRequest,
				fmt.Sprintf("hall %s is not assigned to this exam", id))
		}
		halls = append(halls, *h)
	}

	var result *svc.AllocationResult
	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res, err := svc.AllocateSeats(tx, &exam, halls)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if txErr != nil {
		return writeAllocationError(c, txErr)
	}

	return helper.Success(c, result.Message, result)
}
