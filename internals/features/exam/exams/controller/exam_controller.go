// file: internals/features/exam/exams/controller/exam_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "examhall_backend/internals/features/exam/attendance/model"
	d "examhall_backend/internals/features/exam/exams/dto"
	m "examhall_backend/internals/features/exam/exams/model"
	svc "examhall_backend/internals/features/exam/exams/service"
	masterModel "examhall_backend/internals/features/exam/masters/model"
	helper "examhall_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ExamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExamController(db *gorm.DB, v *validator.Validate) *ExamController {
	return &ExamController{DB: db, Validate: v}
}

/* =========================
   Helpers
   ========================= */

func (ctl *ExamController) loadDepartments(ids []uuid.UUID) ([]masterModel.DepartmentModel, error) {
	var depts []masterModel.DepartmentModel
	if err := ctl.DB.Where("department_id IN ?", ids).Find(&depts).Error; err != nil {
		return nil, err
	}
	if len(depts) != len(ids) {
		return nil, fmt.Errorf("unknown department id in request")
	}
	return depts, nil
}

func (ctl *ExamController) loadHalls(ids []uuid.UUID) ([]masterModel.HallModel, error) {
	var halls []masterModel.HallModel
	if err := ctl.DB.Where("hall_id IN ?", ids).Find(&halls).Error; err != nil {
		return nil, err
	}
	if len(halls) != len(ids) {
		return nil, fmt.Errorf("unknown hall id in request")
	}
	// exam save path has no caller-supplied walk order; hall name keeps the
	// recompute deterministic
	sort.Slice(halls, func(i, j int) bool { return halls[i].HallName < halls[j].HallName })
	return halls, nil
}

// runConflictChecks enforces the pre-save gate: student overlap first (it
// blocks independently), then the department/hall check.
func (ctl *ExamController) runConflictChecks(c *fiber.Ctx, req *d.CreateExamRequest, exam *m.ExamModel, excludeID *uuid.UUID) error {
	detector := svc.NewConflictDetector(ctl.DB)

	overlaps, err := detector.CheckStudentOverlap(exam.ExamDate, exam.ExamStartTime, exam.ExamEndTime, req.DepartmentIDs, excludeID)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if len(overlaps) > 0 {
		return helper.ErrorWithDetails(c, http.StatusConflict,
			"Critical student overlap detected: students cannot be double-booked.", overlaps)
	}

	conflicts, err := detector.CheckDepartmentConflict(exam.ExamName, exam.ExamDate, exam.ExamStartTime, req.HallIDs, req.DepartmentIDs, excludeID)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if len(conflicts) > 0 {
		return helper.ErrorWithDetails(c, http.StatusConflict,
			"Department overlap detected: a department is already scheduled for another exam in this slot.", conflicts)
	}
	return nil
}

func writeAllocationError(c *fiber.Ctx, err error) error {
	var capErr *svc.CapacityError
	if errors.As(err, &capErr) {
		return helper.Error(c, http.StatusConflict, "Auto-allocation failed: "+capErr.Error())
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, http.StatusNotFound, "Record not found")
	}
	return writePGError(c, err)
}

/*
========================= Create =========================
*/

// Create persists the exam and recomputes the whole slot's seating in one
// transaction; an allocation failure rolls the exam itself back.
func (ctl *ExamController) Create(c *fiber.Ctx) error {
	var req d.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Exam.Create] BodyParser error: %v", err)
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	exam, err := req.ToModel()
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	depts, err := ctl.loadDepartments(req.DepartmentIDs)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	halls, err := ctl.loadHalls(req.HallIDs)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.runConflictChecks(c, &req, exam, nil); err != nil {
		return err
	}

	exam.Departments = depts
	exam.Halls = halls

	var result *svc.AllocationResult
	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(exam).Error; err != nil {
			log.Printf("[Exam.Create] DB.Create error: %v", err)
			return err
		}
		res, err := svc.AllocateSeats(tx, exam, halls)
		if err != nil {
			log.Printf("[Exam.Create] allocation error: %v", err)
			return err
		}
		result = res
		return nil
	})
	if txErr != nil {
		return writeAllocationError(c, txErr)
	}

	return helper.SuccessWithCode(c, http.StatusCreated,
		fmt.Sprintf("Exam '%s' created. %s", exam.ExamName, result.Message),
		fiber.Map{"exam": exam, "allocation": result})
}

/*
========================= Update =========================
*/

func (ctl *ExamController) Update(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ExamModel
	if err := ctl.DB.First(&existing, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Exam not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var req d.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := req.ToModel()
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	updated.ExamID = existing.ExamID

	depts, err := ctl.loadDepartments(req.DepartmentIDs)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	halls, err := ctl.loadHalls(req.HallIDs)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.runConflictChecks(c, &req, updated, &existing.ExamID); err != nil {
		return err
	}

	var result *svc.AllocationResult
	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&existing).Updates(map[string]any{
			"exam_name":           updated.ExamName,
			"exam_date":           updated.ExamDate,
			"exam_start_time":     updated.ExamStartTime,
			"exam_end_time":       updated.ExamEndTime,
			"exam_total_students": updated.ExamTotalStudents,
		}).Error; err != nil {
			return err
		}
		// membership rows must be in place before the slot recompute
		if err := tx.Model(&existing).Association("Departments").Replace(&depts); err != nil {
			return err
		}
		if err := tx.Model(&existing).Association("Halls").Replace(&halls); err != nil {
			return err
		}
		res, err := svc.AllocateSeats(tx, updated, halls)
		if err != nil {
			log.Printf("[Exam.Update] allocation error: %v", err)
			return err
		}
		result = res
		return nil
	})
	if txErr != nil {
		return writeAllocationError(c, txErr)
	}

	return helper.Success(c,
		fmt.Sprintf("Exam '%s' updated. %s", updated.ExamName, result.Message),
		fiber.Map{"exam_id": existing.ExamID, "allocation": result})
}

/*
========================= Delete =========================
*/

func (ctl *ExamController) Delete(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var exam m.ExamModel
	if err := ctl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Exam not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("seating_allocation_exam_id = ?", examID).Delete(&m.SeatingAllocationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("invigilation_assignment_exam_id = ?", examID).Delete(&m.InvigilationAssignmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("attendance_record_exam_id = ?", examID).Delete(&attendanceModel.AttendanceRecordModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&exam).Association("Departments").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&exam).Association("Halls").Clear(); err != nil {
			return err
		}
		return tx.Delete(&exam).Error
	})
	if txErr != nil {
		return writePGError(c, txErr)
	}

	return helper.Success(c, fmt.Sprintf("Exam '%s' deleted.", exam.ExamName), nil)
}

/*
========================= Reads =========================
*/

func (ctl *ExamController) List(c *fiber.Ctx) error {
	var exams []m.ExamModel
	if err := ctl.DB.
		Preload("Departments").
		Preload("Halls").
		Order("exam_date DESC, exam_start_time DESC").
		Find(&exams).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", exams)
}

func (ctl *ExamController) Detail(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	var exam m.ExamModel
	if err := ctl.DB.
		Preload("Departments").
		Preload("Halls").
		First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Exam not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", exam)
}
