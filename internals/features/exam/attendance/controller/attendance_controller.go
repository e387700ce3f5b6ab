// file: internals/features/exam/attendance/controller/attendance_controller.go
package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "examhall_backend/internals/features/exam/attendance/dto"
	m "examhall_backend/internals/features/exam/attendance/model"
	examModel "examhall_backend/internals/features/exam/exams/model"
	helper "examhall_backend/internals/helpers"
	"examhall_backend/internals/middlewares/auth"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validate: v}
}

// canMark allows admins, or the teacher currently assigned as invigilator for
// this (exam, hall).
func (ctl *AttendanceController) canMark(c *fiber.Ctx, examID, hallID uuid.UUID) (bool, error) {
	if auth.IsAdmin(c) {
		return true, nil
	}
	teacherID, ok := auth.TeacherIDFromToken(c)
	if !ok {
		return false, nil
	}
	var n int64
	err := ctl.DB.
		Model(&examModel.InvigilationAssignmentModel{}).
		Where("invigilation_assignment_exam_id = ? AND invigilation_assignment_hall_id = ? AND invigilation_assignment_teacher_id = ?",
			examID, hallID, teacherID).
		Count(&n).Error
	return n > 0, err
}

// Mark replaces the attendance sheet for (exam, hall, day). Only students
// actually seated in that hall for the exam are accepted.
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	hallID, err := helper.ParseUUIDParam(c, "hall_id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var req d.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	day, err := helper.ParseDateYYYYMMDD(req.DateMarked)
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	ok, err := ctl.canMark(c, examID, hallID)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.Error(c, http.StatusForbidden,
			"Only the assigned invigilator or an admin can mark attendance for this hall.")
	}

	// only seated students may appear on the sheet
	var seated []examModel.SeatingAllocationModel
	if err := ctl.DB.
		Where("seating_allocation_exam_id = ? AND seating_allocation_hall_id = ?", examID, hallID).
		Find(&seated).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	seatedSet := make(map[uuid.UUID]struct{}, len(seated))
	for i := range seated {
		seatedSet[seated[i].SeatingAllocationStudentID] = struct{}{}
	}

	rows := make([]m.AttendanceRecordModel, 0, len(req.Entries))
	for _, e := range req.Entries {
		if _, ok := seatedSet[e.StudentID]; !ok {
			return helper.Error(c, http.StatusBadRequest,
				"Entry refers to a student not seated in this hall for this exam.")
		}
		rows = append(rows, m.AttendanceRecordModel{
			AttendanceRecordExamID:     examID,
			AttendanceRecordStudentID:  e.StudentID,
			AttendanceRecordHallID:     hallID,
			AttendanceRecordDateMarked: day,
			AttendanceRecordStatus:     m.AttendanceStatus(e.Status),
		})
	}

	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("attendance_record_exam_id = ? AND attendance_record_hall_id = ? AND attendance_record_date_marked = ?",
				examID, hallID, day).
			Delete(&m.AttendanceRecordModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if txErr != nil {
		return helper.Error(c, http.StatusInternalServerError, txErr.Error())
	}

	return helper.Success(c, "Attendance marked.", fiber.Map{
		"marked_count": len(rows),
	})
}

func (ctl *AttendanceController) ListForExam(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	q := ctl.DB.
		Preload("Student").
		Preload("Hall").
		Where("attendance_record_exam_id = ?", examID)
	if dateStr := c.Query("date"); dateStr != "" {
		day, err := helper.ParseDateYYYYMMDD(dateStr)
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, err.Error())
		}
		q = q.Where("attendance_record_date_marked = ?", day)
	}

	var rows []m.AttendanceRecordModel
	if err := q.Order("attendance_record_date_marked, attendance_record_created_at").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	present := 0
	for i := range rows {
		if rows[i].AttendanceRecordStatus == m.AttendancePresent {
			present++
		}
	}
	return helper.Success(c, "OK", fiber.Map{
		"total":   len(rows),
		"present": present,
		"absent":  len(rows) - present,
		"records": rows,
	})
}
