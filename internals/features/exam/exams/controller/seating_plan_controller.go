// file: internals/features/exam/exams/controller/seating_plan_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	d "examhall_backend/internals/features/exam/exams/dto"
	m "examhall_backend/internals/features/exam/exams/model"
	svc "examhall_backend/internals/features/exam/exams/service"
	masterModel "examhall_backend/internals/features/exam/masters/model"
	helper "examhall_backend/internals/helpers"
)

// SeatingPlanController serves the read side: hall occupancy summaries, the
// per-hall grid, and a student's own seat lookups. Seat numbering here is
// always the dense per-hall display number, derived on read.
type SeatingPlanController struct {
	DB *gorm.DB
}

func NewSeatingPlanController(db *gorm.DB) *SeatingPlanController {
	return &SeatingPlanController{DB: db}
}

func (ctl *SeatingPlanController) loadExamWithHalls(c *fiber.Ctx) (*m.ExamModel, error) {
	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, helper.Error(c, http.StatusBadRequest, err.Error())
	}
	var exam m.ExamModel
	if err := ctl.DB.Preload("Halls").First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, http.StatusNotFound, "Exam not found")
		}
		return nil, helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return &exam, nil
}

/*
========================= Hall summaries =========================
*/

type invigilatorSnapshot struct {
	TeacherName    string `json:"teacher_name"`
	TeacherSubject string `json:"teacher_subject"`
}

// HallSummaries reports occupancy per hall for the exam's whole slot:
// allocations from sibling exams sharing the hall count toward the same
// capacity.
func (ctl *SeatingPlanController) HallSummaries(c *fiber.Ctx) error {
	exam, err := ctl.loadExamWithHalls(c)
	if err != nil {
		return err
	}

	slot, err := svc.ResolveSlotForExam(ctl.DB, exam)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	examIDs := slot.ExamIDs()
	if len(examIDs) == 0 {
		examIDs = []uuid.UUID{exam.ExamID}
	}

	type hallCount struct {
		HallID uuid.UUID `gorm:"column:hall_id"`
		N      int       `gorm:"column:n"`
	}
	var counts []hallCount
	if err := ctl.DB.
		Model(&m.SeatingAllocationModel{}).
		Select("seating_allocation_hall_id AS hall_id, COUNT(*) AS n").
		Where("seating_allocation_exam_id = ANY(?)", pq.Array(examIDs)).
		Group("seating_allocation_hall_id").
		Scan(&counts).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	countByHall := make(map[uuid.UUID]int, len(counts))
	for _, hc := range counts {
		countByHall[hc.HallID] = hc.N
	}

	var assignments []m.InvigilationAssignmentModel
	if err := ctl.DB.
		Where("invigilation_assignment_exam_id = ?", exam.ExamID).
		Find(&assignments).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	invByHall := make(map[uuid.UUID]invigilatorSnapshot, len(assignments))
	for i := range assignments {
		var snap invigilatorSnapshot
		if len(assignments[i].InvigilationAssignmentTeacherSnapshot) > 0 {
			// snapshot is best-effort display data; a bad blob just leaves
			// the name blank
			_ = json.Unmarshal(assignments[i].InvigilationAssignmentTeacherSnapshot, &snap)
		}
		invByHall[assignments[i].InvigilationAssignmentHallID] = snap
	}

	summaries := make([]d.HallPlanSummary, 0, len(exam.Halls))
	for i := range exam.Halls {
		hall := &exam.Halls[i]
		capacity := hall.Capacity()
		n := countByHall[hall.HallID]
		s := d.HallPlanSummary{
			HallID:         hall.HallID,
			HallName:       hall.HallName,
			Capacity:       capacity,
			AllocatedCount: n,
		}
		if capacity > 0 {
			s.OccupancyPercentage = float64(n) / float64(capacity) * 100
		}
		if snap, ok := invByHall[hall.HallID]; ok {
			s.InvigilatorName = snap.TeacherName
			s.InvigilatorSubject = snap.TeacherSubject
		}
		summaries = append(summaries, s)
	}

	return helper.Success(c, "OK", fiber.Map{
		"exam_id":       exam.ExamID,
		"exam_name":     exam.ExamName,
		"slot_exam_ids": examIDs,
		"halls":         summaries,
	})
}

/*
========================= Hall grid =========================
*/

// HallPlan returns the seat-by-seat grid for one hall, covering every exam in
// the slot so combined sessions render as one chart.
func (ctl *SeatingPlanController) HallPlan(c *fiber.Ctx) error {
	exam, err := ctl.loadExamWithHalls(c)
	if err != nil {
		return err
	}
	hallID, err := helper.ParseUUIDParam(c, "hall_id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var hall *masterModel.HallModel
	for i := range exam.Halls {
		if exam.Halls[i].HallID == hallID {
			hall = &exam.Halls[i]
			break
		}
	}
	if hall == nil {
		return helper.Error(c, http.StatusBadRequest, "hall is not assigned to this exam")
	}

	slot, err := svc.ResolveSlotForExam(ctl.DB, exam)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	examIDs := slot.ExamIDs()
	if len(examIDs) == 0 {
		examIDs = []uuid.UUID{exam.ExamID}
	}

	var allocs []m.SeatingAllocationModel
	if err := ctl.DB.
		Preload("Exam").
		Preload("Student").
		Preload("Student.Department").
		Where("seating_allocation_hall_id = ? AND seating_allocation_exam_id = ANY(?)", hallID, pq.Array(examIDs)).
		Find(&allocs).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	seats := svc.BuildHallPlan(hall, allocs)
	return helper.Success(c, "OK", fiber.Map{
		"hall_id":    hall.HallID,
		"hall_name":  hall.HallName,
		"hall_rows":  hall.HallRows,
		"hall_cols":  hall.HallColumns,
		"capacity":   hall.Capacity(),
		"seat_count": len(seats),
		"seats":      seats,
	})
}

/*
========================= Student lookup =========================
*/

type studentSeat struct {
	ExamID        uuid.UUID `json:"exam_id"`
	ExamName      string    `json:"exam_name"`
	ExamDate      string    `json:"exam_date"`
	ExamStartTime string    `json:"exam_start_time"`
	ExamEndTime   string    `json:"exam_end_time"`
	HallName      string    `json:"hall_name"`
	SeatNumber    string    `json:"seat_number"`
}

// StudentSeating lists a student's seats across all exams by roll number.
// Seat numbers are the dense per-hall display numbers, which requires
// renumbering each involved hall against its full slot.
func (ctl *SeatingPlanController) StudentSeating(c *fiber.Ctx) error {
	rollNo := c.Params("roll_no")
	if rollNo == "" {
		return helper.Error(c, http.StatusBadRequest, "roll_no is required")
	}

	var student masterModel.StudentModel
	if err := ctl.DB.First(&student, "student_roll_no = ?", rollNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Student not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var own []m.SeatingAllocationModel
	if err := ctl.DB.
		Preload("Exam").
		Preload("Hall").
		Where("seating_allocation_student_id = ?", student.StudentID).
		Find(&own).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	seats := make([]studentSeat, 0, len(own))
	for i := range own {
		alloc := &own[i]
		if alloc.Exam == nil || alloc.Hall == nil {
			continue
		}

		// renumber against every allocation for this slot+hall, not just
		// this exam's rows
		slot, err := svc.ResolveSlotForExam(ctl.DB, alloc.Exam)
		if err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
		examIDs := slot.ExamIDs()
		if len(examIDs) == 0 {
			examIDs = []uuid.UUID{alloc.SeatingAllocationExamID}
		}

		var hallAllocs []m.SeatingAllocationModel
		if err := ctl.DB.
			Preload("Student").
			Where("seating_allocation_hall_id = ? AND seating_allocation_exam_id = ANY(?)",
				alloc.SeatingAllocationHallID, pq.Array(examIDs)).
			Find(&hallAllocs).Error; err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
		local := svc.LocalSeatNumbers(hallAllocs)

		seats = append(seats, studentSeat{
			ExamID:        alloc.SeatingAllocationExamID,
			ExamName:      alloc.Exam.ExamName,
			ExamDate:      alloc.Exam.ExamDate.Format("2006-01-02"),
			ExamStartTime: alloc.Exam.ExamStartTime,
			ExamEndTime:   alloc.Exam.ExamEndTime,
			HallName:      alloc.Hall.HallName,
			SeatNumber:    local[alloc.SeatingAllocationID],
		})
	}

	return helper.Success(c, "OK", fiber.Map{
		"student_id":      student.StudentID,
		"student_roll_no": student.StudentRollNo,
		"student_name":    student.StudentName,
		"seats":           seats,
	})
}
