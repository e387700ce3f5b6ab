// file: internals/features/exam/exams/service/conflict_detector.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	examModel "examhall_backend/internals/features/exam/exams/model"
)

/* =========================
   Findings
   ========================= */

type DepartmentConflict struct {
	ExistingExamID         uuid.UUID `json:"existing_exam_id"`
	ExistingExamName       string    `json:"existing_exam_name"`
	OverlappingDepartments []string  `json:"overlapping_departments"`
	ConflictingHalls       []string  `json:"conflicting_halls"`
}

type StudentOverlap struct {
	StudentID     uuid.UUID `json:"student_id"`
	StudentRollNo string    `json:"student_roll_no"`
	StudentName   string    `json:"student_name"`
	Details       []string  `json:"details"`
}

/* =========================
   Detector
   ========================= */

// ConflictDetector runs the two pre-save checks. Both are pure reads; the
// exam save workflow decides whether to abort on the findings.
type ConflictDetector struct {
	DB *gorm.DB
}

func NewConflictDetector(db *gorm.DB) *ConflictDetector {
	return &ConflictDetector{DB: db}
}

// CheckDepartmentConflict finds every *other* exam in the same
// date/start-time/hall-overlap window whose name differs and whose
// department set intersects the candidate's: the same department cannot sit
// two different exams in the same hall at the same time. Exams sharing the
// candidate's name are the combined-session case and are fine.
func (d *ConflictDetector) CheckDepartmentConflict(
	name string,
	date time.Time,
	startTime string,
	hallIDs []uuid.UUID,
	departmentIDs []uuid.UUID,
	excludeExamID *uuid.UUID,
) ([]DepartmentConflict, error) {
	if len(hallIDs) == 0 || len(departmentIDs) == 0 {
		return nil, nil
	}

	q := d.DB.
		Joins("JOIN exam_halls eh ON eh.exam_id = exams.exam_id").
		Where("exams.exam_date = ? AND exams.exam_start_time = ? AND eh.hall_id IN ?", date, startTime, hallIDs).
		Distinct("exams.*").
		Preload("Departments").
		Preload("Halls").
		Order("exams.exam_created_at, exams.exam_id")
	if excludeExamID != nil {
		q = q.Where("exams.exam_id <> ?", *excludeExamID)
	}

	var others []examModel.ExamModel
	if err := q.Find(&others).Error; err != nil {
		return nil, err
	}

	candidate := make(map[uuid.UUID]struct{}, len(departmentIDs))
	for _, id := range departmentIDs {
		candidate[id] = struct{}{}
	}
	inHalls := make(map[uuid.UUID]struct{}, len(hallIDs))
	for _, id := range hallIDs {
		inHalls[id] = struct{}{}
	}

	var findings []DepartmentConflict
	for i := range others {
		other := &others[i]
		if other.ExamName == name {
			continue
		}

		var overlapDepts []string
		for _, dept := range other.Departments {
			if _, ok := candidate[dept.DepartmentID]; ok {
				overlapDepts = append(overlapDepts, dept.DepartmentName)
			}
		}
		if len(overlapDepts) == 0 {
			continue
		}

		var conflictHalls []string
		for _, hall := range other.Halls {
			if _, ok := inHalls[hall.HallID]; ok {
				conflictHalls = append(conflictHalls, hall.HallName)
			}
		}

		findings = append(findings, DepartmentConflict{
			ExistingExamID:         other.ExamID,
			ExistingExamName:       other.ExamName,
			OverlappingDepartments: overlapDepts,
			ConflictingHalls:       conflictHalls,
		})
	}
	return findings, nil
}

type overlapRow struct {
	StudentID     uuid.UUID `gorm:"column:student_id"`
	StudentRollNo string    `gorm:"column:student_roll_no"`
	StudentName   string    `gorm:"column:student_name"`
	ExamName      string    `gorm:"column:exam_name"`
	ExamStartTime string    `gorm:"column:exam_start_time"`
	ExamEndTime   string    `gorm:"column:exam_end_time"`
	HallName      string    `gorm:"column:hall_name"`
}

// CheckStudentOverlap flags students of the candidate departments who are
// already seated for another exam on the same date with a time-range
// intersection. Half-open intervals: existing.end > candidate.start AND
// existing.start < candidate.end, so touching endpoints do not conflict.
// This check takes priority over the department check.
func (d *ConflictDetector) CheckStudentOverlap(
	date time.Time,
	startTime string,
	endTime string,
	departmentIDs []uuid.UUID,
	excludeExamID *uuid.UUID,
) ([]StudentOverlap, error) {
	if len(departmentIDs) == 0 {
		return nil, nil
	}

	q := d.DB.
		Table("seating_allocations AS sa").
		Select("s.student_id, s.student_roll_no, s.student_name, e.exam_name, e.exam_start_time, e.exam_end_time, h.hall_name").
		Joins("JOIN students s ON s.student_id = sa.seating_allocation_student_id").
		Joins("JOIN exams e ON e.exam_id = sa.seating_allocation_exam_id").
		Joins("JOIN halls h ON h.hall_id = sa.seating_allocation_hall_id").
		Where("s.student_department_id IN ?", departmentIDs).
		Where("e.exam_date = ?", date).
		Where("e.exam_end_time > ? AND e.exam_start_time < ?", startTime, endTime).
		Order("s.student_roll_no, e.exam_start_time, h.hall_name")
	if excludeExamID != nil {
		q = q.Where("sa.seating_allocation_exam_id <> ?", *excludeExamID)
	}

	var rows []overlapRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	var findings []StudentOverlap
	index := make(map[uuid.UUID]int)
	for _, r := range rows {
		detail := fmt.Sprintf("conflict with exam '%s' (%s - %s) in %s",
			r.ExamName, r.ExamStartTime, r.ExamEndTime, r.HallName)
		if i, ok := index[r.StudentID]; ok {
			findings[i].Details = append(findings[i].Details, detail)
			continue
		}
		index[r.StudentID] = len(findings)
		findings = append(findings, StudentOverlap{
			StudentID:     r.StudentID,
			StudentRollNo: r.StudentRollNo,
			StudentName:   r.StudentName,
			Details:       []string{detail},
		})
	}
	return findings, nil
}
