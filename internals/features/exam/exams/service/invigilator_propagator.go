// file: internals/features/exam/exams/service/invigilator_propagator.go
package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	examModel "examhall_backend/internals/features/exam/exams/model"
	masterModel "examhall_backend/internals/features/exam/masters/model"
)

var ErrHallNotInExam = errors.New("hall is not assigned to this exam")

// InvigilatorPropagator assigns a teacher to (exam, hall) and extends the
// same assignment to every sibling exam in the slot that has no invigilator
// for that hall yet. Gap-fill only: a sibling's existing assignment is never
// overwritten; re-assigning the anchor always overwrites.
type InvigilatorPropagator struct {
	DB *gorm.DB
}

func NewInvigilatorPropagator(db *gorm.DB) *InvigilatorPropagator {
	return &InvigilatorPropagator{DB: db}
}

// Assign returns how many exams carry the (hall → teacher) assignment after
// the call (anchor included). Runs as one transaction.
func (p *InvigilatorPropagator) Assign(examID, hallID, teacherID uuid.UUID) (int, error) {
	assigned := 0

	err := p.DB.Transaction(func(tx *gorm.DB) error {
		var exam examModel.ExamModel
		if err := tx.Preload("Halls").First(&exam, "exam_id = ?", examID).Error; err != nil {
			return err
		}

		hallOK := false
		for i := range exam.Halls {
			if exam.Halls[i].HallID == hallID {
				hallOK = true
				break
			}
		}
		if !hallOK {
			return ErrHallNotInExam
		}

		var teacher masterModel.TeacherModel
		if err := tx.Preload("Department").First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
			return err
		}
		snapshot, err := teacherSnapshot(&teacher)
		if err != nil {
			return err
		}

		// anchor: upsert on the (exam, hall) unique index
		anchor := examModel.InvigilationAssignmentModel{
			InvigilationAssignmentExamID:          examID,
			InvigilationAssignmentHallID:          hallID,
			InvigilationAssignmentTeacherID:       teacherID,
			InvigilationAssignmentTeacherSnapshot: snapshot,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "invigilation_assignment_exam_id"},
				{Name: "invigilation_assignment_hall_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"invigilation_assignment_teacher_id",
				"invigilation_assignment_teacher_snapshot",
			}),
		}).Create(&anchor).Error; err != nil {
			return err
		}
		assigned = 1

		// siblings in the slot still missing an invigilator for this hall
		var siblings []examModel.ExamModel
		if err := tx.
			Joins("JOIN exam_halls eh ON eh.exam_id = exams.exam_id").
			Where("exams.exam_date = ? AND exams.exam_start_time = ? AND eh.hall_id = ?", exam.ExamDate, exam.ExamStartTime, hallID).
			Where("exams.exam_id <> ?", examID).
			Where("exams.exam_id NOT IN (?)", tx.
				Model(&examModel.InvigilationAssignmentModel{}).
				Select("invigilation_assignment_exam_id").
				Where("invigilation_assignment_hall_id = ?", hallID)).
			Distinct("exams.*").
			Order("exams.exam_created_at, exams.exam_id").
			Find(&siblings).Error; err != nil {
			return err
		}

		if len(siblings) > 0 {
			rows := make([]examModel.InvigilationAssignmentModel, 0, len(siblings))
			for i := range siblings {
				rows = append(rows, examModel.InvigilationAssignmentModel{
					InvigilationAssignmentExamID:          siblings[i].ExamID,
					InvigilationAssignmentHallID:          hallID,
					InvigilationAssignmentTeacherID:       teacherID,
					InvigilationAssignmentTeacherSnapshot: snapshot,
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
			assigned += len(rows)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return assigned, nil
}

func teacherSnapshot(t *masterModel.TeacherModel) (datatypes.JSON, error) {
	snap := map[string]any{
		"teacher_name":        t.TeacherName,
		"teacher_employee_id": t.TeacherEmployeeID,
		"teacher_subject":     t.TeacherSubject,
	}
	if t.Department != nil {
		snap["department_name"] = t.Department.DepartmentName
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("teacher snapshot: %w", err)
	}
	return datatypes.JSON(b), nil
}
