// file: internals/features/exam/exams/dto/exam_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	examModel "examhall_backend/internals/features/exam/exams/model"
	helper "examhall_backend/internals/helpers"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateExamRequest struct {
	ExamName          string `json:"exam_name" validate:"required,max=100"`
	ExamDate          string `json:"exam_date" validate:"required,datetime=2006-01-02"`
	ExamStartTime     string `json:"exam_start_time" validate:"required,datetime=15:04"`
	ExamEndTime       string `json:"exam_end_time" validate:"required,datetime=15:04"`
	ExamTotalStudents int    `json:"exam_total_students" validate:"gte=0"`

	DepartmentIDs []uuid.UUID `json:"department_ids" validate:"required,min=1"`
	HallIDs       []uuid.UUID `json:"hall_ids" validate:"required,min=1"`
}

func (r *CreateExamRequest) ToModel() (*examModel.ExamModel, error) {
	date, err := helper.ParseDateYYYYMMDD(r.ExamDate)
	if err != nil {
		return nil, err
	}
	start, err := helper.ParseClockHHMM(r.ExamStartTime)
	if err != nil {
		return nil, err
	}
	end, err := helper.ParseClockHHMM(r.ExamEndTime)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, errors.New("exam_end_time must be after exam_start_time")
	}
	return &examModel.ExamModel{
		ExamName:          strings.TrimSpace(r.ExamName),
		ExamDate:          date,
		ExamStartTime:     start,
		ExamEndTime:       end,
		ExamTotalStudents: r.ExamTotalStudents,
	}, nil
}

// UpdateExamRequest carries the full replacement state (the form always
// posts every field), so it shares the create shape.
type UpdateExamRequest = CreateExamRequest

type AllocateSeatsRequest struct {
	// hall walk order is the caller's list order
	HallIDs []uuid.UUID `json:"hall_ids" validate:"required,min=1"`
}

type AssignInvigilatorRequest struct {
	HallID    uuid.UUID `json:"hall_id" validate:"required"`
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
}

type ResolveSlotRequest struct {
	Date      string      `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string      `json:"start_time" validate:"required,datetime=15:04"`
	HallIDs   []uuid.UUID `json:"hall_ids" validate:"required,min=1"`
}

type DepartmentConflictCheckRequest struct {
	ExamName      string      `json:"exam_name" validate:"required"`
	Date          string      `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string      `json:"start_time" validate:"required,datetime=15:04"`
	HallIDs       []uuid.UUID `json:"hall_ids" validate:"required,min=1"`
	DepartmentIDs []uuid.UUID `json:"department_ids" validate:"required,min=1"`
	ExcludeExamID *uuid.UUID  `json:"exclude_exam_id"`
}

type StudentOverlapCheckRequest struct {
	Date          string      `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string      `json:"start_time" validate:"required,datetime=15:04"`
	EndTime       string      `json:"end_time" validate:"required,datetime=15:04"`
	DepartmentIDs []uuid.UUID `json:"department_ids" validate:"required,min=1"`
	ExcludeExamID *uuid.UUID  `json:"exclude_exam_id"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type SlotResponse struct {
	ExamIDs       []uuid.UUID `json:"exam_ids"`
	DepartmentIDs []uuid.UUID `json:"department_ids"`
	StudentIDs    []uuid.UUID `json:"student_ids"`
}

type HallPlanSummary struct {
	HallID              uuid.UUID `json:"hall_id"`
	HallName            string    `json:"hall_name"`
	Capacity            int       `json:"capacity"`
	AllocatedCount      int       `json:"allocated_count"`
	OccupancyPercentage float64   `json:"occupancy_percentage"`
	InvigilatorName     string    `json:"invigilator_name"`
	InvigilatorSubject  string    `json:"invigilator_subject"`
}
