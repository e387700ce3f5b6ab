// file: internals/features/exam/exams/model/seating_allocation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	masterModel "examhall_backend/internals/features/exam/masters/model"
)

// SeatingAllocationModel is one seated student. The seat label is the global
// slot-wide "S<k>" token assigned by the allocator; it is never user-settable.
// Rows for a slot are wholly replaced on every re-allocation.
type SeatingAllocationModel struct {
	SeatingAllocationID uuid.UUID `gorm:"column:seating_allocation_id;type:uuid;primaryKey" json:"seating_allocation_id"`

	SeatingAllocationExamID    uuid.UUID `gorm:"column:seating_allocation_exam_id;type:uuid;not null;uniqueIndex:uq_seating_exam_student,priority:1;uniqueIndex:uq_seating_exam_hall_seat,priority:1" json:"seating_allocation_exam_id"`
	SeatingAllocationStudentID uuid.UUID `gorm:"column:seating_allocation_student_id;type:uuid;not null;uniqueIndex:uq_seating_exam_student,priority:2;index:idx_seating_student" json:"seating_allocation_student_id"`
	SeatingAllocationHallID    uuid.UUID `gorm:"column:seating_allocation_hall_id;type:uuid;not null;uniqueIndex:uq_seating_exam_hall_seat,priority:2" json:"seating_allocation_hall_id"`
	SeatingAllocationSeatLabel string    `gorm:"column:seating_allocation_seat_label;type:varchar(20);not null;uniqueIndex:uq_seating_exam_hall_seat,priority:3" json:"seating_allocation_seat_label"`

	Exam    *ExamModel                `gorm:"foreignKey:SeatingAllocationExamID;constraint:OnDelete:CASCADE" json:"exam,omitempty"`
	Student *masterModel.StudentModel `gorm:"foreignKey:SeatingAllocationStudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Hall    *masterModel.HallModel    `gorm:"foreignKey:SeatingAllocationHallID;constraint:OnDelete:CASCADE" json:"hall,omitempty"`

	SeatingAllocationCreatedAt time.Time `gorm:"column:seating_allocation_created_at;not null;autoCreateTime" json:"seating_allocation_created_at"`
}

func (SeatingAllocationModel) TableName() string { return "seating_allocations" }

func (m *SeatingAllocationModel) BeforeCreate(tx *gorm.DB) error {
	if m.SeatingAllocationID == uuid.Nil {
		m.SeatingAllocationID = uuid.New()
	}
	return nil
}
