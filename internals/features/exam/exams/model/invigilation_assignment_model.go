// file: internals/features/exam/exams/model/invigilation_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	masterModel "examhall_backend/internals/features/exam/masters/model"
)

// One invigilator per (exam, hall) — the unique index is the invariant the
// propagator leans on. Rows survive seat re-allocation.
type InvigilationAssignmentModel struct {
	InvigilationAssignmentID uuid.UUID `gorm:"column:invigilation_assignment_id;type:uuid;primaryKey" json:"invigilation_assignment_id"`

	InvigilationAssignmentExamID    uuid.UUID `gorm:"column:invigilation_assignment_exam_id;type:uuid;not null;uniqueIndex:uq_invigilation_exam_hall,priority:1" json:"invigilation_assignment_exam_id"`
	InvigilationAssignmentHallID    uuid.UUID `gorm:"column:invigilation_assignment_hall_id;type:uuid;not null;uniqueIndex:uq_invigilation_exam_hall,priority:2" json:"invigilation_assignment_hall_id"`
	InvigilationAssignmentTeacherID uuid.UUID `gorm:"column:invigilation_assignment_teacher_id;type:uuid;not null;index:idx_invigilation_teacher" json:"invigilation_assignment_teacher_id"`

	// teacher identity frozen at assignment time (name, employee id, subject)
	InvigilationAssignmentTeacherSnapshot datatypes.JSON `gorm:"column:invigilation_assignment_teacher_snapshot" json:"invigilation_assignment_teacher_snapshot,omitempty"`

	Exam    *ExamModel                `gorm:"foreignKey:InvigilationAssignmentExamID;constraint:OnDelete:CASCADE" json:"exam,omitempty"`
	Hall    *masterModel.HallModel    `gorm:"foreignKey:InvigilationAssignmentHallID;constraint:OnDelete:CASCADE" json:"hall,omitempty"`
	Teacher *masterModel.TeacherModel `gorm:"foreignKey:InvigilationAssignmentTeacherID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`

	InvigilationAssignmentCreatedAt time.Time `gorm:"column:invigilation_assignment_created_at;not null;autoCreateTime" json:"invigilation_assignment_created_at"`
	InvigilationAssignmentUpdatedAt time.Time `gorm:"column:invigilation_assignment_updated_at;not null;autoUpdateTime" json:"invigilation_assignment_updated_at"`
}

func (InvigilationAssignmentModel) TableName() string { return "invigilation_assignments" }

func (m *InvigilationAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.InvigilationAssignmentID == uuid.Nil {
		m.InvigilationAssignmentID = uuid.New()
	}
	return nil
}
