// file: internals/features/exam/exams/model/exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	masterModel "examhall_backend/internals/features/exam/masters/model"
)

// ExamModel holds one scheduled exam. Start/end are zero-padded "HH:MM"
// strings so interval comparisons stay lexicographic in SQL; the date column
// is always UTC midnight (see helper.ParseDateYYYYMMDD).
type ExamModel struct {
	ExamID   uuid.UUID `gorm:"column:exam_id;type:uuid;primaryKey" json:"exam_id"`
	ExamName string    `gorm:"column:exam_name;type:varchar(100);not null" json:"exam_name"`

	ExamDate      time.Time `gorm:"column:exam_date;type:date;not null;index:idx_exams_slot,priority:1" json:"exam_date"`
	ExamStartTime string    `gorm:"column:exam_start_time;type:varchar(5);not null;index:idx_exams_slot,priority:2" json:"exam_start_time"`
	ExamEndTime   string    `gorm:"column:exam_end_time;type:varchar(5);not null" json:"exam_end_time"`

	// declared head-count from the form; the allocator works off the real
	// student rows, this is display-only
	ExamTotalStudents int `gorm:"column:exam_total_students;not null;default:0" json:"exam_total_students"`

	Departments []masterModel.DepartmentModel `gorm:"many2many:exam_departments;foreignKey:ExamID;joinForeignKey:ExamID;References:DepartmentID;joinReferences:DepartmentID" json:"departments,omitempty"`
	Halls       []masterModel.HallModel       `gorm:"many2many:exam_halls;foreignKey:ExamID;joinForeignKey:ExamID;References:HallID;joinReferences:HallID" json:"halls,omitempty"`

	ExamCreatedAt time.Time `gorm:"column:exam_created_at;not null;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time `gorm:"column:exam_updated_at;not null;autoUpdateTime" json:"exam_updated_at"`
}

func (ExamModel) TableName() string { return "exams" }

func (m *ExamModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExamID == uuid.Nil {
		m.ExamID = uuid.New()
	}
	return nil
}
