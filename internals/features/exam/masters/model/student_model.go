// file: internals/features/exam/masters/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID     uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`
	StudentName   string    `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentRollNo string    `gorm:"column:student_roll_no;type:varchar(20);not null;uniqueIndex:uq_students_roll_no" json:"student_roll_no"`

	StudentDepartmentID *uuid.UUID       `gorm:"column:student_department_id;type:uuid" json:"student_department_id,omitempty"`
	Department          *DepartmentModel `gorm:"foreignKey:StudentDepartmentID;constraint:OnDelete:SET NULL" json:"department,omitempty"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
