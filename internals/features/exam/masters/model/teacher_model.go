// file: internals/features/exam/masters/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID         uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey" json:"teacher_id"`
	TeacherName       string    `gorm:"column:teacher_name;type:varchar(100);not null" json:"teacher_name"`
	TeacherEmployeeID string    `gorm:"column:teacher_employee_id;type:varchar(20);not null;uniqueIndex:uq_teachers_employee_id" json:"teacher_employee_id"`
	TeacherSubject    string    `gorm:"column:teacher_subject;type:varchar(100);not null" json:"teacher_subject"`

	TeacherDepartmentID *uuid.UUID       `gorm:"column:teacher_department_id;type:uuid" json:"teacher_department_id,omitempty"`
	Department          *DepartmentModel `gorm:"foreignKey:TeacherDepartmentID;constraint:OnDelete:SET NULL" json:"department,omitempty"`

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;not null;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}
