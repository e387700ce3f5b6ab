// file: internals/features/exam/masters/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	DepartmentID   uuid.UUID `gorm:"column:department_id;type:uuid;primaryKey" json:"department_id"`
	DepartmentName string    `gorm:"column:department_name;type:varchar(100);not null;uniqueIndex:uq_departments_name" json:"department_name"`

	DepartmentCreatedAt time.Time `gorm:"column:department_created_at;not null;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt time.Time `gorm:"column:department_updated_at;not null;autoUpdateTime" json:"department_updated_at"`
}

func (DepartmentModel) TableName() string { return "departments" }

func (m *DepartmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.DepartmentID == uuid.Nil {
		m.DepartmentID = uuid.New()
	}
	return nil
}
