// file: internals/features/exam/masters/model/hall_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HallModel struct {
	HallID   uuid.UUID `gorm:"column:hall_id;type:uuid;primaryKey" json:"hall_id"`
	HallName string    `gorm:"column:hall_name;type:varchar(50);not null;uniqueIndex:uq_halls_name" json:"hall_name"`

	// seating grid; capacity is always derived, never stored
	HallRows    int `gorm:"column:hall_rows;not null;default:1" json:"hall_rows"`
	HallColumns int `gorm:"column:hall_columns;not null;default:1" json:"hall_columns"`

	// free-form room metadata (projector, AC, accessibility notes, ...)
	HallFacilities datatypes.JSON `gorm:"column:hall_facilities" json:"hall_facilities,omitempty"`

	HallCreatedAt time.Time `gorm:"column:hall_created_at;not null;autoCreateTime" json:"hall_created_at"`
	HallUpdatedAt time.Time `gorm:"column:hall_updated_at;not null;autoUpdateTime" json:"hall_updated_at"`
}

func (HallModel) TableName() string { return "halls" }

func (m *HallModel) BeforeCreate(tx *gorm.DB) error {
	if m.HallID == uuid.Nil {
		m.HallID = uuid.New()
	}
	return nil
}

func (m *HallModel) Capacity() int { return m.HallRows * m.HallColumns }
