// file: internals/features/exam/attendance/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	examModel "examhall_backend/internals/features/exam/exams/model"
	masterModel "examhall_backend/internals/features/exam/masters/model"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "P"
	AttendanceAbsent  AttendanceStatus = "A"
)

// One record per (exam, student, day) — a student can sit the same exam's
// hall on different days (re-sits), hence the date in the unique index.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"column:attendance_record_id;type:uuid;primaryKey" json:"attendance_record_id"`

	AttendanceRecordExamID    uuid.UUID `gorm:"column:attendance_record_exam_id;type:uuid;not null;uniqueIndex:uq_attendance_exam_student_day,priority:1" json:"attendance_record_exam_id"`
	AttendanceRecordStudentID uuid.UUID `gorm:"column:attendance_record_student_id;type:uuid;not null;uniqueIndex:uq_attendance_exam_student_day,priority:2" json:"attendance_record_student_id"`
	AttendanceRecordHallID    uuid.UUID `gorm:"column:attendance_record_hall_id;type:uuid;not null" json:"attendance_record_hall_id"`

	AttendanceRecordDateMarked time.Time        `gorm:"column:attendance_record_date_marked;type:date;not null;uniqueIndex:uq_attendance_exam_student_day,priority:3" json:"attendance_record_date_marked"`
	AttendanceRecordStatus     AttendanceStatus `gorm:"column:attendance_record_status;type:varchar(1);not null" json:"attendance_record_status"`

	Exam    *examModel.ExamModel      `gorm:"foreignKey:AttendanceRecordExamID;constraint:OnDelete:CASCADE" json:"exam,omitempty"`
	Student *masterModel.StudentModel `gorm:"foreignKey:AttendanceRecordStudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Hall    *masterModel.HallModel    `gorm:"foreignKey:AttendanceRecordHallID;constraint:OnDelete:CASCADE" json:"hall,omitempty"`

	AttendanceRecordCreatedAt time.Time `gorm:"column:attendance_record_created_at;not null;autoCreateTime" json:"attendance_record_created_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (m *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceRecordID == uuid.Nil {
		m.AttendanceRecordID = uuid.New()
	}
	return nil
}
