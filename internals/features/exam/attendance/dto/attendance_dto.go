// file: internals/features/exam/attendance/dto/attendance_dto.go
package dto

import (
	"github.com/google/uuid"
)

type MarkEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	// "P" present, "A" absent
	Status string `json:"status" validate:"required,oneof=P A"`
}

// MarkAttendanceRequest replaces the hall's sheet for the given day in full —
// the invigilator always submits the whole hall at once. The exam and hall
// come from the URL.
type MarkAttendanceRequest struct {
	DateMarked string      `json:"date_marked" validate:"required,datetime=2006-01-02"`
	Entries    []MarkEntry `json:"entries" validate:"required,min=1,dive"`
}
