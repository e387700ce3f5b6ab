// file: internals/features/exam/exams/service/slot_resolver.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	examModel "examhall_backend/internals/features/exam/exams/model"
	masterModel "examhall_backend/internals/features/exam/masters/model"
)

/* =========================
   Slot
   ========================= */

// Slot is the derived allocation/conflict unit: every exam on the same date
// and start time that touches at least one of the given halls, plus the
// union of their departments and students. It is never stored.
type Slot struct {
	Date      time.Time
	StartTime string
	HallIDs   []uuid.UUID

	// ordered by creation so department→exam ownership is deterministic
	Exams []examModel.ExamModel

	DepartmentIDs []uuid.UUID

	// ordered by roll number — the allocator's queue order
	Students []masterModel.StudentModel
}

func (s *Slot) ExamIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.Exams))
	for i := range s.Exams {
		ids = append(ids, s.Exams[i].ExamID)
	}
	return ids
}

/* =========================
   Resolver
   ========================= */

// ResolveSlot answers "who shares this room/time". Read-only; calling it
// twice without intervening writes returns the same slot. The conflict
// detector, allocator and propagator all go through here so they reason
// about one slot definition.
func ResolveSlot(db *gorm.DB, date time.Time, startTime string, hallIDs []uuid.UUID) (*Slot, error) {
	slot := &Slot{Date: date, StartTime: startTime, HallIDs: hallIDs}
	if len(hallIDs) == 0 {
		return slot, nil
	}

	var exams []examModel.ExamModel
	if err := db.
		Joins("JOIN exam_halls eh ON eh.exam_id = exams.exam_id").
		Where("exams.exam_date = ? AND exams.exam_start_time = ? AND eh.hall_id IN ?", date, startTime, hallIDs).
		Distinct("exams.*").
		Preload("Departments").
		Preload("Halls").
		Order("exams.exam_created_at, exams.exam_id").
		Find(&exams).Error; err != nil {
		return nil, err
	}
	slot.Exams = exams

	deptSeen := make(map[uuid.UUID]struct{})
	for i := range exams {
		for _, d := range exams[i].Departments {
			if _, ok := deptSeen[d.DepartmentID]; !ok {
				deptSeen[d.DepartmentID] = struct{}{}
				slot.DepartmentIDs = append(slot.DepartmentIDs, d.DepartmentID)
			}
		}
	}
	sort.Slice(slot.DepartmentIDs, func(i, j int) bool {
		return slot.DepartmentIDs[i].String() < slot.DepartmentIDs[j].String()
	})

	if len(slot.DepartmentIDs) > 0 {
		if err := db.
			Preload("Department").
			Where("student_department_id IN ?", slot.DepartmentIDs).
			Order("student_roll_no").
			Find(&slot.Students).Error; err != nil {
			return nil, err
		}
	}

	return slot, nil
}

// ResolveSlotForExam anchors the slot on a loaded exam (halls preloaded).
func ResolveSlotForExam(db *gorm.DB, exam *examModel.ExamModel) (*Slot, error) {
	hallIDs := make([]uuid.UUID, 0, len(exam.Halls))
	for i := range exam.Halls {
		hallIDs = append(hallIDs, exam.Halls[i].HallID)
	}
	return ResolveSlot(db, exam.ExamDate, exam.ExamStartTime, hallIDs)
}
