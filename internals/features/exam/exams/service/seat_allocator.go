// file: internals/features/exam/exams/service/seat_allocator.go
package service

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	examModel "examhall_backend/internals/features/exam/exams/model"
	masterModel "examhall_backend/internals/features/exam/masters/model"
)

/* =========================
   Errors & result
   ========================= */

// CapacityError is the allocator's only expected failure mode; the message
// names both counts for the caller's error envelope.
type CapacityError struct {
	Students int
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity: %d students, %d seats", e.Students, e.Capacity)
}

type AllocationResult struct {
	Seated        int      `json:"seated"`
	TotalStudents int      `json:"total_students"`
	Pattern       []string `json:"pattern"`
	Message       string   `json:"message"`
}

/* =========================
   Allocator
   ========================= */

// AllocateSeats recomputes seating for the whole slot anchored on the given
// exam, walking the supplied halls in order. Delete-then-recreate: every
// slot exam's allocations are replaced in one pass. Must run inside the
// caller's transaction — a returned error has to abort the enclosing save.
//
// The global seat counter advances on every position visited, seated or
// not, so each cohort's turn comes back around within len(pattern) steps
// and seat labels stay aligned across halls.
func AllocateSeats(tx *gorm.DB, anchor *examModel.ExamModel, halls []masterModel.HallModel) (*AllocationResult, error) {
	hallIDs := make([]uuid.UUID, 0, len(halls))
	for i := range halls {
		hallIDs = append(hallIDs, halls[i].HallID)
	}

	slot, err := ResolveSlot(tx, anchor.ExamDate, anchor.ExamStartTime, hallIDs)
	if err != nil {
		return nil, err
	}

	queues, pattern := buildCohortQueues(slot.Students)
	if len(pattern) < 2 {
		// single-cohort slot: interleave by department instead, same stepping
		queues, pattern = buildDepartmentQueues(slot.Students)
	}

	totalStudents := len(slot.Students)
	totalCapacity := 0
	for i := range halls {
		totalCapacity += halls[i].Capacity()
	}

	if totalStudents == 0 {
		if err := clearSlotAllocations(tx, slot); err != nil {
			return nil, err
		}
		return &AllocationResult{
			Message: "no students found for the shared exam slot departments",
		}, nil
	}

	if totalStudents > totalCapacity {
		return nil, &CapacityError{Students: totalStudents, Capacity: totalCapacity}
	}

	if err := clearSlotAllocations(tx, slot); err != nil {
		return nil, err
	}

	// department → owning exam; first exam in creation order wins
	owner := make(map[uuid.UUID]uuid.UUID)
	for i := range slot.Exams {
		for _, dept := range slot.Exams[i].Departments {
			if _, ok := owner[dept.DepartmentID]; !ok {
				owner[dept.DepartmentID] = slot.Exams[i].ExamID
			}
		}
	}

	var allocations []examModel.SeatingAllocationModel
	remaining := totalStudents
	k := 0

walk:
	for h := range halls {
		hall := &halls[h]
		for pos := 0; pos < hall.Capacity(); pos++ {
			if remaining == 0 {
				break walk
			}
			k++
			required := pattern[(k-1)%len(pattern)]
			queue := queues[required]
			if len(queue) == 0 {
				continue // hole; the counter has already advanced
			}
			student := queue[0]
			queues[required] = queue[1:]
			remaining--

			if student.StudentDepartmentID == nil {
				continue
			}
			examID, ok := owner[*student.StudentDepartmentID]
			if !ok {
				continue
			}
			allocations = append(allocations, examModel.SeatingAllocationModel{
				SeatingAllocationExamID:    examID,
				SeatingAllocationStudentID: student.StudentID,
				SeatingAllocationHallID:    hall.HallID,
				SeatingAllocationSeatLabel: fmt.Sprintf("S%d", k),
			})
		}
	}

	if len(allocations) > 0 {
		if err := tx.CreateInBatches(&allocations, 200).Error; err != nil {
			return nil, err
		}
	}

	return &AllocationResult{
		Seated:        len(allocations),
		TotalStudents: totalStudents,
		Pattern:       pattern,
		Message: fmt.Sprintf("allocated %d students across %d halls using the %d-way cohort alternation pattern",
			len(allocations), len(halls), len(pattern)),
	}, nil
}

func clearSlotAllocations(tx *gorm.DB, slot *Slot) error {
	examIDs := slot.ExamIDs()
	if len(examIDs) == 0 {
		return nil
	}
	return tx.
		Where("seating_allocation_exam_id IN ?", examIDs).
		Delete(&examModel.SeatingAllocationModel{}).Error
}

// buildCohortQueues groups students by roll-number cohort key, FIFO in roll
// order (the input is already sorted by roll number).
func buildCohortQueues(students []masterModel.StudentModel) (map[string][]masterModel.StudentModel, []string) {
	queues := make(map[string][]masterModel.StudentModel)
	for i := range students {
		key := CohortKey(students[i].StudentRollNo)
		queues[key] = append(queues[key], students[i])
	}
	return queues, sortedKeys(queues)
}

func buildDepartmentQueues(students []masterModel.StudentModel) (map[string][]masterModel.StudentModel, []string) {
	queues := make(map[string][]masterModel.StudentModel)
	for i := range students {
		key := ""
		switch {
		case students[i].Department != nil:
			key = students[i].Department.DepartmentName
		case students[i].StudentDepartmentID != nil:
			key = students[i].StudentDepartmentID.String()
		}
		queues[key] = append(queues[key], students[i])
	}
	return queues, sortedKeys(queues)
}

func sortedKeys(queues map[string][]masterModel.StudentModel) []string {
	keys := make([]string, 0, len(queues))
	for k := range queues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
