// file: internals/features/exam/exams/service/seating_view.go
package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	examModel "examhall_backend/internals/features/exam/exams/model"
	masterModel "examhall_backend/internals/features/exam/masters/model"
)

/* =========================================================
   Derived seating views.

   The stored seat label is the slot-wide global token and may
   have holes once cohorts drain unevenly. Display numbering is
   recomputed from the stored rows on every read — never stored,
   so there is no second source of truth.
   ========================================================= */

type SeatView struct {
	AllocationID    uuid.UUID `json:"allocation_id"`
	GlobalSeatLabel string    `json:"global_seat_label"`
	LocalSeatNumber string    `json:"local_seat_number"`
	Row             int       `json:"row"`
	Column          int       `json:"column"`
	StudentRollNo   string    `json:"student_roll_no"`
	StudentName     string    `json:"student_name"`
	ExamName        string    `json:"exam_name"`
	DepartmentName  string    `json:"department_name"`
}

// SeatLabelOrdinal extracts k from "S<k>"; returns -1 for a malformed label
// so such rows sort first and are easy to spot.
func SeatLabelOrdinal(label string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(label, "S"))
	if err != nil {
		return -1
	}
	return n
}

// SortByGlobalSeat orders allocations by the global seat sequence, falling
// back to roll number for equal/malformed labels.
func SortByGlobalSeat(allocs []examModel.SeatingAllocationModel) {
	sort.SliceStable(allocs, func(i, j int) bool {
		a, b := SeatLabelOrdinal(allocs[i].SeatingAllocationSeatLabel), SeatLabelOrdinal(allocs[j].SeatingAllocationSeatLabel)
		if a != b {
			return a < b
		}
		if allocs[i].Student != nil && allocs[j].Student != nil {
			return allocs[i].Student.StudentRollNo < allocs[j].Student.StudentRollNo
		}
		return false
	})
}

// BuildHallPlan renumbers one hall's allocations densely (local S1..Sn in
// global-seat order) and places them on the hall grid column-major, the way
// the printed seating charts are laid out.
func BuildHallPlan(hall *masterModel.HallModel, allocs []examModel.SeatingAllocationModel) []SeatView {
	SortByGlobalSeat(allocs)

	views := make([]SeatView, 0, len(allocs))
	for i := range allocs {
		alloc := &allocs[i]
		v := SeatView{
			AllocationID:    alloc.SeatingAllocationID,
			GlobalSeatLabel: alloc.SeatingAllocationSeatLabel,
			LocalSeatNumber: "S" + strconv.Itoa(i+1),
		}
		if hall.HallRows > 0 {
			v.Column = i/hall.HallRows + 1
			v.Row = i%hall.HallRows + 1
		}
		if alloc.Student != nil {
			v.StudentRollNo = alloc.Student.StudentRollNo
			v.StudentName = alloc.Student.StudentName
			if alloc.Student.Department != nil {
				v.DepartmentName = alloc.Student.Department.DepartmentName
			}
		}
		if alloc.Exam != nil {
			v.ExamName = alloc.Exam.ExamName
		}
		views = append(views, v)
	}
	return views
}

// LocalSeatNumbers maps allocation id → dense per-hall display number for
// the whole slot at once (allocations may span several halls).
func LocalSeatNumbers(allocs []examModel.SeatingAllocationModel) map[uuid.UUID]string {
	byHall := make(map[uuid.UUID][]examModel.SeatingAllocationModel)
	for i := range allocs {
		hallID := allocs[i].SeatingAllocationHallID
		byHall[hallID] = append(byHall[hallID], allocs[i])
	}

	out := make(map[uuid.UUID]string, len(allocs))
	for _, hallAllocs := range byHall {
		SortByGlobalSeat(hallAllocs)
		for i := range hallAllocs {
			out[hallAllocs[i].SeatingAllocationID] = "S" + strconv.Itoa(i+1)
		}
	}
	return out
}
