// file: internals/features/exam/exams/service/seat_allocator_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	masterModel "examhall_backend/internals/features/exam/masters/model"
)

func TestAllocateSeatsAlternatesCohortsAcrossHalls(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	deptEC := seedDept(t, db, "Electronics")
	hall1 := seedHall(t, db, "Hall A", 2, 1) // 2 seats
	hall2 := seedHall(t, db, "Hall B", 3, 1) // 3 seats

	for _, r := range rolls(3, "24CSAA") {
		seedStudent(t, db, r, "cs "+r, deptCS.DepartmentID)
	}
	for _, r := range rolls(2, "24ECBB") {
		seedStudent(t, db, r, "ec "+r, deptEC.DepartmentID)
	}

	exam := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS, deptEC},
		[]masterModel.HallModel{hall1, hall2})

	res, err := AllocateSeats(db, &exam, []masterModel.HallModel{hall1, hall2})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Seated)
	assert.Equal(t, 5, res.TotalStudents)
	assert.Equal(t, []string{"CSAA", "ECBB"}, res.Pattern)

	rows := allocationsFor(t, db, exam.ExamID)
	require.Len(t, rows, 5)

	want := map[string]string{
		"S1": "24CSAA001",
		"S2": "24ECBB001",
		"S3": "24CSAA002",
		"S4": "24ECBB002",
		"S5": "24CSAA003",
	}
	assert.Equal(t, want, rollBySeat(rows))

	// hall1 fills first, then the walk continues into hall2
	hallBySeat := make(map[string]string, len(rows))
	for i := range rows {
		name := "A"
		if rows[i].SeatingAllocationHallID == hall2.HallID {
			name = "B"
		}
		hallBySeat[rows[i].SeatingAllocationSeatLabel] = name
	}
	assert.Equal(t, map[string]string{
		"S1": "A", "S2": "A", "S3": "B", "S4": "B", "S5": "B",
	}, hallBySeat)
}

func TestAllocateSeatsSkipsExhaustedCohort(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	deptEC := seedDept(t, db, "Electronics")
	hall := seedHall(t, db, "Hall A", 6, 1)

	for _, r := range rolls(3, "24CSAA") {
		seedStudent(t, db, r, "cs "+r, deptCS.DepartmentID)
	}
	seedStudent(t, db, "24ECBB001", "ec 1", deptEC.DepartmentID)

	exam := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS, deptEC},
		[]masterModel.HallModel{hall})

	res, err := AllocateSeats(db, &exam, []masterModel.HallModel{hall})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Seated)

	rows := allocationsFor(t, db, exam.ExamID)
	got := rollBySeat(rows)

	// the ECBB queue drains after S2; its next turn (S4) stays a hole and the
	// counter keeps advancing
	want := map[string]string{
		"S1": "24CSAA001",
		"S2": "24ECBB001",
		"S3": "24CSAA002",
		"S5": "24CSAA003",
	}
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "S4")
}

func TestAllocateSeatsCapacityErrorLeavesExistingRows(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	hall := seedHall(t, db, "Hall A", 5, 1)

	var first masterModel.StudentModel
	for i, r := range rolls(6, "24CSAA") {
		s := seedStudent(t, db, r, "cs "+r, deptCS.DepartmentID)
		if i == 0 {
			first = s
		}
	}

	exam := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS},
		[]masterModel.HallModel{hall})

	// a stale row from a previous run must survive the failed attempt
	seedAllocation(t, db, exam.ExamID, first.StudentID, hall.HallID, "S99")

	_, err := AllocateSeats(db, &exam, []masterModel.HallModel{hall})
	require.Error(t, err)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "insufficient capacity: 6 students, 5 seats", capErr.Error())

	rows := allocationsFor(t, db, exam.ExamID)
	require.Len(t, rows, 1)
	assert.Equal(t, "S99", rows[0].SeatingAllocationSeatLabel)
}

func TestAllocateSeatsZeroStudentsClearsStaleRows(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	deptEC := seedDept(t, db, "Electronics")
	hall := seedHall(t, db, "Hall A", 5, 1)

	// the only student belongs to a department outside the exam
	outsider := seedStudent(t, db, "24ECBB001", "ec 1", deptEC.DepartmentID)

	exam := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS},
		[]masterModel.HallModel{hall})
	seedAllocation(t, db, exam.ExamID, outsider.StudentID, hall.HallID, "S1")

	res, err := AllocateSeats(db, &exam, []masterModel.HallModel{hall})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Seated)
	assert.Equal(t, "no students found for the shared exam slot departments", res.Message)

	assert.Empty(t, allocationsFor(t, db, exam.ExamID))
}

func TestAllocateSeatsIsDeterministicAcrossRuns(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	deptEC := seedDept(t, db, "Electronics")
	hall := seedHall(t, db, "Hall A", 4, 2)

	for _, r := range rolls(4, "24CSAA") {
		seedStudent(t, db, r, "cs "+r, deptCS.DepartmentID)
	}
	for _, r := range rolls(3, "24ECBB") {
		seedStudent(t, db, r, "ec "+r, deptEC.DepartmentID)
	}

	exam := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS, deptEC},
		[]masterModel.HallModel{hall})

	_, err := AllocateSeats(db, &exam, []masterModel.HallModel{hall})
	require.NoError(t, err)
	firstRun := rollBySeat(allocationsFor(t, db, exam.ExamID))

	_, err = AllocateSeats(db, &exam, []masterModel.HallModel{hall})
	require.NoError(t, err)
	secondRun := rollBySeat(allocationsFor(t, db, exam.ExamID))

	assert.Equal(t, firstRun, secondRun)
	assert.Len(t, secondRun, 7, "replaced wholesale, not appended")
}

func TestAllocateSeatsFallsBackToDepartmentInterleave(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	// every roll shares the CSAA cohort window, so cohort alternation cannot
	// separate neighbours; department interleave takes over
	deptCS := seedDept(t, db, "Computer Science")
	deptEC := seedDept(t, db, "Electronics")
	hall := seedHall(t, db, "Hall A", 4, 1)

	seedStudent(t, db, "24CSAA001", "cs 1", deptCS.DepartmentID)
	seedStudent(t, db, "24CSAA003", "cs 3", deptCS.DepartmentID)
	seedStudent(t, db, "24CSAA002", "ec 2", deptEC.DepartmentID)
	seedStudent(t, db, "24CSAA004", "ec 4", deptEC.DepartmentID)

	exam := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS, deptEC},
		[]masterModel.HallModel{hall})

	res, err := AllocateSeats(db, &exam, []masterModel.HallModel{hall})
	require.NoError(t, err)
	assert.Equal(t, []string{"Computer Science", "Electronics"}, res.Pattern)

	want := map[string]string{
		"S1": "24CSAA001",
		"S2": "24CSAA002",
		"S3": "24CSAA003",
		"S4": "24CSAA004",
	}
	assert.Equal(t, want, rollBySeat(allocationsFor(t, db, exam.ExamID)))
}

func TestAllocateSeatsAssignsStudentsToOwningExam(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	deptEC := seedDept(t, db, "Electronics")
	hall := seedHall(t, db, "Hall A", 5, 2)

	csStudent := seedStudent(t, db, "24CSAA001", "cs 1", deptCS.DepartmentID)
	ecStudent := seedStudent(t, db, "24ECBB001", "ec 1", deptEC.DepartmentID)

	exam1 := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS},
		[]masterModel.HallModel{hall})
	exam2 := seedExam(t, db, "Circuits", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptEC},
		[]masterModel.HallModel{hall})

	_, err := AllocateSeats(db, &exam1, []masterModel.HallModel{hall})
	require.NoError(t, err)

	rows := allocationsFor(t, db, exam1.ExamID, exam2.ExamID)
	require.Len(t, rows, 2)
	for i := range rows {
		switch rows[i].SeatingAllocationStudentID {
		case csStudent.StudentID:
			assert.Equal(t, exam1.ExamID, rows[i].SeatingAllocationExamID)
		case ecStudent.StudentID:
			assert.Equal(t, exam2.ExamID, rows[i].SeatingAllocationExamID)
		default:
			t.Fatalf("unexpected student in allocations: %s", rows[i].SeatingAllocationStudentID)
		}
	}
}
