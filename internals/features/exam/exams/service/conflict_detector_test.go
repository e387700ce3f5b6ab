// file: internals/features/exam/exams/service/conflict_detector_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	examModel "examhall_backend/internals/features/exam/exams/model"
	masterModel "examhall_backend/internals/features/exam/masters/model"
)

func TestCheckDepartmentConflictFindsOverlap(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	hallA := seedHall(t, db, "Hall A", 5, 4)

	existing := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS}, []masterModel.HallModel{hallA})

	findings, err := NewConflictDetector(db).CheckDepartmentConflict(
		"Physics", day, "10:00",
		[]uuid.UUID{hallA.HallID}, []uuid.UUID{deptCS.DepartmentID}, nil)
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, existing.ExamID, findings[0].ExistingExamID)
	assert.Equal(t, "Mathematics", findings[0].ExistingExamName)
	assert.Equal(t, []string{"Computer Science"}, findings[0].OverlappingDepartments)
	assert.Equal(t, []string{"Hall A"}, findings[0].ConflictingHalls)
}

func TestCheckDepartmentConflictAllowsCombinedSession(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	hallA := seedHall(t, db, "Hall A", 5, 4)

	seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS}, []masterModel.HallModel{hallA})

	// same exam name: departments sitting the same paper together
	findings, err := NewConflictDetector(db).CheckDepartmentConflict(
		"Mathematics", day, "10:00",
		[]uuid.UUID{hallA.HallID}, []uuid.UUID{deptCS.DepartmentID}, nil)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheckDepartmentConflictIgnoresDisjointDepartments(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	deptEC := seedDept(t, db, "Electronics")
	hallA := seedHall(t, db, "Hall A", 5, 4)

	seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS}, []masterModel.HallModel{hallA})

	findings, err := NewConflictDetector(db).CheckDepartmentConflict(
		"Physics", day, "10:00",
		[]uuid.UUID{hallA.HallID}, []uuid.UUID{deptEC.DepartmentID}, nil)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheckDepartmentConflictExcludesSelfOnEdit(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	hallA := seedHall(t, db, "Hall A", 5, 4)

	existing := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS}, []masterModel.HallModel{hallA})

	findings, err := NewConflictDetector(db).CheckDepartmentConflict(
		"Mathematics II", day, "10:00",
		[]uuid.UUID{hallA.HallID}, []uuid.UUID{deptCS.DepartmentID}, &existing.ExamID)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func seedAllocation(t *testing.T, db *gorm.DB, examID, studentID, hallID uuid.UUID, label string) {
	t.Helper()
	row := examModel.SeatingAllocationModel{
		SeatingAllocationExamID:    examID,
		SeatingAllocationStudentID: studentID,
		SeatingAllocationHallID:    hallID,
		SeatingAllocationSeatLabel: label,
	}
	require.NoError(t, db.Create(&row).Error)
}

func TestCheckStudentOverlapFlagsIntersectingInterval(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	hallA := seedHall(t, db, "Hall A", 5, 4)
	student := seedStudent(t, db, "24CSAA001", "Asha", deptCS.DepartmentID)

	existing := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS}, []masterModel.HallModel{hallA})
	seedAllocation(t, db, existing.ExamID, student.StudentID, hallA.HallID, "S1")

	findings, err := NewConflictDetector(db).CheckStudentOverlap(
		day, "11:00", "13:00", []uuid.UUID{deptCS.DepartmentID}, nil)
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, student.StudentID, findings[0].StudentID)
	assert.Equal(t, "24CSAA001", findings[0].StudentRollNo)
	require.Len(t, findings[0].Details, 1)
	assert.Equal(t,
		"conflict with exam 'Mathematics' (10:00 - 12:00) in Hall A",
		findings[0].Details[0])
}

func TestCheckStudentOverlapIgnoresTouchingEndpoints(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	hallA := seedHall(t, db, "Hall A", 5, 4)
	student := seedStudent(t, db, "24CSAA001", "Asha", deptCS.DepartmentID)

	existing := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS}, []masterModel.HallModel{hallA})
	seedAllocation(t, db, existing.ExamID, student.StudentID, hallA.HallID, "S1")

	// starts exactly when the seated exam ends
	findings, err := NewConflictDetector(db).CheckStudentOverlap(
		day, "12:00", "14:00", []uuid.UUID{deptCS.DepartmentID}, nil)
	require.NoError(t, err)
	assert.Empty(t, findings)

	// ends exactly when the seated exam starts
	findings, err = NewConflictDetector(db).CheckStudentOverlap(
		day, "08:00", "10:00", []uuid.UUID{deptCS.DepartmentID}, nil)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheckStudentOverlapExcludesEditedExam(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	hallA := seedHall(t, db, "Hall A", 5, 4)
	student := seedStudent(t, db, "24CSAA001", "Asha", deptCS.DepartmentID)

	existing := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS}, []masterModel.HallModel{hallA})
	seedAllocation(t, db, existing.ExamID, student.StudentID, hallA.HallID, "S1")

	findings, err := NewConflictDetector(db).CheckStudentOverlap(
		day, "11:00", "13:00", []uuid.UUID{deptCS.DepartmentID}, &existing.ExamID)
	require.NoError(t, err)
	assert.Empty(t, findings)
}
