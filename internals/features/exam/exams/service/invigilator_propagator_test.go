// file: internals/features/exam/exams/service/invigilator_propagator_test.go
package service

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	examModel "examhall_backend/internals/features/exam/exams/model"
	masterModel "examhall_backend/internals/features/exam/masters/model"
)

func invigilationRows(t *testing.T, db *gorm.DB, hallID uuid.UUID) []examModel.InvigilationAssignmentModel {
	t.Helper()
	var rows []examModel.InvigilationAssignmentModel
	require.NoError(t, db.
		Where("invigilation_assignment_hall_id = ?", hallID).
		Find(&rows).Error)
	return rows
}

func TestAssignPropagatesToSlotSiblings(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	deptEC := seedDept(t, db, "Electronics")
	hall := seedHall(t, db, "Hall A", 5, 4)
	teacher := seedTeacher(t, db, "Prof. Rao", "T001")

	exam1 := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS}, []masterModel.HallModel{hall})
	exam2 := seedExam(t, db, "Circuits", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptEC}, []masterModel.HallModel{hall})
	// different start time: outside the slot, must not receive the teacher
	exam3 := seedExam(t, db, "Physics", day, "14:00", "16:00",
		[]masterModel.DepartmentModel{deptCS}, []masterModel.HallModel{hall})

	assigned, err := NewInvigilatorPropagator(db).Assign(exam1.ExamID, hall.HallID, teacher.TeacherID)
	require.NoError(t, err)
	assert.Equal(t, 2, assigned)

	rows := invigilationRows(t, db, hall.HallID)
	require.Len(t, rows, 2)
	examIDs := []uuid.UUID{rows[0].InvigilationAssignmentExamID, rows[1].InvigilationAssignmentExamID}
	assert.ElementsMatch(t, []uuid.UUID{exam1.ExamID, exam2.ExamID}, examIDs)
	assert.NotContains(t, examIDs, exam3.ExamID)

	var snap map[string]any
	require.NoError(t, json.Unmarshal(rows[0].InvigilationAssignmentTeacherSnapshot, &snap))
	assert.Equal(t, "Prof. Rao", snap["teacher_name"])
	assert.Equal(t, "T001", snap["teacher_employee_id"])
}

func TestAssignNeverOverwritesSiblingAssignment(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	deptEC := seedDept(t, db, "Electronics")
	hall := seedHall(t, db, "Hall A", 5, 4)
	t1 := seedTeacher(t, db, "Prof. Rao", "T001")
	t2 := seedTeacher(t, db, "Prof. Iyer", "T002")

	exam1 := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS}, []masterModel.HallModel{hall})
	exam2 := seedExam(t, db, "Circuits", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptEC}, []masterModel.HallModel{hall})

	// the sibling already has its own invigilator
	_, err := NewInvigilatorPropagator(db).Assign(exam2.ExamID, hall.HallID, t2.TeacherID)
	require.NoError(t, err)

	assigned, err := NewInvigilatorPropagator(db).Assign(exam1.ExamID, hall.HallID, t1.TeacherID)
	require.NoError(t, err)
	assert.Equal(t, 1, assigned, "only the anchor changes")

	rows := invigilationRows(t, db, hall.HallID)
	require.Len(t, rows, 2)
	byExam := make(map[uuid.UUID]uuid.UUID, 2)
	for i := range rows {
		byExam[rows[i].InvigilationAssignmentExamID] = rows[i].InvigilationAssignmentTeacherID
	}
	assert.Equal(t, t1.TeacherID, byExam[exam1.ExamID])
	assert.Equal(t, t2.TeacherID, byExam[exam2.ExamID])
}

func TestAssignReassigningAnchorOverwrites(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	hall := seedHall(t, db, "Hall A", 5, 4)
	t1 := seedTeacher(t, db, "Prof. Rao", "T001")
	t2 := seedTeacher(t, db, "Prof. Iyer", "T002")

	exam := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS}, []masterModel.HallModel{hall})

	_, err := NewInvigilatorPropagator(db).Assign(exam.ExamID, hall.HallID, t1.TeacherID)
	require.NoError(t, err)
	_, err = NewInvigilatorPropagator(db).Assign(exam.ExamID, hall.HallID, t2.TeacherID)
	require.NoError(t, err)

	rows := invigilationRows(t, db, hall.HallID)
	require.Len(t, rows, 1, "upsert, not a second row")
	assert.Equal(t, t2.TeacherID, rows[0].InvigilationAssignmentTeacherID)
}

func TestAssignRejectsHallOutsideExam(t *testing.T) {
	db := openTestDB(t)
	day := testDay()

	deptCS := seedDept(t, db, "Computer Science")
	hallA := seedHall(t, db, "Hall A", 5, 4)
	hallB := seedHall(t, db, "Hall B", 5, 4)
	teacher := seedTeacher(t, db, "Prof. Rao", "T001")

	exam := seedExam(t, db, "Mathematics", day, "10:00", "12:00",
		[]masterModel.DepartmentModel{deptCS}, []masterModel.HallModel{hallA})

	_, err := NewInvigilatorPropagator(db).Assign(exam.ExamID, hallB.HallID, teacher.TeacherID)
	require.ErrorIs(t, err, ErrHallNotInExam)
	assert.Empty(t, invigilationRows(t, db, hallB.HallID))
}
