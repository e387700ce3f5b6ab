// file: internals/features/exam/exams/service/testdb_test.go
package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	examModel "examhall_backend/internals/features/exam/exams/model"
	masterModel "examhall_backend/internals/features/exam/masters/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so every query hits the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&masterModel.DepartmentModel{},
		&masterModel.HallModel{},
		&masterModel.StudentModel{},
		&masterModel.TeacherModel{},
		&examModel.ExamModel{},
		&examModel.SeatingAllocationModel{},
		&examModel.InvigilationAssignmentModel{},
	))
	return db
}

func seedDept(t *testing.T, db *gorm.DB, name string) masterModel.DepartmentModel {
	t.Helper()
	d := masterModel.DepartmentModel{DepartmentName: name}
	require.NoError(t, db.Create(&d).Error)
	return d
}

func seedHall(t *testing.T, db *gorm.DB, name string, rows, cols int) masterModel.HallModel {
	t.Helper()
	h := masterModel.HallModel{HallName: name, HallRows: rows, HallColumns: cols}
	require.NoError(t, db.Create(&h).Error)
	return h
}

func seedStudent(t *testing.T, db *gorm.DB, rollNo, name string, deptID uuid.UUID) masterModel.StudentModel {
	t.Helper()
	s := masterModel.StudentModel{
		StudentName:         name,
		StudentRollNo:       rollNo,
		StudentDepartmentID: &deptID,
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func seedTeacher(t *testing.T, db *gorm.DB, name, employeeID string) masterModel.TeacherModel {
	t.Helper()
	tm := masterModel.TeacherModel{
		TeacherName:       name,
		TeacherEmployeeID: employeeID,
		TeacherSubject:    "Mathematics",
	}
	require.NoError(t, db.Create(&tm).Error)
	return tm
}

var examSeq int

// seedExam creates an exam with its department/hall memberships; creation
// timestamps are spaced so slot ordering is deterministic.
func seedExam(t *testing.T, db *gorm.DB, name string, date time.Time, start, end string,
	depts []masterModel.DepartmentModel, halls []masterModel.HallModel) examModel.ExamModel {
	t.Helper()
	examSeq++
	e := examModel.ExamModel{
		ExamName:      name,
		ExamDate:      date,
		ExamStartTime: start,
		ExamEndTime:   end,
		Departments:   depts,
		Halls:         halls,
		ExamCreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(examSeq) * time.Minute),
	}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func testDay() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func allocationsFor(t *testing.T, db *gorm.DB, examIDs ...uuid.UUID) []examModel.SeatingAllocationModel {
	t.Helper()
	var rows []examModel.SeatingAllocationModel
	require.NoError(t, db.
		Preload("Student").
		Where("seating_allocation_exam_id IN ?", examIDs).
		Find(&rows).Error)
	return rows
}

func rollBySeat(rows []examModel.SeatingAllocationModel) map[string]string {
	out := make(map[string]string, len(rows))
	for i := range rows {
		roll := ""
		if rows[i].Student != nil {
			roll = rows[i].Student.StudentRollNo
		}
		out[rows[i].SeatingAllocationSeatLabel] = roll
	}
	return out
}

func rolls(n int, prefix string) []string {
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, fmt.Sprintf("%s%03d", prefix, i))
	}
	return out
}
