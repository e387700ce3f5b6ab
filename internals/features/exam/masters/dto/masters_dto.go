// file: internals/features/exam/masters/dto/masters_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "examhall_backend/internals/features/exam/masters/model"
)

type DepartmentRequest struct {
	DepartmentName string `json:"department_name" validate:"required,max=100"`
}

func (r *DepartmentRequest) Apply(dst *m.DepartmentModel) {
	dst.DepartmentName = strings.TrimSpace(r.DepartmentName)
}

type HallRequest struct {
	HallName       string         `json:"hall_name" validate:"required,max=50"`
	HallRows       int            `json:"hall_rows" validate:"required,gte=1,lte=100"`
	HallColumns    int            `json:"hall_columns" validate:"required,gte=1,lte=100"`
	HallFacilities datatypes.JSON `json:"hall_facilities"`
}

func (r *HallRequest) Apply(dst *m.HallModel) {
	dst.HallName = strings.TrimSpace(r.HallName)
	dst.HallRows = r.HallRows
	dst.HallColumns = r.HallColumns
	dst.HallFacilities = r.HallFacilities
}

type StudentRequest struct {
	StudentName         string     `json:"student_name" validate:"required,max=100"`
	StudentRollNo       string     `json:"student_roll_no" validate:"required,max=20"`
	StudentDepartmentID *uuid.UUID `json:"student_department_id"`
}

func (r *StudentRequest) Apply(dst *m.StudentModel) {
	dst.StudentName = strings.TrimSpace(r.StudentName)
	dst.StudentRollNo = strings.ToUpper(strings.TrimSpace(r.StudentRollNo))
	dst.StudentDepartmentID = r.StudentDepartmentID
}

type TeacherRequest struct {
	TeacherName         string     `json:"teacher_name" validate:"required,max=100"`
	TeacherEmployeeID   string     `json:"teacher_employee_id" validate:"required,max=20"`
	TeacherSubject      string     `json:"teacher_subject" validate:"required,max=100"`
	TeacherDepartmentID *uuid.UUID `json:"teacher_department_id"`
}

func (r *TeacherRequest) Apply(dst *m.TeacherModel) {
	dst.TeacherName = strings.TrimSpace(r.TeacherName)
	dst.TeacherEmployeeID = strings.ToUpper(strings.TrimSpace(r.TeacherEmployeeID))
	dst.TeacherSubject = strings.TrimSpace(r.TeacherSubject)
	dst.TeacherDepartmentID = r.TeacherDepartmentID
}
