// file: internals/features/exam/masters/controller/student_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "examhall_backend/internals/features/exam/masters/dto"
	m "examhall_backend/internals/features/exam/masters/model"
	helper "examhall_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req d.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student m.StudentModel
	req.Apply(&student)
	if err := ctl.DB.Create(&student).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Student created.", student)
}

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var student m.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Student not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var req d.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Apply(&student)
	if err := ctl.DB.Save(&student).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.Success(c, "Student updated.", student)
}

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Delete(&m.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Student not found")
	}
	return helper.Success(c, "Student deleted.", nil)
}

// List supports ?department_id= filtering; ordered by roll number, the same
// order the allocator consumes.
func (ctl *StudentController) List(c *fiber.Ctx) error {
	q := ctl.DB.Preload("Department").Order("student_roll_no")
	if deptID := c.Query("department_id"); deptID != "" {
		q = q.Where("student_department_id = ?", deptID)
	}
	var students []m.StudentModel
	if err := q.Find(&students).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", students)
}

func (ctl *StudentController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	var student m.StudentModel
	if err := ctl.DB.Preload("Department").First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Student not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", student)
}
