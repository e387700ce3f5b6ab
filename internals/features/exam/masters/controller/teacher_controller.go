// file: internals/features/exam/masters/controller/teacher_controller.go
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

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{DB: db, Validate: v}
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req d.TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var teacher m.TeacherModel
	req.Apply(&teacher)
	if err := ctl.DB.Create(&teacher).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Teacher created.", teacher)
}

func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var teacher m.TeacherModel
	if err := ctl.DB.First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Teacher not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var req d.TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// assignments keep their frozen snapshot; only new assignments see the
	// edited identity
	req.Apply(&teacher)
	if err := ctl.DB.Save(&teacher).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.Success(c, "Teacher updated.", teacher)
}

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Delete(&m.TeacherModel{}, "teacher_id = ?", id)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Teacher not found")
	}
	return helper.Success(c, "Teacher deleted.", nil)
}

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	var teachers []m.TeacherModel
	if err := ctl.DB.Preload("Department").Order("teacher_name").Find(&teachers).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", teachers)
}

func (ctl *TeacherController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	var teacher m.TeacherModel
	if err := ctl.DB.Preload("Department").First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Teacher not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", teacher)
}
