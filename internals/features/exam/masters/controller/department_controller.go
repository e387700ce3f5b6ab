// file: internals/features/exam/masters/controller/department_controller.go
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

type DepartmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDepartmentController(db *gorm.DB, v *validator.Validate) *DepartmentController {
	return &DepartmentController{DB: db, Validate: v}
}

func (ctl *DepartmentController) Create(c *fiber.Ctx) error {
	var req d.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var dept m.DepartmentModel
	req.Apply(&dept)
	if err := ctl.DB.Create(&dept).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Department created.", dept)
}

func (ctl *DepartmentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var dept m.DepartmentModel
	if err := ctl.DB.First(&dept, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Department not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var req d.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Apply(&dept)
	if err := ctl.DB.Save(&dept).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.Success(c, "Department updated.", dept)
}

func (ctl *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Delete(&m.DepartmentModel{}, "department_id = ?", id)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Department not found")
	}
	return helper.Success(c, "Department deleted.", nil)
}

func (ctl *DepartmentController) List(c *fiber.Ctx) error {
	var depts []m.DepartmentModel
	if err := ctl.DB.Order("department_name").Find(&depts).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", depts)
}

func (ctl *DepartmentController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	var dept m.DepartmentModel
	if err := ctl.DB.First(&dept, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Department not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dept)
}
