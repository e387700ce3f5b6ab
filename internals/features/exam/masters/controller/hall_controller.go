// file: internals/features/exam/masters/controller/hall_controller.go
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

type HallController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHallController(db *gorm.DB, v *validator.Validate) *HallController {
	return &HallController{DB: db, Validate: v}
}

func (ctl *HallController) Create(c *fiber.Ctx) error {
	var req d.HallRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var hall m.HallModel
	req.Apply(&hall)
	if err := ctl.DB.Create(&hall).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Hall created.", hall)
}

// Update may shrink the grid; existing allocations keep their seats until the
// next slot recompute, so a shrink below current occupancy is refused.
func (ctl *HallController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	var hall m.HallModel
	if err := ctl.DB.First(&hall, "hall_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Hall not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var req d.HallRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.HallRows*req.HallColumns < hall.Capacity() {
		var occupied int64
		if err := ctl.DB.
			Table("seating_allocations").
			Where("seating_allocation_hall_id = ?", id).
			Count(&occupied).Error; err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
		if int(occupied) > req.HallRows*req.HallColumns {
			return helper.Error(c, http.StatusConflict,
				"Cannot shrink hall below its current allocation count.")
		}
	}

	req.Apply(&hall)
	if err := ctl.DB.Save(&hall).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.Success(c, "Hall updated.", hall)
}

func (ctl *HallController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Delete(&m.HallModel{}, "hall_id = ?", id)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Hall not found")
	}
	return helper.Success(c, "Hall deleted.", nil)
}

func (ctl *HallController) List(c *fiber.Ctx) error {
	var halls []m.HallModel
	if err := ctl.DB.Order("hall_name").Find(&halls).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", halls)
}

func (ctl *HallController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}
	var hall m.HallModel
	if err := ctl.DB.First(&hall, "hall_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Hall not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", hall)
}
