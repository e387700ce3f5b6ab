// file: internals/features/exam/masters/controller/pg_error.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	helper "examhall_backend/internals/helpers"
)

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writePGError(c *fiber.Ctx, err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return helper.Error(c, http.StatusBadRequest, "Referenced record not found (FK violation).")
		case "23505":
			return helper.Error(c, http.StatusConflict, "Duplicate data (unique violation).")
		}
	}
	return helper.Error(c, http.StatusInternalServerError, err.Error())
}
