// file: internals/features/exam/exams/controller/pg_error.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	helper "examhall_backend/internals/helpers"
)

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation
	// 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return http.StatusBadRequest, "Referenced record not found (FK violation)."
		case "23505":
			return http.StatusConflict, "Duplicate data (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.Error(c, code, msg)
}
