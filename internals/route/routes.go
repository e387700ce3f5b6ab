// file: internals/route/routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "examhall_backend/internals/features/exam/attendance/route"
	examRoute "examhall_backend/internals/features/exam/exams/route"
	masterRoute "examhall_backend/internals/features/exam/masters/route"
	"examhall_backend/internals/middlewares/auth"
)

// SetupRoutes wires the two API surfaces:
//
//	/api/a — admin-only writes (masters, exams, slots, invigilators)
//	/api/u — authenticated reads plus attendance marking
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	api := app.Group("/api")

	admin := api.Group("/a", auth.AuthMiddleware(), auth.RequireRoles(auth.RoleAdmin))
	masterRoute.MastersAdminRoutes(admin, db, v)
	examRoute.ExamAdminRoutes(admin, db, v)

	user := api.Group("/u", auth.AuthMiddleware())
	examRoute.ExamUserRoutes(user, db, v)
	attendanceRoute.AttendanceRoutes(user, db, v)
}
