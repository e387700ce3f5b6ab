// file: internals/features/exam/attendance/route/attendance_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "examhall_backend/internals/features/exam/attendance/controller"
	"examhall_backend/internals/middlewares/auth"
)

// AttendanceRoutes lives under the shared authenticated group: marking is
// role-gated here and additionally checked against the invigilation
// assignment inside the controller.
func AttendanceRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := attendanceController.NewAttendanceController(db, v)

	r.Post("/exams/:id/halls/:hall_id/attendance",
		auth.RequireRoles(auth.RoleAdmin, auth.RoleTeacher), ctl.Mark)
	r.Get("/exams/:id/attendance", ctl.ListForExam)
}
