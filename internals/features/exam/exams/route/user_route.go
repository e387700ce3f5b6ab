// file: internals/features/exam/exams/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examController "examhall_backend/internals/features/exam/exams/controller"
)

// ExamUserRoutes mounts the read side: any authenticated role can look at
// schedules and seating plans.
func ExamUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	examCtl := examController.NewExamController(db, v)
	planCtl := examController.NewSeatingPlanController(db)

	exams := r.Group("/exams")
	exams.Get("/", examCtl.List)
	exams.Get("/:id", examCtl.Detail)
	exams.Get("/:id/seating-plans", planCtl.HallSummaries)
	exams.Get("/:id/halls/:hall_id/seating-plan", planCtl.HallPlan)

	r.Get("/students/:roll_no/seating", planCtl.StudentSeating)
}
