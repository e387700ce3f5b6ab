// file: internals/features/exam/exams/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examController "examhall_backend/internals/features/exam/exams/controller"
)

// ExamAdminRoutes mounts the write side: exam CRUD (with the conflict checks
// and slot-wide auto-allocation inside), the standalone slot tooling, manual
// re-allocation, and invigilator management.
func ExamAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	examCtl := examController.NewExamController(db, v)
	allocCtl := examController.NewAllocationController(db, v)
	invCtl := examController.NewInvigilatorController(db, v)

	r.Post("/slots/resolve", allocCtl.ResolveSlot)

	exams := r.Group("/exams")
	// static paths before the :id routes
	exams.Post("/check-department-conflict", allocCtl.CheckDepartmentConflict)
	exams.Post("/check-student-overlap", allocCtl.CheckStudentOverlap)

	exams.Get("/", examCtl.List)
	exams.Post("/", examCtl.Create)
	exams.Get("/:id", examCtl.Detail)
	exams.Put("/:id", examCtl.Update)
	exams.Delete("/:id", examCtl.Delete)

	exams.Post("/:id/allocate-seats", allocCtl.AllocateSeats)
	exams.Post("/:id/invigilators", invCtl.Assign)
	exams.Get("/:id/invigilators", invCtl.ListForExam)

	r.Delete("/invigilation-assignments/:id", invCtl.DeleteAssignment)
}
