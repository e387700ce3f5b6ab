// file: internals/features/exam/masters/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	masterController "examhall_backend/internals/features/exam/masters/controller"
)

func MastersAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	deptCtl := masterController.NewDepartmentController(db, v)
	hallCtl := masterController.NewHallController(db, v)
	studentCtl := masterController.NewStudentController(db, v)
	teacherCtl := masterController.NewTeacherController(db, v)

	depts := r.Group("/departments")
	depts.Get("/", deptCtl.List)
	depts.Post("/", deptCtl.Create)
	depts.Get("/:id", deptCtl.Detail)
	depts.Put("/:id", deptCtl.Update)
	depts.Delete("/:id", deptCtl.Delete)

	halls := r.Group("/halls")
	halls.Get("/", hallCtl.List)
	halls.Post("/", hallCtl.Create)
	halls.Get("/:id", hallCtl.Detail)
	halls.Put("/:id", hallCtl.Update)
	halls.Delete("/:id", hallCtl.Delete)

	students := r.Group("/students")
	students.Get("/", studentCtl.List)
	students.Post("/", studentCtl.Create)
	students.Get("/:id", studentCtl.Detail)
	students.Put("/:id", studentCtl.Update)
	students.Delete("/:id", studentCtl.Delete)

	teachers := r.Group("/teachers")
	teachers.Get("/", teacherCtl.List)
	teachers.Post("/", teacherCtl.Create)
	teachers.Get("/:id", teacherCtl.Detail)
	teachers.Put("/:id", teacherCtl.Update)
	teachers.Delete("/:id", teacherCtl.Delete)
}
