// file: internals/features/school/route/school_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/controller"
	"schoolku_backend/internals/features/school/service"
	"schoolku_backend/internals/middlewares"
)

// SchoolAdminRoutes mounts the admin-only record endpoints: subjects,
// classes, teachers and students. Form mutations run behind the tighter
// rate limit.
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB, svc *service.SchoolService) {
	subjectCtl := controller.NewSubjectController(db, svc)
	classCtl := controller.NewClassController(db, svc)
	teacherCtl := controller.NewTeacherController(db, svc)
	studentCtl := controller.NewStudentController(db, svc)

	mutate := middlewares.MutationRateLimiter()

	subjects := r.Group("/subjects")
	subjects.Get("/", subjectCtl.List)
	subjects.Get("/:id", subjectCtl.GetByID)
	subjects.Post("/", mutate, subjectCtl.Create)
	subjects.Put("/:id", mutate, subjectCtl.Update)
	subjects.Delete("/:id", mutate, subjectCtl.Delete)

	classes := r.Group("/classes")
	classes.Get("/", classCtl.List)
	classes.Get("/:id", classCtl.GetByID)
	classes.Post("/", mutate, classCtl.Create)
	classes.Put("/:id", mutate, classCtl.Update)
	classes.Delete("/:id", mutate, classCtl.Delete)

	teachers := r.Group("/teachers")
	teachers.Get("/", teacherCtl.List)
	teachers.Get("/:id", teacherCtl.GetByID)
	teachers.Post("/", mutate, teacherCtl.Create)
	teachers.Put("/:id", mutate, teacherCtl.Update)
	teachers.Delete("/:id", mutate, teacherCtl.Delete)

	students := r.Group("/students")
	students.Get("/", studentCtl.List)
	students.Get("/:id", studentCtl.GetByID)
	students.Post("/", mutate, studentCtl.Create)
	students.Put("/:id", mutate, studentCtl.Update)
	students.Delete("/:id", mutate, studentCtl.Delete)
}

// SchoolTeacherRoutes mounts the endpoints teaching staff may hit:
// lessons, exams and assignments. The per-record ownership rules live in
// the mutation handlers, not here.
func SchoolTeacherRoutes(r fiber.Router, db *gorm.DB, svc *service.SchoolService) {
	lessonCtl := controller.NewLessonController(db, svc)
	examCtl := controller.NewExamController(db, svc)
	assignmentCtl := controller.NewAssignmentController(db, svc)

	mutate := middlewares.MutationRateLimiter()

	lessons := r.Group("/lessons")
	lessons.Get("/", lessonCtl.List)
	lessons.Post("/", mutate, lessonCtl.Create)
	lessons.Put("/:id", mutate, lessonCtl.Update)
	lessons.Delete("/:id", mutate, lessonCtl.Delete)

	exams := r.Group("/exams")
	exams.Get("/", examCtl.List)
	exams.Post("/", mutate, examCtl.Create)
	exams.Put("/:id", mutate, examCtl.Update)
	exams.Delete("/:id", mutate, examCtl.Delete)

	assignments := r.Group("/assignments")
	assignments.Get("/", assignmentCtl.List)
	assignments.Post("/", mutate, assignmentCtl.Create)
	assignments.Put("/:id", mutate, assignmentCtl.Update)
	assignments.Delete("/:id", mutate, assignmentCtl.Delete)
}
