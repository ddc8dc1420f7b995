// file: internals/features/school/controller/student_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/dto"
	"schoolku_backend/internals/features/school/model"
	"schoolku_backend/internals/features/school/service"
	helper "schoolku_backend/internals/helpers"
)

type StudentController struct {
	DB      *gorm.DB
	Service *service.SchoolService
}

func NewStudentController(db *gorm.DB, svc *service.SchoolService) *StudentController {
	return &StudentController{DB: db, Service: svc}
}

// POST /students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := attachAvatar(c, "students", &req.StudentImg); err != nil {
		return err
	}
	res := ctl.Service.CreateStudent(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonCreated(c, "Student created", res)
}

// PUT /students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.StudentID == nil {
		if id, err := uuid.Parse(c.Params("id")); err == nil {
			req.StudentID = &id
		}
	}
	if err := attachAvatar(c, "students", &req.StudentImg); err != nil {
		return err
	}
	res := ctl.Service.UpdateStudent(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonUpdated(c, "Student updated", res)
}

// DELETE /students/:id
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	res := ctl.Service.DeleteStudent(c.Context(), caller, service.Result{}, deletePayload(c))
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonDeleted(c, "Student deleted", res)
}

// GET /students
func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.StudentModel{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("student_name ILIKE ? OR student_surname ILIKE ? OR student_username ILIKE ?", like, like, like)
	}
	if classID := c.QueryInt("class_id"); classID > 0 {
		q = q.Where("student_class_id = ?", classID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var rows []model.StudentModel
	if err := q.Order("student_surname ASC, student_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	out := make([]*dto.StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewStudentResponse(&rows[i]))
	}
	return helper.JsonList(c, "Students fetched", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var row model.StudentModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "Student fetched", dto.NewStudentResponse(&row))
}
