// file: internals/features/school/controller/exam_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/dto"
	"schoolku_backend/internals/features/school/model"
	"schoolku_backend/internals/features/school/service"
	helper "schoolku_backend/internals/helpers"
)

type ExamController struct {
	DB      *gorm.DB
	Service *service.SchoolService
}

func NewExamController(db *gorm.DB, svc *service.SchoolService) *ExamController {
	return &ExamController{DB: db, Service: svc}
}

// POST /exams
func (ctl *ExamController) Create(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	res := ctl.Service.CreateExam(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonCreated(c, "Exam created", res)
}

// PUT /exams/:id
func (ctl *ExamController) Update(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.ExamID == nil {
		if id, err := c.ParamsInt("id"); err == nil {
			req.ExamID = &id
		}
	}
	res := ctl.Service.UpdateExam(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonUpdated(c, "Exam updated", res)
}

// DELETE /exams/:id
func (ctl *ExamController) Delete(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	res := ctl.Service.DeleteExam(c.Context(), caller, service.Result{}, deletePayload(c))
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonDeleted(c, "Exam deleted", res)
}

// GET /exams
func (ctl *ExamController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.ExamModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("exam_title ILIKE ?", "%"+search+"%")
	}
	if lessonID := c.QueryInt("lesson_id"); lessonID > 0 {
		q = q.Where("exam_lesson_id = ?", lessonID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count exams")
	}

	var rows []model.ExamModel
	if err := q.Order("exam_start_time ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exams")
	}

	out := make([]*dto.ExamResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewExamResponse(&rows[i]))
	}
	return helper.JsonList(c, "Exams fetched", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
