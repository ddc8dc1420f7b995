// file: internals/features/school/controller/lesson_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/dto"
	"schoolku_backend/internals/features/school/model"
	"schoolku_backend/internals/features/school/service"
	helper "schoolku_backend/internals/helpers"
)

type LessonController struct {
	DB      *gorm.DB
	Service *service.SchoolService
}

func NewLessonController(db *gorm.DB, svc *service.SchoolService) *LessonController {
	return &LessonController{DB: db, Service: svc}
}

// POST /lessons
func (ctl *LessonController) Create(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	res := ctl.Service.CreateLesson(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonCreated(c, "Lesson created", res)
}

// PUT /lessons/:id
func (ctl *LessonController) Update(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.LessonID == nil {
		if id, err := c.ParamsInt("id"); err == nil {
			req.LessonID = &id
		}
	}
	res := ctl.Service.UpdateLesson(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonUpdated(c, "Lesson updated", res)
}

// DELETE /lessons/:id
func (ctl *LessonController) Delete(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	res := ctl.Service.DeleteLesson(c.Context(), caller, service.Result{}, deletePayload(c))
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonDeleted(c, "Lesson deleted", res)
}

// GET /lessons
func (ctl *LessonController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.LessonModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("lesson_name ILIKE ?", "%"+search+"%")
	}
	if classID := c.QueryInt("class_id"); classID > 0 {
		q = q.Where("lesson_class_id = ?", classID)
	}
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		q = q.Where("lesson_teacher_id = ?", teacherID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count lessons")
	}

	var rows []model.LessonModel
	if err := q.Order("lesson_day ASC, lesson_start_time ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lessons")
	}

	out := make([]*dto.LessonResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewLessonResponse(&rows[i]))
	}
	return helper.JsonList(c, "Lessons fetched", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
