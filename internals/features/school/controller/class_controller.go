// file: internals/features/school/controller/class_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/dto"
	"schoolku_backend/internals/features/school/model"
	"schoolku_backend/internals/features/school/service"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct {
	DB      *gorm.DB
	Service *service.SchoolService
}

func NewClassController(db *gorm.DB, svc *service.SchoolService) *ClassController {
	return &ClassController{DB: db, Service: svc}
}

// POST /classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	res := ctl.Service.CreateClass(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonCreated(c, "Class created", res)
}

// PUT /classes/:id
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.ClassID == nil {
		if id, err := c.ParamsInt("id"); err == nil {
			req.ClassID = &id
		}
	}
	res := ctl.Service.UpdateClass(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonUpdated(c, "Class updated", res)
}

// DELETE /classes/:id
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	res := ctl.Service.DeleteClass(c.Context(), caller, service.Result{}, deletePayload(c))
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonDeleted(c, "Class deleted", res)
}

// GET /classes
func (ctl *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.ClassModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("class_name ILIKE ?", "%"+search+"%")
	}
	if gradeID := c.QueryInt("grade_id"); gradeID > 0 {
		q = q.Where("class_grade_id = ?", gradeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count classes")
	}

	var rows []model.ClassModel
	if err := q.Order("class_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	out := make([]*dto.ClassResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewClassResponse(&rows[i]))
	}
	return helper.JsonList(c, "Classes fetched", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /classes/:id
func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	var row model.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "class_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonOK(c, "Class fetched", dto.NewClassResponse(&row))
}
