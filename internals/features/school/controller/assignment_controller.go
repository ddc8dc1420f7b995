// file: internals/features/school/controller/assignment_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/dto"
	"schoolku_backend/internals/features/school/model"
	"schoolku_backend/internals/features/school/service"
	helper "schoolku_backend/internals/helpers"
)

type AssignmentController struct {
	DB      *gorm.DB
	Service *service.SchoolService
}

func NewAssignmentController(db *gorm.DB, svc *service.SchoolService) *AssignmentController {
	return &AssignmentController{DB: db, Service: svc}
}

// POST /assignments
func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	res := ctl.Service.CreateAssignment(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonCreated(c, "Assignment created", res)
}

// PUT /assignments/:id
func (ctl *AssignmentController) Update(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.AssignmentID == nil {
		if id, err := c.ParamsInt("id"); err == nil {
			req.AssignmentID = &id
		}
	}
	res := ctl.Service.UpdateAssignment(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonUpdated(c, "Assignment updated", res)
}

// DELETE /assignments/:id
func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	res := ctl.Service.DeleteAssignment(c.Context(), caller, service.Result{}, deletePayload(c))
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonDeleted(c, "Assignment deleted", res)
}

// GET /assignments
func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.AssignmentModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("assignment_title ILIKE ?", "%"+search+"%")
	}
	if lessonID := c.QueryInt("lesson_id"); lessonID > 0 {
		q = q.Where("assignment_lesson_id = ?", lessonID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count assignments")
	}

	var rows []model.AssignmentModel
	if err := q.Order("assignment_due_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	out := make([]*dto.AssignmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewAssignmentResponse(&rows[i]))
	}
	return helper.JsonList(c, "Assignments fetched", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
