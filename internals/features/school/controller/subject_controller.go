// file: internals/features/school/controller/subject_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/dto"
	"schoolku_backend/internals/features/school/model"
	"schoolku_backend/internals/features/school/service"
	helper "schoolku_backend/internals/helpers"
)

type SubjectController struct {
	DB      *gorm.DB
	Service *service.SchoolService
}

func NewSubjectController(db *gorm.DB, svc *service.SchoolService) *SubjectController {
	return &SubjectController{DB: db, Service: svc}
}

// POST /subjects
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	res := ctl.Service.CreateSubject(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonCreated(c, "Subject created", res)
}

// PUT /subjects/:id
func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.SubjectID == nil {
		if id, err := c.ParamsInt("id"); err == nil {
			req.SubjectID = &id
		}
	}
	res := ctl.Service.UpdateSubject(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonUpdated(c, "Subject updated", res)
}

// DELETE /subjects/:id
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	res := ctl.Service.DeleteSubject(c.Context(), caller, service.Result{}, deletePayload(c))
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonDeleted(c, "Subject deleted", res)
}

// GET /subjects
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.SubjectModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("subject_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count subjects")
	}

	var rows []model.SubjectModel
	if err := q.Preload("Teachers").
		Order("subject_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
	}

	out := make([]*dto.SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewSubjectResponse(&rows[i]))
	}
	return helper.JsonList(c, "Subjects fetched", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /subjects/:id
func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}
	var row model.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Teachers").
		First(&row, "subject_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.JsonOK(c, "Subject fetched", dto.NewSubjectResponse(&row))
}
