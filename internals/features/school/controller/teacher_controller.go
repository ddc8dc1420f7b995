// file: internals/features/school/controller/teacher_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/dto"
	"schoolku_backend/internals/features/school/model"
	"schoolku_backend/internals/features/school/service"
	helper "schoolku_backend/internals/helpers"
)

type TeacherController struct {
	DB      *gorm.DB
	Service *service.SchoolService
}

func NewTeacherController(db *gorm.DB, svc *service.SchoolService) *TeacherController {
	return &TeacherController{DB: db, Service: svc}
}

// attachAvatar converts an uploaded portrait to webp and stores the public
// path on the request. Uploads are optional; a broken file fails the
// request before the mutation starts.
func attachAvatar(c *fiber.Ctx, folder string, dest **string) error {
	fh, err := c.FormFile("img")
	if err != nil || fh == nil {
		return nil
	}
	path, err := helper.SaveAvatarWebp(folder, fh)
	if err != nil {
		log.Printf("[WARN] avatar upload rejected: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not process the uploaded image")
	}
	*dest = &path
	return nil
}

// POST /teachers
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := attachAvatar(c, "teachers", &req.TeacherImg); err != nil {
		return err
	}
	res := ctl.Service.CreateTeacher(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonCreated(c, "Teacher created", res)
}

// PUT /teachers/:id
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.TeacherID == nil {
		if id, err := uuid.Parse(c.Params("id")); err == nil {
			req.TeacherID = &id
		}
	}
	if err := attachAvatar(c, "teachers", &req.TeacherImg); err != nil {
		return err
	}
	res := ctl.Service.UpdateTeacher(c.Context(), caller, service.Result{}, &req)
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonUpdated(c, "Teacher updated", res)
}

// DELETE /teachers/:id
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	caller, ok := callerFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	res := ctl.Service.DeleteTeacher(c.Context(), caller, service.Result{}, deletePayload(c))
	if res.Error {
		return mutationError(c, res)
	}
	return helper.JsonDeleted(c, "Teacher deleted", res)
}

// GET /teachers
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.TeacherModel{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("teacher_name ILIKE ? OR teacher_surname ILIKE ? OR teacher_username ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var rows []model.TeacherModel
	if err := q.Preload("Subjects").
		Order("teacher_surname ASC, teacher_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}

	out := make([]*dto.TeacherResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewTeacherResponse(&rows[i]))
	}
	return helper.JsonList(c, "Teachers fetched", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /teachers/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	var row model.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Subjects").
		First(&row, "teacher_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	return helper.JsonOK(c, "Teacher fetched", dto.NewTeacherResponse(&row))
}
