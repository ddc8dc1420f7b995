// file: internals/features/school/dto/assignment_dto.go
package dto

import (
	"time"

	"schoolku_backend/internals/features/school/model"
)

/* ========== REQUEST DTO ========== */

type AssignmentRequest struct {
	AssignmentID    *int   `json:"assignment_id" form:"assignment_id"`
	AssignmentTitle string `json:"assignment_title" form:"assignment_title" validate:"required,min=1,max=150"`

	AssignmentStartDate time.Time `json:"assignment_start_date" form:"assignment_start_date" validate:"required"`
	AssignmentDueDate   time.Time `json:"assignment_due_date" form:"assignment_due_date" validate:"required"`

	AssignmentLessonID int `json:"assignment_lesson_id" form:"assignment_lesson_id" validate:"required"`
}

func (r *AssignmentRequest) ToModel() *model.AssignmentModel {
	return &model.AssignmentModel{
		AssignmentTitle:     r.AssignmentTitle,
		AssignmentStartDate: r.AssignmentStartDate,
		AssignmentDueDate:   r.AssignmentDueDate,
		AssignmentLessonID:  r.AssignmentLessonID,
	}
}

/* ========== RESPONSE DTO ========== */

type AssignmentResponse struct {
	AssignmentID        int       `json:"assignment_id"`
	AssignmentTitle     string    `json:"assignment_title"`
	AssignmentStartDate time.Time `json:"assignment_start_date"`
	AssignmentDueDate   time.Time `json:"assignment_due_date"`
	AssignmentLessonID  int       `json:"assignment_lesson_id"`
	AssignmentCreatedAt time.Time `json:"assignment_created_at"`
}

func NewAssignmentResponse(m *model.AssignmentModel) *AssignmentResponse {
	if m == nil {
		return nil
	}
	return &AssignmentResponse{
		AssignmentID:        m.AssignmentID,
		AssignmentTitle:     m.AssignmentTitle,
		AssignmentStartDate: m.AssignmentStartDate,
		AssignmentDueDate:   m.AssignmentDueDate,
		AssignmentLessonID:  m.AssignmentLessonID,
		AssignmentCreatedAt: m.AssignmentCreatedAt,
	}
}
