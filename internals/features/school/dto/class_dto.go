// file: internals/features/school/dto/class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/model"
)

/* ========== REQUEST DTO ========== */

type ClassRequest struct {
	ClassID           *int       `json:"class_id" form:"class_id"`
	ClassName         string     `json:"class_name" form:"class_name" validate:"required,min=1,max=100"`
	ClassCapacity     int        `json:"class_capacity" form:"class_capacity" validate:"required,gt=0"`
	ClassGradeID      int        `json:"class_grade_id" form:"class_grade_id" validate:"required"`
	ClassSupervisorID *uuid.UUID `json:"class_supervisor_id" form:"class_supervisor_id"`
}

func (r *ClassRequest) ToModel() *model.ClassModel {
	return &model.ClassModel{
		ClassName:         r.ClassName,
		ClassCapacity:     r.ClassCapacity,
		ClassGradeID:      r.ClassGradeID,
		ClassSupervisorID: r.ClassSupervisorID,
	}
}

/* ========== RESPONSE DTO ========== */

type ClassResponse struct {
	ClassID           int        `json:"class_id"`
	ClassName         string     `json:"class_name"`
	ClassCapacity     int        `json:"class_capacity"`
	ClassGradeID      int        `json:"class_grade_id"`
	ClassSupervisorID *uuid.UUID `json:"class_supervisor_id,omitempty"`
	ClassCreatedAt    time.Time  `json:"class_created_at"`
}

func NewClassResponse(m *model.ClassModel) *ClassResponse {
	if m == nil {
		return nil
	}
	return &ClassResponse{
		ClassID:           m.ClassID,
		ClassName:         m.ClassName,
		ClassCapacity:     m.ClassCapacity,
		ClassGradeID:      m.ClassGradeID,
		ClassSupervisorID: m.ClassSupervisorID,
		ClassCreatedAt:    m.ClassCreatedAt,
	}
}
