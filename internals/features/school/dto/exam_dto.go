// file: internals/features/school/dto/exam_dto.go
package dto

import (
	"time"

	"schoolku_backend/internals/features/school/model"
)

/* ========== REQUEST DTO ========== */

type ExamRequest struct {
	ExamID    *int   `json:"exam_id" form:"exam_id"`
	ExamTitle string `json:"exam_title" form:"exam_title" validate:"required,min=1,max=150"`

	ExamStartTime time.Time `json:"exam_start_time" form:"exam_start_time" validate:"required"`
	ExamEndTime   time.Time `json:"exam_end_time" form:"exam_end_time" validate:"required"`

	ExamLessonID int `json:"exam_lesson_id" form:"exam_lesson_id" validate:"required"`
}

func (r *ExamRequest) ToModel() *model.ExamModel {
	return &model.ExamModel{
		ExamTitle:     r.ExamTitle,
		ExamStartTime: r.ExamStartTime,
		ExamEndTime:   r.ExamEndTime,
		ExamLessonID:  r.ExamLessonID,
	}
}

/* ========== RESPONSE DTO ========== */

type ExamResponse struct {
	ExamID        int       `json:"exam_id"`
	ExamTitle     string    `json:"exam_title"`
	ExamStartTime time.Time `json:"exam_start_time"`
	ExamEndTime   time.Time `json:"exam_end_time"`
	ExamLessonID  int       `json:"exam_lesson_id"`
	ExamCreatedAt time.Time `json:"exam_created_at"`
}

func NewExamResponse(m *model.ExamModel) *ExamResponse {
	if m == nil {
		return nil
	}
	return &ExamResponse{
		ExamID:        m.ExamID,
		ExamTitle:     m.ExamTitle,
		ExamStartTime: m.ExamStartTime,
		ExamEndTime:   m.ExamEndTime,
		ExamLessonID:  m.ExamLessonID,
		ExamCreatedAt: m.ExamCreatedAt,
	}
}
