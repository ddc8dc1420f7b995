// file: internals/features/school/dto/lesson_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/model"
)

/* ========== REQUEST DTO ========== */

type LessonRequest struct {
	LessonID   *int   `json:"lesson_id" form:"lesson_id"`
	LessonName string `json:"lesson_name" form:"lesson_name" validate:"required,min=1,max=100"`
	LessonDay  string `json:"lesson_day" form:"lesson_day" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY"`

	LessonStartTime time.Time `json:"lesson_start_time" form:"lesson_start_time" validate:"required"`
	LessonEndTime   time.Time `json:"lesson_end_time" form:"lesson_end_time" validate:"required"`

	LessonSubjectID int       `json:"lesson_subject_id" form:"lesson_subject_id" validate:"required"`
	LessonClassID   int       `json:"lesson_class_id" form:"lesson_class_id" validate:"required"`
	LessonTeacherID uuid.UUID `json:"lesson_teacher_id" form:"lesson_teacher_id" validate:"required"`
}

func (r *LessonRequest) ToModel() *model.LessonModel {
	return &model.LessonModel{
		LessonName:      r.LessonName,
		LessonDay:       r.LessonDay,
		LessonStartTime: r.LessonStartTime,
		LessonEndTime:   r.LessonEndTime,
		LessonSubjectID: r.LessonSubjectID,
		LessonClassID:   r.LessonClassID,
		LessonTeacherID: r.LessonTeacherID,
	}
}

/* ========== RESPONSE DTO ========== */

type LessonResponse struct {
	LessonID        int       `json:"lesson_id"`
	LessonName      string    `json:"lesson_name"`
	LessonDay       string    `json:"lesson_day"`
	LessonStartTime time.Time `json:"lesson_start_time"`
	LessonEndTime   time.Time `json:"lesson_end_time"`
	LessonSubjectID int       `json:"lesson_subject_id"`
	LessonClassID   int       `json:"lesson_class_id"`
	LessonTeacherID uuid.UUID `json:"lesson_teacher_id"`
	LessonCreatedAt time.Time `json:"lesson_created_at"`
}

func NewLessonResponse(m *model.LessonModel) *LessonResponse {
	if m == nil {
		return nil
	}
	return &LessonResponse{
		LessonID:        m.LessonID,
		LessonName:      m.LessonName,
		LessonDay:       m.LessonDay,
		LessonStartTime: m.LessonStartTime,
		LessonEndTime:   m.LessonEndTime,
		LessonSubjectID: m.LessonSubjectID,
		LessonClassID:   m.LessonClassID,
		LessonTeacherID: m.LessonTeacherID,
		LessonCreatedAt: m.LessonCreatedAt,
	}
}
