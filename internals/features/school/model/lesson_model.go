// file: internals/features/school/model/lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Lesson days follow the school week.
const (
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
)

// LessonModel represents the `lessons` table: the join point between a
// subject, a class, and the owning teacher.
type LessonModel struct {
	LessonID   int    `json:"lesson_id" gorm:"column:lesson_id;primaryKey;autoIncrement"`
	LessonName string `json:"lesson_name" gorm:"column:lesson_name;type:varchar(100);not null"`
	LessonDay  string `json:"lesson_day" gorm:"column:lesson_day;type:varchar(10);not null"`

	LessonStartTime time.Time `json:"lesson_start_time" gorm:"column:lesson_start_time;not null"`
	LessonEndTime   time.Time `json:"lesson_end_time" gorm:"column:lesson_end_time;not null"`

	LessonSubjectID int       `json:"lesson_subject_id" gorm:"column:lesson_subject_id;not null"` // FK -> subjects(subject_id)
	LessonClassID   int       `json:"lesson_class_id" gorm:"column:lesson_class_id;not null"`     // FK -> classes(class_id)
	LessonTeacherID uuid.UUID `json:"lesson_teacher_id" gorm:"column:lesson_teacher_id;type:uuid;not null"`

	LessonCreatedAt time.Time `json:"lesson_created_at" gorm:"column:lesson_created_at;not null;autoCreateTime"`
}

func (LessonModel) TableName() string {
	return "lessons"
}
