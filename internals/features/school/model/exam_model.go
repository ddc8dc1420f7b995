// file: internals/features/school/model/exam_model.go
package model

import "time"

// ExamModel represents the `exams` table.
type ExamModel struct {
	ExamID    int    `json:"exam_id" gorm:"column:exam_id;primaryKey;autoIncrement"`
	ExamTitle string `json:"exam_title" gorm:"column:exam_title;type:varchar(150);not null"`

	ExamStartTime time.Time `json:"exam_start_time" gorm:"column:exam_start_time;not null"`
	ExamEndTime   time.Time `json:"exam_end_time" gorm:"column:exam_end_time;not null"`

	ExamLessonID int `json:"exam_lesson_id" gorm:"column:exam_lesson_id;not null"` // FK -> lessons(lesson_id)

	Results []ResultModel `json:"results,omitempty" gorm:"foreignKey:ResultExamID;references:ExamID"`

	ExamCreatedAt time.Time `json:"exam_created_at" gorm:"column:exam_created_at;not null;autoCreateTime"`
}

func (ExamModel) TableName() string {
	return "exams"
}

// ExamDependents holds the dependent counts that block an exam delete.
type ExamDependents struct {
	Results int64
}
