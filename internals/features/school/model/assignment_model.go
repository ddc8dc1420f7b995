// file: internals/features/school/model/assignment_model.go
package model

import "time"

// AssignmentModel represents the `assignments` table.
type AssignmentModel struct {
	AssignmentID    int    `json:"assignment_id" gorm:"column:assignment_id;primaryKey;autoIncrement"`
	AssignmentTitle string `json:"assignment_title" gorm:"column:assignment_title;type:varchar(150);not null"`

	AssignmentStartDate time.Time `json:"assignment_start_date" gorm:"column:assignment_start_date;not null"`
	AssignmentDueDate   time.Time `json:"assignment_due_date" gorm:"column:assignment_due_date;not null"`

	AssignmentLessonID int `json:"assignment_lesson_id" gorm:"column:assignment_lesson_id;not null"` // FK -> lessons(lesson_id)

	AssignmentCreatedAt time.Time `json:"assignment_created_at" gorm:"column:assignment_created_at;not null;autoCreateTime"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}
