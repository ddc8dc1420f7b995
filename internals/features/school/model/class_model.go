// file: internals/features/school/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassModel represents the `classes` table. Enrollment may never exceed
// ClassCapacity; the store enforces that inside the student-create
// transaction.
type ClassModel struct {
	ClassID       int    `json:"class_id" gorm:"column:class_id;primaryKey;autoIncrement"`
	ClassName     string `json:"class_name" gorm:"column:class_name;type:varchar(100);uniqueIndex;not null"`
	ClassCapacity int    `json:"class_capacity" gorm:"column:class_capacity;not null"`

	ClassSupervisorID *uuid.UUID `json:"class_supervisor_id,omitempty" gorm:"column:class_supervisor_id;type:uuid"` // FK -> teachers(teacher_id)
	ClassGradeID      int        `json:"class_grade_id" gorm:"column:class_grade_id;not null"`                      // FK -> grades(grade_id)

	Students      []StudentModel      `json:"students,omitempty" gorm:"foreignKey:StudentClassID;references:ClassID"`
	Lessons       []LessonModel       `json:"lessons,omitempty" gorm:"foreignKey:LessonClassID;references:ClassID"`
	Events        []EventModel        `json:"events,omitempty" gorm:"foreignKey:EventClassID;references:ClassID"`
	Announcements []AnnouncementModel `json:"announcements,omitempty" gorm:"foreignKey:AnnouncementClassID;references:ClassID"`

	ClassCreatedAt time.Time `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
}

func (ClassModel) TableName() string {
	return "classes"
}

// ClassDependents holds the dependent counts that block a class delete.
type ClassDependents struct {
	Students      int64
	Lessons       int64
	Events        int64
	Announcements int64
}
