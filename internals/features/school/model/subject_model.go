// file: internals/features/school/model/subject_model.go
package model

import "time"

// SubjectModel represents the `subjects` table. Subject name is unique
// system-wide (case-insensitivity is enforced in the store pre-check).
type SubjectModel struct {
	SubjectID   int    `json:"subject_id" gorm:"column:subject_id;primaryKey;autoIncrement"`
	SubjectName string `json:"subject_name" gorm:"column:subject_name;type:varchar(100);uniqueIndex;not null"`

	Teachers []TeacherModel `json:"teachers,omitempty" gorm:"many2many:subject_teachers;foreignKey:SubjectID;joinForeignKey:SubjectID;References:TeacherID;joinReferences:TeacherID"`
	Lessons  []LessonModel  `json:"lessons,omitempty" gorm:"foreignKey:LessonSubjectID;references:SubjectID"`

	SubjectCreatedAt time.Time `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}

// SubjectDependents holds the dependent counts that block a subject delete.
type SubjectDependents struct {
	Teachers int64
	Lessons  int64
}
