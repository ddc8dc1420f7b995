// file: internals/features/school/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherModel represents the `teachers` table. The primary key is the id
// generated by the identity provider, never by the database.
type TeacherModel struct {
	TeacherID       uuid.UUID `json:"teacher_id" gorm:"column:teacher_id;type:uuid;primaryKey"`
	TeacherUsername string    `json:"teacher_username" gorm:"column:teacher_username;type:varchar(64);uniqueIndex;not null"`
	TeacherName     string    `json:"teacher_name" gorm:"column:teacher_name;type:varchar(100);not null"`
	TeacherSurname  string    `json:"teacher_surname" gorm:"column:teacher_surname;type:varchar(100);not null"`

	TeacherEmail   *string `json:"teacher_email,omitempty" gorm:"column:teacher_email;type:varchar(255)"`
	TeacherPhone   *string `json:"teacher_phone,omitempty" gorm:"column:teacher_phone;type:varchar(32)"`
	TeacherAddress string  `json:"teacher_address" gorm:"column:teacher_address;type:text;not null"`
	TeacherImg     *string `json:"teacher_img,omitempty" gorm:"column:teacher_img;type:text"`

	TeacherBloodType string    `json:"teacher_blood_type" gorm:"column:teacher_blood_type;type:varchar(3);not null"`
	TeacherSex       string    `json:"teacher_sex" gorm:"column:teacher_sex;type:varchar(6);not null"`
	TeacherBirthday  time.Time `json:"teacher_birthday" gorm:"column:teacher_birthday;not null"`

	Subjects []SubjectModel `json:"subjects,omitempty" gorm:"many2many:subject_teachers;foreignKey:TeacherID;joinForeignKey:TeacherID;References:SubjectID;joinReferences:SubjectID"`
	Lessons  []LessonModel  `json:"lessons,omitempty" gorm:"foreignKey:LessonTeacherID;references:TeacherID"`
	Classes  []ClassModel   `json:"classes,omitempty" gorm:"foreignKey:ClassSupervisorID;references:TeacherID"` // supervised classes

	TeacherCreatedAt time.Time `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

// TeacherDependents holds the dependent counts that block a teacher delete.
type TeacherDependents struct {
	Subjects int64
	Lessons  int64
	Classes  int64
}
