// file: internals/features/school/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel represents the `students` table. Like teachers, the id comes
// from the identity provider.
type StudentModel struct {
	StudentID       uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;primaryKey"`
	StudentUsername string    `json:"student_username" gorm:"column:student_username;type:varchar(64);uniqueIndex;not null"`
	StudentName     string    `json:"student_name" gorm:"column:student_name;type:varchar(100);not null"`
	StudentSurname  string    `json:"student_surname" gorm:"column:student_surname;type:varchar(100);not null"`

	StudentEmail   *string `json:"student_email,omitempty" gorm:"column:student_email;type:varchar(255)"`
	StudentPhone   *string `json:"student_phone,omitempty" gorm:"column:student_phone;type:varchar(32)"`
	StudentAddress string  `json:"student_address" gorm:"column:student_address;type:text;not null"`
	StudentImg     *string `json:"student_img,omitempty" gorm:"column:student_img;type:text"`

	StudentBloodType string    `json:"student_blood_type" gorm:"column:student_blood_type;type:varchar(3);not null"`
	StudentSex       string    `json:"student_sex" gorm:"column:student_sex;type:varchar(6);not null"`
	StudentBirthday  time.Time `json:"student_birthday" gorm:"column:student_birthday;not null"`

	StudentGradeID int `json:"student_grade_id" gorm:"column:student_grade_id;not null"` // FK -> grades(grade_id)
	StudentClassID int `json:"student_class_id" gorm:"column:student_class_id;not null"` // FK -> classes(class_id)

	StudentCreatedAt time.Time `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
}

func (StudentModel) TableName() string {
	return "students"
}
