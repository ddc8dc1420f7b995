// file: internals/features/school/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/model"
)

/* ========== REQUEST DTO ========== */

type StudentRequest struct {
	StudentID       *uuid.UUID `json:"student_id" form:"student_id"`
	StudentUsername string     `json:"student_username" form:"student_username" validate:"required,min=3,max=64"`
	StudentPassword string     `json:"student_password" form:"student_password" validate:"omitempty,min=8"`
	StudentName     string     `json:"student_name" form:"student_name" validate:"required"`
	StudentSurname  string     `json:"student_surname" form:"student_surname" validate:"required"`

	StudentEmail   *string `json:"student_email" form:"student_email" validate:"omitempty,email"`
	StudentPhone   *string `json:"student_phone" form:"student_phone"`
	StudentAddress string  `json:"student_address" form:"student_address" validate:"required"`
	StudentImg     *string `json:"student_img" form:"student_img"`

	StudentBloodType string    `json:"student_blood_type" form:"student_blood_type" validate:"required"`
	StudentSex       string    `json:"student_sex" form:"student_sex" validate:"required,oneof=MALE FEMALE"`
	StudentBirthday  time.Time `json:"student_birthday" form:"student_birthday" validate:"required"`

	StudentGradeID int `json:"student_grade_id" form:"student_grade_id" validate:"required"`
	StudentClassID int `json:"student_class_id" form:"student_class_id" validate:"required"`
}

func (r *StudentRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentUsername:  r.StudentUsername,
		StudentName:      r.StudentName,
		StudentSurname:   r.StudentSurname,
		StudentEmail:     nilIfEmpty(r.StudentEmail),
		StudentPhone:     nilIfEmpty(r.StudentPhone),
		StudentAddress:   r.StudentAddress,
		StudentImg:       nilIfEmpty(r.StudentImg),
		StudentBloodType: r.StudentBloodType,
		StudentSex:       r.StudentSex,
		StudentBirthday:  r.StudentBirthday,
		StudentGradeID:   r.StudentGradeID,
		StudentClassID:   r.StudentClassID,
	}
}

/* ========== RESPONSE DTO ========== */

type StudentResponse struct {
	StudentID        uuid.UUID `json:"student_id"`
	StudentUsername  string    `json:"student_username"`
	StudentName      string    `json:"student_name"`
	StudentSurname   string    `json:"student_surname"`
	StudentEmail     *string   `json:"student_email,omitempty"`
	StudentPhone     *string   `json:"student_phone,omitempty"`
	StudentAddress   string    `json:"student_address"`
	StudentImg       *string   `json:"student_img,omitempty"`
	StudentBloodType string    `json:"student_blood_type"`
	StudentSex       string    `json:"student_sex"`
	StudentBirthday  time.Time `json:"student_birthday"`
	StudentGradeID   int       `json:"student_grade_id"`
	StudentClassID   int       `json:"student_class_id"`
	StudentCreatedAt time.Time `json:"student_created_at"`
}

func NewStudentResponse(m *model.StudentModel) *StudentResponse {
	if m == nil {
		return nil
	}
	return &StudentResponse{
		StudentID:        m.StudentID,
		StudentUsername:  m.StudentUsername,
		StudentName:      m.StudentName,
		StudentSurname:   m.StudentSurname,
		StudentEmail:     m.StudentEmail,
		StudentPhone:     m.StudentPhone,
		StudentAddress:   m.StudentAddress,
		StudentImg:       m.StudentImg,
		StudentBloodType: m.StudentBloodType,
		StudentSex:       m.StudentSex,
		StudentBirthday:  m.StudentBirthday,
		StudentGradeID:   m.StudentGradeID,
		StudentClassID:   m.StudentClassID,
		StudentCreatedAt: m.StudentCreatedAt,
	}
}
