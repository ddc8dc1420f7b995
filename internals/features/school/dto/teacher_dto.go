// file: internals/features/school/dto/teacher_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/model"
)

/* ========== REQUEST DTO ========== */

// TeacherRequest covers create and update. Password is required on create
// and optional on update (empty means keep the current credential); the
// subject id set replaces the stored one.
type TeacherRequest struct {
	TeacherID       *uuid.UUID `json:"teacher_id" form:"teacher_id"`
	TeacherUsername string     `json:"teacher_username" form:"teacher_username" validate:"required,min=3,max=64"`
	TeacherPassword string     `json:"teacher_password" form:"teacher_password" validate:"omitempty,min=8"`
	TeacherName     string     `json:"teacher_name" form:"teacher_name" validate:"required"`
	TeacherSurname  string     `json:"teacher_surname" form:"teacher_surname" validate:"required"`

	TeacherEmail   *string `json:"teacher_email" form:"teacher_email" validate:"omitempty,email"`
	TeacherPhone   *string `json:"teacher_phone" form:"teacher_phone"`
	TeacherAddress string  `json:"teacher_address" form:"teacher_address" validate:"required"`
	TeacherImg     *string `json:"teacher_img" form:"teacher_img"`

	TeacherBloodType string    `json:"teacher_blood_type" form:"teacher_blood_type" validate:"required"`
	TeacherSex       string    `json:"teacher_sex" form:"teacher_sex" validate:"required,oneof=MALE FEMALE"`
	TeacherBirthday  time.Time `json:"teacher_birthday" form:"teacher_birthday" validate:"required"`

	TeacherSubjectIDs []int `json:"teacher_subject_ids" form:"teacher_subject_ids"`
}

func (r *TeacherRequest) ToModel() *model.TeacherModel {
	return &model.TeacherModel{
		TeacherUsername:  r.TeacherUsername,
		TeacherName:      r.TeacherName,
		TeacherSurname:   r.TeacherSurname,
		TeacherEmail:     nilIfEmpty(r.TeacherEmail),
		TeacherPhone:     nilIfEmpty(r.TeacherPhone),
		TeacherAddress:   r.TeacherAddress,
		TeacherImg:       nilIfEmpty(r.TeacherImg),
		TeacherBloodType: r.TeacherBloodType,
		TeacherSex:       r.TeacherSex,
		TeacherBirthday:  r.TeacherBirthday,
	}
}

/* ========== RESPONSE DTO ========== */

type TeacherResponse struct {
	TeacherID        uuid.UUID `json:"teacher_id"`
	TeacherUsername  string    `json:"teacher_username"`
	TeacherName      string    `json:"teacher_name"`
	TeacherSurname   string    `json:"teacher_surname"`
	TeacherEmail     *string   `json:"teacher_email,omitempty"`
	TeacherPhone     *string   `json:"teacher_phone,omitempty"`
	TeacherAddress   string    `json:"teacher_address"`
	TeacherImg       *string   `json:"teacher_img,omitempty"`
	TeacherBloodType string    `json:"teacher_blood_type"`
	TeacherSex       string    `json:"teacher_sex"`
	TeacherBirthday  time.Time `json:"teacher_birthday"`
	SubjectIDs       []int     `json:"subject_ids"`
	TeacherCreatedAt time.Time `json:"teacher_created_at"`
}

func NewTeacherResponse(m *model.TeacherModel) *TeacherResponse {
	if m == nil {
		return nil
	}
	ids := make([]int, 0, len(m.Subjects))
	for i := range m.Subjects {
		ids = append(ids, m.Subjects[i].SubjectID)
	}
	return &TeacherResponse{
		TeacherID:        m.TeacherID,
		TeacherUsername:  m.TeacherUsername,
		TeacherName:      m.TeacherName,
		TeacherSurname:   m.TeacherSurname,
		TeacherEmail:     m.TeacherEmail,
		TeacherPhone:     m.TeacherPhone,
		TeacherAddress:   m.TeacherAddress,
		TeacherImg:       m.TeacherImg,
		TeacherBloodType: m.TeacherBloodType,
		TeacherSex:       m.TeacherSex,
		TeacherBirthday:  m.TeacherBirthday,
		SubjectIDs:       ids,
		TeacherCreatedAt: m.TeacherCreatedAt,
	}
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
