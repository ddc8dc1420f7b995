// file: internals/features/school/dto/subject_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/model"
)

/* ========== REQUEST DTO ========== */

// SubjectRequest is the typed field set for subject create/update. The id
// is only meaningful on update. Teacher ids use replace-not-merge
// semantics.
type SubjectRequest struct {
	SubjectID         *int        `json:"subject_id" form:"subject_id"`
	SubjectName       string      `json:"subject_name" form:"subject_name" validate:"required,min=1,max=100"`
	SubjectTeacherIDs []uuid.UUID `json:"subject_teacher_ids" form:"subject_teacher_ids"`
}

func (r *SubjectRequest) ToModel() *model.SubjectModel {
	return &model.SubjectModel{
		SubjectName: r.SubjectName,
	}
}

/* ========== RESPONSE DTO ========== */

type SubjectResponse struct {
	SubjectID        int         `json:"subject_id"`
	SubjectName      string      `json:"subject_name"`
	TeacherIDs       []uuid.UUID `json:"teacher_ids"`
	SubjectCreatedAt time.Time   `json:"subject_created_at"`
}

func NewSubjectResponse(m *model.SubjectModel) *SubjectResponse {
	if m == nil {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(m.Teachers))
	for i := range m.Teachers {
		ids = append(ids, m.Teachers[i].TeacherID)
	}
	return &SubjectResponse{
		SubjectID:        m.SubjectID,
		SubjectName:      m.SubjectName,
		TeacherIDs:       ids,
		SubjectCreatedAt: m.SubjectCreatedAt,
	}
}
