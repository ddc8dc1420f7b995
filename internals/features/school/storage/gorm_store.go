// file: internals/features/school/storage/gorm_store.go
package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/school/model"
	"schoolku_backend/internals/features/school/service"
)

// GormStore is the Postgres-backed record store behind the mutation
// handlers. Every write runs inside a transaction; capacity and name
// checks take row locks so concurrent mutations cannot slip past them.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

var _ service.Store = (*GormStore)(nil)

// isUniqueViolation detects a Postgres unique-index violation without
// depending on the driver error type.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

func mapWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return service.ErrDuplicate
	case errors.Is(err, gorm.ErrRecordNotFound):
		return service.ErrNotFound
	default:
		return err
	}
}

func teacherRefs(ids []uuid.UUID) []model.TeacherModel {
	refs := make([]model.TeacherModel, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, model.TeacherModel{TeacherID: id})
	}
	return refs
}

func subjectRefs(ids []int) []model.SubjectModel {
	refs := make([]model.SubjectModel, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, model.SubjectModel{SubjectID: id})
	}
	return refs
}

/* ================= SUBJECTS ================= */

func (s *GormStore) CreateSubject(ctx context.Context, m *model.SubjectModel, teacherIDs []uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dupes int64
		if err := tx.Model(&model.SubjectModel{}).
			Where("LOWER(subject_name) = LOWER(?)", m.SubjectName).
			Count(&dupes).Error; err != nil {
			return err
		}
		if dupes > 0 {
			return service.ErrDuplicate
		}
		if err := tx.Create(m).Error; err != nil {
			return mapWriteErr(err)
		}
		if len(teacherIDs) == 0 {
			return nil
		}
		refs := teacherRefs(teacherIDs)
		return tx.Model(m).Association("Teachers").Replace(&refs)
	})
}

func (s *GormStore) UpdateSubject(ctx context.Context, m *model.SubjectModel, teacherIDs []uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.SubjectModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&existing, "subject_id = ?", m.SubjectID).Error; err != nil {
			return mapWriteErr(err)
		}
		var dupes int64
		if err := tx.Model(&model.SubjectModel{}).
			Where("LOWER(subject_name) = LOWER(?) AND subject_id <> ?", m.SubjectName, m.SubjectID).
			Count(&dupes).Error; err != nil {
			return err
		}
		if dupes > 0 {
			return service.ErrDuplicate
		}
		if err := tx.Model(&model.SubjectModel{}).
			Where("subject_id = ?", m.SubjectID).
			Update("subject_name", m.SubjectName).Error; err != nil {
			return mapWriteErr(err)
		}
		refs := teacherRefs(teacherIDs)
		return tx.Model(m).Association("Teachers").Replace(&refs)
	})
}

func (s *GormStore) DeleteSubject(ctx context.Context, id int) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := model.SubjectModel{SubjectID: id}
		if err := tx.Model(&m).Association("Teachers").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&model.SubjectModel{}, "subject_id = ?", id)
		if res.Error != nil {
			return mapWriteErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return service.ErrNotFound
		}
		return nil
	})
}

func (s *GormStore) CountSubjectDependents(ctx context.Context, id int) (model.SubjectDependents, error) {
	var deps model.SubjectDependents
	db := s.DB.WithContext(ctx)

	var exists int64
	if err := db.Model(&model.SubjectModel{}).
		Where("subject_id = ?", id).Count(&exists).Error; err != nil {
		return deps, err
	}
	if exists == 0 {
		return deps, service.ErrNotFound
	}
	if err := db.Table("subject_teachers").
		Where("subject_id = ?", id).Count(&deps.Teachers).Error; err != nil {
		return deps, err
	}
	if err := db.Model(&model.LessonModel{}).
		Where("lesson_subject_id = ?", id).Count(&deps.Lessons).Error; err != nil {
		return deps, err
	}
	return deps, nil
}

func (s *GormStore) SubjectHasTeacher(ctx context.Context, subjectID int, teacherID uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Table("subject_teachers").
		Where("subject_id = ? AND teacher_id = ?", subjectID, teacherID).
		Count(&n).Error
	return n > 0, err
}

/* ================= CLASSES ================= */

func (s *GormStore) CreateClass(ctx context.Context, m *model.ClassModel) error {
	return mapWriteErr(s.DB.WithContext(ctx).Create(m).Error)
}

func (s *GormStore) UpdateClass(ctx context.Context, m *model.ClassModel) error {
	res := s.DB.WithContext(ctx).Model(&model.ClassModel{}).
		Where("class_id = ?", m.ClassID).
		Updates(map[string]any{
			"class_name":          m.ClassName,
			"class_capacity":      m.ClassCapacity,
			"class_grade_id":      m.ClassGradeID,
			"class_supervisor_id": m.ClassSupervisorID,
		})
	if res.Error != nil {
		return mapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteClass(ctx context.Context, id int) error {
	res := s.DB.WithContext(ctx).Delete(&model.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return mapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *GormStore) CountClassDependents(ctx context.Context, id int) (model.ClassDependents, error) {
	var deps model.ClassDependents
	db := s.DB.WithContext(ctx)

	var exists int64
	if err := db.Model(&model.ClassModel{}).
		Where("class_id = ?", id).Count(&exists).Error; err != nil {
		return deps, err
	}
	if exists == 0 {
		return deps, service.ErrNotFound
	}
	if err := db.Model(&model.StudentModel{}).
		Where("student_class_id = ?", id).Count(&deps.Students).Error; err != nil {
		return deps, err
	}
	if err := db.Model(&model.LessonModel{}).
		Where("lesson_class_id = ?", id).Count(&deps.Lessons).Error; err != nil {
		return deps, err
	}
	if err := db.Model(&model.EventModel{}).
		Where("event_class_id = ?", id).Count(&deps.Events).Error; err != nil {
		return deps, err
	}
	if err := db.Model(&model.AnnouncementModel{}).
		Where("announcement_class_id = ?", id).Count(&deps.Announcements).Error; err != nil {
		return deps, err
	}
	return deps, nil
}

func (s *GormStore) FindClass(ctx context.Context, id int) (*model.ClassModel, error) {
	var m model.ClassModel
	if err := s.DB.WithContext(ctx).First(&m, "class_id = ?", id).Error; err != nil {
		return nil, mapWriteErr(err)
	}
	return &m, nil
}

func (s *GormStore) FindClassWithStudentCount(ctx context.Context, id int) (*model.ClassModel, int64, error) {
	var m model.ClassModel
	if err := s.DB.WithContext(ctx).First(&m, "class_id = ?", id).Error; err != nil {
		return nil, 0, mapWriteErr(err)
	}
	var enrolled int64
	if err := s.DB.WithContext(ctx).Model(&model.StudentModel{}).
		Where("student_class_id = ?", id).Count(&enrolled).Error; err != nil {
		return nil, 0, err
	}
	return &m, enrolled, nil
}

/* ================= TEACHERS ================= */

func (s *GormStore) CreateTeacher(ctx context.Context, m *model.TeacherModel, subjectIDs []int) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return mapWriteErr(err)
		}
		if len(subjectIDs) == 0 {
			return nil
		}
		refs := subjectRefs(subjectIDs)
		return tx.Model(m).Association("Subjects").Replace(&refs)
	})
}

func (s *GormStore) UpdateTeacher(ctx context.Context, m *model.TeacherModel, subjectIDs []int) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.TeacherModel{}).
			Where("teacher_id = ?", m.TeacherID).
			Updates(map[string]any{
				"teacher_username":   m.TeacherUsername,
				"teacher_name":       m.TeacherName,
				"teacher_surname":    m.TeacherSurname,
				"teacher_email":      m.TeacherEmail,
				"teacher_phone":      m.TeacherPhone,
				"teacher_address":    m.TeacherAddress,
				"teacher_img":        m.TeacherImg,
				"teacher_blood_type": m.TeacherBloodType,
				"teacher_sex":        m.TeacherSex,
				"teacher_birthday":   m.TeacherBirthday,
			})
		if res.Error != nil {
			return mapWriteErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return service.ErrNotFound
		}
		refs := subjectRefs(subjectIDs)
		return tx.Model(m).Association("Subjects").Replace(&refs)
	})
}

func (s *GormStore) DeleteTeacher(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := model.TeacherModel{TeacherID: id}
		if err := tx.Model(&m).Association("Subjects").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&model.TeacherModel{}, "teacher_id = ?", id)
		if res.Error != nil {
			return mapWriteErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return service.ErrNotFound
		}
		return nil
	})
}

func (s *GormStore) CountTeacherDependents(ctx context.Context, id uuid.UUID) (model.TeacherDependents, error) {
	var deps model.TeacherDependents
	db := s.DB.WithContext(ctx)

	var exists int64
	if err := db.Model(&model.TeacherModel{}).
		Where("teacher_id = ?", id).Count(&exists).Error; err != nil {
		return deps, err
	}
	if exists == 0 {
		return deps, service.ErrNotFound
	}
	if err := db.Table("subject_teachers").
		Where("teacher_id = ?", id).Count(&deps.Subjects).Error; err != nil {
		return deps, err
	}
	if err := db.Model(&model.LessonModel{}).
		Where("lesson_teacher_id = ?", id).Count(&deps.Lessons).Error; err != nil {
		return deps, err
	}
	if err := db.Model(&model.ClassModel{}).
		Where("class_supervisor_id = ?", id).Count(&deps.Classes).Error; err != nil {
		return deps, err
	}
	return deps, nil
}

func (s *GormStore) TeacherHasLessonInClass(ctx context.Context, teacherID uuid.UUID, classID int) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.LessonModel{}).
		Where("lesson_teacher_id = ? AND lesson_class_id = ?", teacherID, classID).
		Count(&n).Error
	return n > 0, err
}

/* ================= STUDENTS ================= */

// CreateStudent locks the class row before counting enrollment, so two
// concurrent enrollments into the last seat serialize and the loser gets
// ErrClassFull.
func (s *GormStore) CreateStudent(ctx context.Context, m *model.StudentModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cls model.ClassModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cls, "class_id = ?", m.StudentClassID).Error; err != nil {
			return mapWriteErr(err)
		}
		var enrolled int64
		if err := tx.Model(&model.StudentModel{}).
			Where("student_class_id = ?", m.StudentClassID).
			Count(&enrolled).Error; err != nil {
			return err
		}
		if enrolled >= int64(cls.ClassCapacity) {
			return service.ErrClassFull
		}
		return mapWriteErr(tx.Create(m).Error)
	})
}

func (s *GormStore) UpdateStudent(ctx context.Context, m *model.StudentModel) error {
	res := s.DB.WithContext(ctx).Model(&model.StudentModel{}).
		Where("student_id = ?", m.StudentID).
		Updates(map[string]any{
			"student_username":   m.StudentUsername,
			"student_name":       m.StudentName,
			"student_surname":    m.StudentSurname,
			"student_email":      m.StudentEmail,
			"student_phone":      m.StudentPhone,
			"student_address":    m.StudentAddress,
			"student_img":        m.StudentImg,
			"student_blood_type": m.StudentBloodType,
			"student_sex":        m.StudentSex,
			"student_birthday":   m.StudentBirthday,
			"student_grade_id":   m.StudentGradeID,
			"student_class_id":   m.StudentClassID,
		})
	if res.Error != nil {
		return mapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return mapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

/* ================= LESSONS ================= */

func (s *GormStore) CreateLesson(ctx context.Context, m *model.LessonModel) error {
	return mapWriteErr(s.DB.WithContext(ctx).Create(m).Error)
}

func (s *GormStore) UpdateLesson(ctx context.Context, m *model.LessonModel) error {
	res := s.DB.WithContext(ctx).Model(&model.LessonModel{}).
		Where("lesson_id = ?", m.LessonID).
		Updates(map[string]any{
			"lesson_name":       m.LessonName,
			"lesson_day":        m.LessonDay,
			"lesson_start_time": m.LessonStartTime,
			"lesson_end_time":   m.LessonEndTime,
			"lesson_subject_id": m.LessonSubjectID,
			"lesson_class_id":   m.LessonClassID,
			"lesson_teacher_id": m.LessonTeacherID,
		})
	if res.Error != nil {
		return mapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteLesson(ctx context.Context, id int) error {
	res := s.DB.WithContext(ctx).Delete(&model.LessonModel{}, "lesson_id = ?", id)
	if res.Error != nil {
		return mapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *GormStore) FindLesson(ctx context.Context, id int) (*model.LessonModel, error) {
	var m model.LessonModel
	if err := s.DB.WithContext(ctx).First(&m, "lesson_id = ?", id).Error; err != nil {
		return nil, mapWriteErr(err)
	}
	return &m, nil
}

/* ================= EXAMS ================= */

func (s *GormStore) CreateExam(ctx context.Context, m *model.ExamModel) error {
	return mapWriteErr(s.DB.WithContext(ctx).Create(m).Error)
}

func (s *GormStore) UpdateExam(ctx context.Context, m *model.ExamModel) error {
	res := s.DB.WithContext(ctx).Model(&model.ExamModel{}).
		Where("exam_id = ?", m.ExamID).
		Updates(map[string]any{
			"exam_title":      m.ExamTitle,
			"exam_start_time": m.ExamStartTime,
			"exam_end_time":   m.ExamEndTime,
			"exam_lesson_id":  m.ExamLessonID,
		})
	if res.Error != nil {
		return mapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteExam(ctx context.Context, id int) error {
	res := s.DB.WithContext(ctx).Delete(&model.ExamModel{}, "exam_id = ?", id)
	if res.Error != nil {
		return mapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *GormStore) FindExam(ctx context.Context, id int) (*model.ExamModel, error) {
	var m model.ExamModel
	if err := s.DB.WithContext(ctx).First(&m, "exam_id = ?", id).Error; err != nil {
		return nil, mapWriteErr(err)
	}
	return &m, nil
}

func (s *GormStore) CountExamDependents(ctx context.Context, id int) (model.ExamDependents, error) {
	var deps model.ExamDependents
	db := s.DB.WithContext(ctx)

	var exists int64
	if err := db.Model(&model.ExamModel{}).
		Where("exam_id = ?", id).Count(&exists).Error; err != nil {
		return deps, err
	}
	if exists == 0 {
		return deps, service.ErrNotFound
	}
	if err := db.Model(&model.ResultModel{}).
		Where("result_exam_id = ?", id).Count(&deps.Results).Error; err != nil {
		return deps, err
	}
	return deps, nil
}

/* ================= ASSIGNMENTS ================= */

func (s *GormStore) CreateAssignment(ctx context.Context, m *model.AssignmentModel) error {
	return mapWriteErr(s.DB.WithContext(ctx).Create(m).Error)
}

func (s *GormStore) UpdateAssignment(ctx context.Context, m *model.AssignmentModel) error {
	res := s.DB.WithContext(ctx).Model(&model.AssignmentModel{}).
		Where("assignment_id = ?", m.AssignmentID).
		Updates(map[string]any{
			"assignment_title":      m.AssignmentTitle,
			"assignment_start_date": m.AssignmentStartDate,
			"assignment_due_date":   m.AssignmentDueDate,
			"assignment_lesson_id":  m.AssignmentLessonID,
		})
	if res.Error != nil {
		return mapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteAssignment(ctx context.Context, id int) error {
	res := s.DB.WithContext(ctx).Delete(&model.AssignmentModel{}, "assignment_id = ?", id)
	if res.Error != nil {
		return mapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *GormStore) FindAssignment(ctx context.Context, id int) (*model.AssignmentModel, error) {
	var m model.AssignmentModel
	if err := s.DB.WithContext(ctx).First(&m, "assignment_id = ?", id).Error; err != nil {
		return nil, mapWriteErr(err)
	}
	return &m, nil
}
