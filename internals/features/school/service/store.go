// file: internals/features/school/service/store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/model"
)

var (
	// ErrNotFound means the targeted record does not exist.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicate means a unique column (subject name, class name,
	// username) collided with an existing row.
	ErrDuplicate = errors.New("store: duplicate value")
	// ErrClassFull means the class enrollment already reached capacity.
	// The store re-checks under a row lock so concurrent enrollments
	// cannot race past the limit.
	ErrClassFull = errors.New("store: class is full")
)

// Store is the persistence contract of the mutation core. The production
// implementation lives in the storage package on top of GORM; tests swap
// in an in-memory fake.
type Store interface {
	// Subjects. Teacher id sets are replaced, never merged.
	CreateSubject(ctx context.Context, m *model.SubjectModel, teacherIDs []uuid.UUID) error
	UpdateSubject(ctx context.Context, m *model.SubjectModel, teacherIDs []uuid.UUID) error
	DeleteSubject(ctx context.Context, id int) error
	CountSubjectDependents(ctx context.Context, id int) (model.SubjectDependents, error)
	SubjectHasTeacher(ctx context.Context, subjectID int, teacherID uuid.UUID) (bool, error)

	// Classes.
	CreateClass(ctx context.Context, m *model.ClassModel) error
	UpdateClass(ctx context.Context, m *model.ClassModel) error
	DeleteClass(ctx context.Context, id int) error
	CountClassDependents(ctx context.Context, id int) (model.ClassDependents, error)
	FindClass(ctx context.Context, id int) (*model.ClassModel, error)
	FindClassWithStudentCount(ctx context.Context, id int) (*model.ClassModel, int64, error)

	// Teachers. Subject id sets are replaced, never merged.
	CreateTeacher(ctx context.Context, m *model.TeacherModel, subjectIDs []int) error
	UpdateTeacher(ctx context.Context, m *model.TeacherModel, subjectIDs []int) error
	DeleteTeacher(ctx context.Context, id uuid.UUID) error
	CountTeacherDependents(ctx context.Context, id uuid.UUID) (model.TeacherDependents, error)
	TeacherHasLessonInClass(ctx context.Context, teacherID uuid.UUID, classID int) (bool, error)

	// Students. CreateStudent re-checks class capacity inside the insert
	// transaction and returns ErrClassFull when the seat is gone.
	CreateStudent(ctx context.Context, m *model.StudentModel) error
	UpdateStudent(ctx context.Context, m *model.StudentModel) error
	DeleteStudent(ctx context.Context, id uuid.UUID) error

	// Lessons.
	CreateLesson(ctx context.Context, m *model.LessonModel) error
	UpdateLesson(ctx context.Context, m *model.LessonModel) error
	DeleteLesson(ctx context.Context, id int) error
	FindLesson(ctx context.Context, id int) (*model.LessonModel, error)

	// Exams.
	CreateExam(ctx context.Context, m *model.ExamModel) error
	UpdateExam(ctx context.Context, m *model.ExamModel) error
	DeleteExam(ctx context.Context, id int) error
	FindExam(ctx context.Context, id int) (*model.ExamModel, error)
	CountExamDependents(ctx context.Context, id int) (model.ExamDependents, error)

	// Assignments.
	CreateAssignment(ctx context.Context, m *model.AssignmentModel) error
	UpdateAssignment(ctx context.Context, m *model.AssignmentModel) error
	DeleteAssignment(ctx context.Context, id int) error
	FindAssignment(ctx context.Context, id int) (*model.AssignmentModel, error)
}
