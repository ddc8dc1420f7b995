// file: internals/features/school/service/harness_test.go
package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/model"
	"schoolku_backend/internals/identity"
	"schoolku_backend/internals/revalidate"
)

// memStore is the in-memory Store used by the handler tests.
type memStore struct {
	mu sync.Mutex

	seq int

	subjects        map[int]*model.SubjectModel
	subjectTeachers map[int][]uuid.UUID
	classes         map[int]*model.ClassModel
	teachers        map[uuid.UUID]*model.TeacherModel
	students        map[uuid.UUID]*model.StudentModel
	lessons         map[int]*model.LessonModel
	exams           map[int]*model.ExamModel
	assignments     map[int]*model.AssignmentModel

	results       []model.ResultModel
	events        []model.EventModel
	announcements []model.AnnouncementModel

	createTeacherErr error
	createStudentErr error
}

func newMemStore() *memStore {
	return &memStore{
		subjects:        map[int]*model.SubjectModel{},
		subjectTeachers: map[int][]uuid.UUID{},
		classes:         map[int]*model.ClassModel{},
		teachers:        map[uuid.UUID]*model.TeacherModel{},
		students:        map[uuid.UUID]*model.StudentModel{},
		lessons:         map[int]*model.LessonModel{},
		exams:           map[int]*model.ExamModel{},
		assignments:     map[int]*model.AssignmentModel{},
	}
}

func (m *memStore) nextID() int {
	m.seq++
	return m.seq
}

/* ----- subjects ----- */

func (m *memStore) CreateSubject(_ context.Context, s *model.SubjectModel, teacherIDs []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.subjects {
		if strings.EqualFold(existing.SubjectName, s.SubjectName) {
			return ErrDuplicate
		}
	}
	s.SubjectID = m.nextID()
	m.subjects[s.SubjectID] = s
	m.subjectTeachers[s.SubjectID] = append([]uuid.UUID(nil), teacherIDs...)
	return nil
}

func (m *memStore) UpdateSubject(_ context.Context, s *model.SubjectModel, teacherIDs []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.subjects[s.SubjectID]; !found {
		return ErrNotFound
	}
	for id, existing := range m.subjects {
		if id != s.SubjectID && strings.EqualFold(existing.SubjectName, s.SubjectName) {
			return ErrDuplicate
		}
	}
	m.subjects[s.SubjectID] = s
	m.subjectTeachers[s.SubjectID] = append([]uuid.UUID(nil), teacherIDs...)
	return nil
}

func (m *memStore) DeleteSubject(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.subjects[id]; !found {
		return ErrNotFound
	}
	delete(m.subjects, id)
	delete(m.subjectTeachers, id)
	return nil
}

func (m *memStore) CountSubjectDependents(_ context.Context, id int) (model.SubjectDependents, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.subjects[id]; !found {
		return model.SubjectDependents{}, ErrNotFound
	}
	deps := model.SubjectDependents{Teachers: int64(len(m.subjectTeachers[id]))}
	for _, l := range m.lessons {
		if l.LessonSubjectID == id {
			deps.Lessons++
		}
	}
	return deps, nil
}

func (m *memStore) SubjectHasTeacher(_ context.Context, subjectID int, teacherID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.subjectTeachers[subjectID] {
		if id == teacherID {
			return true, nil
		}
	}
	return false, nil
}

/* ----- classes ----- */

func (m *memStore) CreateClass(_ context.Context, c *model.ClassModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.classes {
		if strings.EqualFold(existing.ClassName, c.ClassName) {
			return ErrDuplicate
		}
	}
	c.ClassID = m.nextID()
	m.classes[c.ClassID] = c
	return nil
}

func (m *memStore) UpdateClass(_ context.Context, c *model.ClassModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.classes[c.ClassID]; !found {
		return ErrNotFound
	}
	for id, existing := range m.classes {
		if id != c.ClassID && strings.EqualFold(existing.ClassName, c.ClassName) {
			return ErrDuplicate
		}
	}
	m.classes[c.ClassID] = c
	return nil
}

func (m *memStore) DeleteClass(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.classes[id]; !found {
		return ErrNotFound
	}
	delete(m.classes, id)
	return nil
}

func (m *memStore) CountClassDependents(_ context.Context, id int) (model.ClassDependents, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.classes[id]; !found {
		return model.ClassDependents{}, ErrNotFound
	}
	var deps model.ClassDependents
	for _, s := range m.students {
		if s.StudentClassID == id {
			deps.Students++
		}
	}
	for _, l := range m.lessons {
		if l.LessonClassID == id {
			deps.Lessons++
		}
	}
	for _, e := range m.events {
		if e.EventClassID != nil && *e.EventClassID == id {
			deps.Events++
		}
	}
	for _, a := range m.announcements {
		if a.AnnouncementClassID != nil && *a.AnnouncementClassID == id {
			deps.Announcements++
		}
	}
	return deps, nil
}

func (m *memStore) FindClass(_ context.Context, id int) (*model.ClassModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, found := m.classes[id]
	if !found {
		return nil, ErrNotFound
	}
	return c, nil
}

func (m *memStore) FindClassWithStudentCount(_ context.Context, id int) (*model.ClassModel, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, found := m.classes[id]
	if !found {
		return nil, 0, ErrNotFound
	}
	var n int64
	for _, s := range m.students {
		if s.StudentClassID == id {
			n++
		}
	}
	return c, n, nil
}

/* ----- teachers ----- */

func (m *memStore) CreateTeacher(_ context.Context, t *model.TeacherModel, subjectIDs []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createTeacherErr != nil {
		return m.createTeacherErr
	}
	for _, existing := range m.teachers {
		if existing.TeacherUsername == t.TeacherUsername {
			return ErrDuplicate
		}
	}
	m.teachers[t.TeacherID] = t
	m.replaceTeacherSubjects(t.TeacherID, subjectIDs)
	return nil
}

func (m *memStore) UpdateTeacher(_ context.Context, t *model.TeacherModel, subjectIDs []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.teachers[t.TeacherID]; !found {
		return ErrNotFound
	}
	for id, existing := range m.teachers {
		if id != t.TeacherID && existing.TeacherUsername == t.TeacherUsername {
			return ErrDuplicate
		}
	}
	m.teachers[t.TeacherID] = t
	m.replaceTeacherSubjects(t.TeacherID, subjectIDs)
	return nil
}

func (m *memStore) replaceTeacherSubjects(teacherID uuid.UUID, subjectIDs []int) {
	for sid, members := range m.subjectTeachers {
		kept := members[:0]
		for _, id := range members {
			if id != teacherID {
				kept = append(kept, id)
			}
		}
		m.subjectTeachers[sid] = kept
	}
	for _, sid := range subjectIDs {
		m.subjectTeachers[sid] = append(m.subjectTeachers[sid], teacherID)
	}
}

func (m *memStore) DeleteTeacher(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.teachers[id]; !found {
		return ErrNotFound
	}
	delete(m.teachers, id)
	return nil
}

func (m *memStore) CountTeacherDependents(_ context.Context, id uuid.UUID) (model.TeacherDependents, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.teachers[id]; !found {
		return model.TeacherDependents{}, ErrNotFound
	}
	var deps model.TeacherDependents
	for _, members := range m.subjectTeachers {
		for _, tid := range members {
			if tid == id {
				deps.Subjects++
			}
		}
	}
	for _, l := range m.lessons {
		if l.LessonTeacherID == id {
			deps.Lessons++
		}
	}
	for _, c := range m.classes {
		if c.ClassSupervisorID != nil && *c.ClassSupervisorID == id {
			deps.Classes++
		}
	}
	return deps, nil
}

func (m *memStore) TeacherHasLessonInClass(_ context.Context, teacherID uuid.UUID, classID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.lessons {
		if l.LessonTeacherID == teacherID && l.LessonClassID == classID {
			return true, nil
		}
	}
	return false, nil
}

/* ----- students ----- */

func (m *memStore) CreateStudent(_ context.Context, s *model.StudentModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createStudentErr != nil {
		return m.createStudentErr
	}
	cls, found := m.classes[s.StudentClassID]
	if !found {
		return ErrNotFound
	}
	var enrolled int
	for _, existing := range m.students {
		if existing.StudentClassID == s.StudentClassID {
			enrolled++
		}
		if existing.StudentUsername == s.StudentUsername {
			return ErrDuplicate
		}
	}
	if enrolled >= cls.ClassCapacity {
		return ErrClassFull
	}
	m.students[s.StudentID] = s
	return nil
}

func (m *memStore) UpdateStudent(_ context.Context, s *model.StudentModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.students[s.StudentID]; !found {
		return ErrNotFound
	}
	m.students[s.StudentID] = s
	return nil
}

func (m *memStore) DeleteStudent(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.students[id]; !found {
		return ErrNotFound
	}
	delete(m.students, id)
	return nil
}

/* ----- lessons ----- */

func (m *memStore) CreateLesson(_ context.Context, l *model.LessonModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.LessonID = m.nextID()
	m.lessons[l.LessonID] = l
	return nil
}

func (m *memStore) UpdateLesson(_ context.Context, l *model.LessonModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.lessons[l.LessonID]; !found {
		return ErrNotFound
	}
	m.lessons[l.LessonID] = l
	return nil
}

func (m *memStore) DeleteLesson(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.lessons[id]; !found {
		return ErrNotFound
	}
	delete(m.lessons, id)
	return nil
}

func (m *memStore) FindLesson(_ context.Context, id int) (*model.LessonModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, found := m.lessons[id]
	if !found {
		return nil, ErrNotFound
	}
	return l, nil
}

/* ----- exams ----- */

func (m *memStore) CreateExam(_ context.Context, e *model.ExamModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ExamID = m.nextID()
	m.exams[e.ExamID] = e
	return nil
}

func (m *memStore) UpdateExam(_ context.Context, e *model.ExamModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.exams[e.ExamID]; !found {
		return ErrNotFound
	}
	m.exams[e.ExamID] = e
	return nil
}

func (m *memStore) DeleteExam(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.exams[id]; !found {
		return ErrNotFound
	}
	delete(m.exams, id)
	return nil
}

func (m *memStore) FindExam(_ context.Context, id int) (*model.ExamModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, found := m.exams[id]
	if !found {
		return nil, ErrNotFound
	}
	return e, nil
}

func (m *memStore) CountExamDependents(_ context.Context, id int) (model.ExamDependents, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.exams[id]; !found {
		return model.ExamDependents{}, ErrNotFound
	}
	var deps model.ExamDependents
	for _, r := range m.results {
		if r.ResultExamID != nil && *r.ResultExamID == id {
			deps.Results++
		}
	}
	return deps, nil
}

/* ----- assignments ----- */

func (m *memStore) CreateAssignment(_ context.Context, a *model.AssignmentModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.AssignmentID = m.nextID()
	m.assignments[a.AssignmentID] = a
	return nil
}

func (m *memStore) UpdateAssignment(_ context.Context, a *model.AssignmentModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.assignments[a.AssignmentID]; !found {
		return ErrNotFound
	}
	m.assignments[a.AssignmentID] = a
	return nil
}

func (m *memStore) DeleteAssignment(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.assignments[id]; !found {
		return ErrNotFound
	}
	delete(m.assignments, id)
	return nil
}

func (m *memStore) FindAssignment(_ context.Context, id int) (*model.AssignmentModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, found := m.assignments[id]
	if !found {
		return nil, ErrNotFound
	}
	return a, nil
}

var _ Store = (*memStore)(nil)

/* ----- identity fake ----- */

type fakeIdentity struct {
	mu        sync.Mutex
	accounts  map[uuid.UUID]identity.CreateAccountInput
	createErr error
	updateErr error

	created []uuid.UUID
	deleted []uuid.UUID
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{accounts: map[uuid.UUID]identity.CreateAccountInput{}}
}

func (f *fakeIdentity) CreateAccount(_ context.Context, in identity.CreateAccountInput) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	for _, existing := range f.accounts {
		if existing.Username == in.Username {
			return uuid.Nil, identity.ErrUsernameTaken
		}
	}
	id := uuid.New()
	f.accounts[id] = in
	f.created = append(f.created, id)
	return id, nil
}

func (f *fakeIdentity) UpdateAccount(_ context.Context, id uuid.UUID, in identity.UpdateAccountInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	acc, found := f.accounts[id]
	if !found {
		return identity.ErrAccountNotFound
	}
	for other, existing := range f.accounts {
		if other != id && existing.Username == in.Username {
			return identity.ErrUsernameTaken
		}
	}
	acc.Username = in.Username
	acc.FirstName = in.FirstName
	acc.LastName = in.LastName
	if in.Password != "" {
		acc.Password = in.Password
	}
	f.accounts[id] = acc
	return nil
}

func (f *fakeIdentity) DeleteAccount(_ context.Context, id uuid.UUID) (identity.DeleteOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, found := f.accounts[id]; !found {
		return identity.OutcomeNotFound, nil
	}
	delete(f.accounts, id)
	f.deleted = append(f.deleted, id)
	return identity.OutcomeDeleted, nil
}

var _ identity.Provider = (*fakeIdentity)(nil)

/* ----- fixture ----- */

type fixture struct {
	svc   *SchoolService
	store *memStore
	idp   *fakeIdentity
	reval *revalidate.Registry
}

func newFixture() *fixture {
	store := newMemStore()
	idp := newFakeIdentity()
	reval := revalidate.NewRegistry()
	return &fixture{
		svc:   NewSchoolService(store, idp, reval),
		store: store,
		idp:   idp,
		reval: reval,
	}
}

func (f *fixture) stamped(path string) bool {
	return !f.reval.Stamp(path).IsZero()
}

func adminCaller() Caller {
	return Caller{ID: uuid.New(), Role: constants.RoleAdmin}
}

func teacherCaller(id uuid.UUID) Caller {
	return Caller{ID: id, Role: constants.RoleTeacher}
}

func studentCaller() Caller {
	return Caller{ID: uuid.New(), Role: constants.RoleStudent}
}

/* ----- seed helpers ----- */

func (f *fixture) seedTeacher(username string) *model.TeacherModel {
	t := &model.TeacherModel{
		TeacherID:       uuid.New(),
		TeacherUsername: username,
		TeacherName:     "Test",
		TeacherSurname:  "Teacher",
	}
	f.store.teachers[t.TeacherID] = t
	return t
}

func (f *fixture) seedClass(name string, capacity int, supervisor *uuid.UUID) *model.ClassModel {
	c := &model.ClassModel{
		ClassID:           f.store.nextID(),
		ClassName:         name,
		ClassCapacity:     capacity,
		ClassGradeID:      1,
		ClassSupervisorID: supervisor,
	}
	f.store.classes[c.ClassID] = c
	return c
}

func (f *fixture) seedSubject(name string, teacherIDs ...uuid.UUID) *model.SubjectModel {
	s := &model.SubjectModel{
		SubjectID:   f.store.nextID(),
		SubjectName: name,
	}
	f.store.subjects[s.SubjectID] = s
	f.store.subjectTeachers[s.SubjectID] = append([]uuid.UUID(nil), teacherIDs...)
	return s
}

func (f *fixture) seedLesson(subjectID, classID int, teacherID uuid.UUID) *model.LessonModel {
	l := &model.LessonModel{
		LessonID:        f.store.nextID(),
		LessonName:      "Seeded lesson",
		LessonDay:       model.DayMonday,
		LessonSubjectID: subjectID,
		LessonClassID:   classID,
		LessonTeacherID: teacherID,
	}
	f.store.lessons[l.LessonID] = l
	return l
}

func (f *fixture) seedStudent(username string, classID int) *model.StudentModel {
	s := &model.StudentModel{
		StudentID:       uuid.New(),
		StudentUsername: username,
		StudentGradeID:  1,
		StudentClassID:  classID,
	}
	f.store.students[s.StudentID] = s
	return s
}

func (f *fixture) seedExam(lessonID int) *model.ExamModel {
	e := &model.ExamModel{
		ExamID:       f.store.nextID(),
		ExamTitle:    "Seeded exam",
		ExamLessonID: lessonID,
	}
	f.store.exams[e.ExamID] = e
	return e
}

func (f *fixture) seedAssignment(lessonID int) *model.AssignmentModel {
	a := &model.AssignmentModel{
		AssignmentID:       f.store.nextID(),
		AssignmentTitle:    "Seeded assignment",
		AssignmentLessonID: lessonID,
	}
	f.store.assignments[a.AssignmentID] = a
	return a
}
