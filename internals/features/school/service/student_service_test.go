// file: internals/features/school/service/student_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"schoolku_backend/internals/features/school/dto"
)

func validStudentReq(username string, classID int) *dto.StudentRequest {
	return &dto.StudentRequest{
		StudentUsername:  username,
		StudentPassword:  "supersecret",
		StudentName:      "Sam",
		StudentSurname:   "Learner",
		StudentAddress:   "7 Chalk Rd",
		StudentBloodType: "O-",
		StudentSex:       "MALE",
		StudentBirthday:  time.Date(2012, 9, 1, 0, 0, 0, 0, time.UTC),
		StudentGradeID:   1,
		StudentClassID:   classID,
	}
}

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("enrolls into a class with free seats", func(t *testing.T) {
		f := newFixture()
		cls := f.seedClass("1A", 2, nil)

		res := f.svc.CreateStudent(ctx, adminCaller(), Result{}, validStudentReq("s.new", cls.ClassID))
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
		id := f.idp.created[0]
		if _, found := f.store.students[id]; !found {
			t.Fatalf("student row missing for account %s", id)
		}
		if !f.stamped("/list/students") {
			t.Fatal("expected /list/students to be revalidated")
		}
	})

	t.Run("full class fails before the identity call", func(t *testing.T) {
		f := newFixture()
		cls := f.seedClass("1B", 1, nil)
		f.seedStudent("s.seated", cls.ClassID)

		res := f.svc.CreateStudent(ctx, adminCaller(), Result{}, validStudentReq("s.late", cls.ClassID))
		if res.Message != "The selected class is already full." {
			t.Fatalf("unexpected message %q", res.Message)
		}
		if len(f.idp.created) != 0 {
			t.Fatal("identity provider must not be called for a full class")
		}
	})

	t.Run("losing the last seat cleans up the account", func(t *testing.T) {
		f := newFixture()
		cls := f.seedClass("1C", 1, nil)
		f.store.createStudentErr = ErrClassFull

		res := f.svc.CreateStudent(ctx, adminCaller(), Result{}, validStudentReq("s.raced", cls.ClassID))
		if res.Message != "The selected class is already full." {
			t.Fatalf("unexpected message %q", res.Message)
		}
		if len(f.idp.accounts) != 0 {
			t.Fatalf("orphaned account should be cleaned up, %d left", len(f.idp.accounts))
		}
	})

	t.Run("unknown class fails closed", func(t *testing.T) {
		f := newFixture()
		res := f.svc.CreateStudent(ctx, adminCaller(), Result{}, validStudentReq("s.lost", 404))
		if !res.Error || res.Message != "" {
			t.Fatalf("expected bare error, got %+v", res)
		}
	})

	t.Run("teacher role is denied", func(t *testing.T) {
		f := newFixture()
		teacher := f.seedTeacher("t.nope")
		cls := f.seedClass("1D", 10, nil)

		res := f.svc.CreateStudent(ctx, teacherCaller(teacher.TeacherID), Result{}, validStudentReq("s.x", cls.ClassID))
		if !res.Error {
			t.Fatalf("expected error, got %+v", res)
		}
	})
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the student and refreshes both views", func(t *testing.T) {
		f := newFixture()
		clsA := f.seedClass("2A", 10, nil)
		clsB := f.seedClass("2B", 10, nil)
		if res := f.svc.CreateStudent(ctx, adminCaller(), Result{}, validStudentReq("s.move", clsA.ClassID)); !res.Success {
			t.Fatalf("seed create failed: %+v", res)
		}
		id := f.idp.created[0]

		req := validStudentReq("s.move", clsB.ClassID)
		req.StudentID = &id
		req.StudentPassword = ""

		res := f.svc.UpdateStudent(ctx, adminCaller(), Result{}, req)
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
		if f.store.students[id].StudentClassID != clsB.ClassID {
			t.Fatal("class change not persisted")
		}
		if !f.stamped("/list/students/" + id.String()) {
			t.Fatal("expected the detail view to be revalidated")
		}
	})

	t.Run("missing id fails first", func(t *testing.T) {
		f := newFixture()
		res := f.svc.UpdateStudent(ctx, adminCaller(), Result{}, validStudentReq("s.noid", 1))
		if !res.Error {
			t.Fatalf("expected error, got %+v", res)
		}
	})
}

func TestDeleteStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("removes row and account", func(t *testing.T) {
		f := newFixture()
		cls := f.seedClass("3A", 10, nil)
		if res := f.svc.CreateStudent(ctx, adminCaller(), Result{}, validStudentReq("s.gone", cls.ClassID)); !res.Success {
			t.Fatalf("seed create failed: %+v", res)
		}
		id := f.idp.created[0]

		res := f.svc.DeleteStudent(ctx, adminCaller(), Result{}, map[string]string{"id": id.String()})
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
		if len(f.store.students) != 0 || len(f.idp.accounts) != 0 {
			t.Fatal("row and account should both be gone")
		}
	})

	t.Run("student role is denied", func(t *testing.T) {
		f := newFixture()
		cls := f.seedClass("3B", 10, nil)
		victim := f.seedStudent("s.victim", cls.ClassID)

		res := f.svc.DeleteStudent(ctx, studentCaller(), Result{}, map[string]string{"id": victim.StudentID.String()})
		if !res.Error {
			t.Fatalf("expected error, got %+v", res)
		}
		if _, found := f.store.students[victim.StudentID]; !found {
			t.Fatal("student must survive a denied delete")
		}
	})
}
