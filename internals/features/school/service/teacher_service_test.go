// file: internals/features/school/service/teacher_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"schoolku_backend/internals/features/school/dto"
)

func validTeacherReq(username string) *dto.TeacherRequest {
	return &dto.TeacherRequest{
		TeacherUsername:  username,
		TeacherPassword:  "supersecret",
		TeacherName:      "Ada",
		TeacherSurname:   "Lovelace",
		TeacherAddress:   "12 Analytical St",
		TeacherBloodType: "A+",
		TeacherSex:       "FEMALE",
		TeacherBirthday:  time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateTeacher(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions account then row under the same id", func(t *testing.T) {
		f := newFixture()
		sub := f.seedSubject("Mathematics")

		req := validTeacherReq("ada.lovelace")
		req.TeacherSubjectIDs = []int{sub.SubjectID}

		res := f.svc.CreateTeacher(ctx, adminCaller(), Result{}, req)
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
		if len(f.idp.created) != 1 {
			t.Fatalf("expected 1 account, got %d", len(f.idp.created))
		}
		accountID := f.idp.created[0]
		row, found := f.store.teachers[accountID]
		if !found {
			t.Fatalf("teacher row missing for account %s", accountID)
		}
		if row.TeacherID != accountID {
			t.Fatalf("row id %s must match account id %s", row.TeacherID, accountID)
		}
		members := f.store.subjectTeachers[sub.SubjectID]
		if len(members) != 1 || members[0] != accountID {
			t.Fatalf("expected subject membership for %s, got %v", accountID, members)
		}
		if !f.stamped("/list/teachers") {
			t.Fatal("expected /list/teachers to be revalidated")
		}
	})

	t.Run("missing password fails before the identity call", func(t *testing.T) {
		f := newFixture()
		req := validTeacherReq("no.password")
		req.TeacherPassword = ""

		res := f.svc.CreateTeacher(ctx, adminCaller(), Result{}, req)
		if !res.Error {
			t.Fatalf("expected error, got %+v", res)
		}
		if len(f.idp.created) != 0 {
			t.Fatal("identity provider must not be called without a password")
		}
	})

	t.Run("taken username yields message", func(t *testing.T) {
		f := newFixture()
		first := validTeacherReq("same.name")
		if res := f.svc.CreateTeacher(ctx, adminCaller(), Result{}, first); !res.Success {
			t.Fatalf("seed create failed: %+v", res)
		}

		res := f.svc.CreateTeacher(ctx, adminCaller(), Result{}, validTeacherReq("same.name"))
		if res.Message != "That username is already taken." {
			t.Fatalf("unexpected message %q", res.Message)
		}
	})

	t.Run("row failure cleans up the orphaned account", func(t *testing.T) {
		f := newFixture()
		f.store.createTeacherErr = errors.New("disk on fire")

		res := f.svc.CreateTeacher(ctx, adminCaller(), Result{}, validTeacherReq("orphan.check"))
		if !res.Error {
			t.Fatalf("expected error, got %+v", res)
		}
		if len(f.idp.accounts) != 0 {
			t.Fatalf("orphaned account should be cleaned up, %d left", len(f.idp.accounts))
		}
	})

	t.Run("teacher role cannot create teachers", func(t *testing.T) {
		f := newFixture()
		other := f.seedTeacher("t.existing")

		res := f.svc.CreateTeacher(ctx, teacherCaller(other.TeacherID), Result{}, validTeacherReq("new.hire"))
		if !res.Error {
			t.Fatalf("expected error, got %+v", res)
		}
		if len(f.idp.created) != 0 {
			t.Fatal("identity provider must not be called for a denied caller")
		}
	})
}

func TestUpdateTeacher(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id fails first", func(t *testing.T) {
		f := newFixture()
		res := f.svc.UpdateTeacher(ctx, adminCaller(), Result{}, validTeacherReq("whoever"))
		if !res.Error {
			t.Fatalf("expected error, got %+v", res)
		}
	})

	t.Run("empty password keeps the credential", func(t *testing.T) {
		f := newFixture()
		create := validTeacherReq("keep.pass")
		if res := f.svc.CreateTeacher(ctx, adminCaller(), Result{}, create); !res.Success {
			t.Fatalf("seed create failed: %+v", res)
		}
		id := f.idp.created[0]

		update := validTeacherReq("keep.pass")
		update.TeacherID = &id
		update.TeacherPassword = ""
		update.TeacherName = "Renamed"

		res := f.svc.UpdateTeacher(ctx, adminCaller(), Result{}, update)
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
		acc := f.idp.accounts[id]
		if acc.Password != "supersecret" {
			t.Fatalf("password should be unchanged, got %q", acc.Password)
		}
		if acc.FirstName != "Renamed" {
			t.Fatalf("first name not pushed, got %q", acc.FirstName)
		}
		if !f.stamped("/list/teachers/" + id.String()) {
			t.Fatal("expected the detail view to be revalidated")
		}
	})
}

func TestDeleteTeacher(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked while referenced", func(t *testing.T) {
		f := newFixture()
		teacher := f.seedTeacher("t.busy")
		cls := f.seedClass("6A", 30, &teacher.TeacherID)
		sub := f.seedSubject("Physics", teacher.TeacherID)
		f.seedLesson(sub.SubjectID, cls.ClassID, teacher.TeacherID)

		res := f.svc.DeleteTeacher(ctx, adminCaller(), Result{}, map[string]string{
			"id": teacher.TeacherID.String(),
		})
		want := "Cannot delete this teacher: it is still referenced by 1 subject(s), 1 lesson(s), 1 supervised class(es)."
		if res.Message != want {
			t.Fatalf("message mismatch:\n got %q\nwant %q", res.Message, want)
		}
	})

	t.Run("missing identity account does not block the delete", func(t *testing.T) {
		f := newFixture()
		teacher := f.seedTeacher("t.ghost")

		res := f.svc.DeleteTeacher(ctx, adminCaller(), Result{}, map[string]string{
			"id": teacher.TeacherID.String(),
		})
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
		if _, found := f.store.teachers[teacher.TeacherID]; found {
			t.Fatal("teacher row should be gone")
		}
	})

	t.Run("account and row both removed", func(t *testing.T) {
		f := newFixture()
		if res := f.svc.CreateTeacher(ctx, adminCaller(), Result{}, validTeacherReq("t.full")); !res.Success {
			t.Fatalf("seed create failed: %+v", res)
		}
		id := f.idp.created[0]

		res := f.svc.DeleteTeacher(ctx, adminCaller(), Result{}, map[string]string{"id": id.String()})
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
		if len(f.idp.accounts) != 0 {
			t.Fatal("identity account should be gone")
		}
	})

	t.Run("malformed id fails", func(t *testing.T) {
		f := newFixture()
		res := f.svc.DeleteTeacher(ctx, adminCaller(), Result{}, map[string]string{"id": "42"})
		if !res.Error {
			t.Fatalf("expected error, got %+v", res)
		}
	})
}
