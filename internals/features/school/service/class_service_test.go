// file: internals/features/school/service/class_service_test.go
package service

import (
	"context"
	"strconv"
	"testing"

	"schoolku_backend/internals/features/school/dto"
)

func TestCreateClass(t *testing.T) {
	ctx := context.Background()

	t.Run("admin creates class", func(t *testing.T) {
		f := newFixture()
		sup := f.seedTeacher("t.sup")

		res := f.svc.CreateClass(ctx, adminCaller(), Result{}, &dto.ClassRequest{
			ClassName:         "1A",
			ClassCapacity:     25,
			ClassGradeID:      1,
			ClassSupervisorID: &sup.TeacherID,
		})
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
		if !f.stamped("/list/classes") {
			t.Fatal("expected /list/classes to be revalidated")
		}
	})

	t.Run("zero capacity fails validation", func(t *testing.T) {
		f := newFixture()
		res := f.svc.CreateClass(ctx, adminCaller(), Result{}, &dto.ClassRequest{
			ClassName:    "1B",
			ClassGradeID: 1,
		})
		if !res.Error {
			t.Fatalf("expected error, got %+v", res)
		}
	})

	t.Run("duplicate name yields message", func(t *testing.T) {
		f := newFixture()
		f.seedClass("2A", 30, nil)
		res := f.svc.CreateClass(ctx, adminCaller(), Result{}, &dto.ClassRequest{
			ClassName:     "2A",
			ClassCapacity: 30,
			ClassGradeID:  2,
		})
		if res.Message != "A class with that name already exists." {
			t.Fatalf("unexpected message %q", res.Message)
		}
	})

	t.Run("student role is denied", func(t *testing.T) {
		f := newFixture()
		res := f.svc.CreateClass(ctx, studentCaller(), Result{}, &dto.ClassRequest{
			ClassName:     "3A",
			ClassCapacity: 30,
			ClassGradeID:  3,
		})
		if !res.Error {
			t.Fatalf("expected error, got %+v", res)
		}
	})
}

func TestDeleteClass(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked by students and school records", func(t *testing.T) {
		f := newFixture()
		teacher := f.seedTeacher("t.c")
		cls := f.seedClass("4A", 30, nil)
		sub := f.seedSubject("Biology")
		f.seedStudent("s.one", cls.ClassID)
		f.seedLesson(sub.SubjectID, cls.ClassID, teacher.TeacherID)

		res := f.svc.DeleteClass(ctx, adminCaller(), Result{}, map[string]string{
			"id": strconv.Itoa(cls.ClassID),
		})
		want := "Cannot delete this class: it is still referenced by 1 student(s), 1 lesson(s)."
		if res.Message != want {
			t.Fatalf("message mismatch:\n got %q\nwant %q", res.Message, want)
		}
	})

	t.Run("empty class is deleted", func(t *testing.T) {
		f := newFixture()
		cls := f.seedClass("5A", 30, nil)
		res := f.svc.DeleteClass(ctx, adminCaller(), Result{}, map[string]string{
			"id": strconv.Itoa(cls.ClassID),
		})
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
	})
}
