// file: internals/features/school/service/authz.go
package service

import (
	"context"
	"log"

	"schoolku_backend/internals/features/school/dto"
)

// Authorization is fail-closed: unknown roles are denied, and any lookup
// needed to prove ownership that errors or misses denies the mutation.

// canManageRecords gates the admin-only entities (subject, class, teacher,
// student).
func canManageRecords(caller Caller) bool {
	return caller.IsAdmin()
}

// canWriteLesson decides whether the caller may create or update a lesson
// with the given payload. Admins always may. A teacher must be the payload
// teacher, must be assigned to the subject, and must either supervise the
// class or already teach at least one lesson in it. On update the teacher
// must additionally own the existing lesson.
func (s *SchoolService) canWriteLesson(ctx context.Context, caller Caller, req *dto.LessonRequest, existingID *int) bool {
	if caller.IsAdmin() {
		return true
	}
	if !caller.IsTeacher() {
		return false
	}

	if req.LessonTeacherID != caller.ID {
		return false
	}

	assigned, err := s.Store.SubjectHasTeacher(ctx, req.LessonSubjectID, caller.ID)
	if err != nil {
		log.Printf("[WARN] lesson authz: subject lookup failed: %v", err)
		return false
	}
	if !assigned {
		return false
	}

	cls, err := s.Store.FindClass(ctx, req.LessonClassID)
	if err != nil {
		log.Printf("[WARN] lesson authz: class lookup failed: %v", err)
		return false
	}
	supervised := cls.ClassSupervisorID != nil && *cls.ClassSupervisorID == caller.ID
	if !supervised {
		teaches, err := s.Store.TeacherHasLessonInClass(ctx, caller.ID, req.LessonClassID)
		if err != nil {
			log.Printf("[WARN] lesson authz: lesson lookup failed: %v", err)
			return false
		}
		if !teaches {
			return false
		}
	}

	if existingID != nil {
		cur, err := s.Store.FindLesson(ctx, *existingID)
		if err != nil {
			log.Printf("[WARN] lesson authz: existing lesson lookup failed: %v", err)
			return false
		}
		if cur.LessonTeacherID != caller.ID {
			return false
		}
	}
	return true
}

// ownsLesson decides whether the caller controls the lesson behind an
// exam, an assignment, or a lesson delete.
func (s *SchoolService) ownsLesson(ctx context.Context, caller Caller, lessonID int) bool {
	if caller.IsAdmin() {
		return true
	}
	if !caller.IsTeacher() {
		return false
	}
	lesson, err := s.Store.FindLesson(ctx, lessonID)
	if err != nil {
		log.Printf("[WARN] lesson ownership: lookup failed: %v", err)
		return false
	}
	return lesson.LessonTeacherID == caller.ID
}
