// file: internals/features/school/service/lesson_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strconv"

	"schoolku_backend/internals/features/school/dto"
)

// CreateLesson provisions a lesson. Teachers may only schedule themselves,
// on a subject they are assigned to, in a class they supervise or already
// teach in.
func (s *SchoolService) CreateLesson(ctx context.Context, caller Caller, _ Result, req *dto.LessonRequest) Result {
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if !s.canWriteLesson(ctx, caller, req, nil) {
		return fail()
	}

	m := req.ToModel()
	if err := s.Store.CreateLesson(ctx, m); err != nil {
		log.Printf("[ERROR] create lesson: %v", err)
		return fail()
	}

	s.revalidateList("lessons")
	return ok()
}

// UpdateLesson replaces the lesson fields. The ownership rules apply to
// both the incoming payload and the stored lesson.
func (s *SchoolService) UpdateLesson(ctx context.Context, caller Caller, _ Result, req *dto.LessonRequest) Result {
	if req.LessonID == nil {
		return fail()
	}
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if !s.canWriteLesson(ctx, caller, req, req.LessonID) {
		return fail()
	}

	m := req.ToModel()
	m.LessonID = *req.LessonID
	if err := s.Store.UpdateLesson(ctx, m); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] update lesson %d: %v", m.LessonID, err)
		return fail()
	}

	s.revalidateList("lessons")
	return ok()
}

// DeleteLesson removes a lesson. Lessons are never delete-blocked; their
// exams, assignments and attendance go with them at the database level.
func (s *SchoolService) DeleteLesson(ctx context.Context, caller Caller, _ Result, form map[string]string) Result {
	id, err := strconv.Atoi(form["id"])
	if err != nil {
		return fail()
	}
	if !s.ownsLesson(ctx, caller, id) {
		return fail()
	}

	if err := s.Store.DeleteLesson(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] delete lesson %d: %v", id, err)
		return fail()
	}

	s.revalidateList("lessons")
	return ok()
}
