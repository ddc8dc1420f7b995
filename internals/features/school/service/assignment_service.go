// file: internals/features/school/service/assignment_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strconv"

	"schoolku_backend/internals/features/school/dto"
)

// CreateAssignment provisions an assignment on a lesson the caller
// controls.
func (s *SchoolService) CreateAssignment(ctx context.Context, caller Caller, _ Result, req *dto.AssignmentRequest) Result {
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if !s.ownsLesson(ctx, caller, req.AssignmentLessonID) {
		return fail()
	}

	m := req.ToModel()
	if err := s.Store.CreateAssignment(ctx, m); err != nil {
		log.Printf("[ERROR] create assignment: %v", err)
		return fail()
	}

	s.revalidateList("assignments")
	return ok()
}

// UpdateAssignment replaces the assignment fields. Like exams, a teacher
// must control the lesson on both sides of the change.
func (s *SchoolService) UpdateAssignment(ctx context.Context, caller Caller, _ Result, req *dto.AssignmentRequest) Result {
	if req.AssignmentID == nil {
		return fail()
	}
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if !s.ownsLesson(ctx, caller, req.AssignmentLessonID) {
		return fail()
	}
	if !caller.IsAdmin() {
		cur, err := s.Store.FindAssignment(ctx, *req.AssignmentID)
		if err != nil {
			return fail()
		}
		if !s.ownsLesson(ctx, caller, cur.AssignmentLessonID) {
			return fail()
		}
	}

	m := req.ToModel()
	m.AssignmentID = *req.AssignmentID
	if err := s.Store.UpdateAssignment(ctx, m); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] update assignment %d: %v", m.AssignmentID, err)
		return fail()
	}

	s.revalidateList("assignments")
	return ok()
}

// DeleteAssignment removes an assignment. Assignments are never
// delete-blocked.
func (s *SchoolService) DeleteAssignment(ctx context.Context, caller Caller, _ Result, form map[string]string) Result {
	id, err := strconv.Atoi(form["id"])
	if err != nil {
		return fail()
	}

	cur, err := s.Store.FindAssignment(ctx, id)
	if err != nil {
		return fail()
	}
	if !s.ownsLesson(ctx, caller, cur.AssignmentLessonID) {
		return fail()
	}

	if err := s.Store.DeleteAssignment(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] delete assignment %d: %v", id, err)
		return fail()
	}

	s.revalidateList("assignments")
	return ok()
}
