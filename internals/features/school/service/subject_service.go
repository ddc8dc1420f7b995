// file: internals/features/school/service/subject_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strconv"

	"schoolku_backend/internals/features/school/dto"
)

// CreateSubject provisions a new subject with its teacher set. The prev
// argument is the previous form state and is intentionally ignored.
func (s *SchoolService) CreateSubject(ctx context.Context, caller Caller, _ Result, req *dto.SubjectRequest) Result {
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if !canManageRecords(caller) {
		return fail()
	}

	m := req.ToModel()
	if err := s.Store.CreateSubject(ctx, m, req.SubjectTeacherIDs); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return failMsg("A subject with that name already exists.")
		}
		log.Printf("[ERROR] create subject: %v", err)
		return fail()
	}

	s.revalidateList("subjects")
	return ok()
}

// UpdateSubject replaces the subject name and teacher set.
func (s *SchoolService) UpdateSubject(ctx context.Context, caller Caller, _ Result, req *dto.SubjectRequest) Result {
	if req.SubjectID == nil {
		return fail()
	}
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if !canManageRecords(caller) {
		return fail()
	}

	m := req.ToModel()
	m.SubjectID = *req.SubjectID
	if err := s.Store.UpdateSubject(ctx, m, req.SubjectTeacherIDs); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return failMsg("A subject with that name already exists.")
		}
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] update subject %d: %v", m.SubjectID, err)
		return fail()
	}

	s.revalidateList("subjects")
	return ok()
}

// DeleteSubject removes a subject once nothing references it.
func (s *SchoolService) DeleteSubject(ctx context.Context, caller Caller, _ Result, form map[string]string) Result {
	id, err := strconv.Atoi(form["id"])
	if err != nil {
		return fail()
	}

	deps, err := s.Store.CountSubjectDependents(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] delete subject %d: dependent counts: %v", id, err)
		return fail()
	}
	var parts []string
	parts = dependentPart(parts, deps.Teachers, "teacher(s)")
	parts = dependentPart(parts, deps.Lessons, "lesson(s)")
	if len(parts) > 0 {
		return failMsg(blockedDeleteMessage("subject", parts))
	}

	if !canManageRecords(caller) {
		return fail()
	}

	if err := s.Store.DeleteSubject(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] delete subject %d: %v", id, err)
		return fail()
	}

	s.revalidateList("subjects")
	return ok()
}
