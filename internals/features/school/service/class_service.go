// file: internals/features/school/service/class_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strconv"

	"schoolku_backend/internals/features/school/dto"
)

// CreateClass provisions a new class.
func (s *SchoolService) CreateClass(ctx context.Context, caller Caller, _ Result, req *dto.ClassRequest) Result {
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if !canManageRecords(caller) {
		return fail()
	}

	m := req.ToModel()
	if err := s.Store.CreateClass(ctx, m); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return failMsg("A class with that name already exists.")
		}
		log.Printf("[ERROR] create class: %v", err)
		return fail()
	}

	s.revalidateList("classes")
	return ok()
}

// UpdateClass replaces the class fields, supervisor included.
func (s *SchoolService) UpdateClass(ctx context.Context, caller Caller, _ Result, req *dto.ClassRequest) Result {
	if req.ClassID == nil {
		return fail()
	}
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if !canManageRecords(caller) {
		return fail()
	}

	m := req.ToModel()
	m.ClassID = *req.ClassID
	if err := s.Store.UpdateClass(ctx, m); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return failMsg("A class with that name already exists.")
		}
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] update class %d: %v", m.ClassID, err)
		return fail()
	}

	s.revalidateList("classes")
	return ok()
}

// DeleteClass removes a class once no students, lessons, events or
// announcements point at it.
func (s *SchoolService) DeleteClass(ctx context.Context, caller Caller, _ Result, form map[string]string) Result {
	id, err := strconv.Atoi(form["id"])
	if err != nil {
		return fail()
	}

	deps, err := s.Store.CountClassDependents(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] delete class %d: dependent counts: %v", id, err)
		return fail()
	}
	var parts []string
	parts = dependentPart(parts, deps.Students, "student(s)")
	parts = dependentPart(parts, deps.Lessons, "lesson(s)")
	parts = dependentPart(parts, deps.Events, "event(s)")
	parts = dependentPart(parts, deps.Announcements, "announcement(s)")
	if len(parts) > 0 {
		return failMsg(blockedDeleteMessage("class", parts))
	}

	if !canManageRecords(caller) {
		return fail()
	}

	if err := s.Store.DeleteClass(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] delete class %d: %v", id, err)
		return fail()
	}

	s.revalidateList("classes")
	return ok()
}
