// file: internals/features/school/service/exam_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strconv"

	"schoolku_backend/internals/features/school/dto"
)

// CreateExam provisions an exam on a lesson the caller controls.
func (s *SchoolService) CreateExam(ctx context.Context, caller Caller, _ Result, req *dto.ExamRequest) Result {
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if !s.ownsLesson(ctx, caller, req.ExamLessonID) {
		return fail()
	}

	m := req.ToModel()
	if err := s.Store.CreateExam(ctx, m); err != nil {
		log.Printf("[ERROR] create exam: %v", err)
		return fail()
	}

	s.revalidateList("exams")
	return ok()
}

// UpdateExam replaces the exam fields. A teacher must control both the
// lesson in the payload and the lesson the stored exam points at, so an
// exam cannot be moved onto or away from someone else's lesson.
func (s *SchoolService) UpdateExam(ctx context.Context, caller Caller, _ Result, req *dto.ExamRequest) Result {
	if req.ExamID == nil {
		return fail()
	}
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if !s.ownsLesson(ctx, caller, req.ExamLessonID) {
		return fail()
	}
	if !caller.IsAdmin() {
		cur, err := s.Store.FindExam(ctx, *req.ExamID)
		if err != nil {
			return fail()
		}
		if !s.ownsLesson(ctx, caller, cur.ExamLessonID) {
			return fail()
		}
	}

	m := req.ToModel()
	m.ExamID = *req.ExamID
	if err := s.Store.UpdateExam(ctx, m); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] update exam %d: %v", m.ExamID, err)
		return fail()
	}

	s.revalidateList("exams")
	return ok()
}

// DeleteExam removes an exam once no results reference it.
func (s *SchoolService) DeleteExam(ctx context.Context, caller Caller, _ Result, form map[string]string) Result {
	id, err := strconv.Atoi(form["id"])
	if err != nil {
		return fail()
	}

	deps, err := s.Store.CountExamDependents(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] delete exam %d: dependent counts: %v", id, err)
		return fail()
	}
	var parts []string
	parts = dependentPart(parts, deps.Results, "result(s)")
	if len(parts) > 0 {
		return failMsg(blockedDeleteMessage("exam", parts))
	}

	cur, err := s.Store.FindExam(ctx, id)
	if err != nil {
		return fail()
	}
	if !s.ownsLesson(ctx, caller, cur.ExamLessonID) {
		return fail()
	}

	if err := s.Store.DeleteExam(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] delete exam %d: %v", id, err)
		return fail()
	}

	s.revalidateList("exams")
	return ok()
}
