// file: internals/features/school/service/teacher_service.go
package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/dto"
	"schoolku_backend/internals/identity"
)

// CreateTeacher provisions the identity account first, then persists the
// teacher row under the account id. If the row insert fails the orphaned
// account is cleaned up best-effort.
func (s *SchoolService) CreateTeacher(ctx context.Context, caller Caller, _ Result, req *dto.TeacherRequest) Result {
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if req.TeacherPassword == "" {
		return fail()
	}
	if !canManageRecords(caller) {
		return fail()
	}

	accountID, err := s.Identity.CreateAccount(ctx, identity.CreateAccountInput{
		Username:  req.TeacherUsername,
		Password:  req.TeacherPassword,
		FirstName: req.TeacherName,
		LastName:  req.TeacherSurname,
		Role:      constants.RoleTeacher,
	})
	if err != nil {
		if errors.Is(err, identity.ErrUsernameTaken) {
			return failMsg("That username is already taken.")
		}
		log.Printf("[ERROR] create teacher: identity account: %v", err)
		return fail()
	}

	m := req.ToModel()
	m.TeacherID = accountID
	if err := s.Store.CreateTeacher(ctx, m, req.TeacherSubjectIDs); err != nil {
		s.cleanupOrphanAccount(ctx, accountID)
		if errors.Is(err, ErrDuplicate) {
			return failMsg("That username is already taken.")
		}
		log.Printf("[ERROR] create teacher %s: %v", accountID, err)
		return fail()
	}

	s.revalidateList("teachers")
	return ok()
}

// UpdateTeacher pushes the name and credential changes to the identity
// provider, then replaces the teacher row and its subject set.
func (s *SchoolService) UpdateTeacher(ctx context.Context, caller Caller, _ Result, req *dto.TeacherRequest) Result {
	if req.TeacherID == nil {
		return fail()
	}
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if !canManageRecords(caller) {
		return fail()
	}

	err := s.Identity.UpdateAccount(ctx, *req.TeacherID, identity.UpdateAccountInput{
		Username:  req.TeacherUsername,
		Password:  req.TeacherPassword,
		FirstName: req.TeacherName,
		LastName:  req.TeacherSurname,
	})
	if err != nil {
		if errors.Is(err, identity.ErrUsernameTaken) {
			return failMsg("That username is already taken.")
		}
		if errors.Is(err, identity.ErrAccountNotFound) {
			return fail()
		}
		log.Printf("[ERROR] update teacher %s: identity account: %v", *req.TeacherID, err)
		return fail()
	}

	m := req.ToModel()
	m.TeacherID = *req.TeacherID
	if err := s.Store.UpdateTeacher(ctx, m, req.TeacherSubjectIDs); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return failMsg("That username is already taken.")
		}
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] update teacher %s: %v", m.TeacherID, err)
		return fail()
	}

	s.revalidateList("teachers")
	s.revalidateDetail("teachers", m.TeacherID)
	return ok()
}

// DeleteTeacher removes the teacher and their identity account once no
// subject, lesson or supervised class references them. The account delete
// is best-effort: a missing or unreachable account never blocks the row
// delete.
func (s *SchoolService) DeleteTeacher(ctx context.Context, caller Caller, _ Result, form map[string]string) Result {
	id, err := uuid.Parse(form["id"])
	if err != nil {
		return fail()
	}

	deps, err := s.Store.CountTeacherDependents(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] delete teacher %s: dependent counts: %v", id, err)
		return fail()
	}
	var parts []string
	parts = dependentPart(parts, deps.Subjects, "subject(s)")
	parts = dependentPart(parts, deps.Lessons, "lesson(s)")
	parts = dependentPart(parts, deps.Classes, "supervised class(es)")
	if len(parts) > 0 {
		return failMsg(blockedDeleteMessage("teacher", parts))
	}

	if !canManageRecords(caller) {
		return fail()
	}

	outcome, err := s.Identity.DeleteAccount(ctx, id)
	if err != nil {
		log.Printf("[WARN] delete teacher %s: identity account %s: %v", id, outcome, err)
	} else if outcome == identity.OutcomeNotFound {
		log.Printf("[WARN] delete teacher %s: identity account already gone", id)
	}

	if err := s.Store.DeleteTeacher(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] delete teacher %s: %v", id, err)
		return fail()
	}

	s.revalidateList("teachers")
	return ok()
}

// cleanupOrphanAccount removes an identity account whose companion row
// never landed. Failures are logged only; the mutation already failed.
func (s *SchoolService) cleanupOrphanAccount(ctx context.Context, id uuid.UUID) {
	if outcome, err := s.Identity.DeleteAccount(ctx, id); err != nil {
		log.Printf("[WARN] orphan account %s not cleaned up (%s): %v", id, outcome, err)
	}
}
