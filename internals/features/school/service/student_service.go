// file: internals/features/school/service/student_service.go
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

// CreateStudent checks the class capacity before touching the identity
// provider, then provisions the account and persists the student row. The
// store re-checks capacity under a row lock, so a concurrent enrollment
// that steals the last seat surfaces as ErrClassFull and the fresh account
// is cleaned up.
func (s *SchoolService) CreateStudent(ctx context.Context, caller Caller, _ Result, req *dto.StudentRequest) Result {
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if req.StudentPassword == "" {
		return fail()
	}
	if !canManageRecords(caller) {
		return fail()
	}

	cls, enrolled, err := s.Store.FindClassWithStudentCount(ctx, req.StudentClassID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] create student: class lookup: %v", err)
		return fail()
	}
	if enrolled >= int64(cls.ClassCapacity) {
		return failMsg("The selected class is already full.")
	}

	accountID, err := s.Identity.CreateAccount(ctx, identity.CreateAccountInput{
		Username:  req.StudentUsername,
		Password:  req.StudentPassword,
		FirstName: req.StudentName,
		LastName:  req.StudentSurname,
		Role:      constants.RoleStudent,
	})
	if err != nil {
		if errors.Is(err, identity.ErrUsernameTaken) {
			return failMsg("That username is already taken.")
		}
		log.Printf("[ERROR] create student: identity account: %v", err)
		return fail()
	}

	m := req.ToModel()
	m.StudentID = accountID
	if err := s.Store.CreateStudent(ctx, m); err != nil {
		s.cleanupOrphanAccount(ctx, accountID)
		if errors.Is(err, ErrClassFull) {
			return failMsg("The selected class is already full.")
		}
		if errors.Is(err, ErrDuplicate) {
			return failMsg("That username is already taken.")
		}
		log.Printf("[ERROR] create student %s: %v", accountID, err)
		return fail()
	}

	s.revalidateList("students")
	return ok()
}

// UpdateStudent pushes name and credential changes to the identity
// provider, then replaces the student row.
func (s *SchoolService) UpdateStudent(ctx context.Context, caller Caller, _ Result, req *dto.StudentRequest) Result {
	if req.StudentID == nil {
		return fail()
	}
	if err := validate.Struct(req); err != nil {
		return fail()
	}
	if !canManageRecords(caller) {
		return fail()
	}

	err := s.Identity.UpdateAccount(ctx, *req.StudentID, identity.UpdateAccountInput{
		Username:  req.StudentUsername,
		Password:  req.StudentPassword,
		FirstName: req.StudentName,
		LastName:  req.StudentSurname,
	})
	if err != nil {
		if errors.Is(err, identity.ErrUsernameTaken) {
			return failMsg("That username is already taken.")
		}
		if errors.Is(err, identity.ErrAccountNotFound) {
			return fail()
		}
		log.Printf("[ERROR] update student %s: identity account: %v", *req.StudentID, err)
		return fail()
	}

	m := req.ToModel()
	m.StudentID = *req.StudentID
	if err := s.Store.UpdateStudent(ctx, m); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return failMsg("That username is already taken.")
		}
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] update student %s: %v", m.StudentID, err)
		return fail()
	}

	s.revalidateList("students")
	s.revalidateDetail("students", m.StudentID)
	return ok()
}

// DeleteStudent removes the student row and their identity account.
// Students are never delete-blocked; their results go with them at the
// database level.
func (s *SchoolService) DeleteStudent(ctx context.Context, caller Caller, _ Result, form map[string]string) Result {
	id, err := uuid.Parse(form["id"])
	if err != nil {
		return fail()
	}
	if !canManageRecords(caller) {
		return fail()
	}

	outcome, err := s.Identity.DeleteAccount(ctx, id)
	if err != nil {
		log.Printf("[WARN] delete student %s: identity account %s: %v", id, outcome, err)
	} else if outcome == identity.OutcomeNotFound {
		log.Printf("[WARN] delete student %s: identity account already gone", id)
	}

	if err := s.Store.DeleteStudent(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail()
		}
		log.Printf("[ERROR] delete student %s: %v", id, err)
		return fail()
	}

	s.revalidateList("students")
	return ok()
}
