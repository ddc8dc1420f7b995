// file: internals/features/school/service/caller.go
package service

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

// Caller is the authenticated principal a mutation runs as. The id matches
// the identity account; the role drives every authorization decision.
type Caller struct {
	ID   uuid.UUID
	Role constants.Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == constants.RoleAdmin
}

func (c Caller) IsTeacher() bool {
	return c.Role == constants.RoleTeacher
}
