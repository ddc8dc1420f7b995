// Package identity is the port to the account system that owns caller ids
// and credentials. Teacher and Student rows share their primary key with
// the account generated here.
package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

var (
	// ErrUsernameTaken means the requested username collides with an
	// existing account.
	ErrUsernameTaken = errors.New("identity: username already taken")
	// ErrAccountNotFound means no account exists for the given id.
	ErrAccountNotFound = errors.New("identity: account not found")
)

type CreateAccountInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Role      constants.Role
}

type UpdateAccountInput struct {
	Username  string
	Password  string // empty means keep the current credential
	FirstName string
	LastName  string
}

// DeleteOutcome distinguishes the ways an account deletion can land.
// NotFound counts as success for callers doing best-effort cleanup;
// TransportError is logged and continued, never fatal.
type DeleteOutcome int

const (
	OutcomeDeleted DeleteOutcome = iota
	OutcomeNotFound
	OutcomeTransportError
)

func (o DeleteOutcome) String() string {
	switch o {
	case OutcomeDeleted:
		return "deleted"
	case OutcomeNotFound:
		return "not-found"
	default:
		return "transport-error"
	}
}

type Provider interface {
	CreateAccount(ctx context.Context, in CreateAccountInput) (uuid.UUID, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, in UpdateAccountInput) error
	DeleteAccount(ctx context.Context, id uuid.UUID) (DeleteOutcome, error)
}
