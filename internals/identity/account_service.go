// file: internals/identity/account_service.go
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AccountService is the GORM-backed Provider.
type AccountService struct {
	DB *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{DB: db}
}

var _ Provider = (*AccountService)(nil)

func (s *AccountService) CreateAccount(ctx context.Context, in CreateAccountInput) (uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}

	meta, err := json.Marshal(map[string]string{"role": in.Role.String()})
	if err != nil {
		return uuid.Nil, err
	}

	acc := AccountModel{
		AccountID:        uuid.New(),
		AccountUsername:  in.Username,
		AccountPassword:  string(hash),
		AccountFirstName: in.FirstName,
		AccountLastName:  in.LastName,
		AccountMetadata:  datatypes.JSON(meta),
	}
	if err := s.DB.WithContext(ctx).Create(&acc).Error; err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, ErrUsernameTaken
		}
		return uuid.Nil, err
	}
	return acc.AccountID, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, id uuid.UUID, in UpdateAccountInput) error {
	now := time.Now()
	updates := map[string]any{
		"account_username":   in.Username,
		"account_first_name": in.FirstName,
		"account_last_name":  in.LastName,
		"account_updated_at": now,
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		updates["account_password"] = string(hash)
	}

	res := s.DB.WithContext(ctx).
		Model(&AccountModel{}).
		Where("account_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return ErrUsernameTaken
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// isUniqueViolation detects a Postgres unique-index violation without
// depending on the driver error type.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) (DeleteOutcome, error) {
	res := s.DB.WithContext(ctx).
		Where("account_id = ?", id).
		Delete(&AccountModel{})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return OutcomeNotFound, nil
		}
		return OutcomeTransportError, res.Error
	}
	if res.RowsAffected == 0 {
		return OutcomeNotFound, nil
	}
	return OutcomeDeleted, nil
}
