// file: internals/identity/account_model.go
package identity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AccountModel represents the `identity_accounts` table
type AccountModel struct {
	AccountID        uuid.UUID      `json:"account_id" gorm:"column:account_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AccountUsername  string         `json:"account_username" gorm:"column:account_username;type:varchar(64);uniqueIndex;not null"`
	AccountPassword  string         `json:"-" gorm:"column:account_password;type:varchar(100);not null"` // bcrypt hash
	AccountFirstName string         `json:"account_first_name" gorm:"column:account_first_name;type:varchar(100);not null"`
	AccountLastName  string         `json:"account_last_name" gorm:"column:account_last_name;type:varchar(100);not null"`
	AccountMetadata  datatypes.JSON `json:"account_metadata,omitempty" gorm:"column:account_metadata;type:jsonb"`

	AccountCreatedAt time.Time  `json:"account_created_at" gorm:"column:account_created_at;not null;autoCreateTime"`
	AccountUpdatedAt *time.Time `json:"account_updated_at,omitempty" gorm:"column:account_updated_at;autoUpdateTime:false"`
}

func (AccountModel) TableName() string {
	return "identity_accounts"
}
