package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionRegister     = "register"
	AuditActionLogin        = "login"
	AuditActionFailedLogin  = "failed_login"
	AuditActionLocked       = "account_locked"
	AuditActionLogout       = "logout"
	AuditActionTokenRefresh = "token_refresh"
	AuditActionCreate       = "create"
	AuditActionUpdate       = "update"
	AuditActionDelete       = "delete"
	AuditActionUpsert       = "upsert"
	AuditActionSeed         = "seed"

	AuditResourceUser            = "user"
	AuditResourceExpense         = "expense"
	AuditResourceBudget          = "budget"
	AuditResourceBankTransaction = "bank_transaction"
)

// AuditLog is one entry of the household activity feed
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	Resource   string     `gorm:"type:varchar(50);not null" json:"resource"`
	ResourceID string     `gorm:"type:varchar(64)" json:"resource_id,omitempty"`
	IPAddress  string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string     `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   JSONBMap   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

// Summary renders the entry as a single line, e.g. "create expense 4f1c..."
func (al *AuditLog) Summary() string {
	if al.ResourceID == "" {
		return fmt.Sprintf("%s %s", al.Action, al.Resource)
	}
	return fmt.Sprintf("%s %s %s", al.Action, al.Resource, al.ResourceID)
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

// JSONBMap is a free-form JSON object stored as text
type JSONBMap map[string]interface{}

func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
