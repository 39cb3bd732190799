// internal/models/audit_log.go
package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
)

type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	}
	return nil
}

// AuditLog records every mutating API request for back-office review.
type AuditLog struct {
	BaseModel
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Action       string     `gorm:"size:255;not null" json:"action"`
	ResourceType string     `gorm:"size:100;index" json:"resource_type"`
	ResourceID   *uuid.UUID `gorm:"type:uuid" json:"resource_id"`
	IPAddress    string     `gorm:"size:45" json:"ip_address"`
	UserAgent    string     `gorm:"size:500" json:"user_agent"`
	RequestData  JSONB      `gorm:"type:jsonb" json:"request_data"`
}
