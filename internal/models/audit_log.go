package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLog records ledger mutations.
type AuditLog struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Action        string    `gorm:"not null;index" json:"action"`
	TransactionID int64     `gorm:"index" json:"transaction_id"`
	IPAddress     string    `json:"ip_address"`
	Changes       string    `json:"changes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// BeforeCreate hook generates a time-ordered UUIDv7 for new records
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID != "" {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	a.ID = id.String()
	return nil
}
