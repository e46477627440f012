package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"ledgerly/internal/logger"
	"ledgerly/internal/models"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer. With a nil db, entries are
// only written to the application log.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(action string, transactionID int64, ipAddress string, changes map[string]interface{}) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	if s.db == nil {
		logger.Get().Infow("audit",
			"action", action,
			"transaction_id", transactionID,
			"ip", ipAddress,
			"changes", changesJSON,
		)
		return
	}

	entry := &models.AuditLog{
		Action:        action,
		TransactionID: transactionID,
		IPAddress:     ipAddress,
		Changes:       changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"action", action,
			"transaction_id", transactionID,
		)
	}
}
