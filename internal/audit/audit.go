// Package audit records mutating actions as structured log events. The
// gateway holds no database, so the trail is written through the logging
// pipeline where the deployment's log sink retains it.
package audit

import (
	"go.uber.org/zap"

	"siteledger/internal/logger"
)

// Trail records audit events for mutating requests.
type Trail struct {
	log *zap.SugaredLogger
}

// NewTrail creates a new audit trail.
func NewTrail() *Trail {
	return &Trail{log: logger.Get().With("component", "audit")}
}

// Record emits one audit event. Recording never fails the main operation.
func (t *Trail) Record(action, resourceType, resourceID, clientIP string, details map[string]any) {
	fields := []any{
		"action", action,
		"resource_type", resourceType,
		"resource_id", resourceID,
		"client_ip", clientIP,
	}
	if details != nil {
		fields = append(fields, "details", details)
	}
	t.log.Infow("audit", fields...)
}
