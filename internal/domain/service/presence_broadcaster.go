package service

import (
	"context"
	"time"
)

// ProfileUpdateEvent is fanned out to realtime subscribers after a profile change.
type ProfileUpdateEvent struct {
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	AccountID string            `json:"account_id"`
	Fields    map[string]string `json:"fields"`
	EmittedAt time.Time         `json:"emitted_at"`
}

// PresenceBroadcaster fans profile changes out to realtime subscribers. Delivery is
// best-effort: the caller never rolls back a persisted change because of it.
type PresenceBroadcaster interface {
	EmitProfileUpdate(ctx context.Context, event *ProfileUpdateEvent) error

	// Close releases any resources held by the broadcaster
	Close() error
}
