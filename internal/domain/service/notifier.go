package service

import "context"

// Notifier delivers outbound messages (verification and reset links) to an email address.
// Callers treat failures as non-fatal: they log and carry on.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error

	// Close releases any resources held by the notifier
	Close() error
}
