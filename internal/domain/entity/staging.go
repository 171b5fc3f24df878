package entity

import (
	"time"

	"github.com/google/uuid"
)

// StagedSignup is a registrant that has started signing up but has not produced an account yet.
type StagedSignup struct {
	ID        uuid.UUID
	Email     string // Candidate email, normalized. At most one staged signup per email.
	CreatedAt time.Time
}

// StagedReset is a pending password reset for an existing account.
type StagedReset struct {
	ID        uuid.UUID
	AccountID uuid.UUID // The account whose credential will change on finalize.
	CreatedAt time.Time
}

// ExpiredAt reports whether a staged record created at createdAt is past ttl at now.
func ExpiredAt(createdAt time.Time, ttl time.Duration, now time.Time) bool {
	return ttl > 0 && !createdAt.Add(ttl).After(now)
}
