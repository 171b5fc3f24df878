package model

import (
	"time"

	"github.com/google/uuid"
)

// StagedSignupModel mirrors the 'staged_signups' table. Email is unique so a candidate
// can have one pending signup at a time.
type StagedSignupModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (StagedSignupModel) TableName() string {
	return "staged_signups"
}

// StagedResetModel mirrors the 'staged_resets' table. AccountID is not a foreign key, so a
// stage survives the deletion of its account.
type StagedResetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (StagedResetModel) TableName() string {
	return "staged_resets"
}
