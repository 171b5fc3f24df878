// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxBioLength is the longest bio, in characters, an account may store.
const MaxBioLength = 500

// Account is a confirmed user. It only exists once a staged signup has been finalized.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Username     string    // Display handle chosen when the signup was finalized.
	Email        string    // Normalized (lower-case) login email, unique across accounts.
	PasswordHash string    // bcrypt hash of the current password.
	Bio          string    // Free-form profile text, at most MaxBioLength characters.
	CreatedAt    time.Time // Timestamp of when the account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// BioFits reports whether bio is short enough to be stored.
func BioFits(bio string) bool {
	return utf8.RuneCountInString(bio) <= MaxBioLength
}
