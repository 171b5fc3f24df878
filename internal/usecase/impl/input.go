package impl

import (
	"strings"
	"unicode/utf8"

	domainerrors "gatehouse/internal/domain/errors"

	"github.com/pkg/errors"
)

const (
	maxUsernameLength = 50
	// bcrypt rejects longer input.
	maxPasswordBytes = 72
)

// validateUsername trims username and checks it is non-empty and short enough.
func validateUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", errors.Wrap(domainerrors.ErrInvalidInput, "username is required")
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return "", errors.Wrapf(domainerrors.ErrInvalidInput, "username exceeds %d characters", maxUsernameLength)
	}

	return username, nil
}

func validatePassword(password string) error {
	if password == "" {
		return errors.Wrap(domainerrors.ErrInvalidInput, "password is required")
	}
	if len(password) > maxPasswordBytes {
		return errors.Wrapf(domainerrors.ErrInvalidInput, "password exceeds %d bytes", maxPasswordBytes)
	}

	return nil
}
