package impl

import (
	"time"

	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// verifyKind decodes token and checks it was issued for the expected flow.
// Every failure, a token of the wrong kind included, is ErrUnauthenticated.
func verifyKind(codec service.TokenCodec, token string, kind service.TokenKind) (*service.Claims, error) {
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token missing")
	}

	claims, err := codec.Verify(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	if claims.Kind != kind {
		return nil, errors.Wrapf(domainerrors.ErrUnauthenticated, "unexpected token kind %q", claims.Kind)
	}

	return claims, nil
}

func signSession(codec service.TokenCodec, accountID uuid.UUID, ttl time.Duration) (string, error) {
	return codec.Sign(&service.Claims{
		Kind:      service.TokenKindSession,
		AccountID: accountID.String(),
	}, ttl)
}
