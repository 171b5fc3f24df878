// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gatehouse/config"
	"gatehouse/internal/domain/service"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using HS256 JWTs.
type jwtCodec struct {
	secret []byte // Shared by every token kind, immutable after construction.
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTCodec is the constructor for jwtCodec. A missing secret is a startup error.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	codec, err := newJWTCodec(cfg.SecretKey.Signing, time.Now)
	if err != nil {
		return nil, err
	}

	return codec, nil
}

func newJWTCodec(secret string, now func() time.Time) (*jwtCodec, error) {
	if secret == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtCodec{
		secret: []byte(secret),
		now:    now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(now),
			// Non-zero padding bits in the last signature character are tampering too.
			jwt.WithStrictDecoding(),
		),
	}, nil
}

// Sign encodes claims with iat set to now and exp set to now+ttl.
func (c *jwtCodec) Sign(claims *service.Claims, ttl time.Duration) (string, error) {
	if claims == nil {
		return "", errors.New("claims must not be nil")
	}
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}

	issuedAt := c.now()
	signed := *claims
	signed.IssuedAt = jwt.NewNumericDate(issuedAt)
	signed.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &signed)

	return token.SignedString(c.secret)
}

// Verify parses token and reports ErrTokenExpired or ErrTokenMalformed on failure.
func (c *jwtCodec) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := c.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return c.secret, nil
	})
	if err != nil {
		// A tampered token whose signature no longer verifies is malformed even if
		// its exp has passed, so expiry is only reported for intact signatures.
		if errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenMalformed
	}
	if !token.Valid {
		return nil, service.ErrTokenMalformed
	}

	return claims, nil
}
