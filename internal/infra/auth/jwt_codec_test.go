package auth

import (
	"strings"
	"testing"
	"time"

	"gatehouse/config"
	"gatehouse/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_signing_secret_key_very_long_for_testing"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestJWTCodec_SignAndVerify(t *testing.T) {
	codec, err := NewJWTCodec(&config.Config{SecretKey: config.SecretKeyConfig{Signing: testSecret}})
	require.NoError(t, err)

	accountID := uuid.NewString()
	token, err := codec.Sign(&service.Claims{Kind: service.TokenKindSession, AccountID: accountID}, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(token, "."))

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, service.TokenKindSession, claims.Kind)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Empty(t, claims.DummyMail)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTCodec_PayloadShapes(t *testing.T) {
	codec, err := newJWTCodec(testSecret, time.Now)
	require.NoError(t, err)

	signup, err := codec.Sign(&service.Claims{Kind: service.TokenKindSignup, DummyMail: "a@x.com"}, time.Hour)
	require.NoError(t, err)
	reset, err := codec.Sign(&service.Claims{Kind: service.TokenKindReset, DummyID: "stage-1"}, time.Hour)
	require.NoError(t, err)

	mapClaims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(signup, mapClaims)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", mapClaims["dummyMail"])
	assert.Equal(t, "signup", mapClaims["kind"])
	assert.NotContains(t, mapClaims, "id")

	mapClaims = jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(reset, mapClaims)
	require.NoError(t, err)
	assert.Equal(t, "stage-1", mapClaims["dummyId"])
}

func TestJWTCodec_Expired(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	signer, err := newJWTCodec(testSecret, fixedClock(issuedAt))
	require.NoError(t, err)

	token, err := signer.Sign(&service.Claims{Kind: service.TokenKindSession, AccountID: "a"}, time.Hour)
	require.NoError(t, err)

	verifier, err := newJWTCodec(testSecret, fixedClock(issuedAt.Add(2*time.Hour)))
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTCodec_TamperedBytes(t *testing.T) {
	codec, err := newJWTCodec(testSecret, time.Now)
	require.NoError(t, err)

	token, err := codec.Sign(&service.Claims{Kind: service.TokenKindSession, AccountID: uuid.NewString()}, time.Hour)
	require.NoError(t, err)

	// Flip every byte position in turn; none may verify.
	for i := range len(token) {
		tampered := []byte(token)
		if tampered[i] == 'A' {
			tampered[i] = 'B'
		} else {
			tampered[i] = 'A'
		}

		_, err := codec.Verify(string(tampered))
		assert.ErrorIs(t, err, service.ErrTokenMalformed, "position %d", i)
	}
}

func TestJWTCodec_TamperedPaddingBits(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	codec, err := newJWTCodec(testSecret, time.Now)
	require.NoError(t, err)

	for range 50 {
		token, err := codec.Sign(&service.Claims{Kind: service.TokenKindSession, AccountID: uuid.NewString()}, time.Hour)
		require.NoError(t, err)

		last := strings.IndexByte(alphabet, token[len(token)-1])
		require.GreaterOrEqual(t, last, 0)
		tampered := token[:len(token)-1] + string(alphabet[last^1])

		_, err = codec.Verify(tampered)
		assert.ErrorIs(t, err, service.ErrTokenMalformed, "token %s", tampered)
	}
}

func TestJWTCodec_RejectsForeignSecretAndAlgorithm(t *testing.T) {
	codec, err := newJWTCodec(testSecret, time.Now)
	require.NoError(t, err)

	other, err := newJWTCodec("another_secret", time.Now)
	require.NoError(t, err)
	foreign, err := other.Sign(&service.Claims{Kind: service.TokenKindSession, AccountID: "a"}, time.Hour)
	require.NoError(t, err)

	_, err = codec.Verify(foreign)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{
		Kind:      service.TokenKindSession,
		AccountID: "a",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Verify(unsigned)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTCodec_GarbageInput(t *testing.T) {
	codec, err := newJWTCodec(testSecret, time.Now)
	require.NoError(t, err)

	for _, input := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c", "...."} {
		claims, err := codec.Verify(input)
		assert.ErrorIs(t, err, service.ErrTokenMalformed, input)
		assert.Nil(t, claims)
	}
}

func TestJWTCodec_EmptySecret(t *testing.T) {
	codec, err := NewJWTCodec(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, codec)
	assert.Contains(t, err.Error(), "jwt signing secret must be provided")
}

func TestJWTCodec_SignRejectsBadInput(t *testing.T) {
	codec, err := newJWTCodec(testSecret, time.Now)
	require.NoError(t, err)

	_, err = codec.Sign(nil, time.Hour)
	assert.Error(t, err)

	_, err = codec.Sign(&service.Claims{Kind: service.TokenKindSession}, 0)
	assert.Error(t, err)
}
