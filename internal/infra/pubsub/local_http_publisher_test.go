package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.ProfileUpdateEvent {
	return &service.ProfileUpdateEvent{
		RequestID: "req-42",
		AccountID: "acc-1",
		Fields:    map[string]string{"bio": "hi"},
		EmittedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_EmitProfileUpdate(t *testing.T) {
	var (
		got       PushMessage
		requestID string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(deliverycontext.HeaderRequestID)
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	p := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	require.NoError(t, p.EmitProfileUpdate(context.Background(), testEvent()))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, localPushSubscription, got.Subscription)
	assert.NotEmpty(t, got.Message.MessageID)
	assert.Equal(t, "profile.updated", got.Message.Attributes["event"])
	assert.Equal(t, "acc-1", got.Message.Attributes["account_id"])

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.ProfileUpdateEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "hi", event.Fields["bio"])
	assert.NoError(t, p.Close())
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	err := p.EmitProfileUpdate(context.Background(), testEvent())

	assert.ErrorContains(t, err, "502")
}
