package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"gatehouse/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/p/messages/1", nil
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseBroadcaster_EmitProfileUpdate(t *testing.T) {
	sender := &fakeSender{}
	b := newFirebaseBroadcaster(sender, "profile-", newDiscardLogger())
	emittedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	err := b.EmitProfileUpdate(context.Background(), &service.ProfileUpdateEvent{
		RequestID: "req-1",
		AccountID: "acc-1",
		Fields:    map[string]string{"bio": "hello"},
		EmittedAt: emittedAt,
	})

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "profile-acc-1", msg.Topic)
	assert.Nil(t, msg.Notification)
	assert.Equal(t, map[string]string{
		"bio":        "hello",
		"event":      "profile.updated",
		"account_id": "acc-1",
		"emitted_at": "2026-01-02T03:04:05Z",
		"request_id": "req-1",
	}, msg.Data)
}

func TestFirebaseBroadcaster_SendFailure(t *testing.T) {
	b := newFirebaseBroadcaster(&fakeSender{err: errors.New("quota exceeded")}, "", newDiscardLogger())

	err := b.EmitProfileUpdate(context.Background(), &service.ProfileUpdateEvent{AccountID: "acc-1"})

	assert.ErrorContains(t, err, "quota exceeded")
	assert.NoError(t, b.Close())
}
