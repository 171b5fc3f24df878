package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"gatehouse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/pubsub"
)

func TestMailQueueNotifier_Send(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	notifier, err := NewMailQueueNotifier(ctx, &config.MailConfig{
		QueueURL: "mem://mail-send-test",
		From:     "no-reply@gatehouse.test",
	}, newDiscardLogger())
	require.NoError(t, err)

	sub, err := pubsub.OpenSubscription(ctx, "mem://mail-send-test")
	require.NoError(t, err)
	defer func() { _ = sub.Shutdown(context.Background()) }()

	require.NoError(t, notifier.Send(ctx, "a@x.com", "請驗證您的電子郵件", "https://gatehouse.test/signup/verify?token=t"))

	msg, err := sub.Receive(ctx)
	require.NoError(t, err)
	msg.Ack()

	var mail MailMessage
	require.NoError(t, json.Unmarshal(msg.Body, &mail))
	assert.Equal(t, "no-reply@gatehouse.test", mail.From)
	assert.Equal(t, "a@x.com", mail.To)
	assert.Equal(t, "請驗證您的電子郵件", mail.Subject)
	assert.Contains(t, mail.Body, "/signup/verify?token=t")
	assert.False(t, mail.QueuedAt.IsZero())
	assert.Equal(t, "application/json", msg.Metadata["content_type"])

	require.NoError(t, notifier.Close())
}

func TestNewMailQueueNotifier_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewMailQueueNotifier(ctx, nil, newDiscardLogger())
	assert.Error(t, err)

	_, err = NewMailQueueNotifier(ctx, &config.MailConfig{QueueURL: "nosuchscheme://q"}, newDiscardLogger())
	assert.Error(t, err)
}
