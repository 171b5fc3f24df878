// Package notification delivers outbound messages: mail for the staging flows and
// device pushes for profile changes.
package notification

import (
	"context"
	"log/slog"
	"time"

	"gatehouse/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messageSender is the slice of *messaging.Client the broadcaster needs.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseBroadcaster fans profile updates out to devices subscribed to the account's
// FCM topic.
type firebaseBroadcaster struct {
	client      messageSender
	topicPrefix string
	logger      *slog.Logger
}

// NewFirebaseBroadcaster initializes a Firebase app and returns a PresenceBroadcaster on
// its messaging client. An empty credentialsPath falls back to application default credentials.
func NewFirebaseBroadcaster(
	ctx context.Context,
	projectID, credentialsPath, topicPrefix string,
	logger *slog.Logger,
) (service.PresenceBroadcaster, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseBroadcaster(client, topicPrefix, logger), nil
}

func newFirebaseBroadcaster(client messageSender, topicPrefix string, logger *slog.Logger) *firebaseBroadcaster {
	return &firebaseBroadcaster{
		client:      client,
		topicPrefix: topicPrefix,
		logger:      logger,
	}
}

// EmitProfileUpdate sends a data-only message; clients refresh the fields they show.
func (b *firebaseBroadcaster) EmitProfileUpdate(ctx context.Context, event *service.ProfileUpdateEvent) error {
	data := make(map[string]string, len(event.Fields)+4)
	for field, value := range event.Fields {
		data[field] = value
	}
	data["event"] = "profile.updated"
	data["account_id"] = event.AccountID
	data["emitted_at"] = event.EmittedAt.UTC().Format(time.RFC3339)
	if event.RequestID != "" {
		data["request_id"] = event.RequestID
	}

	messageID, err := b.client.Send(ctx, &messaging.Message{
		Topic: b.topicPrefix + event.AccountID,
		Data:  data,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send profile update")
	}

	b.logger.Debug("[Firebase] Profile update sent",
		slog.String("account_id", event.AccountID),
		slog.String("message_id", messageID),
	)

	return nil
}

// Close is a no-op; the messaging client holds no resources that need releasing.
func (b *firebaseBroadcaster) Close() error {
	return nil
}
