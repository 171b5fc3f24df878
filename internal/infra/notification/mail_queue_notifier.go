package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gatehouse/config"
	"gatehouse/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/pubsub"
	// URL openers for mail.queueUrl: mem:// for development, gcppubsub:// in production.
	_ "gocloud.dev/pubsub/gcppubsub"
	_ "gocloud.dev/pubsub/mempubsub"
)

// MailMessage is the payload a mail worker consumes from the queue.
type MailMessage struct {
	From     string    `json:"from"`
	To       string    `json:"to"`
	Subject  string    `json:"subject"`
	Body     string    `json:"body"`
	QueuedAt time.Time `json:"queued_at"`
}

type mailTopic interface {
	Send(ctx context.Context, m *pubsub.Message) error
	Shutdown(ctx context.Context) error
}

// mailQueueNotifier implements Notifier by enqueuing messages for a separate mail worker.
type mailQueueNotifier struct {
	topic  mailTopic
	from   string
	logger *slog.Logger
}

// NewMailQueueNotifier opens the topic named by mail.queueUrl.
func NewMailQueueNotifier(ctx context.Context, cfg *config.MailConfig, logger *slog.Logger) (service.Notifier, error) {
	if cfg == nil || cfg.QueueURL == "" {
		return nil, errors.New("mail.queueUrl is required")
	}

	topic, err := pubsub.OpenTopic(ctx, cfg.QueueURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open mail queue %s", cfg.QueueURL)
	}

	logger.Info("Mail queue opened", slog.String("queue_url", cfg.QueueURL))

	return &mailQueueNotifier{
		topic:  topic,
		from:   cfg.From,
		logger: logger,
	}, nil
}

func (n *mailQueueNotifier) Send(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(&MailMessage{
		From:     n.from,
		To:       to,
		Subject:  subject,
		Body:     body,
		QueuedAt: time.Now().UTC(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	err = n.topic.Send(ctx, &pubsub.Message{
		Body:     payload,
		Metadata: map[string]string{"content_type": "application/json"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to enqueue mail")
	}

	return nil
}

// Close flushes pending sends and releases the topic.
func (n *mailQueueNotifier) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return errors.WithStack(n.topic.Shutdown(ctx))
}
