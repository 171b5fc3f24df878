package pubsub

import "gatehouse/internal/domain/service"

const eventTypeProfileUpdated = "profile.updated"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.ProfileUpdateEvent) map[string]string {
	attributes := map[string]string{
		"event":      eventTypeProfileUpdated,
		"account_id": event.AccountID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
