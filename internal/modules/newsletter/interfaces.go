package newsletter

import (
	"context"

	"consultdesk/internal/domain"
)

type SubscriberStore interface {
	Subscribe(ctx context.Context, email string) (*domain.Subscriber, bool, error)
}

type NotificationSender interface {
	Subscribed(ctx context.Context, s *domain.Subscriber) error
}
