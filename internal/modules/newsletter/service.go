package newsletter

import (
	"context"
	"strings"

	"consultdesk/internal/domain"
	"consultdesk/internal/metrics"
	"consultdesk/internal/pkg/validator"
)

type Service struct {
	subscribers SubscriberStore
	notifs      NotificationSender
}

func NewService(subscribers SubscriberStore, notifs NotificationSender) *Service {
	return &Service{subscribers: subscribers, notifs: notifs}
}

// Subscribe adds the address. Subscribing twice is not an error; the welcome
// message goes out only the first time.
func (s *Service) Subscribe(ctx context.Context, req SubscribeRequest) (*SubscribeResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if fields := validator.Validate(req); fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	sub, created, err := s.subscribers.Subscribe(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if !created {
		metrics.IncSubscription("existing")
		return &SubscribeResponse{Email: sub.Email, Created: false}, nil
	}

	metrics.IncSubscription("created")
	if s.notifs != nil {
		_ = s.notifs.Subscribed(context.WithoutCancel(ctx), sub)
	}
	return &SubscribeResponse{Email: sub.Email, Created: true}, nil
}
