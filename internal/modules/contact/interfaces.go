package contact

import (
	"context"

	"consultdesk/internal/domain"
)

type ContactStore interface {
	Create(ctx context.Context, m *domain.ContactMessage) error
}

type NotificationSender interface {
	ContactReceived(ctx context.Context, m *domain.ContactMessage) error
}
