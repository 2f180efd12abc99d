package review

import (
	"context"

	"consultdesk/internal/domain"
)

type ReviewStore interface {
	Create(ctx context.Context, r *domain.Review) error
	List(ctx context.Context, status domain.ReviewStatus, limit int) ([]domain.Review, error)
}

type NotificationSender interface {
	ReviewSubmitted(ctx context.Context, r *domain.Review, thanksTo string) error
}
