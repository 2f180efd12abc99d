package admin

import (
	"context"

	"consultdesk/internal/domain"
)

// Authorizer checks a presented admin credential.
type Authorizer interface {
	Authorize(credential string) bool
}

type ReviewStore interface {
	List(ctx context.Context, status domain.ReviewStatus, limit int) ([]domain.Review, error)
	SetStatus(ctx context.Context, id string, status domain.ReviewStatus) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}

type ReservationReader interface {
	ListAll(ctx context.Context) ([]domain.Reservation, error)
}

type SubscriberReader interface {
	List(ctx context.Context) ([]domain.Subscriber, error)
}

type ContactReader interface {
	List(ctx context.Context) ([]domain.ContactMessage, error)
}

// TestMailer sends a test message synchronously.
type TestMailer interface {
	SendTest(ctx context.Context) error
}

type TestMailerFunc func(ctx context.Context) error

func (f TestMailerFunc) SendTest(ctx context.Context) error { return f(ctx) }
