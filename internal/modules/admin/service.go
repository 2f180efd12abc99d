package admin

import (
	"context"
	"fmt"
	"strings"

	"consultdesk/internal/domain"
	"consultdesk/internal/metrics"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Service holds every privileged operation. Each method re-checks the
// credential, so the service is safe to call without the HTTP gate.
type Service struct {
	gate         Authorizer
	creds        Credentials
	reviews      ReviewStore
	reservations ReservationReader
	subscribers  SubscriberReader
	contacts     ContactReader
	mailer       TestMailer
	log          *zerolog.Logger
}

func NewService(
	gate Authorizer,
	creds Credentials,
	reviews ReviewStore,
	reservations ReservationReader,
	subscribers SubscriberReader,
	contacts ContactReader,
	mailer TestMailer,
	log *zerolog.Logger,
) *Service {
	return &Service{
		gate:         gate,
		creds:        creds,
		reviews:      reviews,
		reservations: reservations,
		subscribers:  subscribers,
		contacts:     contacts,
		mailer:       mailer,
		log:          log,
	}
}

func (s *Service) authorize(credential string) error {
	if !s.gate.Authorize(credential) {
		return domain.ErrUnauthorized
	}
	return nil
}

// Login exchanges the admin password for the admin token. The password is
// checked against the bcrypt hash when one is configured, otherwise it must
// equal the token itself.
func (s *Service) Login(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", domain.ErrUnauthorized
	}

	if s.creds.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)); err != nil {
			return "", domain.ErrUnauthorized
		}
	} else if !s.gate.Authorize(password) {
		return "", domain.ErrUnauthorized
	}

	s.log.Info().Str("action", "login").Msg("admin action")
	return s.creds.Token, nil
}

// SetApproval is the only transition of review status: approved or back to pending.
func (s *Service) SetApproval(ctx context.Context, credential, id string, approved bool) (*domain.Review, error) {
	if err := s.authorize(credential); err != nil {
		return nil, err
	}

	status := domain.ReviewPending
	action := "unapproved"
	if approved {
		status = domain.ReviewApproved
		action = "approved"
	}

	rv, err := s.reviews.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	metrics.IncReview(action)
	s.log.Info().Str("action", action).Str("review_id", id).Msg("admin action")
	return rv, nil
}

func (s *Service) ListReviews(ctx context.Context, credential string, f ReviewListFilter) ([]domain.Review, error) {
	if err := s.authorize(credential); err != nil {
		return nil, err
	}

	status := domain.ReviewStatus(strings.ToLower(strings.TrimSpace(f.Status)))
	switch status {
	case "", domain.ReviewPending, domain.ReviewApproved:
	default:
		return nil, ErrInvalidStatus
	}
	if f.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidInput)
	}

	return s.reviews.List(ctx, status, f.Limit)
}

// DeleteReview removes the review permanently. A missing id is domain.ErrNotFound.
func (s *Service) DeleteReview(ctx context.Context, credential, id string) error {
	if err := s.authorize(credential); err != nil {
		return err
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}

	metrics.IncReview("deleted")
	s.log.Info().Str("action", "deleted").Str("review_id", id).Msg("admin action")
	return nil
}

func (s *Service) ListReservations(ctx context.Context, credential string) ([]domain.Reservation, error) {
	if err := s.authorize(credential); err != nil {
		return nil, err
	}
	return s.reservations.ListAll(ctx)
}

func (s *Service) ListSubscribers(ctx context.Context, credential string) ([]domain.Subscriber, error) {
	if err := s.authorize(credential); err != nil {
		return nil, err
	}
	return s.subscribers.List(ctx)
}

func (s *Service) ListContacts(ctx context.Context, credential string) ([]domain.ContactMessage, error) {
	if err := s.authorize(credential); err != nil {
		return nil, err
	}
	return s.contacts.List(ctx)
}

func (s *Service) SendTestEmail(ctx context.Context, credential string) error {
	if err := s.authorize(credential); err != nil {
		return err
	}
	if err := s.mailer.SendTest(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	s.log.Info().Str("action", "test_email").Msg("admin action")
	return nil
}
