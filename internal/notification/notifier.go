package notification

import (
	"context"
	"errors"
	"fmt"

	"consultdesk/internal/domain"

	"github.com/rs/zerolog"
)

// Notifier turns domain events into messages for a Sink.
// Admin alerts are skipped when no admin address is configured.
// Event failures are logged here and returned; callers may ignore them.
type Notifier struct {
	sink       Sink
	adminEmail string
	log        *zerolog.Logger
}

func NewNotifier(sink Sink, adminEmail string, log *zerolog.Logger) *Notifier {
	if sink == nil {
		sink = Noop
	}
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Notifier{sink: sink, adminEmail: adminEmail, log: log}
}

// BookingCommitted alerts the admin and, when confirmTo is set, the requester.
func (n *Notifier) BookingCommitted(ctx context.Context, r *domain.Reservation, confirmTo string) error {
	return n.report("booking", errors.Join(
		n.toAdmin(ctx, KindBookingAlert, "New Booking from "+r.Name, r),
		n.send(ctx, KindBookingConfirmation, confirmTo, "Session confirmed", r),
	))
}

// ReviewSubmitted alerts the admin and thanks the reviewer when thanksTo is set.
func (n *Notifier) ReviewSubmitted(ctx context.Context, r *domain.Review, thanksTo string) error {
	return n.report("review", errors.Join(
		n.toAdmin(ctx, KindReviewAlert, "New Review Submitted", r),
		n.send(ctx, KindReviewThanks, thanksTo, "Thank you for your review", r),
	))
}

func (n *Notifier) Subscribed(ctx context.Context, s *domain.Subscriber) error {
	return n.report("newsletter", n.send(ctx, KindNewsletterWelcome, s.Email, "Newsletter Subscription Confirmed", s))
}

func (n *Notifier) ContactReceived(ctx context.Context, m *domain.ContactMessage) error {
	return n.report("contact", errors.Join(
		n.toAdmin(ctx, KindContactAlert, "New Contact from "+m.Name, m),
		n.send(ctx, KindContactAck, m.Email, "Message received", m),
	))
}

// SendTest delivers a test message to the admin address through sink directly,
// bypassing any queue, so the caller sees the delivery result.
func (n *Notifier) SendTest(ctx context.Context, sink Sink) error {
	if n.adminEmail == "" {
		return ErrNoRecipient
	}
	msg, err := build(KindTest, n.adminEmail, "SMTP Test Email", nil)
	if err != nil {
		return err
	}
	return sink.Notify(ctx, msg)
}

func (n *Notifier) report(event string, err error) error {
	if err != nil {
		n.log.Warn().Err(err).Str("event", event).Msg("notification failed")
	}
	return err
}

func (n *Notifier) toAdmin(ctx context.Context, kind Kind, subject string, data any) error {
	return n.send(ctx, kind, n.adminEmail, subject, data)
}

func (n *Notifier) send(ctx context.Context, kind Kind, to, subject string, data any) error {
	if to == "" {
		return nil
	}
	msg, err := build(kind, to, subject, data)
	if err != nil {
		return err
	}
	if err := n.sink.Notify(ctx, msg); err != nil {
		return fmt.Errorf("%s to %s: %w", kind, to, err)
	}
	return nil
}

func build(kind Kind, to, subject string, data any) (Message, error) {
	html, err := render(kind, data)
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: kind, To: to, Subject: subject, HTML: html}, nil
}
