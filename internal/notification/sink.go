package notification

import (
	"context"
	"errors"
	"sync"
)

type Kind string

const (
	KindBookingAlert        Kind = "booking_admin_alert"
	KindBookingConfirmation Kind = "booking_confirmation"
	KindReviewAlert         Kind = "review_admin_alert"
	KindReviewThanks        Kind = "review_thank_you"
	KindNewsletterWelcome   Kind = "newsletter_welcome"
	KindContactAlert        Kind = "contact_admin_alert"
	KindContactAck          Kind = "contact_ack"
	KindTest                Kind = "test_email"
)

var (
	ErrNoRecipient = errors.New("notification: recipient is required")
	ErrQueueFull   = errors.New("notification: queue full")
	ErrClosed      = errors.New("notification: dispatcher closed")
)

type Message struct {
	Kind    Kind
	To      string
	Subject string
	HTML    string
}

// Sink accepts a notification for delivery. Callers treat it as best effort.
type Sink interface {
	Notify(ctx context.Context, msg Message) error
}

type SinkFunc func(ctx context.Context, msg Message) error

func (f SinkFunc) Notify(ctx context.Context, msg Message) error { return f(ctx, msg) }

// Noop discards every message.
var Noop Sink = SinkFunc(func(context.Context, Message) error { return nil })

// Recorder keeps every message it receives. Safe for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	msgs []Message
	Err  error
}

func (r *Recorder) Notify(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return r.Err
}

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.msgs))
	copy(out, r.msgs)
	return out
}

func (r *Recorder) Kinds() []Kind {
	msgs := r.Messages()
	out := make([]Kind, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Kind)
	}
	return out
}
