package notification

import (
	"context"
	"fmt"
	"time"

	"consultdesk/internal/config"

	"github.com/wneessen/go-mail"
)

// smtpTimeout bounds dialing and each SMTP command of one delivery.
const smtpTimeout = 15 * time.Second

type deliverFunc func(ctx context.Context, msg *mail.Msg) error

// Mailer delivers messages over SMTP, upgrading with STARTTLS when the
// server offers it. Each delivery dials its own connection.
type Mailer struct {
	host    string
	opts    []mail.Option
	from    string
	deliver deliverFunc
	now     func() time.Time
}

func NewMailer(cfg config.SMTPConfig) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(smtpTimeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Pass),
		)
	}

	if _, err := mail.NewClient(cfg.Host, opts...); err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	m := &Mailer{host: cfg.Host, opts: opts, from: cfg.From, now: time.Now}
	m.deliver = m.dialAndSend
	return m, nil
}

func (m *Mailer) Notify(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	mm, err := m.compose(msg)
	if err != nil {
		return err
	}
	if err := m.deliver(ctx, mm); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (m *Mailer) compose(msg Message) (*mail.Msg, error) {
	mm := mail.NewMsg()
	if err := mm.From(m.from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.from, err)
	}
	if err := mm.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	mm.Subject(msg.Subject)
	mm.SetDateWithValue(m.now())
	mm.SetBodyString(mail.TypeTextHTML, msg.HTML)
	return mm, nil
}

// dialAndSend returns when the send finishes or ctx is done, whichever is first.
// An abandoned send still ends within smtpTimeout.
func (m *Mailer) dialAndSend(ctx context.Context, mm *mail.Msg) error {
	client, err := mail.NewClient(m.host, m.opts...)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- client.DialAndSendWithContext(ctx, mm) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
