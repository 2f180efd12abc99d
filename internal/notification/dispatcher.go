package notification

import (
	"context"
	"sync"
	"time"

	"consultdesk/internal/metrics"

	"github.com/rs/zerolog"
)

const attemptTimeout = 30 * time.Second

type DispatcherOptions struct {
	Workers   int
	QueueSize int
	Retry     RetryPolicy
}

// Dispatcher delivers messages asynchronously through a bounded queue.
// Notify never blocks; when the queue is full the message is dropped.
type Dispatcher struct {
	sink  Sink
	retry RetryPolicy
	log   *zerolog.Logger

	queue chan Message
	abort chan struct{}
	wg    sync.WaitGroup

	mu       sync.RWMutex
	closed   bool
	stopOnce sync.Once
}

func NewDispatcher(sink Sink, opts DispatcherOptions, log *zerolog.Logger) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 100
	}

	d := &Dispatcher{
		sink:  sink,
		retry: opts.Retry,
		log:   log,
		queue: make(chan Message, opts.QueueSize),
		abort: make(chan struct{}),
	}

	for i := 0; i < opts.Workers; i++ {
		d.wg.Add(1)
		go d.run()
	}
	return d
}

func (d *Dispatcher) Notify(_ context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}

	select {
	case d.queue <- msg:
		return nil
	default:
		metrics.IncNotification(string(msg.Kind), metrics.NotificationDropped)
		d.log.Warn().Str("kind", string(msg.Kind)).Str("to", msg.To).Msg("notification queue full, message dropped")
		return ErrQueueFull
	}
}

// Close stops accepting messages and waits for queued ones to be delivered.
// When ctx expires first, pending retries are abandoned.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		d.stopOnce.Do(func() { close(d.abort) })
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	kind := string(msg.Kind)

	for attempt := 1; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), attemptTimeout)
		err := d.sink.Notify(ctx, msg)
		cancel()

		if err == nil {
			metrics.IncNotification(kind, metrics.NotificationSent)
			return
		}

		if !d.retry.CanRetry(attempt) {
			metrics.IncNotification(kind, metrics.NotificationFailed)
			d.log.Warn().Err(err).
				Str("kind", kind).
				Str("to", msg.To).
				Int("attempts", attempt).
				Msg("notification delivery failed")
			return
		}

		delay := d.retry.NextDelay(attempt)
		d.log.Debug().Err(err).Str("kind", kind).Dur("retry_in", delay).Msg("notification attempt failed")

		select {
		case <-time.After(delay):
		case <-d.abort:
			metrics.IncNotification(kind, metrics.NotificationFailed)
			d.log.Warn().Err(err).Str("kind", kind).Str("to", msg.To).Msg("notification abandoned on shutdown")
			return
		}
	}
}
