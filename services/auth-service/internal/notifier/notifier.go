package notifier

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
)

// Template identifiers for outbound notifications.
const (
	TemplateVerifyEmail   = "verify-email"
	TemplateTwoFactorCode = "2fa-code"
	TemplateResetPassword = "reset-password"
)

// Notification is a single outbound message request.
type Notification struct {
	To       string
	Subject  string
	Template string
	Context  map[string]string
}

// Sink delivers a notification. Implementations own transport and rendering.
type Sink interface {
	Send(ctx context.Context, notification Notification) error
}

// Dispatcher hands notifications to a Sink from a bounded queue of worker
// goroutines. Submission never blocks the caller and delivery failure never
// reaches it: authentication flows must not depend on mail delivery.
type Dispatcher struct {
	sink    Sink
	logger  *zerolog.Logger
	ch      chan Notification
	done    chan struct{}
	wg      sync.WaitGroup
	dropped atomic.Uint64
	closed  atomic.Bool
}

// NewDispatcher starts a dispatcher with the given queue capacity and worker
// count.
func NewDispatcher(sink Sink, logger *zerolog.Logger, buffer, workers int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	if workers <= 0 {
		workers = 2
	}

	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		ch:     make(chan Notification, buffer),
		done:   make(chan struct{}),
	}

	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.run()
	}

	return d
}

// Dispatch submits a notification for asynchronous delivery. When the queue
// is full the notification is dropped and counted; the caller never waits.
func (d *Dispatcher) Dispatch(notification Notification) {
	if d.closed.Load() {
		return
	}

	select {
	case d.ch <- notification:
	default:
		d.dropped.Add(1)
		d.logger.Warn().
			Str("template", notification.Template).
			Msg("notification queue full, dropping message")
	}
}

// Dropped reports how many notifications were discarded due to a full queue.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Close stops accepting notifications and waits for queued ones to drain.
func (d *Dispatcher) Close() {
	if d.closed.Swap(true) {
		return
	}

	close(d.done)
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case notification := <-d.ch:
			d.deliver(notification)
		case <-d.done:
			for {
				select {
				case notification := <-d.ch:
					d.deliver(notification)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(notification Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		return retry.RetryableError(d.sink.Send(ctx, notification))
	})
	if err != nil {
		d.logger.Error().Err(err).
			Str("template", notification.Template).
			Msg("failed to deliver notification")
	}
}
