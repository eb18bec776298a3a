package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"engagement_service/internal/usecase/interfaces"
)

const jobTimeout = 10 * time.Second

type job struct {
	name string
	run  func(ctx context.Context) error
}

// Dispatcher delivers messages and notifications in the background. Enqueuing
// never blocks: when the queue is full the side effect is dropped and logged.
// Delivery errors are logged and discarded.
type Dispatcher struct {
	messenger interfaces.IMessenger
	notifier  interfaces.INotifier

	mu     sync.RWMutex
	closed bool
	queue  chan job
	wg     sync.WaitGroup
}

var _ interfaces.ISideEffects = (*Dispatcher)(nil)

func NewDispatcher(messenger interfaces.IMessenger, notifier interfaces.INotifier, buffer, workers int) *Dispatcher {
	if buffer <= 0 {
		buffer = 1
	}
	if workers <= 0 {
		workers = 1
	}
	d := &Dispatcher{
		messenger: messenger,
		notifier:  notifier,
		queue:     make(chan job, buffer),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	return d
}

func (d *Dispatcher) PostSystemMessage(senderID, receiverID, requestID, text string) {
	if d.messenger == nil {
		return
	}
	d.enqueue(job{name: "system_message", run: func(ctx context.Context) error {
		return d.messenger.PostSystemMessage(ctx, senderID, receiverID, requestID, text)
	}})
}

func (d *Dispatcher) NotifyQuoteAcceptance(quoteID, actingProfileID string, isRequester bool) {
	if d.notifier == nil {
		return
	}
	d.enqueue(job{name: "quote_acceptance", run: func(ctx context.Context) error {
		return d.notifier.NotifyQuoteAcceptance(ctx, quoteID, actingProfileID, isRequester)
	}})
}

func (d *Dispatcher) NotifyProviderOfRequestUpdate(requestID, kind string) {
	if d.notifier == nil {
		return
	}
	d.enqueue(job{name: "request_update_" + kind, run: func(ctx context.Context) error {
		return d.notifier.NotifyProviderOfRequestUpdate(ctx, requestID, kind)
	}})
}

func (d *Dispatcher) enqueue(j job) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		slog.Warn("side_effect_dropped", "job", j.name, "reason", "dispatcher closed")
		return
	}
	select {
	case d.queue <- j:
	default:
		slog.Warn("side_effect_dropped", "job", j.name, "reason", "queue full")
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for j := range d.queue {
		d.run(j)
	}
}

func (d *Dispatcher) run(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "side_effect_panic", "job", j.name, "panic", r)
		}
	}()

	if err := j.run(ctx); err != nil {
		slog.WarnContext(ctx, "side_effect_failed", "job", j.name, "error", err)
	}
}

// Close stops accepting work and waits until queued side effects are delivered.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}
