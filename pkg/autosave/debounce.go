package autosave

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SaveFunc persists one value.
type SaveFunc[T any] func(ctx context.Context, v T) error

// Option configures a Debouncer.
type Option[T any] func(*Debouncer[T])

// WithLogger replaces the default slog logger.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(d *Debouncer[T]) {
		if l != nil {
			d.logger = l
		}
	}
}

// Debouncer coalesces a burst of scheduled values into one save call after
// a quiet period. Only the most recently scheduled value is saved.
type Debouncer[T any] struct {
	delay  time.Duration
	save   SaveFunc[T]
	logger *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	armed   bool
	stopped bool
}

// New creates a debouncer that calls save after delay has passed without a
// newer Schedule call.
func New[T any](delay time.Duration, save SaveFunc[T], opts ...Option[T]) *Debouncer[T] {
	d := &Debouncer[T]{
		delay:  delay,
		save:   save,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Schedule records v as the value to persist and re-arms the timer,
// canceling any earlier pending save.
func (d *Debouncer[T]) Schedule(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.pending = v
	d.armed = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Cancel drops the pending save, if any.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disarm()
}

// Flush persists the pending value immediately, bypassing the timer. It
// returns nil when nothing is pending.
func (d *Debouncer[T]) Flush(ctx context.Context) error {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return nil
	}
	v := d.pending
	d.disarm()
	d.mu.Unlock()

	return d.save(ctx, v)
}

// Stop cancels any pending save and rejects future schedules.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disarm()
	d.stopped = true
}

func (d *Debouncer[T]) disarm() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.armed = false
	var zero T
	d.pending = zero
}

func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.disarm()
	d.mu.Unlock()

	if err := d.save(context.Background(), v); err != nil {
		d.logger.Error("debounced save failed", slog.Any("error", err))
	}
}
