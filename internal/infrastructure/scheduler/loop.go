package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/location-tracker/internal/domain"
)

// Disposer cancels a periodic task. Calling it more than once is a no-op.
type Disposer func()

// Scheduler runs callbacks one at a time on a single logical thread.
type Scheduler interface {
	// Post queues fn. It never blocks and may be called from any goroutine.
	Post(fn func())
	// Every runs fn on the scheduler each interval until disposed.
	Every(interval time.Duration, fn func()) Disposer
	// Go runs work on its own goroutine and posts the continuation it
	// returns, if any, back to the scheduler.
	Go(work func() func())
	Now() time.Time
}

// Loop is the production Scheduler: a single goroutine draining an
// unbounded queue.
type Loop struct {
	logger *zap.Logger
	clock  func() time.Time

	mu      sync.Mutex
	pending []func()
	stopped bool

	wake chan struct{}
	done chan struct{}
}

func NewLoop(logger *zap.Logger) *Loop {
	return &Loop{
		logger: logger,
		clock:  time.Now,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Run executes queued callbacks until ctx is cancelled. It must be called
// exactly once.
func (l *Loop) Run(ctx context.Context) {
	defer func() {
		l.mu.Lock()
		l.stopped = true
		l.pending = nil
		l.mu.Unlock()
		close(l.done)
	}()

	for {
		l.mu.Lock()
		batch := l.pending
		l.pending = nil
		l.mu.Unlock()

		for _, fn := range batch {
			if ctx.Err() != nil {
				return
			}
			l.execute(fn)
		}

		select {
		case <-ctx.Done():
			return
		case <-l.wake:
		}
	}
}

func (l *Loop) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("panic in scheduled callback",
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
		}
	}()
	fn()
}

func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Do runs fn on the loop and waits for it to finish. It must not be called
// from a loop callback.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	l.Post(func() {
		defer close(finished)
		fn()
	})

	select {
	case <-finished:
		return nil
	case <-l.done:
		return domain.ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) Every(interval time.Duration, fn func()) Disposer {
	var cancelled atomic.Bool
	stop := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				l.Post(func() {
					if cancelled.Load() {
						return
					}
					fn()
				})
			case <-stop:
				return
			case <-l.done:
				return
			}
		}
	}()

	return func() {
		once.Do(func() {
			cancelled.Store(true)
			close(stop)
		})
	}
}

func (l *Loop) Go(work func() func()) {
	go func() {
		if then := work(); then != nil {
			l.Post(then)
		}
	}()
}

func (l *Loop) Now() time.Time {
	return l.clock()
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
