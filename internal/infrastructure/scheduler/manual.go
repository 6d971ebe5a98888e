package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Manual is a deterministic Scheduler driven by Advance and RunPending. It
// is used by tests and by tools that replay a timeline.
type Manual struct {
	async   sync.WaitGroup
	mu      sync.Mutex
	now     time.Time
	pending []func()
	tasks   []*manualTask
	seq     int
}

type manualTask struct {
	id       int
	interval time.Duration
	next     time.Time
	fn       func()
	disposed bool
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Post(fn func()) {
	m.mu.Lock()
	m.pending = append(m.pending, fn)
	m.mu.Unlock()
}

func (m *Manual) Every(interval time.Duration, fn func()) Disposer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	task := &manualTask{id: m.seq, interval: interval, next: m.now.Add(interval), fn: fn}
	m.tasks = append(m.tasks, task)

	return func() {
		m.mu.Lock()
		task.disposed = true
		m.mu.Unlock()
	}
}

func (m *Manual) Go(work func() func()) {
	m.async.Add(1)
	go func() {
		defer m.async.Done()
		if then := work(); then != nil {
			m.Post(then)
		}
	}()
}

// Settle waits for all work started with Go to return, then runs the
// continuations. Work that never returns blocks Settle.
func (m *Manual) Settle() {
	for {
		m.async.Wait()
		if m.RunPending() == 0 {
			return
		}
	}
}

// Do runs fn synchronously, then everything it posted.
func (m *Manual) Do(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fn()
	m.RunPending()
	return nil
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// RunPending executes queued callbacks, including ones queued while running,
// and reports how many ran.
func (m *Manual) RunPending() int {
	ran := 0
	for {
		m.mu.Lock()
		if len(m.pending) == 0 {
			m.mu.Unlock()
			return ran
		}
		fn := m.pending[0]
		m.pending = m.pending[1:]
		m.mu.Unlock()

		fn()
		ran++
	}
}

// Advance moves the clock forward by d, firing due periodic tasks in time
// order and running everything they post.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.RunPending()

		m.mu.Lock()
		task := m.nextDue(target)
		if task == nil {
			m.now = target
			m.mu.Unlock()
			m.RunPending()
			return
		}
		m.now = task.next
		task.next = task.next.Add(task.interval)
		m.mu.Unlock()

		task.fn()
	}
}

func (m *Manual) nextDue(target time.Time) *manualTask {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.disposed {
			live = append(live, t)
		}
	}
	m.tasks = live

	sort.SliceStable(live, func(i, j int) bool {
		if live[i].next.Equal(live[j].next) {
			return live[i].id < live[j].id
		}
		return live[i].next.Before(live[j].next)
	})
	if len(live) == 0 || live[0].next.After(target) {
		return nil
	}
	return live[0]
}

// Tasks reports the number of live periodic tasks.
func (m *Manual) Tasks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.disposed {
			n++
		}
	}
	return n
}
