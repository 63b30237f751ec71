// internal/scheduler/scheduler.go
// Delayed and repeating tasks with explicit cancellation handles.

package scheduler

import (
	"sync"
	"time"

	"github.com/imadgeboyega/vibesnap-backend/internal/metrics"
)

// Task is a handle on a scheduled function.
type Task struct {
	kind   string
	stopCh chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newTask(kind string) *Task {
	metrics.TaskScheduled(kind)
	return &Task{
		kind:   kind,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Kind is the label the task was scheduled under.
func (t *Task) Kind() string {
	return t.kind
}

// Cancel stops the task. Safe to call more than once, from any goroutine,
// including from inside the task's own function.
func (t *Task) Cancel() {
	t.once.Do(func() { close(t.stopCh) })
}

// Done is closed once the task will not run again.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

func (t *Task) finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// After runs fn once after d unless cancelled first.
func After(kind string, d time.Duration, fn func()) *Task {
	t := newTask(kind)
	go func() {
		defer close(t.done)

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			fn()
		case <-t.stopCh:
		}
	}()
	return t
}

// Every runs fn every d until cancelled.
func Every(kind string, d time.Duration, fn func()) *Task {
	t := newTask(kind)
	go func() {
		defer close(t.done)

		ticker := time.NewTicker(d)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// A cancel issued by the previous tick wins over a tick already queued.
				select {
				case <-t.stopCh:
					return
				default:
				}
				fn()
			case <-t.stopCh:
				return
			}
		}
	}()
	return t
}

// Group owns the tasks of one lifetime, such as a session or the process.
type Group struct {
	mu    sync.Mutex
	tasks []*Task
}

func NewGroup() *Group {
	return &Group{}
}

func (g *Group) After(kind string, d time.Duration, fn func()) *Task {
	return g.add(After(kind, d, fn))
}

func (g *Group) Every(kind string, d time.Duration, fn func()) *Task {
	return g.add(Every(kind, d, fn))
}

func (g *Group) add(t *Task) *Task {
	g.mu.Lock()
	defer g.mu.Unlock()

	live := g.tasks[:0]
	for _, existing := range g.tasks {
		if !existing.finished() {
			live = append(live, existing)
		}
	}
	g.tasks = append(live, t)
	return t
}

// Pending counts tasks that may still run.
func (g *Group) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := 0
	for _, t := range g.tasks {
		if !t.finished() {
			n++
		}
	}
	return n
}

// CancelAll cancels every task in the group.
func (g *Group) CancelAll() {
	g.mu.Lock()
	tasks := g.tasks
	g.tasks = nil
	g.mu.Unlock()

	for _, t := range tasks {
		t.Cancel()
	}
}
