// internal/stories/player.go

package stories

import (
	"sync"
	"time"

	"github.com/imadgeboyega/vibesnap-backend/internal/scheduler"
	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

// Player drives a Viewer from a repeating task. The task is re-armed whenever the
// current story changes and cancelled when the player finishes or is closed.
type Player struct {
	mu      sync.Mutex
	viewer  *Viewer
	tick    time.Duration
	group   *scheduler.Group
	task    *scheduler.Task
	onFrame func(Frame)
	stopped bool

	finished chan struct{}
	once     sync.Once
}

func NewPlayer(stories []state.Story, startID string, tick time.Duration, onFrame func(Frame)) *Player {
	if onFrame == nil {
		onFrame = func(Frame) {}
	}
	return &Player{
		viewer:   NewViewer(stories, startID),
		tick:     tick,
		group:    scheduler.NewGroup(),
		onFrame:  onFrame,
		finished: make(chan struct{}),
	}
}

// Start shows the first frame and begins ticking.
func (p *Player) Start() {
	p.mu.Lock()
	frame := p.viewer.Frame()
	if frame.Done {
		p.stopped = true
	} else {
		p.arm()
	}
	p.mu.Unlock()

	p.emit(frame)
}

func (p *Player) Next() { p.navigate((*Viewer).Next) }
func (p *Player) Prev() { p.navigate((*Viewer).Prev) }

// Close stops the player. Safe to call more than once.
func (p *Player) Close() {
	p.mu.Lock()
	p.stopped = true
	p.group.CancelAll()
	p.mu.Unlock()

	p.once.Do(func() { close(p.finished) })
}

// Done is closed when the last story has played or the player was closed.
func (p *Player) Done() <-chan struct{} {
	return p.finished
}

func (p *Player) step() {
	p.navigate((*Viewer).Tick)
}

func (p *Player) navigate(move func(*Viewer)) {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}

	before := p.viewer.Index()
	move(p.viewer)
	frame := p.viewer.Frame()

	switch {
	case frame.Done:
		p.stopped = true
		p.group.CancelAll()
	case frame.Index != before:
		p.arm()
	}
	p.mu.Unlock()

	p.emit(frame)
}

// emit hands frame to the callback; the final frame also closes Done.
func (p *Player) emit(frame Frame) {
	p.onFrame(frame)
	if frame.Done {
		p.once.Do(func() { close(p.finished) })
	}
}

// arm replaces the running tick task. Callers hold mu.
func (p *Player) arm() {
	if p.task != nil {
		p.task.Cancel()
	}
	p.task = p.group.Every("story_tick", p.tick, p.step)
}
