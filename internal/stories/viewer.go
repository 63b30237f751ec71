// internal/stories/viewer.go

package stories

import "github.com/imadgeboyega/vibesnap-backend/internal/state"

// Viewer walks a sequence of stories. It holds no timers; Tick is driven from outside.
type Viewer struct {
	stories  []state.Story
	index    int
	progress int
	done     bool
}

// NewViewer starts at the story with startID, or at the first story when the id is unknown.
func NewViewer(stories []state.Story, startID string) *Viewer {
	v := &Viewer{stories: stories, done: len(stories) == 0}
	for i, s := range stories {
		if s.ID == startID {
			v.index = i
			break
		}
	}
	return v
}

// Tick advances the progress bar. A full bar moves to the next story on the
// following tick, or finishes the viewer after the last one.
func (v *Viewer) Tick() {
	if v.done {
		return
	}
	if v.progress >= ProgressFull {
		v.Next()
		return
	}
	v.progress += ProgressStep
}

func (v *Viewer) Next() {
	if v.done {
		return
	}
	if v.index < len(v.stories)-1 {
		v.index++
		v.progress = 0
		return
	}
	v.done = true
}

// Prev goes back one story; on the first story it does nothing.
func (v *Viewer) Prev() {
	if v.done || v.index == 0 {
		return
	}
	v.index--
	v.progress = 0
}

func (v *Viewer) Index() int    { return v.index }
func (v *Viewer) Progress() int { return v.progress }
func (v *Viewer) Done() bool    { return v.done }

func (v *Viewer) Frame() Frame {
	f := Frame{Index: v.index, Progress: v.progress, Done: v.done}
	if len(v.stories) > 0 {
		f.Story = v.stories[v.index]
	}
	return f
}
