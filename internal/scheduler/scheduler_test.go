package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, task *Task) {
	t.Helper()
	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("task %s did not finish", task.Kind())
	}
}

func TestAfter_Fires(t *testing.T) {
	var calls int32
	task := After("test", 10*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })

	waitDone(t, task)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	task.Cancel()
	task.Cancel()
}

func TestAfter_CancelBeforeFire(t *testing.T) {
	var calls int32
	task := After("test", time.Hour, func() { atomic.AddInt32(&calls, 1) })

	task.Cancel()
	waitDone(t, task)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestEvery_RunsUntilCancelled(t *testing.T) {
	var calls int32
	task := Every("test", 5*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })

	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 3 }, 2*time.Second, time.Millisecond)
	task.Cancel()
	waitDone(t, task)

	stopped := atomic.LoadInt32(&calls)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, atomic.LoadInt32(&calls))
}

func TestGroup_CancelAll(t *testing.T) {
	g := NewGroup()
	var calls int32
	tasks := []*Task{
		g.After("reply", time.Hour, func() { atomic.AddInt32(&calls, 1) }),
		g.After("reply", time.Hour, func() { atomic.AddInt32(&calls, 1) }),
		g.Every("tick", time.Hour, func() { atomic.AddInt32(&calls, 1) }),
	}
	require.Equal(t, 3, g.Pending())

	g.CancelAll()
	for _, task := range tasks {
		waitDone(t, task)
	}
	assert.Zero(t, g.Pending())
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestGroup_DropsFinishedTasks(t *testing.T) {
	g := NewGroup()
	first := g.After("reply", time.Millisecond, func() {})
	waitDone(t, first)

	g.After("reply", time.Hour, func() {})
	assert.Equal(t, 1, g.Pending())
	g.CancelAll()
}
