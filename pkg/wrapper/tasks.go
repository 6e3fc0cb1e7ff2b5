package wrapper

import (
	"bytes"
	"runtime"
	"strconv"

	"github.com/justyntemme/clapgo/pkg/framework/debug"
)

// TaskQueueCapacity bounds the number of pending main-thread tasks.
// Submissions beyond it are rejected rather than blocking the submitter,
// which may be the audio thread.
const TaskQueueCapacity = 512

// Task is a unit of deferred main-thread work.
type Task uint8

const (
	// TaskLatencyChanged tells the host the latency reported by
	// LatencySamples is stale.
	TaskLatencyChanged Task = iota
)

// ScheduleTask runs a task on the main thread. When called from the main
// thread it executes synchronously; otherwise it is queued and the host
// is asked for a callback. Returns false when the queue is full, in
// which case the task is dropped.
func (w *Wrapper) ScheduleTask(t Task) bool {
	if w.isMainThread() {
		w.executeTask(t)
		return true
	}
	select {
	case w.tasks <- t:
		w.host.RequestCallback()
		return true
	default:
		return false
	}
}

// OnMainThread drains and executes every queued task. The host calls
// this from its main thread in response to RequestCallback.
func (w *Wrapper) OnMainThread() {
	for {
		select {
		case t := <-w.tasks:
			w.executeTask(t)
		default:
			return
		}
	}
}

func (w *Wrapper) executeTask(t Task) {
	switch t {
	case TaskLatencyChanged:
		if w.latencyHost != nil {
			w.latencyHost.LatencyChanged()
		}
	default:
		debug.Warn("unknown task %d", t)
	}
}

// isMainThread prefers the host's thread-check capability. Hosts without
// it fall back to comparing against the goroutine the instance was
// created on, which is where well-behaved hosts drive the main-thread
// protocol from.
func (w *Wrapper) isMainThread() bool {
	if w.threadCheck != nil {
		return w.threadCheck.IsMainThread()
	}
	return goroutineID() == w.mainGoroutine
}

// goroutineID parses the current goroutine's ID from its stack header.
// Slow, but only reached on hosts missing the thread-check capability.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// The header looks like "goroutine 12 [running]:".
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
