package wrapper

import (
	"testing"

	"github.com/justyntemme/clapgo/pkg/framework/plugin"
)

func TestScheduleTask(t *testing.T) {
	t.Run("MainThreadExecutesSynchronously", func(t *testing.T) {
		h := &testHost{threadCheck: true, onMainThread: true, latency: true}
		w, err := New(newTestPlugin(), h)
		if err != nil {
			t.Fatal(err)
		}

		if !w.ScheduleTask(TaskLatencyChanged) {
			t.Fatal("main-thread submission should succeed")
		}
		if h.latencyChanges != 1 {
			t.Error("main-thread submission should execute immediately")
		}
		if h.callbacks != 0 {
			t.Error("synchronous execution must not request a callback")
		}
		if len(w.tasks) != 0 {
			t.Error("synchronous execution must not touch the queue")
		}
	})

	t.Run("OtherThreadQueuesAndRequestsCallback", func(t *testing.T) {
		h := &testHost{threadCheck: true, onMainThread: false, latency: true}
		w, err := New(newTestPlugin(), h)
		if err != nil {
			t.Fatal(err)
		}

		if !w.ScheduleTask(TaskLatencyChanged) {
			t.Fatal("submission should succeed while the queue has room")
		}
		if h.latencyChanges != 0 {
			t.Error("queued task must not execute before the callback")
		}
		if h.callbacks != 1 {
			t.Errorf("expected one callback request, got %d", h.callbacks)
		}

		h.onMainThread = true
		w.OnMainThread()
		if h.latencyChanges != 1 {
			t.Error("callback should execute the queued task")
		}
		if len(w.tasks) != 0 {
			t.Error("queue should be drained")
		}
	})

	t.Run("FullQueueRejectsWithoutBlocking", func(t *testing.T) {
		h := &testHost{threadCheck: true, onMainThread: false}
		w, err := New(newTestPlugin(), h)
		if err != nil {
			t.Fatal(err)
		}

		for i := 0; i < TaskQueueCapacity; i++ {
			if !w.ScheduleTask(TaskLatencyChanged) {
				t.Fatalf("submission %d should fit", i)
			}
		}
		// This must return immediately instead of waiting for room.
		if w.ScheduleTask(TaskLatencyChanged) {
			t.Error("submission to a full queue must report failure")
		}
	})

	t.Run("GoroutineFallbackWithoutThreadCheck", func(t *testing.T) {
		h := &testHost{latency: true}
		w, err := New(newTestPlugin(), h)
		if err != nil {
			t.Fatal(err)
		}

		// The constructing goroutine counts as the main thread.
		if !w.ScheduleTask(TaskLatencyChanged) {
			t.Fatal("submission should succeed")
		}
		if h.latencyChanges != 1 {
			t.Error("constructing goroutine should execute synchronously")
		}

		done := make(chan bool)
		go func() {
			done <- w.ScheduleTask(TaskLatencyChanged)
		}()
		if !<-done {
			t.Fatal("submission from another goroutine should queue")
		}
		if h.latencyChanges != 1 {
			t.Error("other goroutines must defer to the queue")
		}
		w.OnMainThread()
		if h.latencyChanges != 2 {
			t.Error("queued task not executed on drain")
		}
	})
}

func TestLatencyReporting(t *testing.T) {
	h := &testHost{threadCheck: true, onMainThread: true, latency: true}
	w, err := New(newTestPlugin(), h)
	if err != nil {
		t.Fatal(err)
	}

	w.SetLatencySamples(256)
	if w.LatencySamples() != 256 {
		t.Errorf("expected 256 samples, got %d", w.LatencySamples())
	}
	if h.latencyChanges != 1 {
		t.Error("latency change should notify the host")
	}
}

func TestInfoPassthrough(t *testing.T) {
	w, p, _ := newTestWrapper(t)
	if w.Info() != p.Info() {
		t.Error("wrapper should expose the plugin's descriptor")
	}
	var zero plugin.Info
	if w.Info() == zero {
		t.Error("descriptor should not be empty")
	}
}
