package observe

import (
	"reflect"
	"testing"
)

func TestEventEmitInRegistrationOrder(t *testing.T) {
	e := NewEvent[string]()
	var got []string
	for _, name := range []string{"a", "b", "c", "d"} {
		name := name
		h := e.Hook(func(v string) { got = append(got, name+":"+v) })
		defer h.Release()
	}
	e.Emit("x")
	want := []string{"a:x", "b:x", "c:x", "d:x"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order: got %v want %v", got, want)
	}
}

func TestEventEndToEndLog(t *testing.T) {
	e := NewEvent[string]()
	var log []string
	h := e.Hook(func(v string) { log = append(log, v) })
	defer h.Release()
	e.Emit("a")
	e.Emit("b")
	if !reflect.DeepEqual(log, []string{"a", "b"}) {
		t.Fatalf("log=%v", log)
	}
}

func TestEventReleaseStopsDelivery(t *testing.T) {
	e := NewEvent[int]()
	calls := 0
	h := e.Hook(func(int) { calls++ })
	e.Emit(1)
	h.Release()
	e.Emit(2)
	e.Emit(3)
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}
}

func TestEventReleaseIdempotent(t *testing.T) {
	e := NewEvent[int]()
	h := e.Hook(func(int) {})
	h.Release()
	h.Release()
	h.Release()
	var nilHook *Hook
	nilHook.Release() // must not panic
	if e.Len() != 0 {
		t.Fatalf("len=%d", e.Len())
	}
}

func TestEventLeakKeepsCallback(t *testing.T) {
	e := NewEvent[int]()
	calls := 0
	h := e.Hook(func(int) { calls++ })
	h.Leak()
	h.Release()
	e.Emit(1)
	if calls != 1 {
		t.Fatalf("calls=%d, want 1 (leaked hook must survive Release)", calls)
	}
}

func TestEventEmitWithNoHooks(t *testing.T) {
	e := NewEvent[struct{}]()
	e.Emit(struct{}{}) // must not panic
	if e.Len() != 0 {
		t.Fatalf("len=%d", e.Len())
	}
}

func TestEventHookDuringEmitNotInvokedSamePass(t *testing.T) {
	e := NewEvent[int]()
	lateCalls := 0
	var late *Hook
	h := e.Hook(func(int) {
		late = e.Hook(func(int) { lateCalls++ })
	})
	defer h.Release()
	e.Emit(1)
	if lateCalls != 0 {
		t.Fatalf("hook added during pass was invoked in that pass")
	}
	e.Emit(2)
	if lateCalls != 1 {
		t.Fatalf("lateCalls=%d, want 1", lateCalls)
	}
	late.Release()
}

func TestEventReleaseOtherDuringEmit(t *testing.T) {
	e := NewEvent[int]()
	var got []string
	var hb *Hook
	ha := e.Hook(func(int) {
		got = append(got, "a")
		hb.Release() // b has not run yet; must be skipped
	})
	hb = e.Hook(func(int) { got = append(got, "b") })
	hc := e.Hook(func(int) { got = append(got, "c") })
	defer ha.Release()
	defer hc.Release()
	e.Emit(1)
	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestEventReleaseSelfDuringEmit(t *testing.T) {
	e := NewEvent[int]()
	var got []string
	var ha *Hook
	ha = e.Hook(func(int) {
		got = append(got, "a")
		ha.Release()
	})
	hb := e.Hook(func(int) { got = append(got, "b") })
	defer hb.Release()
	e.Emit(1)
	e.Emit(2)
	want := []string{"a", "b", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestEventPanicAbortsPassLeavesRegistryIntact(t *testing.T) {
	e := NewEvent[int]()
	var got []string
	h1 := e.Hook(func(int) { got = append(got, "1") })
	h2 := e.Hook(func(int) { panic("boom") })
	h3 := e.Hook(func(int) { got = append(got, "3") })
	defer h1.Release()
	defer h3.Release()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("panic did not propagate to Emit caller")
			}
		}()
		e.Emit(1)
	}()
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("pass not aborted fail-fast: got %v", got)
	}

	// Registry must still work after the failed pass.
	h2.Release()
	got = nil
	e.Emit(2)
	if !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Fatalf("registry corrupted after panic: got %v", got)
	}
}
