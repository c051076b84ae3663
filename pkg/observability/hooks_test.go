package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnLayoutComplete(ctx, "id", 5, 40, time.Millisecond)
	r.OnRenderStart(ctx, "id", []string{"svg"})
	r.OnRenderComplete(ctx, "id", []string{"svg"}, time.Second, nil)

	s := NoopServerHooks{}
	s.OnRequest(ctx, "GET", "/drawing.svg")
	s.OnResponse(ctx, "GET", "/drawing.svg", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customServer := &testServerHooks{}
	SetServerHooks(customServer)
	if Server() != customServer {
		t.Error("SetServerHooks should set custom hooks")
	}

	// nil is ignored
	SetRenderHooks(nil)
	if Render() != customRender {
		t.Error("SetRenderHooks(nil) should keep the current hooks")
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Reset() should restore NoopServerHooks")
	}
}

func TestConcurrentAccess(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetRenderHooks(&testRenderHooks{})
		}()
		go func() {
			defer wg.Done()
			Render().OnRenderStart(context.Background(), "id", nil)
		}()
	}
	wg.Wait()
}

type testRenderHooks struct {
	NoopRenderHooks
	mu     sync.Mutex
	starts int
}

func (h *testRenderHooks) OnRenderStart(context.Context, string, []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts++
}

type testServerHooks struct {
	NoopServerHooks
}
