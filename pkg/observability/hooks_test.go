package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopStoreHooks{}
	s.OnSave(ctx, "orgchart", 42, time.Second, nil)
	s.OnLoad(ctx, "orgchart", time.Second, nil)
	s.OnDelete(ctx, "orgchart", time.Second, nil)

	r := NoopRenderHooks{}
	r.OnRender(ctx, "svg", 1024, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	// Set custom hooks
	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Reset() should restore NoopStoreHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testStoreHooks{}
	SetStoreHooks(custom)

	// Setting nil should be ignored
	SetStoreHooks(nil)

	if Store() != custom {
		t.Error("SetStoreHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testStoreHooks struct{ NoopStoreHooks }
type testRenderHooks struct{ NoopRenderHooks }
