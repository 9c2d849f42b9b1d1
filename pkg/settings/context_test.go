package settings

import (
	"context"
	"testing"
)

func TestIntoContext(t *testing.T) {
	ctx := context.Background()
	s := &Run{NoColor: true, ConfigPath: "site.yaml"}
	newCtx := IntoContext(ctx, s)

	if ctx == newCtx {
		t.Fatal("IntoContext() should return a new context")
	}
	got, ok := FromContext(newCtx)
	if !ok {
		t.Fatal("FromContext() did not find settings")
	}
	if got != s {
		t.Error("FromContext() returned a different settings pointer")
	}
}

func TestFromContextMissing(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("FromContext() on empty context should report false")
	}
}

func TestFromContextNilSettings(t *testing.T) {
	ctx := IntoContext(context.Background(), nil)
	if _, ok := FromContext(ctx); ok {
		t.Error("FromContext() should report false for nil settings")
	}
}

func TestFromContextOverwrite(t *testing.T) {
	first := &Run{ConfigPath: "a.json"}
	second := &Run{ConfigPath: "b.json"}
	ctx := IntoContext(IntoContext(context.Background(), first), second)

	got, ok := FromContext(ctx)
	if !ok || got != second {
		t.Errorf("FromContext() = %v, want the most recent settings", got)
	}
}
