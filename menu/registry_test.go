package menu

import (
	"reflect"
	"testing"
)

func TestRegistryKeepsInsertionOrder(t *testing.T) {
	r := NewRegistry(true)
	for _, name := range []string{"open", "save", "close"} {
		r.Set(&Item{name: name})
	}
	got := r.Names()
	want := []string{"open", "save", "close"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
	if r.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", r.Len())
	}
}

func TestRegistryReplaceKeepsPosition(t *testing.T) {
	r := NewRegistry(true)
	r.Set(&Item{name: "a"})
	r.Set(&Item{name: "b"})
	replacement := &Item{name: "a", Options: "Checked"}
	r.Set(replacement)
	if r.Len() != 2 {
		t.Fatalf("replace must not grow the registry: %d", r.Len())
	}
	if got := r.Names(); got[0] != "a" {
		t.Fatalf("replaced entry moved: %v", got)
	}
	item, _ := r.Get("a")
	if item != replacement {
		t.Fatalf("expected replacement entry to win")
	}
}

func TestRegistryCaseInsensitiveLookup(t *testing.T) {
	r := NewRegistry(false)
	r.Set(&Item{name: "Copy"})
	if !r.Has("copy") || !r.Has("COPY") {
		t.Fatalf("case-insensitive registry missed folded lookups")
	}
	item, ok := r.Get("cOpY")
	if !ok || item.Name() != "Copy" {
		t.Fatalf("expected original item back, got %v ok=%v", item, ok)
	}
	if !r.Delete("COPY") {
		t.Fatalf("folded delete failed")
	}
	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
}

func TestRegistryCaseSensitiveAllowsDistinctCasings(t *testing.T) {
	r := NewRegistry(true)
	r.Set(&Item{name: "Copy"})
	r.Set(&Item{name: "copy"})
	if r.Len() != 2 {
		t.Fatalf("case-sensitive registry folded distinct names: %d", r.Len())
	}
}

func TestRegistryDeleteUnknown(t *testing.T) {
	r := NewRegistry(true)
	if r.Delete("ghost") {
		t.Fatalf("delete of unknown name must report false")
	}
}
