package tooltip

import (
	"errors"
	"testing"
	"time"
)

type renderCall struct {
	text string
	x, y int
	slot int
}

type fakeRenderer struct {
	pointerX, pointerY int
	renders            []renderCall
	clears             []int
	renderErr          error
}

func (f *fakeRenderer) Render(text string, x, y, slot int) error {
	if f.renderErr != nil {
		return f.renderErr
	}
	f.renders = append(f.renders, renderCall{text: text, x: x, y: y, slot: slot})
	return nil
}

func (f *fakeRenderer) Clear(slot int) error {
	f.clears = append(f.clears, slot)
	return nil
}

func (f *fakeRenderer) Pointer() (int, int) {
	return f.pointerX, f.pointerY
}

// manualClock captures scheduled callbacks so tests control when timers
// fire.
type manualClock struct {
	fns       []func()
	durations []time.Duration
	cancelled int
}

func (m *manualClock) schedule(d time.Duration, fn func()) func() {
	m.fns = append(m.fns, fn)
	m.durations = append(m.durations, d)
	return func() { m.cancelled++ }
}

func (m *manualClock) fire(i int) {
	m.fns[i]()
}

func newTestHandler(t *testing.T, r *fakeRenderer, pool *Pool, clock *manualClock, defaults ...Option) *Handler {
	t.Helper()
	cfg := HandlerConfig{Renderer: r, Pool: pool, Defaults: defaults}
	if clock != nil {
		cfg.Schedule = clock.schedule
	}
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler failed: %v", err)
	}
	return h
}

func TestNewHandlerRequiresRenderer(t *testing.T) {
	if _, err := NewHandler(HandlerConfig{}); err == nil {
		t.Fatalf("expected error for missing renderer")
	}
}

func TestShowRendersAtPointerPlusOffset(t *testing.T) {
	r := &fakeRenderer{pointerX: 100, pointerY: 200}
	h := newTestHandler(t, r, NewPool(5), nil)
	slot, err := h.Show("hello")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if len(r.renders) != 1 {
		t.Fatalf("expected one render, got %d", len(r.renders))
	}
	call := r.renders[0]
	if call.x != 116 || call.y != 216 {
		t.Fatalf("expected render at (116,216), got (%d,%d)", call.x, call.y)
	}
	if call.slot != slot {
		t.Fatalf("render tagged slot %d, Show returned %d", call.slot, slot)
	}
	if call.text != "hello" {
		t.Fatalf("unexpected text %q", call.text)
	}
}

func TestShowAbsolutePlacement(t *testing.T) {
	r := &fakeRenderer{pointerX: 100, pointerY: 200}
	h := newTestHandler(t, r, NewPool(5), nil)
	if _, err := h.Show("pin", WithAt(5, 7)); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	call := r.renders[0]
	if call.x != 5 || call.y != 7 {
		t.Fatalf("expected render at (5,7), got (%d,%d)", call.x, call.y)
	}
}

func TestOptionsMergeFieldByField(t *testing.T) {
	r := &fakeRenderer{pointerX: 10, pointerY: 10}
	clock := &manualClock{}
	h := newTestHandler(t, r, NewPool(5), clock, WithOffset(1, 2))
	if _, err := h.Show("merged", WithDuration(3*time.Second)); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	call := r.renders[0]
	if call.x != 11 || call.y != 12 {
		t.Fatalf("handler default offset lost: got (%d,%d)", call.x, call.y)
	}
	if len(clock.durations) != 1 || clock.durations[0] != 3*time.Second {
		t.Fatalf("per-call duration lost: %v", clock.durations)
	}
}

func TestNegativeDurationSchedulesAbsolute(t *testing.T) {
	r := &fakeRenderer{}
	clock := &manualClock{}
	h := newTestHandler(t, r, NewPool(5), clock)
	if _, err := h.Show("x", WithDuration(-2*time.Second)); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if clock.durations[0] != 2*time.Second {
		t.Fatalf("expected |duration| of 2s, got %v", clock.durations[0])
	}
}

func TestAutoDismissalFreesSlot(t *testing.T) {
	r := &fakeRenderer{}
	clock := &manualClock{}
	pool := NewPool(5)
	h := newTestHandler(t, r, pool, clock)
	slot, err := h.Show("bye", WithDuration(time.Second))
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if pool.Available() != 4 {
		t.Fatalf("expected 4 free slots while shown, got %d", pool.Available())
	}
	clock.fire(0)
	if pool.Available() != 5 {
		t.Fatalf("expected slot returned after expiry, got %d free", pool.Available())
	}
	if len(r.clears) != 1 || r.clears[0] != slot {
		t.Fatalf("expected clear of slot %d, got %v", slot, r.clears)
	}
}

func TestExplicitEndRacingTimerFreesOnce(t *testing.T) {
	r := &fakeRenderer{}
	clock := &manualClock{}
	pool := NewPool(5)
	h := newTestHandler(t, r, pool, clock)
	slot, err := h.Show("race", WithDuration(time.Second))
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if err := h.End(slot); err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if clock.cancelled != 1 {
		t.Fatalf("expected timer cancellation, got %d", clock.cancelled)
	}
	// A timer that already fired before the cancel landed must not free the
	// slot a second time.
	clock.fire(0)
	if pool.Available() != 5 {
		t.Fatalf("slot freed more than once: %d free of 5", pool.Available())
	}
	if len(r.clears) != 1 {
		t.Fatalf("expected a single clear, got %d", len(r.clears))
	}
}

func TestEndOnReleasedSlotFails(t *testing.T) {
	r := &fakeRenderer{}
	h := newTestHandler(t, r, NewPool(5), nil)
	slot, _ := h.Show("once")
	if err := h.End(slot); err != nil {
		t.Fatalf("first end failed: %v", err)
	}
	if err := h.End(slot); !errors.Is(err, ErrInactiveSlot) {
		t.Fatalf("expected ErrInactiveSlot on second end, got %v", err)
	}
}

func TestShowFailsWhenPoolExhausted(t *testing.T) {
	r := &fakeRenderer{}
	h := newTestHandler(t, r, NewPool(1), nil)
	if _, err := h.Show("one"); err != nil {
		t.Fatalf("first show failed: %v", err)
	}
	_, err := h.Show("two")
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityError, got %v", err)
	}
	if len(r.renders) != 1 {
		t.Fatalf("render must not happen without a slot")
	}
}

func TestRenderFailureReturnsSlot(t *testing.T) {
	r := &fakeRenderer{renderErr: errors.New("no overlay")}
	pool := NewPool(2)
	h := newTestHandler(t, r, pool, nil)
	if _, err := h.Show("nope"); err == nil {
		t.Fatalf("expected render error")
	}
	if pool.Available() != 2 {
		t.Fatalf("slot leaked on render failure: %d free of 2", pool.Available())
	}
}
