package tooltip

import (
	"errors"
	"sync"
	"time"

	"github.com/atomicstack/menuctl/internal/logging/events"
)

// Renderer is the transient-overlay primitive the handler draws through.
// Render places text near a screen coordinate tagged with a slot identifier,
// Clear removes the overlay for that slot, and Pointer reports the current
// cursor position for mouse-relative placement.
type Renderer interface {
	Render(text string, x, y, slot int) error
	Clear(slot int) error
	Pointer() (x, y int)
}

// Mode selects how Show interprets coordinates.
type Mode string

const (
	// ModeMouse places the tooltip at the pointer position plus an offset.
	ModeMouse Mode = "mouse"
	// ModeAbsolute places the tooltip at literal screen coordinates.
	ModeAbsolute Mode = "absolute"
)

// ScheduleFunc runs fn once after d and returns a cancel function. The
// default implementation wraps time.AfterFunc; tests substitute a manual
// clock.
type ScheduleFunc func(d time.Duration, fn func()) (cancel func())

func afterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

type options struct {
	mode     Mode
	x, y     int
	duration time.Duration
}

// Option adjusts a single display setting. Options resolve field by field:
// per-call options override handler defaults, which override the package
// defaults (mouse mode, 16x16 offset, no auto-dismissal).
type Option func(*options)

// WithMode sets the coordinate interpretation.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithOffset sets the pointer-relative offset used in mouse mode.
func WithOffset(x, y int) Option {
	return func(o *options) {
		o.mode = ModeMouse
		o.x, o.y = x, y
	}
}

// WithAt sets literal screen coordinates and switches to absolute mode.
func WithAt(x, y int) Option {
	return func(o *options) {
		o.mode = ModeAbsolute
		o.x, o.y = x, y
	}
}

// WithDuration schedules automatic dismissal after |d|. Zero keeps the
// tooltip up until End is called.
func WithDuration(d time.Duration) Option {
	return func(o *options) { o.duration = d }
}

func packageDefaults() options {
	return options{mode: ModeMouse, x: 16, y: 16}
}

// HandlerConfig bundles the collaborators a Handler needs.
type HandlerConfig struct {
	// Renderer draws and clears overlays. Required.
	Renderer Renderer
	// Pool supplies slot identifiers. Nil uses the shared DefaultPool.
	Pool *Pool
	// Schedule arms auto-dismissal timers. Nil uses time.AfterFunc.
	Schedule ScheduleFunc
	// Defaults apply to every Show before per-call options.
	Defaults []Option
}

// Handler renders text near a position for a duration or until dismissed,
// borrowing a slot from a bounded pool for each visible tooltip.
type Handler struct {
	r        Renderer
	pool     *Pool
	schedule ScheduleFunc
	defaults []Option

	mu     sync.Mutex
	timers map[int]func()
}

// NewHandler validates the configuration and builds a handler.
func NewHandler(cfg HandlerConfig) (*Handler, error) {
	if cfg.Renderer == nil {
		return nil, errors.New("tooltip: renderer is required")
	}
	pool := cfg.Pool
	if pool == nil {
		pool = DefaultPool()
	}
	schedule := cfg.Schedule
	if schedule == nil {
		schedule = afterFunc
	}
	return &Handler{
		r:        cfg.Renderer,
		pool:     pool,
		schedule: schedule,
		defaults: cfg.Defaults,
		timers:   make(map[int]func()),
	}, nil
}

// Pool exposes the slot pool backing this handler.
func (h *Handler) Pool() *Pool {
	return h.pool
}

// Show acquires a slot, renders text at the resolved position, and arms an
// auto-dismissal timer when the resolved duration is nonzero. The returned
// slot identifier dismisses the tooltip through End. An exhausted pool fails
// with a CapacityError before anything is rendered.
func (h *Handler) Show(text string, opts ...Option) (int, error) {
	o := packageDefaults()
	for _, opt := range h.defaults {
		opt(&o)
	}
	for _, opt := range opts {
		opt(&o)
	}

	slot, err := h.pool.Acquire()
	if err != nil {
		return 0, err
	}

	x, y := o.x, o.y
	if o.mode == ModeMouse {
		px, py := h.r.Pointer()
		x, y = px+o.x, py+o.y
	}
	if err := h.r.Render(text, x, y, slot); err != nil {
		h.pool.Release(slot)
		return 0, err
	}

	if o.duration != 0 {
		d := o.duration
		if d < 0 {
			d = -d
		}
		cancel := h.schedule(d, func() { h.expire(slot) })
		h.mu.Lock()
		h.timers[slot] = cancel
		h.mu.Unlock()
	}
	return slot, nil
}

// End dismisses the tooltip in the given slot and returns the slot to the
// pool. The slot is freed exactly once even when an explicit End races the
// auto-dismissal timer: whichever path releases first wins, the loser fails
// with ErrInactiveSlot and clears nothing.
func (h *Handler) End(slot int) error {
	h.mu.Lock()
	cancel := h.timers[slot]
	delete(h.timers, slot)
	h.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if err := h.pool.Release(slot); err != nil {
		return err
	}
	events.Tooltip.End(slot)
	return h.r.Clear(slot)
}

// expire is the timer path of End; a lost race with an explicit End is not
// an error.
func (h *Handler) expire(slot int) {
	h.mu.Lock()
	delete(h.timers, slot)
	h.mu.Unlock()
	if err := h.pool.Release(slot); err != nil {
		return
	}
	events.Tooltip.End(slot)
	h.r.Clear(slot)
}
