package ui

import (
	"sort"
	"sync"
)

// note is one rendered tooltip.
type note struct {
	text string
	x, y int
}

// Overlay simulates the OS tooltip primitive in the terminal. Auto-dismissal
// timers fire on their own goroutines, so access is mutex-guarded and every
// change goes through notify to request a redraw from the Bubble Tea loop.
type Overlay struct {
	mu       sync.Mutex
	notes    map[int]note
	pointerX int
	pointerY int
	notify   func()
}

// NewOverlay builds an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{notes: make(map[int]note)}
}

// SetNotify installs the redraw callback.
func (o *Overlay) SetNotify(fn func()) {
	o.mu.Lock()
	o.notify = fn
	o.mu.Unlock()
}

// SetPointer records the simulated cursor position used for mouse-relative
// tooltip placement.
func (o *Overlay) SetPointer(x, y int) {
	o.mu.Lock()
	o.pointerX, o.pointerY = x, y
	o.mu.Unlock()
}

// Pointer reports the simulated cursor position.
func (o *Overlay) Pointer() (int, int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pointerX, o.pointerY
}

// Render places tooltip text at a cell coordinate tagged with a slot.
func (o *Overlay) Render(text string, x, y, slot int) error {
	o.mu.Lock()
	o.notes[slot] = note{text: text, x: x, y: y}
	fn := o.notify
	o.mu.Unlock()
	if fn != nil {
		fn()
	}
	return nil
}

// Clear removes the tooltip tagged with slot.
func (o *Overlay) Clear(slot int) error {
	o.mu.Lock()
	delete(o.notes, slot)
	fn := o.notify
	o.mu.Unlock()
	if fn != nil {
		fn()
	}
	return nil
}

// Notes returns the visible tooltips in slot order.
func (o *Overlay) Notes() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	slots := make([]int, 0, len(o.notes))
	for slot := range o.notes {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		out = append(out, o.notes[slot].text)
	}
	return out
}
