package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/menuctl/menu"
)

// entry is one simulated native menu item.
type entry struct {
	name     string
	onSelect menu.SelectFunc
	options  string
	checked  bool
	disabled bool
	icon     string
}

// Window simulates the native menu widget inside the terminal. It keeps the
// ordered item list, per-item display state, and visibility, and raises the
// registered selection callback when the demo user picks an entry.
type Window struct {
	entries []entry
	visible bool
	x, y    int
}

// NewWindow builds an empty, hidden menu window.
func NewWindow() *Window {
	return &Window{}
}

func (w *Window) index(name string) int {
	for i, e := range w.entries {
		if e.name == name {
			return i
		}
	}
	return -1
}

func applyOptions(e *entry, options string) {
	for _, opt := range strings.Fields(options) {
		switch strings.ToLower(opt) {
		case "checked":
			e.checked = true
		case "disabled":
			e.disabled = true
		}
	}
}

// AddItem appends an entry bound to the shared selection callback.
func (w *Window) AddItem(name string, onSelect menu.SelectFunc, options string) error {
	if w.index(name) >= 0 {
		return fmt.Errorf("menu window: duplicate item %q", name)
	}
	e := entry{name: name, onSelect: onSelect, options: options}
	applyOptions(&e, options)
	w.entries = append(w.entries, e)
	return nil
}

// InsertItem places an entry before an existing one.
func (w *Window) InsertItem(before, name string, onSelect menu.SelectFunc, options string) error {
	i := w.index(before)
	if i < 0 {
		return fmt.Errorf("menu window: no item %q", before)
	}
	if w.index(name) >= 0 {
		return fmt.Errorf("menu window: duplicate item %q", name)
	}
	e := entry{name: name, onSelect: onSelect, options: options}
	applyOptions(&e, options)
	w.entries = append(w.entries[:i], append([]entry{e}, w.entries[i:]...)...)
	return nil
}

// DeleteItem removes an entry; a missing name fails.
func (w *Window) DeleteItem(name string) error {
	i := w.index(name)
	if i < 0 {
		return fmt.Errorf("menu window: no item %q", name)
	}
	w.entries = append(w.entries[:i], w.entries[i+1:]...)
	return nil
}

// RenameItem relabels an entry in place.
func (w *Window) RenameItem(oldName, newName string) error {
	i := w.index(oldName)
	if i < 0 {
		return fmt.Errorf("menu window: no item %q", oldName)
	}
	w.entries[i].name = newName
	return nil
}

// SetIcon records an icon marker for an entry.
func (w *Window) SetIcon(name, icon string) error {
	i := w.index(name)
	if i < 0 {
		return fmt.Errorf("menu window: no item %q", name)
	}
	w.entries[i].icon = icon
	return nil
}

// SetState applies a display-state operation to an entry.
func (w *Window) SetState(name string, state menu.ItemState) error {
	i := w.index(name)
	if i < 0 {
		return fmt.Errorf("menu window: no item %q", name)
	}
	e := &w.entries[i]
	switch state {
	case menu.StateCheck:
		e.checked = true
	case menu.StateUncheck:
		e.checked = false
	case menu.StateToggleCheck:
		e.checked = !e.checked
	case menu.StateEnable:
		e.disabled = false
	case menu.StateDisable:
		e.disabled = true
	case menu.StateToggleEnable:
		e.disabled = !e.disabled
	case menu.StateDefault:
		// The simulation has no default-item rendering.
	default:
		return fmt.Errorf("menu window: unknown state %d", state)
	}
	return nil
}

// Show makes the menu visible at the given cell coordinates.
func (w *Window) Show(x, y int) error {
	w.visible = true
	w.x, w.y = x, y
	return nil
}

// Handle identifies the simulated widget.
func (w *Window) Handle() string {
	return "terminal-menu"
}

// Hide dismisses the menu without a selection.
func (w *Window) Hide() {
	w.visible = false
}

// Visible reports whether the menu is currently shown.
func (w *Window) Visible() bool {
	return w.visible
}

// Position reports where the menu was last shown.
func (w *Window) Position() (x, y int) {
	return w.x, w.y
}

// Len reports the number of native entries.
func (w *Window) Len() int {
	return len(w.entries)
}

// EntryView is a read-only snapshot of one native entry for rendering.
type EntryView struct {
	Name     string
	Checked  bool
	Disabled bool
	Icon     string
}

// Items snapshots the native entries in menu order.
func (w *Window) Items() []EntryView {
	out := make([]EntryView, 0, len(w.entries))
	for _, e := range w.entries {
		out = append(out, EntryView{
			Name:     e.name,
			Checked:  e.checked,
			Disabled: e.disabled,
			Icon:     e.icon,
		})
	}
	return out
}

// Select raises the selection callback for the entry at index i, after the
// menu's own dismissal, mirroring how a real widget notifies its host.
// Disabled entries do not dispatch.
func (w *Window) Select(i int) error {
	if i < 0 || i >= len(w.entries) {
		return fmt.Errorf("menu window: index %d out of range", i)
	}
	e := w.entries[i]
	if e.disabled {
		return nil
	}
	w.visible = false
	if e.onSelect == nil {
		return nil
	}
	return e.onSelect(menu.Selection{Name: e.name, Position: i + 1, Menu: w})
}
