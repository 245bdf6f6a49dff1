package menu

// SelectFunc receives the selection notification for one item. Every item a
// controller registers shares the same callback; the native layer invokes
// it exactly once per user selection, after the menu's own dismissal.
type SelectFunc func(Selection) error

// ItemState is a native display-state operation forwarded verbatim.
type ItemState int

const (
	StateCheck ItemState = iota
	StateUncheck
	StateToggleCheck
	StateEnable
	StateDisable
	StateToggleEnable
	StateDefault
)

// Native is the opaque menu widget the controller drives. Implementations
// wrap an OS menu control (or, in tests and demos, a simulation). All
// operations are synchronous; a missing name must fail, never no-op.
type Native interface {
	AddItem(name string, onSelect SelectFunc, options string) error
	InsertItem(before, name string, onSelect SelectFunc, options string) error
	DeleteItem(name string) error
	RenameItem(oldName, newName string) error
	SetIcon(name, icon string) error
	SetState(name string, state ItemState) error
	Show(x, y int) error
	Handle() string
}
