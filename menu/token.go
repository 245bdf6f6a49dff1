package menu

// Token captures the UI context of one context-menu activation: which
// control (and, in window mode, which window) raised the request, whether a
// right click triggered it, the underlying list entry under the cursor, and
// the screen coordinates. A token is populated immediately before the
// native menu is shown and consumed by at most one subsequent dispatch;
// the next activation overwrites whatever is left.
type Token struct {
	Control    any
	Window     any
	Entry      int
	RightClick bool
	X, Y       int
}

// Activation is the host-supplied context for one context-menu request.
// Window is only meaningful in ModeWindow.
type Activation struct {
	Control    any
	Window     any
	Entry      int
	RightClick bool
	X, Y       int
}

// Selection is the notification the native environment delivers after the
// user picks an item: the item's name, its position in the native menu, and
// the menu it came from.
type Selection struct {
	Name     string
	Position int
	Menu     Native
}
