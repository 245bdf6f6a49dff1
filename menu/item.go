package menu

// Action is what a menu item does when selected. Exactly three variants
// exist: Submenu opens a native child menu, Handler runs a function, and
// Named defers to a method the controller's Resolver knows by name.
type Action interface {
	isAction()
}

// Submenu binds an item to a native child menu. Selecting such an item
// never dispatches a handler; the native layer opens the referenced menu.
type Submenu struct {
	Menu Native
}

func (Submenu) isAction() {}

// Handler is a callable item action. It receives the owning controller, the
// selection notification, and the activation token when the menu was opened
// as a context menu (nil otherwise). The returned value feeds the tooltip
// resolution step; a returned error propagates to the host unmodified.
type Handler func(c *Controller, sel Selection, tok *Token) (any, error)

func (Handler) isAction() {}

// Named is a symbolic action resolved against the controller's Resolver at
// dispatch time.
type Named string

func (Named) isAction() {}

// Resolver maps symbolic action names to handlers. Hosts that register
// Named actions implement it; an explicit lookup table satisfies it.
type Resolver interface {
	ResolveAction(name string) (Handler, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (Handler, bool)

func (f ResolverFunc) ResolveAction(name string) (Handler, bool) {
	return f(name)
}

// Item binds a display name to an action, native display options, and a
// tooltip policy. The name doubles as the registry key; renames go through
// Controller.Rename so the key stays in step with the native entry.
type Item struct {
	name    string
	Action  Action
	Options string
	Tip     Tip
}

// Name returns the item's display name and registry key.
func (it *Item) Name() string {
	return it.name
}
