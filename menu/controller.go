package menu

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/atomicstack/menuctl/internal/logging/events"
	"github.com/atomicstack/menuctl/tooltip"
)

// Mode describes how a controller is bound to the host UI. It decides
// whether context-menu activations are expected and which context the
// activation carries.
type Mode int

const (
	// ModePlain is a menu that is never shown as a context menu; dispatch
	// runs without an activation token.
	ModePlain Mode = iota
	// ModeControl binds the menu as the context menu of a single control.
	ModeControl
	// ModeWindow binds the menu at the window level; activations carry the
	// originating control as well as the window.
	ModeWindow
)

// Config bundles everything a controller needs. Native is required; all
// other fields have working zero values.
type Config struct {
	// Native is the menu widget the controller mirrors items into.
	Native Native
	// CaseSensitive fixes the registry's name comparison.
	CaseSensitive bool
	// Mode selects the activation binding.
	Mode Mode
	// ShowTips enables tooltip display after dispatch.
	ShowTips bool
	// Tips renders tooltips. Without one, ShowTips has no effect.
	Tips *tooltip.Handler
	// Resolver resolves Named actions at dispatch time.
	Resolver Resolver
	// OnActivate runs once per context-menu activation, after the token is
	// populated and before the native menu is shown. Intended for
	// enabling/disabling items from the token's context.
	OnActivate func(c *Controller, tok *Token)
	// Items are registered in order during construction.
	Items []ItemSpec
}

// Controller is the façade over one native menu: it mirrors named items
// into the widget and the registry, routes selection notifications to the
// matching item action, and shows the optional result tooltip.
type Controller struct {
	native     Native
	reg        *Registry
	mode       Mode
	showTips   bool
	tips       *tooltip.Handler
	resolver   Resolver
	onActivate func(*Controller, *Token)
	token      *Token
}

// New validates the configuration, builds the controller, and registers any
// configured default items.
func New(cfg Config) (*Controller, error) {
	if cfg.Native == nil {
		return nil, errors.New("menu: native menu is required")
	}
	c := &Controller{
		native:     cfg.Native,
		reg:        NewRegistry(cfg.CaseSensitive),
		mode:       cfg.Mode,
		showTips:   cfg.ShowTips,
		tips:       cfg.Tips,
		resolver:   cfg.Resolver,
		onActivate: cfg.OnActivate,
	}
	if len(cfg.Items) > 0 {
		if err := c.AddBulk(cfg.Items); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Native returns the wrapped menu widget.
func (c *Controller) Native() Native {
	return c.native
}

// Registry returns the controller's item registry.
func (c *Controller) Registry() *Registry {
	return c.reg
}

// Add registers a new item in the native menu and the registry and returns
// it. A name already present fails with a NameConflictError before anything
// is mutated, so the two views cannot drift apart on the rejected path.
func (c *Controller) Add(name string, action Action, options string, tip Tip) (*Item, error) {
	if name == "" {
		return nil, errors.New("menu: item name must not be empty")
	}
	if c.reg.Has(name) {
		return nil, &NameConflictError{Name: name}
	}
	if err := c.native.AddItem(name, c.onSelect, options); err != nil {
		return nil, fmt.Errorf("menu: add %q: %w", name, err)
	}
	item := &Item{name: name, Action: action, Options: options, Tip: tip}
	c.reg.Set(item)
	events.Menu.Add(name, options)
	return item, nil
}

// Insert registers a new item positioned before an existing one. Apart from
// placement it follows Add semantics; registry iteration order remains
// insertion order regardless of native placement.
func (c *Controller) Insert(before, name string, action Action, options string, tip Tip) (*Item, error) {
	if name == "" {
		return nil, errors.New("menu: item name must not be empty")
	}
	if c.reg.Has(name) {
		return nil, &NameConflictError{Name: name}
	}
	anchor, ok := c.reg.Get(before)
	if !ok {
		return nil, &ItemNotFoundError{Name: before}
	}
	if err := c.native.InsertItem(anchor.name, name, c.onSelect, options); err != nil {
		return nil, fmt.Errorf("menu: insert %q before %q: %w", name, before, err)
	}
	item := &Item{name: name, Action: action, Options: options, Tip: tip}
	c.reg.Set(item)
	events.Menu.Insert(before, name)
	return item, nil
}

// InsertAt positions the new item before the entry at the given insertion
// index.
func (c *Controller) InsertAt(pos int, name string, action Action, options string, tip Tip) (*Item, error) {
	names := c.reg.Names()
	if pos < 0 || pos >= len(names) {
		return nil, fmt.Errorf("menu: insert position %d out of range [0,%d)", pos, len(names))
	}
	return c.Insert(names[pos], name, action, options, tip)
}

// AddBulk applies Add semantics to each record in order. A failure partway
// leaves the earlier entries committed; there is no rollback.
func (c *Controller) AddBulk(specs []ItemSpec) error {
	for i, spec := range specs {
		action := spec.Do
		if action == nil && spec.Action != "" {
			action = Named(spec.Action)
		}
		var tip Tip
		if spec.Tooltip != "" {
			tip = TipText(spec.Tooltip)
		}
		if _, err := c.Add(spec.Name, action, spec.Options, tip); err != nil {
			return fmt.Errorf("menu: bulk add entry %d: %w", i, err)
		}
	}
	return nil
}

// Delete removes an item from the native menu and then the registry.
func (c *Controller) Delete(name string) error {
	item, ok := c.reg.Get(name)
	if !ok {
		return &ItemNotFoundError{Name: name}
	}
	if err := c.native.DeleteItem(item.name); err != nil {
		return fmt.Errorf("menu: delete %q: %w", name, err)
	}
	c.reg.Delete(name)
	events.Menu.Delete(item.name)
	return nil
}

// DeleteBulk deletes each named item in order, stopping at the first
// failure with earlier deletions committed.
func (c *Controller) DeleteBulk(names []string) error {
	for _, name := range names {
		if err := c.Delete(name); err != nil {
			return err
		}
	}
	return nil
}

// DeleteByPattern deletes every item whose name matches the expression and
// reports how many were removed. The matching name set is snapshotted
// before the first deletion so the registry is never mutated mid-scan.
// Best effort: a failing native call aborts with earlier deletions kept.
func (c *Controller) DeleteByPattern(pattern string) (int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("menu: delete pattern: %w", err)
	}
	var matched []string
	for _, name := range c.reg.Names() {
		if re.MatchString(name) {
			matched = append(matched, name)
		}
	}
	for i, name := range matched {
		if err := c.Delete(name); err != nil {
			return i, err
		}
	}
	events.Menu.DeletePattern(pattern, len(matched))
	return len(matched), nil
}

// Rename moves an item to a new name in the native menu and re-keys the
// registry entry: rename native, drop the old key, update the item, insert
// under the new key. Best effort: an intervening native failure leaves the
// previous state in place, but there is no rollback once the native rename
// has happened.
func (c *Controller) Rename(oldName, newName string) error {
	if newName == "" {
		return errors.New("menu: item name must not be empty")
	}
	item, ok := c.reg.Get(oldName)
	if !ok {
		return &ItemNotFoundError{Name: oldName}
	}
	if other, exists := c.reg.Get(newName); exists && other != item {
		return &NameConflictError{Name: newName}
	}
	if err := c.native.RenameItem(item.name, newName); err != nil {
		return fmt.Errorf("menu: rename %q: %w", oldName, err)
	}
	c.reg.Delete(oldName)
	item.name = newName
	c.reg.Set(item)
	events.Menu.Rename(oldName, newName)
	return nil
}

// Get returns the item registered under name.
func (c *Controller) Get(name string) (*Item, bool) {
	return c.reg.Get(name)
}

// Has reports whether an item is registered under name.
func (c *Controller) Has(name string) bool {
	return c.reg.Has(name)
}

// Names lists registered item names in insertion order.
func (c *Controller) Names() []string {
	return c.reg.Names()
}

func (c *Controller) setState(name string, state ItemState) error {
	item, ok := c.reg.Get(name)
	if !ok {
		return &ItemNotFoundError{Name: name}
	}
	return c.native.SetState(item.name, state)
}

// Check marks the named item checked in the native menu.
func (c *Controller) Check(name string) error { return c.setState(name, StateCheck) }

// Uncheck clears the named item's check mark.
func (c *Controller) Uncheck(name string) error { return c.setState(name, StateUncheck) }

// ToggleCheck flips the named item's check mark.
func (c *Controller) ToggleCheck(name string) error { return c.setState(name, StateToggleCheck) }

// Enable makes the named item selectable.
func (c *Controller) Enable(name string) error { return c.setState(name, StateEnable) }

// Disable greys the named item out.
func (c *Controller) Disable(name string) error { return c.setState(name, StateDisable) }

// ToggleEnable flips the named item's enabled state.
func (c *Controller) ToggleEnable(name string) error { return c.setState(name, StateToggleEnable) }

// SetDefault marks the named item as the menu's default entry.
func (c *Controller) SetDefault(name string) error { return c.setState(name, StateDefault) }

// SetIcon forwards an icon assignment to the native menu.
func (c *Controller) SetIcon(name, icon string) error {
	item, ok := c.reg.Get(name)
	if !ok {
		return &ItemNotFoundError{Name: name}
	}
	return c.native.SetIcon(item.name, icon)
}

// Show displays the native menu at the given screen coordinates without
// going through the activation path. Context-menu hosts use Activate
// instead so dispatch sees a token.
func (c *Controller) Show(x, y int) error {
	return c.native.Show(x, y)
}
