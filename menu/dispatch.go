package menu

import (
	"errors"
	"fmt"

	"github.com/atomicstack/menuctl/internal/logging/events"
)

// SetMode rebinds the controller's activation mode. Dropping back to
// ModePlain discards any pending token.
func (c *Controller) SetMode(m Mode) {
	c.mode = m
	if m == ModePlain {
		c.token = nil
	}
}

// Mode reports the current activation binding.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SetShowTips toggles tooltip display after dispatch.
func (c *Controller) SetShowTips(enabled bool) {
	c.showTips = enabled
}

// Token returns the pending activation token, if any. It is populated by
// Activate and cleared by the next Select.
func (c *Controller) Token() *Token {
	return c.token
}

// Activate records one context-menu request: it captures the UI context
// into a fresh token, runs the availability hook, and shows the native menu
// at the request coordinates. The token stays pending until the next
// Select consumes it; a dismissal without selection simply leaves it to be
// overwritten by the following activation.
func (c *Controller) Activate(act Activation) error {
	switch c.mode {
	case ModePlain:
		return errors.New("menu: controller is not bound as a context menu")
	case ModeWindow:
		if act.Window == nil {
			return errors.New("menu: window-mode activation requires a window")
		}
	}
	c.token = &Token{
		Control:    act.Control,
		Window:     act.Window,
		Entry:      act.Entry,
		RightClick: act.RightClick,
		X:          act.X,
		Y:          act.Y,
	}
	events.Dispatch.Activate(int(c.mode), act.Entry, act.X, act.Y, act.RightClick)
	if c.onActivate != nil {
		c.onActivate(c, c.token)
	}
	return c.native.Show(act.X, act.Y)
}

// onSelect is the shared selection callback registered with every native
// item.
func (c *Controller) onSelect(sel Selection) error {
	_, err := c.Select(sel)
	return err
}

// Select routes a selection notification to the matching item action and
// returns the handler's result. The pending token, if any, is consumed
// before the handler runs, so a throwing handler can never leak it into a
// later dispatch. A name the registry does not hold means the native menu
// and the registry have desynchronized; the error wraps ErrDesync and the
// host should treat it as fatal. Handler errors come back unmodified and
// are never turned into tooltips.
func (c *Controller) Select(sel Selection) (any, error) {
	tok := c.token
	c.token = nil
	events.Dispatch.Select(sel.Name, sel.Position, tok != nil)

	item, ok := c.reg.Get(sel.Name)
	if !ok {
		err := fmt.Errorf("menu: dispatch: %w: %w", ErrDesync, &ItemNotFoundError{Name: sel.Name})
		events.Dispatch.Error(err)
		return nil, err
	}

	var handler Handler
	switch a := item.Action.(type) {
	case nil:
		return nil, nil
	case Submenu:
		// The native layer opens the child menu itself.
		return nil, nil
	case Handler:
		handler = a
	case Named:
		if c.resolver == nil {
			err := fmt.Errorf("menu: dispatch %q: no resolver for action %q", sel.Name, string(a))
			events.Dispatch.Error(err)
			return nil, err
		}
		h, found := c.resolver.ResolveAction(string(a))
		if !found {
			err := fmt.Errorf("menu: dispatch %q: unresolved action %q", sel.Name, string(a))
			events.Dispatch.Error(err)
			return nil, err
		}
		handler = h
	default:
		err := fmt.Errorf("menu: dispatch %q: unsupported action type %T", sel.Name, item.Action)
		events.Dispatch.Error(err)
		return nil, err
	}

	result, err := handler(c, sel, tok)
	if err != nil {
		return nil, err
	}

	if c.showTips && c.tips != nil {
		if text, show := resolveTip(c, item.Tip, result); show {
			slot, terr := c.tips.Show(text)
			if terr != nil {
				return result, terr
			}
			events.Tooltip.Show(slot, text)
		}
	}
	return result, nil
}
