package ui

import (
	"fmt"

	"github.com/atomicstack/menuctl/menu"
)

// handlerTable is the demo's lookup table for symbolic action names, the
// same names a YAML item list may reference.
func handlerTable() map[string]menu.Handler {
	return map[string]menu.Handler{
		"doCopy":   copyEntry,
		"doRename": renameEntry,
		"doDelete": deleteEntry,
		"doCount":  countEntries,
		"doToggle": toggleReadOnly,
	}
}

// NewResolver exposes the demo handlers through the controller's Resolver
// interface.
func NewResolver() menu.Resolver {
	table := handlerTable()
	return menu.ResolverFunc(func(name string) (menu.Handler, bool) {
		h, ok := table[name]
		return h, ok
	})
}

// DefaultItems is the built-in item list used when no YAML file is given.
func DefaultItems() []menu.ItemSpec {
	return []menu.ItemSpec{
		{Name: "Copy Entry", Action: "doCopy"},
		{Name: "Rename Entry", Action: "doRename"},
		{Name: "Delete Entry", Action: "doDelete", Tooltip: "Entry deleted"},
		{Name: "Count Entries", Action: "doCount"},
		{Name: "Toggle Read-Only", Action: "doToggle"},
	}
}

func entryFromToken(tok *menu.Token) string {
	if tok == nil {
		return "entry ?"
	}
	return fmt.Sprintf("entry %d", tok.Entry)
}

func copyEntry(c *menu.Controller, sel menu.Selection, tok *menu.Token) (any, error) {
	return "Copied " + entryFromToken(tok), nil
}

func renameEntry(c *menu.Controller, sel menu.Selection, tok *menu.Token) (any, error) {
	return "Renamed " + entryFromToken(tok), nil
}

func deleteEntry(c *menu.Controller, sel menu.Selection, tok *menu.Token) (any, error) {
	// The literal tooltip on the item wins over this result.
	return "Deleted " + entryFromToken(tok), nil
}

func countEntries(c *menu.Controller, sel menu.Selection, tok *menu.Token) (any, error) {
	// A numeric result displays as-is, zero included.
	return canvasRows, nil
}

func toggleReadOnly(c *menu.Controller, sel menu.Selection, tok *menu.Token) (any, error) {
	if err := c.ToggleCheck(sel.Name); err != nil {
		return nil, err
	}
	// No result text, no tooltip.
	return "", nil
}
