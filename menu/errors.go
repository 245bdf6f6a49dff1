package menu

import (
	"errors"
	"fmt"
)

// ErrDesync marks an item lookup failure during selection dispatch: the
// native menu reported a name the registry does not hold, so the two views
// have drifted apart. Hosts should treat it as fatal.
var ErrDesync = errors.New("registry and native menu are out of sync")

// NameConflictError reports an Add or Insert against a name that already
// exists in the registry.
type NameConflictError struct {
	Name string
}

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("menu: item %q already exists", e.Name)
}

// ItemNotFoundError reports a lookup for a name with no registry entry.
type ItemNotFoundError struct {
	Name string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("menu: no item named %q", e.Name)
}
