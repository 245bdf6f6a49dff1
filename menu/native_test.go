package menu

import "fmt"

// fakeNative mirrors the controller's mutations so tests can compare the
// registry against a model of the widget.
type nativeEntry struct {
	name     string
	onSelect SelectFunc
	options  string
}

type fakeNative struct {
	entries []nativeEntry
	icons   map[string]string
	states  map[string][]ItemState
	shownX  []int
	shownY  []int

	failAdd    map[string]error
	failDelete map[string]error
	failRename map[string]error
}

func newFakeNative() *fakeNative {
	return &fakeNative{
		icons:      make(map[string]string),
		states:     make(map[string][]ItemState),
		failAdd:    make(map[string]error),
		failDelete: make(map[string]error),
		failRename: make(map[string]error),
	}
}

func (f *fakeNative) index(name string) int {
	for i, e := range f.entries {
		if e.name == name {
			return i
		}
	}
	return -1
}

func (f *fakeNative) names() []string {
	out := make([]string, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.name
	}
	return out
}

func (f *fakeNative) AddItem(name string, onSelect SelectFunc, options string) error {
	if err := f.failAdd[name]; err != nil {
		return err
	}
	if f.index(name) >= 0 {
		return fmt.Errorf("native: duplicate item %q", name)
	}
	f.entries = append(f.entries, nativeEntry{name: name, onSelect: onSelect, options: options})
	return nil
}

func (f *fakeNative) InsertItem(before, name string, onSelect SelectFunc, options string) error {
	i := f.index(before)
	if i < 0 {
		return fmt.Errorf("native: no item %q", before)
	}
	if f.index(name) >= 0 {
		return fmt.Errorf("native: duplicate item %q", name)
	}
	entry := nativeEntry{name: name, onSelect: onSelect, options: options}
	f.entries = append(f.entries[:i], append([]nativeEntry{entry}, f.entries[i:]...)...)
	return nil
}

func (f *fakeNative) DeleteItem(name string) error {
	if err := f.failDelete[name]; err != nil {
		return err
	}
	i := f.index(name)
	if i < 0 {
		return fmt.Errorf("native: no item %q", name)
	}
	f.entries = append(f.entries[:i], f.entries[i+1:]...)
	return nil
}

func (f *fakeNative) RenameItem(oldName, newName string) error {
	if err := f.failRename[oldName]; err != nil {
		return err
	}
	i := f.index(oldName)
	if i < 0 {
		return fmt.Errorf("native: no item %q", oldName)
	}
	f.entries[i].name = newName
	return nil
}

func (f *fakeNative) SetIcon(name, icon string) error {
	if f.index(name) < 0 {
		return fmt.Errorf("native: no item %q", name)
	}
	f.icons[name] = icon
	return nil
}

func (f *fakeNative) SetState(name string, state ItemState) error {
	if f.index(name) < 0 {
		return fmt.Errorf("native: no item %q", name)
	}
	f.states[name] = append(f.states[name], state)
	return nil
}

func (f *fakeNative) Show(x, y int) error {
	f.shownX = append(f.shownX, x)
	f.shownY = append(f.shownY, y)
	return nil
}

func (f *fakeNative) Handle() string {
	return "fake-menu"
}

// selectItem simulates the host raising a selection notification for a
// native entry, through the callback the controller registered.
func (f *fakeNative) selectItem(name string) error {
	i := f.index(name)
	if i < 0 {
		return fmt.Errorf("native: no item %q", name)
	}
	return f.entries[i].onSelect(Selection{Name: name, Position: i + 1, Menu: f})
}
