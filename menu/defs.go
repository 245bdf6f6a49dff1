package menu

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemSpec is one record of the bulk construction input: an ordered list of
// these describes a menu's default items. Action names are resolved through
// the controller's Resolver; programmatic callers may attach a concrete
// action via Do instead, which wins over the symbolic name.
type ItemSpec struct {
	Name    string `yaml:"name"`
	Action  string `yaml:"action,omitempty"`
	Options string `yaml:"options,omitempty"`
	Tooltip string `yaml:"tooltip,omitempty"`

	Do Action `yaml:"-"`
}

// LoadItemSpecs decodes an ordered item list from YAML. Record order is
// preserved; it becomes registration order in AddBulk.
func LoadItemSpecs(r io.Reader) ([]ItemSpec, error) {
	var specs []ItemSpec
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&specs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("menu: decode item list: %w", err)
	}
	for i, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("menu: item list entry %d has no name", i)
		}
	}
	return specs, nil
}

// LoadItemSpecFile reads an item list from a YAML file.
func LoadItemSpecFile(path string) ([]ItemSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("menu: open item list: %w", err)
	}
	defer f.Close()
	return LoadItemSpecs(f)
}
