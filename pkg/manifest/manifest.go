// Package manifest reads pane groups from TOML files.
//
// A manifest declares one or more groups and their panes:
//
//	[[group]]
//	id = "editor"
//	direction = "horizontal"
//	keyboard_step = 5
//
//	  [[group.pane]]
//	  id = "sidebar"
//	  min_size = 10
//	  max_size = 40
//	  collapsible = true
//	  collapsed_size = 3
//	  default_size = 20
//
// Omitted sizes default to min_size 0, max_size 100 and collapsed_size 0.
// Omitted orders follow the position of the pane in the file.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/splitpane/pkg/errors"
	"github.com/matzehuels/splitpane/pkg/group"
	"github.com/matzehuels/splitpane/pkg/layout"
)

// Manifest is a decoded manifest file.
type Manifest struct {
	Groups []Group `toml:"group"`
}

// Group declares one pane group.
type Group struct {
	ID           string  `toml:"id"`
	Direction    string  `toml:"direction"`
	KeyboardStep float64 `toml:"keyboard_step"`
	Panes        []Pane  `toml:"pane"`
}

// Pane declares one pane and its constraints.
type Pane struct {
	ID            string   `toml:"id"`
	Order         *int     `toml:"order"`
	MinSize       float64  `toml:"min_size"`
	MaxSize       *float64 `toml:"max_size"`
	Collapsible   bool     `toml:"collapsible"`
	CollapsedSize float64  `toml:"collapsed_size"`
	DefaultSize   *float64 `toml:"default_size"`
}

// Constraints returns the layout constraints of p with defaults applied.
func (p Pane) Constraints() layout.Constraints {
	c := layout.DefaultConstraints()
	c.MinSize = p.MinSize
	if p.MaxSize != nil {
		c.MaxSize = *p.MaxSize
	}
	c.Collapsible = p.Collapsible
	c.CollapsedSize = p.CollapsedSize
	if p.DefaultSize != nil {
		c = c.WithDefault(*p.DefaultSize)
	}
	return c
}

// Parse decodes and validates a manifest. Unknown keys are rejected so that
// typos such as "min-size" do not silently fall back to defaults.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidManifest, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ReadFile reads and parses the manifest at path.
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
		}
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Validate checks ids, directions and constraints, and that every group's
// panes can fill the whole extent.
func (m *Manifest) Validate() error {
	if len(m.Groups) == 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest declares no groups")
	}

	seen := make(map[string]bool, len(m.Groups))
	for _, g := range m.Groups {
		if err := errors.ValidateID("group", g.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "group %q", g.ID)
		}
		if seen[g.ID] {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate group %q", g.ID)
		}
		seen[g.ID] = true

		if err := g.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "group %q", g.ID)
		}
	}
	return nil
}

func (g Group) validate() error {
	if _, err := group.ParseDirection(g.Direction); err != nil {
		return err
	}
	if g.KeyboardStep < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "keyboard_step must not be negative")
	}
	if len(g.Panes) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "group declares no panes")
	}

	seen := make(map[string]bool, len(g.Panes))
	var smallest, largest float64
	for _, p := range g.Panes {
		if err := errors.ValidateID("pane", p.ID); err != nil {
			return err
		}
		if seen[p.ID] {
			return errors.New(errors.ErrCodeDuplicateID, "duplicate pane %q", p.ID)
		}
		seen[p.ID] = true

		c := p.Constraints()
		if err := c.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConstraints, err, "pane %q", p.ID)
		}
		if c.Collapsible {
			smallest += c.CollapsedSize
		} else {
			smallest += c.MinSize
		}
		largest += c.MaxSize
	}

	if layout.Compare(smallest, layout.Total) > 0 {
		return errors.New(errors.ErrCodeInvalidConstraints, "panes need at least %g%%", smallest)
	}
	if layout.Compare(largest, layout.Total) < 0 {
		return errors.New(errors.ErrCodeInvalidConstraints, "panes cover at most %g%%", largest)
	}
	return nil
}

// Group returns the declared group with the given id.
func (m *Manifest) Group(id string) (*Group, error) {
	for i := range m.Groups {
		if m.Groups[i].ID == id {
			return &m.Groups[i], nil
		}
	}
	return nil, errors.New(errors.ErrCodeGroupNotFound, "manifest has no group %q", id)
}

// Apply creates every declared group and its panes in reg.
func (m *Manifest) Apply(reg *group.Registry) ([]*group.Group, error) {
	out := make([]*group.Group, 0, len(m.Groups))
	for _, decl := range m.Groups {
		g, err := decl.Apply(reg)
		if err != nil {
			return out, err
		}
		out = append(out, g)
	}
	return out, nil
}

// Apply creates the group and registers its panes in reg.
func (decl Group) Apply(reg *group.Registry) (*group.Group, error) {
	g, err := reg.CreateGroup(group.Options{
		ID:           decl.ID,
		Direction:    group.Direction(decl.Direction),
		KeyboardStep: decl.KeyboardStep,
	})
	if err != nil {
		return nil, err
	}
	for i, p := range decl.Panes {
		order := i
		if p.Order != nil {
			order = *p.Order
		}
		if err := g.RegisterPane(group.PaneOptions{ID: p.ID, Order: order, Constraints: p.Constraints()}); err != nil {
			return nil, fmt.Errorf("group %q: %w", decl.ID, err)
		}
	}
	return g, nil
}
