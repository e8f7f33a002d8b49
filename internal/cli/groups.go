package cli

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/splitpane/pkg/group"
	"github.com/matzehuels/splitpane/pkg/manifest"
)

// loadManifest reads path and fills in the configured keyboard step for
// groups that do not declare one.
func (c *CLI) loadManifest(logger *log.Logger, path string) (*manifest.Manifest, error) {
	prog := newProgress(logger)
	m, err := manifest.ReadFile(path)
	if err != nil {
		return nil, err
	}
	for i := range m.Groups {
		if m.Groups[i].KeyboardStep == 0 {
			m.Groups[i].KeyboardStep = c.Config.Keyboard.Step
		}
	}
	prog.done("loaded " + path)
	return m, nil
}

// loadGroup builds the group named id from the manifest at path. An empty
// id selects the first group.
func (c *CLI) loadGroup(logger *log.Logger, path, id string) (*group.Group, error) {
	m, err := c.loadManifest(logger, path)
	if err != nil {
		return nil, err
	}

	decl := &m.Groups[0]
	if id != "" {
		if decl, err = m.Group(id); err != nil {
			return nil, err
		}
	}

	reg := group.NewRegistry(logger)
	return decl.Apply(reg)
}

// paneNames returns the ids of g's panes in order.
func paneNames(g *group.Group) []string {
	panes := g.Panes()
	names := make([]string, len(panes))
	for i, p := range panes {
		names[i] = p.ID
	}
	return names
}
