package group

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/splitpane/pkg/errors"
	"github.com/matzehuels/splitpane/pkg/observability"
)

// Handle addresses a group inside the registry that created it.
type Handle int

// Direction is the axis along which a group's panes are laid out.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// DefaultKeyboardStep is the percentage moved by one arrow key press.
const DefaultKeyboardStep = 5.0

// ParseDirection parses a direction name. The empty string is Horizontal.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "", Horizontal:
		return Horizontal, nil
	case Vertical:
		return Vertical, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown direction %q (want horizontal or vertical)", s)
}

// Options configure a new group.
type Options struct {
	// ID identifies the group. An empty ID is replaced by a random UUID.
	ID string
	// Direction defaults to Horizontal.
	Direction Direction
	// KeyboardStep defaults to DefaultKeyboardStep.
	KeyboardStep float64
}

func (o Options) withDefaults() (Options, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	} else if err := errors.ValidateID("group", o.ID); err != nil {
		return o, err
	}

	dir, err := ParseDirection(string(o.Direction))
	if err != nil {
		return o, err
	}
	o.Direction = dir

	switch {
	case o.KeyboardStep == 0:
		o.KeyboardStep = DefaultKeyboardStep
	case o.KeyboardStep < 0 || math.IsNaN(o.KeyboardStep) || math.IsInf(o.KeyboardStep, 0):
		return o, errors.New(errors.ErrCodeInvalidInput, "keyboard step must be a positive number, got %v", o.KeyboardStep)
	}
	return o, nil
}

// Registry owns a set of pane groups.
type Registry struct {
	logger *log.Logger

	mu     sync.RWMutex
	groups []*Group // indexed by Handle; nil once removed
	ids    map[string]Handle
}

// NewRegistry creates an empty registry. A nil logger uses log.Default().
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		logger: logger,
		ids:    make(map[string]Handle),
	}
}

// CreateGroup adds a new, empty group.
func (r *Registry) CreateGroup(opts Options) (*Group, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if _, ok := r.ids[opts.ID]; ok {
		r.mu.Unlock()
		return nil, errors.New(errors.ErrCodeDuplicateID, "group %q already exists", opts.ID)
	}
	h := Handle(len(r.groups))
	g := newGroup(h, opts, r.logger.With("group", opts.ID))
	r.groups = append(r.groups, g)
	r.ids[opts.ID] = h
	r.mu.Unlock()

	r.logger.Debug("group created", "group", opts.ID, "handle", h, "direction", opts.Direction)
	observability.Group().OnGroupCreated(opts.ID)
	return g, nil
}

// Group returns the group with the given id.
func (r *Registry) Group(id string) (*Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.ids[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeGroupNotFound, "group %q does not exist", id)
	}
	return r.groups[h], nil
}

// GroupByHandle returns the group created with handle h.
func (r *Registry) GroupByHandle(h Handle) (*Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if h < 0 || int(h) >= len(r.groups) || r.groups[h] == nil {
		return nil, errors.New(errors.ErrCodeGroupNotFound, "no group with handle %d", h)
	}
	return r.groups[h], nil
}

// RemoveGroup deletes a group. Its handle is never handed out again.
func (r *Registry) RemoveGroup(id string) error {
	r.mu.Lock()
	h, ok := r.ids[id]
	if !ok {
		r.mu.Unlock()
		return errors.New(errors.ErrCodeGroupNotFound, "group %q does not exist", id)
	}
	r.groups[h] = nil
	delete(r.ids, id)
	r.mu.Unlock()

	r.logger.Debug("group removed", "group", id, "handle", h)
	observability.Group().OnGroupRemoved(id)
	return nil
}

// Groups returns the ids of all live groups in creation order.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.ids))
	for _, g := range r.groups {
		if g != nil {
			ids = append(ids, g.id)
		}
	}
	return ids
}

// Len returns the number of live groups.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ids)
}
