// Package command provides the editor command registry and the gate
// that force-disables commands while source editing is active.
package command

import (
	"sync"
)

// Handler is the function a command runs when executed
type Handler func() error

// Command is a named editor operation. Its disabled state is a set of
// suppression tags: the command is enabled only while the set is
// empty, so independent features can disable it without clobbering
// each other.
type Command struct {
	mu         sync.RWMutex
	name       string
	handler    Handler
	disabledBy map[string]struct{}
}

// New creates a command with the given name and handler
func New(name string, handler Handler) *Command {
	return &Command{
		name:       name,
		handler:    handler,
		disabledBy: make(map[string]struct{}),
	}
}

// Name returns the command's name
func (c *Command) Name() string {
	return c.name
}

// Enabled reports whether no suppression tag is active
func (c *Command) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.disabledBy) == 0
}

// ForceDisable adds a suppression tag. Adding the same tag twice has
// the same effect as adding it once.
func (c *Command) ForceDisable(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disabledBy[tag] = struct{}{}
}

// ClearForceDisabled removes a single suppression tag, leaving any
// other active tags untouched. Clearing an absent tag is a no-op.
func (c *Command) ClearForceDisabled(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.disabledBy, tag)
}

// DisabledBy reports whether a specific suppression tag is active
func (c *Command) DisabledBy(tag string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.disabledBy[tag]
	return ok
}

// Execute runs the command's handler if the command is enabled.
// Disabled commands return ErrDisabled without running the handler.
func (c *Command) Execute() error {
	if !c.Enabled() {
		return ErrDisabled
	}
	if c.handler == nil {
		return nil
	}
	return c.handler()
}
