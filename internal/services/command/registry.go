package command

import (
	"errors"
	"sync"
)

// ErrDisabled is returned when a suppressed command is executed
var ErrDisabled = errors.New("command disabled")

// Registry is an enumerable set of commands in registration order
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]*Command
}

// NewRegistry creates an empty command registry
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Command),
	}
}

// Register adds a command. A command with an existing name replaces
// the previous one in place.
func (r *Registry) Register(cmd *Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[cmd.Name()]; !ok {
		r.order = append(r.order, cmd.Name())
	}
	r.byName[cmd.Name()] = cmd
}

// Get returns a command by name, or nil if not registered
func (r *Registry) Get(name string) *Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// All returns every registered command in registration order
func (r *Registry) All() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]*Command, 0, len(r.order))
	for _, name := range r.order {
		commands = append(commands, r.byName[name])
	}
	return commands
}

// Names returns all registered command names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}
