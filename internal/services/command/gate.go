package command

// Gate applies and clears a single suppression tag across every
// command in a registry. It owns only its own tag: other suppression
// reasons on a command survive a Release untouched.
type Gate struct {
	registry *Registry
	tag      string
}

// NewGate creates a gate that suppresses with the given tag
func NewGate(registry *Registry, tag string) *Gate {
	return &Gate{
		registry: registry,
		tag:      tag,
	}
}

// Tag returns the suppression tag this gate applies
func (g *Gate) Tag() string {
	return g.tag
}

// Suppress tags every currently registered command as force-disabled.
// The registry is walked at call time, so commands registered after
// the gate was constructed are covered. Safe to call when already
// suppressed.
func (g *Gate) Suppress() {
	for _, cmd := range g.registry.All() {
		cmd.ForceDisable(g.tag)
	}
}

// Release removes this gate's tag from every command. Commands held
// disabled for other reasons stay disabled. Safe to call when not
// suppressed.
func (g *Gate) Release() {
	for _, cmd := range g.registry.All() {
		cmd.ClearForceDisabled(g.tag)
	}
}
