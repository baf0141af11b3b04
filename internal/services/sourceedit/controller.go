// Package sourceedit implements the source editing mode toggle: a
// bidirectional switch between the structured document model and a
// flat per-region source text view.
package sourceedit

import (
	"log/slog"
	"sync"

	"github.com/riordanpawley/sourcemode/internal/domain"
	"github.com/riordanpawley/sourcemode/internal/services/command"
	"github.com/riordanpawley/sourcemode/internal/services/snapshot"
)

// Tag is the suppression tag this feature applies to commands while
// source editing is active.
const Tag = "source-editing"

// PendingSource reports whether the host has an asynchronous action in
// flight. Source editing must not start while one is running.
type PendingSource interface {
	HasPending() bool
}

// Observer is notified with the new mode after each accepted toggle
type Observer func(active bool)

// Options configures a Controller at construction
type Options struct {
	// OwnsSurface is true when the editing surface is a locally-owned
	// element. When false the controller still flips the flag and
	// notifies observers, but leaves snapshot capture, concealment and
	// command suppression to an external integration.
	OwnsSurface bool
}

// Controller owns the source editing mode flag and performs the full
// enter/exit sequence across all document regions. Each editor gets
// its own Controller; instances share no state.
type Controller struct {
	mu sync.Mutex

	access    domain.Accessor
	snapshots *snapshot.Store
	gate      *command.Gate
	pending   PendingSource

	ownsSurface bool
	active      bool

	observers []Observer

	logger *slog.Logger
}

// NewController creates a controller over the given document accessor
func NewController(access domain.Accessor, snapshots *snapshot.Store, gate *command.Gate, pending PendingSource, opts Options, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		access:      access,
		snapshots:   snapshots,
		gate:        gate,
		pending:     pending,
		ownsSurface: opts.OwnsSurface,
		logger:      logger,
	}
}

// Active reports whether source editing mode is on
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// OwnsSurface reports whether this controller handles the editing
// surface itself
func (c *Controller) OwnsSurface() bool {
	return c.ownsSurface
}

// CanToggle reports whether a toggle would currently be accepted.
// Hosts bind the trigger control's enabled state to this.
func (c *Controller) CanToggle() bool {
	return !c.pending.HasPending()
}

// Subscribe registers an observer for mode changes and returns its
// unsubscribe function. Observers run synchronously, once per accepted
// toggle, after the transition has fully completed.
func (c *Controller) Subscribe(obs Observer) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.observers = append(c.observers, obs)
	index := len(c.observers) - 1

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if index < len(c.observers) {
			c.observers[index] = nil
		}
	}
}

// Toggle flips the source editing mode. It returns
// domain.ErrNotPermitted while a pending asynchronous action exists,
// with no observable effect. On an accepted toggle the entire
// transition runs before Toggle returns and observers are notified
// exactly once, whether or not this controller owns the surface.
func (c *Controller) Toggle() error {
	c.mu.Lock()

	if c.pending.HasPending() {
		c.mu.Unlock()
		c.logger.Debug("toggle refused", "reason", "pending action")
		return domain.ErrNotPermitted
	}

	next := !c.active

	// Enter failures abort the toggle entirely; exit failures are
	// best-effort, the flip proceeds so the consumed snapshots match
	// the reported mode, and the first error is still surfaced.
	var exitErr error
	if c.ownsSurface {
		if next {
			if err := c.enter(); err != nil {
				c.mu.Unlock()
				return err
			}
		} else {
			exitErr = c.exit()
		}
	}

	c.active = next

	observers := make([]Observer, len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	// Notify outside the lock so an observer may toggle again
	for _, obs := range observers {
		if obs != nil {
			obs(next)
		}
	}
	return exitErr
}

// UpdateSource records a live edit to a region's source text. Calling
// it for a region without a live snapshot is a lifecycle violation and
// fails with domain.ErrNoSnapshot.
func (c *Controller) UpdateSource(region, text string) error {
	return c.snapshots.Update(region, text)
}

// SourceText returns the current source text for a region while source
// editing is active
func (c *Controller) SourceText(region string) (string, bool) {
	return c.snapshots.Get(region)
}

// enter moves every region from structured to source state: read the
// serialized content, clear the structured content so a later return
// is a deliberate write-back rather than an accidental merge, capture
// the snapshot, and conceal the structured view. Commands are
// suppressed strictly after all content and visibility changes.
//
// Enter is all-or-nothing: a region failure rolls back the regions
// already entered and the mode flag stays off.
func (c *Controller) enter() error {
	var entered []string

	for _, region := range c.access.Regions() {
		text, err := c.access.Read(region)
		if err != nil {
			c.logger.Error("enter aborted", "region", region, "error", err)
			c.rollback(entered)
			return err
		}
		if err := c.access.Write(region, ""); err != nil {
			c.logger.Error("enter aborted", "region", region, "error", err)
			c.rollback(entered)
			return err
		}
		c.snapshots.Capture(region, text)
		if err := c.access.SetConcealed(region, true); err != nil {
			c.logger.Error("enter aborted", "region", region, "error", err)
			c.rollback(append(entered, region))
			return err
		}
		entered = append(entered, region)
	}

	c.gate.Suppress()
	return nil
}

// exit writes every snapshot back into its region, reveals the
// structured views and discards the snapshots. Write-back precedes
// discarding, and command suppression is released strictly after
// write-back so no command can run against a half-written document.
//
// Exit is best-effort: a region write failure is logged and remaining
// regions still get their text restored. The first error is returned.
func (c *Controller) exit() error {
	var firstErr error

	for _, entry := range c.snapshots.ReleaseAll() {
		if err := c.access.Write(entry.Region, entry.Text); err != nil {
			c.logger.Error("write-back failed", "region", entry.Region, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := c.access.SetConcealed(entry.Region, false); err != nil {
			c.logger.Error("reveal failed", "region", entry.Region, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	c.gate.Release()
	return firstErr
}

// rollback undoes a partial enter: regions already moved to source
// state get their text written back, their views revealed and their
// snapshots dropped.
func (c *Controller) rollback(entered []string) {
	for _, region := range entered {
		text, err := c.snapshots.Release(region)
		if err != nil {
			c.logger.Error("rollback skipped region", "region", region, "error", err)
			continue
		}
		if err := c.access.Write(region, text); err != nil {
			c.logger.Error("rollback write failed", "region", region, "error", err)
		}
		if err := c.access.SetConcealed(region, false); err != nil {
			c.logger.Error("rollback reveal failed", "region", region, "error", err)
		}
	}
}
