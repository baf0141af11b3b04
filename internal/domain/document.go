// Package domain contains the document model and shared domain types.
package domain

import "sync"

// Accessor is the document-access contract consumed by the source
// editing controller. Regions returns names in registration order so
// snapshot capture and write-back stay deterministic.
type Accessor interface {
	Regions() []string
	Read(region string) (string, error)
	Write(region, text string) error
	SetConcealed(region string, concealed bool) error
}

// Region is a named, independently addressable portion of the document.
type Region struct {
	Name      string
	Content   string // serialized content owned by the structured model
	Concealed bool   // presentational hide flag, not a deletion
}

// Document is the in-memory structured document model. It implements
// Accessor for hosts that do not bring their own document backend.
type Document struct {
	mu      sync.RWMutex
	order   []string
	regions map[string]*Region
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{
		regions: make(map[string]*Region),
	}
}

// AddRegion registers a named region with its initial serialized content.
// Region names are unique for the document's lifetime.
func (d *Document) AddRegion(name, content string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.regions[name]; ok {
		return &AccessError{Op: "add", Region: name, Err: ErrRegionExists}
	}
	d.order = append(d.order, name)
	d.regions[name] = &Region{Name: name, Content: content}
	return nil
}

// Regions returns all region names in registration order
func (d *Document) Regions() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, len(d.order))
	copy(names, d.order)
	return names
}

// Read returns the serialized content of a region
func (d *Document) Read(region string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	r, ok := d.regions[region]
	if !ok {
		return "", &AccessError{Op: "read", Region: region, Err: ErrRegionNotFound}
	}
	return r.Content, nil
}

// Write replaces the serialized content of a region
func (d *Document) Write(region, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.regions[region]
	if !ok {
		return &AccessError{Op: "write", Region: region, Err: ErrRegionNotFound}
	}
	r.Content = text
	return nil
}

// SetConcealed marks or unmarks a region's structured view as hidden
func (d *Document) SetConcealed(region string, concealed bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.regions[region]
	if !ok {
		return &AccessError{Op: "conceal", Region: region, Err: ErrRegionNotFound}
	}
	r.Concealed = concealed
	return nil
}

// Concealed reports whether a region's structured view is hidden.
// Unknown regions report false.
func (d *Document) Concealed(region string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	r, ok := d.regions[region]
	return ok && r.Concealed
}

// Get returns a copy of a region's current state
func (d *Document) Get(region string) (Region, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	r, ok := d.regions[region]
	if !ok {
		return Region{}, false
	}
	return *r, true
}
