package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrRegionNotFound = errors.New("region not found")
	ErrRegionExists   = errors.New("region already exists")
	ErrNoSnapshot     = errors.New("no snapshot for region")
	ErrNotPermitted   = errors.New("toggle not permitted")
)

// AccessError represents a failed read/write against the document model
type AccessError struct {
	Op     string // Operation: "read", "write", "conceal"
	Region string // Region the operation targeted
	Err    error  // Underlying error
}

func (e *AccessError) Error() string {
	if e.Region != "" {
		return fmt.Sprintf("document %s [%s]: %v", e.Op, e.Region, e.Err)
	}
	return fmt.Sprintf("document %s: %v", e.Op, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// SnapshotError represents a snapshot lifecycle violation
type SnapshotError struct {
	Op     string
	Region string
	Err    error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot %s [%s]: %v", e.Op, e.Region, e.Err)
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}
