package domain

import (
	"errors"
	"testing"
)

func TestDocument_AddAndRead(t *testing.T) {
	doc := NewDocument()

	if err := doc.AddRegion("main", "<p>Hello</p>"); err != nil {
		t.Fatalf("AddRegion failed: %v", err)
	}

	content, err := doc.Read("main")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "<p>Hello</p>" {
		t.Errorf("Expected \"<p>Hello</p>\", got %q", content)
	}
}

func TestDocument_DuplicateRegion(t *testing.T) {
	doc := NewDocument()
	if err := doc.AddRegion("main", "x"); err != nil {
		t.Fatalf("AddRegion failed: %v", err)
	}

	err := doc.AddRegion("main", "y")
	if !errors.Is(err, ErrRegionExists) {
		t.Errorf("Expected ErrRegionExists, got %v", err)
	}
}

func TestDocument_RegionsOrder(t *testing.T) {
	doc := NewDocument()
	for _, name := range []string{"header", "body", "footer"} {
		if err := doc.AddRegion(name, ""); err != nil {
			t.Fatalf("AddRegion(%s) failed: %v", name, err)
		}
	}

	regions := doc.Regions()
	want := []string{"header", "body", "footer"}
	if len(regions) != len(want) {
		t.Fatalf("Expected %d regions, got %d", len(want), len(regions))
	}
	for i, name := range want {
		if regions[i] != name {
			t.Errorf("Expected region %d to be %s, got %s", i, name, regions[i])
		}
	}
}

func TestDocument_UnknownRegion(t *testing.T) {
	doc := NewDocument()

	if _, err := doc.Read("missing"); !errors.Is(err, ErrRegionNotFound) {
		t.Errorf("Read: expected ErrRegionNotFound, got %v", err)
	}
	if err := doc.Write("missing", "x"); !errors.Is(err, ErrRegionNotFound) {
		t.Errorf("Write: expected ErrRegionNotFound, got %v", err)
	}
	if err := doc.SetConcealed("missing", true); !errors.Is(err, ErrRegionNotFound) {
		t.Errorf("SetConcealed: expected ErrRegionNotFound, got %v", err)
	}
}

func TestDocument_Conceal(t *testing.T) {
	doc := NewDocument()
	if err := doc.AddRegion("main", "x"); err != nil {
		t.Fatalf("AddRegion failed: %v", err)
	}

	if doc.Concealed("main") {
		t.Error("Region should start revealed")
	}

	if err := doc.SetConcealed("main", true); err != nil {
		t.Fatalf("SetConcealed failed: %v", err)
	}
	if !doc.Concealed("main") {
		t.Error("Region should be concealed")
	}

	// Concealment is presentational: content is untouched
	content, err := doc.Read("main")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "x" {
		t.Errorf("Expected content \"x\", got %q", content)
	}
}

func TestAccessError_Unwrap(t *testing.T) {
	err := &AccessError{Op: "read", Region: "main", Err: ErrRegionNotFound}

	if !errors.Is(err, ErrRegionNotFound) {
		t.Error("AccessError should unwrap to its underlying error")
	}
	if err.Error() != "document read [main]: region not found" {
		t.Errorf("Unexpected error string: %s", err.Error())
	}
}
