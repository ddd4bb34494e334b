package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"ring-shop-backend/internal/logging"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
	return path
}

func TestFileRepository_ReadAll(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"name":"Ring A","popularityScore":0.6,"weight":2.0,"images":{"yellow":"y.jpg","rose":"r.jpg","white":"w.jpg"}},
		{"name":"Ring B","popularityScore":0.9,"weight":3.5,"images":{"yellow":"y2.jpg","rose":"r2.jpg","white":"w2.jpg"}}
	]`)

	repo := NewFileRepository(path, logging.NewNop())
	entries := repo.ReadAll()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "Ring A" || entries[0].Weight != 2.0 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Images.Rose != "r2.jpg" {
		t.Fatalf("unexpected images on second entry: %+v", entries[1].Images)
	}
}

func TestFileRepository_MissingFileFailsOpen(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "nope.json"), logging.NewNop())
	entries := repo.ReadAll()
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entries)
	}
}

func TestFileRepository_UnparsableFileFailsOpen(t *testing.T) {
	path := writeCatalogFile(t, `{"not":"an array"`)
	repo := NewFileRepository(path, logging.NewNop())
	entries := repo.ReadAll()
	if len(entries) != 0 {
		t.Fatalf("expected empty catalog, got %d entries", len(entries))
	}
}

func TestFileRepository_SkipsMalformedRecords(t *testing.T) {
	// missing name, out-of-range score and non-positive weight are each
	// skipped; the valid record survives
	path := writeCatalogFile(t, `[
		{"name":"","popularityScore":0.5,"weight":2.0,"images":{}},
		{"name":"Too Popular","popularityScore":1.5,"weight":2.0,"images":{}},
		{"name":"Weightless","popularityScore":0.5,"weight":0,"images":{}},
		{"name":"Ring OK","popularityScore":0.5,"weight":2.0,"images":{"yellow":"y.jpg","rose":"r.jpg","white":"w.jpg"}}
	]`)

	repo := NewFileRepository(path, logging.NewNop())
	entries := repo.ReadAll()
	if len(entries) != 1 {
		t.Fatalf("expected 1 valid entry, got %d", len(entries))
	}
	if entries[0].Name != "Ring OK" {
		t.Fatalf("wrong entry kept: %+v", entries[0])
	}
}

func TestFileRepository_ReadsFreshOnEveryCall(t *testing.T) {
	path := writeCatalogFile(t, `[{"name":"Ring A","popularityScore":0.6,"weight":2.0,"images":{}}]`)
	repo := NewFileRepository(path, logging.NewNop())

	if got := len(repo.ReadAll()); got != 1 {
		t.Fatalf("expected 1 entry, got %d", got)
	}

	if err := os.WriteFile(path, []byte(`[]`), 0o644); err != nil {
		t.Fatalf("rewrite catalog file: %v", err)
	}
	if got := len(repo.ReadAll()); got != 0 {
		t.Fatalf("expected updated file to be re-read, got %d entries", got)
	}
}
