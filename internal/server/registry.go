package server

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/maturity/schema"
)

// Entry is one loaded workbook. Entries are never mutated once stored; a
// reload stores a new Entry under the same ID.
type Entry struct {
	ID       string
	Name     string // Display name
	Path     string // Source path on disk, empty for uploads
	Workbook *schema.Workbook
	LoadedAt time.Time
	Version  int
}

// Registry holds the loaded workbooks keyed by ID.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Add stores a workbook under a fresh ID.
func (r *Registry) Add(name, path string, wb *schema.Workbook) *Entry {
	if name == "" {
		name = filepath.Base(wb.Source)
	}
	entry := &Entry{
		ID:       uuid.NewString(),
		Name:     name,
		Path:     path,
		Workbook: wb,
		LoadedAt: time.Now(),
		Version:  1,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID] = entry
	r.order = append(r.order, entry.ID)
	return entry
}

// Get returns the entry stored under id.
func (r *Registry) Get(id string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	return entry, ok
}

// Replace swaps the workbook of an existing entry. It reports false when id
// is unknown.
func (r *Registry) Replace(id string, wb *schema.Workbook) (*Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	entry := *old
	entry.Workbook = wb
	entry.LoadedAt = time.Now()
	entry.Version++
	r.entries[id] = &entry
	return &entry, true
}

// List returns the entries in the order they were added.
func (r *Registry) List() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}
