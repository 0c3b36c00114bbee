// Package assets resolves toolkit asset paths and injects shared assets
// into a document exactly once.
//
// A build step may fingerprint the wrapped toolkit's stylesheet and script
// bundles, producing a manifest.json mapping source names to hashed names:
//
//	{
//	  "toolkit.css": "toolkit.e5f6g7h8.css",
//	  "toolkit.js": "toolkit.a1b2c3d4.min.js"
//	}
//
// Components that depend on a shared asset call Injector.EnsureStylesheet
// or EnsureScript during materialization; the injector deduplicates, so any
// number of instances initializing in the same pass yield one tag.
package assets

import (
	"encoding/json"
	"os"
	"sync"
)

// Manifest holds the mapping from source asset paths to fingerprinted paths.
// It is safe for concurrent use.
type Manifest struct {
	entries map[string]string
	mu      sync.RWMutex
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{entries: make(map[string]string)}
}

// Load reads a manifest.json file: {"source.css": "source.abc123.css"}.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return &Manifest{entries: entries}, nil
}

// Resolve returns the fingerprinted path for the given source path.
// If not found, returns the original path unchanged.
func (m *Manifest) Resolve(source string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if resolved, ok := m.entries[source]; ok {
		return resolved
	}
	return source
}

// Set adds or updates an entry. Primarily useful for tests.
func (m *Manifest) Set(source, resolved string) {
	m.mu.Lock()
	m.entries[source] = resolved
	m.mu.Unlock()
}

// Len returns the number of entries in the manifest.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Resolver provides asset path resolution, combining manifest lookup with
// path prefixing.
type Resolver interface {
	// Asset resolves a source asset path to its full URL path.
	Asset(source string) string
}

// manifestResolver wraps a Manifest to implement Resolver.
type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver creates a Resolver from a Manifest with an optional path
// prefix, e.g. "/public/".
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{manifest: m, prefix: prefix}
}

func (r *manifestResolver) Asset(source string) string {
	return r.prefix + r.manifest.Resolve(source)
}

// passthrough returns assets unchanged (for development mode).
type passthrough struct {
	prefix string
}

// NewPassthroughResolver creates a resolver that returns paths unchanged
// apart from the prefix. Use where fingerprinting is disabled.
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(source string) string {
	return p.prefix + source
}
