package former

import (
	"errors"
	"fmt"
	"sync"
)

// ErrLayoutNotFound is returned when a bundle has no layout with the requested name
var ErrLayoutNotFound = errors.New("layout not found")

// MainBundleName is the name under which MainBundle is registered
const MainBundleName = "main"

// Bundle is a registry of named cell layouts, the counterpart of a resource bundle
// holding layout files. Hosts register their layouts at startup.
type Bundle struct {
	name    string
	mu      sync.RWMutex
	layouts map[string]func() Cell
}

var (
	bundlesMu sync.RWMutex
	bundles   = map[string]*Bundle{}

	// MainBundle is used when a row asks for a layout without naming a bundle
	MainBundle = NewBundle(MainBundleName)
)

// NewBundle creates and registers a bundle. Registering a name twice replaces the
// earlier bundle.
func NewBundle(name string) *Bundle {
	b := &Bundle{name: name, layouts: make(map[string]func() Cell)}
	bundlesMu.Lock()
	bundles[name] = b
	bundlesMu.Unlock()
	return b
}

// LookupBundle returns the bundle registered under name, or MainBundle when name
// is empty or unknown
func LookupBundle(name string) *Bundle {
	if name == "" {
		return MainBundle
	}
	bundlesMu.RLock()
	defer bundlesMu.RUnlock()
	if b, ok := bundles[name]; ok {
		return b
	}
	return MainBundle
}

// Name returns the bundle name
func (b *Bundle) Name() string {
	return b.name
}

// Register adds a named layout
func (b *Bundle) Register(name string, newCell func() Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.layouts[name] = newCell
}

// Cell instantiates the named layout
func (b *Bundle) Cell(name string) (Cell, error) {
	b.mu.RLock()
	newCell, ok := b.layouts[name]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s in bundle %s", ErrLayoutNotFound, name, b.name)
	}
	return newCell(), nil
}
