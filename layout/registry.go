package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrDuplicate is returned when a layout name is already registered.
var ErrDuplicate = errors.New("layout already registered")

var (
	registryMu sync.RWMutex
	registry   = map[string]*Layout{}
)

// Register makes l available by name. Names are case-insensitive.
func Register(l *Layout) error {
	if l == nil || l.name == "" {
		return errors.New("layout must have a name")
	}
	key := strings.ToLower(l.name)

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, l.name)
	}
	registry[key] = l
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(l *Layout) {
	if err := Register(l); err != nil {
		panic(err)
	}
}

// ByName returns the registered layout with the given name.
func ByName(name string) (*Layout, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	l, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return l, ok
}

// Names returns the registered layout names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for _, l := range registry {
		out = append(out, l.name)
	}
	sort.Strings(out)
	return out
}
