package descriptor

import (
	"fmt"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]*Descriptor)
)

// Register registers a descriptor in the global registry.  Descriptors are
// registered once, at process start, by schema-compiler output; the registry
// is read-only afterwards.
func Register(d *Descriptor) error {
	if d == nil {
		return fmt.Errorf("cannot register nil descriptor")
	}
	if d.Name == "" {
		return fmt.Errorf("descriptor must have a kind name")
	}
	if d.Version == "" {
		return fmt.Errorf("descriptor %q must have a version", d.Name)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[d.Key()]; exists {
		return fmt.Errorf("descriptor %q already registered", d.Key())
	}

	registry[d.Key()] = d
	return nil
}

// MustRegister is Register for generated registration code.
func MustRegister(d *Descriptor) {
	if err := Register(d); err != nil {
		panic(err)
	}
}

// Lookup looks up a descriptor by version and kind.
func Lookup(version, kind string) *Descriptor {
	mu.RLock()
	defer mu.RUnlock()
	return registry[version+"/"+kind]
}

// All returns all registered descriptors.
func All() map[string]*Descriptor {
	mu.RLock()
	defer mu.RUnlock()

	result := make(map[string]*Descriptor, len(registry))
	for k, v := range registry {
		result[k] = v
	}
	return result
}
