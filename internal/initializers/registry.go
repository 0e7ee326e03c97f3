package initializers

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory builds an initializer from optional numeric arguments, e.g. the
// stddev of "normal" or the bounds of "uniform".
type Factory func(args ...float64) (Initializer, error)

var (
	muRegistry sync.RWMutex
	registry   = map[string]Factory{
		"zero":           func(...float64) (Initializer, error) { return Zero, nil },
		"glorot_uniform": func(...float64) (Initializer, error) { return GlorotUniform{}, nil },
		"constant": func(args ...float64) (Initializer, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("constant takes 1 argument (value), got %d", len(args))
			}
			return Constant{Value: args[0]}, nil
		},
		"normal": func(args ...float64) (Initializer, error) {
			switch len(args) {
			case 0:
				return Normal{Stddev: 0.01}, nil
			case 1:
				return Normal{Stddev: args[0]}, nil
			}
			return nil, fmt.Errorf("normal takes at most 1 argument (stddev), got %d", len(args))
		},
		"uniform": func(args ...float64) (Initializer, error) {
			switch len(args) {
			case 0:
				return Uniform{Low: -0.05, High: 0.05}, nil
			case 1:
				return Uniform{Low: -args[0], High: args[0]}, nil
			case 2:
				return Uniform{Low: args[0], High: args[1]}, nil
			}
			return nil, fmt.Errorf("uniform takes at most 2 arguments (low, high), got %d", len(args))
		},
	}
)

// Register adds or replaces the factory for name (case-insensitive).
func Register(name string, factory Factory) {
	muRegistry.Lock()
	defer muRegistry.Unlock()
	registry[strings.ToLower(name)] = factory
}

// FromName builds the initializer registered under name.
//
// Example:
//
//	init, err := initializers.FromName("normal", 0.02)
func FromName(name string, args ...float64) (Initializer, error) {
	muRegistry.RLock()
	factory, found := registry[strings.ToLower(name)]
	muRegistry.RUnlock()
	if !found {
		return nil, fmt.Errorf("unknown initializer %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	init, err := factory(args...)
	if err != nil {
		return nil, fmt.Errorf("initializer %q: %w", name, err)
	}
	return init, nil
}

// Names lists the registered initializer names in sorted order.
func Names() []string {
	muRegistry.RLock()
	defer muRegistry.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
