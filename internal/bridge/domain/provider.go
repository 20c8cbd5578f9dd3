// Package domain defines the per-domain behavior of a bridge service:
// which metrics it reports and how it acknowledges optimization requests.
package domain

import (
	"fmt"
	"sort"
)

// Provider supplies the domain-specific pieces of a bridge service.
// Snapshot values are computed fresh on every call; nothing is cached.
type Provider interface {
	// Name is the domain identifier used in routes and subjects.
	Name() string

	// DefaultPort is the port the bridge binds when PORT is not set.
	DefaultPort() int

	// Snapshot returns the current metric values for the domain.
	Snapshot() map[string]any

	// OptimizeMessage is the confirmation returned by POST /optimize.
	OptimizeMessage() string
}

var registry = map[string]Provider{}

func register(p Provider) {
	registry[p.Name()] = p
}

// Lookup returns the Provider for a domain identifier.
func Lookup(name string) (Provider, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names returns the registered domain identifiers, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MustLookup returns the Provider for a domain or panics with the list of
// known domains. Used at process start where a bad -domain flag is fatal.
func MustLookup(name string) Provider {
	p, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("unknown bridge domain %q (known: %v)", name, Names()))
	}
	return p
}
