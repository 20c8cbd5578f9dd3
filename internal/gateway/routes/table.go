// Package routes resolves forwarding targets against a closed table of
// known route identifiers. Arbitrary pass-through is deliberately not
// supported: a target whose first segment is not registered is rejected
// before any outbound call is made.
package routes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrEmptyTarget means the target parameter was missing or empty.
	ErrEmptyTarget = errors.New("no target specified")

	// ErrUnknownRoute means the target's first segment is not registered.
	ErrUnknownRoute = errors.New("unknown target route")
)

// Table maps route identifiers to upstream base URLs.
type Table struct {
	backendURL string
	bases      map[string]string
}

// NewTable builds a Table. Identifiers mapped to an empty string fall back
// to backendURL.
func NewTable(backendURL string, overrides map[string]string) *Table {
	bases := make(map[string]string, len(overrides))
	for id, base := range overrides {
		if base == "" {
			base = backendURL
		}
		bases[id] = strings.TrimRight(base, "/")
	}
	return &Table{
		backendURL: strings.TrimRight(backendURL, "/"),
		bases:      bases,
	}
}

// Resolve validates target and returns the full upstream URL together with
// the matched route identifier.
func (t *Table) Resolve(target string) (upstreamURL, route string, err error) {
	target = strings.Trim(target, "/")
	if target == "" {
		return "", "", ErrEmptyTarget
	}

	route = target
	if i := strings.IndexByte(target, '/'); i >= 0 {
		route = target[:i]
	}

	base, ok := t.bases[route]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}

	return base + "/" + target, route, nil
}

// Routes returns the registered identifiers, sorted.
func (t *Table) Routes() []string {
	ids := make([]string, 0, len(t.bases))
	for id := range t.bases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
