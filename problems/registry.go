// Package problems provides a catalogue of classic boundary value
// problems with analytic Jacobians and initial guesses, used by the
// bvpsolve CLI and as ready-made inputs for kernel integrations.
package problems

import (
	"fmt"
	"sort"

	"github.com/numgrove/bvp/colnew"
)

// Entry describes one catalogued problem.
type Entry struct {
	Name string
	Desc string
	// Build returns a fresh Problem; callers own the result and may
	// adjust solver configuration before use.
	Build func() *colnew.Problem
}

var registry = map[string]Entry{}

func register(e Entry) {
	registry[e.Name] = e
}

// Get returns the named problem entry.
func Get(name string) (Entry, error) {
	e, ok := registry[name]
	if !ok {
		return Entry{}, fmt.Errorf("problems: unknown problem %q", name)
	}
	return e, nil
}

// Names lists the catalogued problems, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
