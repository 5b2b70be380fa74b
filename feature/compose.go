// File: compose.go
// Role: Resolve declared predecessors into one linear check/apply order.
//
// Resolution is a depth-first traversal with White/Gray/Black marking:
// a Gray node reached again is a cycle; a predecessor that was never
// registered is a missing dependency. Features are visited in registration
// order and each one is emitted after all of its predecessors, so features
// that do not depend on each other keep their registration order.
//
// Complexity: O(F + R) for F features and R declared requirements.

package feature

import (
	"fmt"
	"strings"
)

// visitation states
const (
	white = iota
	gray
	black
)

// Composition is an immutable, dependency-ordered list of features.
type Composition struct {
	order  []Feature
	byName map[string]Feature
}

// composer holds the traversal state of one Compose call.
type composer struct {
	byName map[string]Feature
	state  map[string]int
	stack  []string
	order  []Feature
}

// Compose validates and orders features.
//
// Errors:
//   - ErrNilFeature for a nil entry.
//   - ErrDuplicateFeature when two features share a name.
//   - ErrMissingDependency when a required predecessor is not composed.
//   - ErrDependencyCycle when requirements form a cycle.
func Compose(features ...Feature) (*Composition, error) {
	c := &composer{
		byName: make(map[string]Feature, len(features)),
		state:  make(map[string]int, len(features)),
		order:  make([]Feature, 0, len(features)),
	}
	for i, f := range features {
		if f == nil {
			return nil, fmt.Errorf("Compose: entry %d: %w", i, ErrNilFeature)
		}
		if _, dup := c.byName[f.Name()]; dup {
			return nil, fmt.Errorf("Compose: %q: %w", f.Name(), ErrDuplicateFeature)
		}
		c.byName[f.Name()] = f
	}
	for _, f := range features {
		if err := c.visit(f.Name()); err != nil {
			return nil, err
		}
	}

	return &Composition{order: c.order, byName: c.byName}, nil
}

func (c *composer) visit(name string) error {
	switch c.state[name] {
	case black:
		return nil
	case gray:
		return fmt.Errorf("Compose: %s -> %s: %w", strings.Join(c.stack, " -> "), name, ErrDependencyCycle)
	}
	f := c.byName[name]
	c.state[name] = gray
	c.stack = append(c.stack, name)
	for _, req := range f.Requires() {
		if _, ok := c.byName[req]; !ok {
			return fmt.Errorf("Compose: %q requires %q: %w", name, req, ErrMissingDependency)
		}
		if err := c.visit(req); err != nil {
			return err
		}
	}
	c.stack = c.stack[:len(c.stack)-1]
	c.state[name] = black
	c.order = append(c.order, f)

	return nil
}

// Names returns the feature names in resolved order.
func (c *Composition) Names() []string {
	out := make([]string, len(c.order))
	for i, f := range c.order {
		out[i] = f.Name()
	}

	return out
}

// Features returns the features in resolved order.
func (c *Composition) Features() []Feature {
	out := make([]Feature, len(c.order))
	copy(out, c.order)

	return out
}

// Lookup returns the feature registered under name.
func (c *Composition) Lookup(name string) (Feature, bool) {
	f, ok := c.byName[name]
	return f, ok
}

// Len returns the number of composed features.
func (c *Composition) Len() int { return len(c.order) }
