// SPDX-License-Identifier: MIT
//
// File: command.go
// Role: Command registry and the per-stream State handed to every callback.
// Policy:
//   - Keywords are unique and start with '!' or "#!".
//   - Writers emit commands in registration order with !mcs always last.

package bfm

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvbfm/bondvec"
	"github.com/katalvlaran/lvbfm/core"
)

// Policy selects when a command is written.
type Policy uint8

const (
	// HeaderOnly commands are written with the first frame of a Writer.
	HeaderOnly Policy = iota
	// PerFrame commands are written with every frame.
	PerFrame
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case HeaderOnly:
		return "header-only"
	case PerFrame:
		return "per-frame"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// WriteFunc renders a command block, keyword line included.
type WriteFunc func(w io.Writer, st *State) error

// ReadFunc parses a command. args is the text after the keyword and its
// '=' separator; body records are pulled from c with NextRecord.
type ReadFunc func(args string, c *Cursor, st *State) error

// Command binds a keyword to its callbacks. Either callback may be nil:
// a command without Write is read-only, one without Read is skipped on input.
type Command struct {
	Keyword string
	Policy  Policy
	Write   WriteFunc
	Read    ReadFunc
}

// System is the simulation state a trajectory describes.
type System struct {
	Molecules *core.Molecules
	Box       core.Box
	Bonds     *bondvec.Set
}

// State is the per-stream view passed to command callbacks.
type State struct {
	System

	// Version is the value of #!version, if read.
	Version string
	// Frame counts the frames completed on this stream.
	Frame int
	// Declared is the particle count of the last !number_of_monomers, or -1.
	Declared int

	// listed holds the bonds not implied by chains, as last written or read.
	listed map[core.Edge]struct{}
	log    *slog.Logger
	strict bool
}

func newState(sys System, log *slog.Logger) *State {
	return &State{
		System:   sys,
		Declared: -1,
		listed:   make(map[core.Edge]struct{}),
		log:      log,
	}
}

// Logger returns the stream logger.
func (st *State) Logger() *slog.Logger { return st.log }

// Registry is an ordered set of commands.
type Registry struct {
	cmds  []Command
	index map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// DefaultRegistry returns a registry holding the standard bfm commands.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range standardCommands() {
		// Standard keywords are valid and unique.
		_ = r.Register(c)
	}

	return r
}

// Register appends c. Returns ErrKeyword for a malformed keyword and
// ErrDuplicateCommand when the keyword is already registered.
func (r *Registry) Register(c Command) error {
	if !IsCommand(c.Keyword) || strings.ContainsAny(c.Keyword, "= \t") {
		return fmt.Errorf("Register(%q): %w", c.Keyword, ErrKeyword)
	}
	if _, dup := r.index[c.Keyword]; dup {
		return fmt.Errorf("Register(%q): %w", c.Keyword, ErrDuplicateCommand)
	}
	r.index[c.Keyword] = len(r.cmds)
	r.cmds = append(r.cmds, c)

	return nil
}

// Lookup returns the command registered under keyword.
func (r *Registry) Lookup(keyword string) (Command, bool) {
	i, ok := r.index[keyword]
	if !ok {
		return Command{}, false
	}

	return r.cmds[i], true
}

// Keywords returns the registered keywords in registration order.
func (r *Registry) Keywords() []string {
	out := make([]string, len(r.cmds))
	for i, c := range r.cmds {
		out[i] = c.Keyword
	}

	return out
}

// writeOrder returns the commands to emit for one frame.
func (r *Registry) writeOrder(withHeader bool) []Command {
	out := make([]Command, 0, len(r.cmds))
	var last *Command
	for i := range r.cmds {
		c := r.cmds[i]
		if c.Write == nil || (c.Policy == HeaderOnly && !withHeader) {
			continue
		}
		if c.Keyword == KeywordMCS {
			last = &r.cmds[i]
			continue
		}
		out = append(out, c)
	}
	if last != nil {
		out = append(out, *last)
	}

	return out
}
