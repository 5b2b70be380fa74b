// SPDX-License-Identifier: MIT
//
// File: reader.go
// Role: Command dispatch over a Cursor: header, frame-by-frame, whole file.
// Policy:
//   - ReadHeader stops before the first !mcs without consuming it.
//   - Unknown commands are skipped with a warning, body included.
//   - A frame ends with its !mcs block; every other command seen on the way
//     (bond diffs, repeated header commands of appended streams) is applied first.

package bfm

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvbfm/bondvec"
	"github.com/katalvlaran/lvbfm/core"
)

// Reader decodes a bfm stream into a System.
type Reader struct {
	c          *Cursor
	closer     *os.File
	opt        options
	st         *State
	headerRead bool
}

// NewReader returns a Reader decoding from c's source. Without WithMolecules
// and WithBondSet it reads into a fresh container and a fresh alphabet.
func NewReader(c *Cursor, opts ...Option) *Reader {
	o := newOptions(opts)
	mol := o.mol
	if mol == nil {
		mol = core.NewMolecules()
	}
	bonds := o.bonds
	if bonds == nil {
		bonds = bondvec.New()
	}
	st := newState(System{
		Molecules: mol,
		Box:       core.Box{PeriodicX: true, PeriodicY: true, PeriodicZ: true},
		Bonds:     bonds,
	}, o.log)
	st.strict = o.strict

	return &Reader{c: c, opt: o, st: st}
}

// Open opens path for reading. Failures wrap core.ErrIO.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Open(%q): %w: %w", path, core.ErrIO, err)
	}
	r := NewReader(NewCursor(f), opts...)
	r.closer = f

	return r, nil
}

// Close releases the file opened by Open.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	if err != nil {
		return fmt.Errorf("Close: %w: %w", core.ErrIO, err)
	}

	return nil
}

// System returns the decoded state. It is updated in place by every call.
func (r *Reader) System() System { return r.st.System }

// State returns the stream state.
func (r *Reader) State() *State { return r.st }

// ReadHeader processes every command before the first !mcs.
func (r *Reader) ReadHeader() error {
	if r.headerRead {
		return nil
	}
	for {
		line, ok := r.c.Peek()
		if !ok {
			break
		}
		if !IsCommand(line) {
			if err := r.skipNonCommand(); err != nil {
				return err
			}
			continue
		}
		if kw, _ := splitCommand(line); kw == KeywordMCS {
			break
		}
		if _, err := r.dispatch(); err != nil {
			return err
		}
	}
	if err := r.c.Err(); err != nil {
		return err
	}
	r.headerRead = true
	r.opt.log.Debug("bfm: header read",
		"version", r.st.Version, "particles", r.st.Declared,
		"box", fmt.Sprintf("%dx%dx%d", r.st.Box.X, r.st.Box.Y, r.st.Box.Z),
		"bond_vectors", r.st.Bonds.Len())

	return nil
}

// NextFrame reads through the next !mcs block. It returns false, nil at the
// end of input.
func (r *Reader) NextFrame() (bool, error) {
	if err := r.ReadHeader(); err != nil {
		return false, err
	}
	for {
		line, ok := r.c.Peek()
		if !ok {
			return false, r.c.Err()
		}
		if !IsCommand(line) {
			if err := r.skipNonCommand(); err != nil {
				return false, err
			}
			continue
		}
		kw, err := r.dispatch()
		if err != nil {
			return false, err
		}
		if kw == KeywordMCS {
			r.st.Frame++
			return true, nil
		}
	}
}

// ReadAll reads every frame and calls fn after each one. A non-nil error
// from fn stops reading and is returned unchanged.
func (r *Reader) ReadAll(fn func(frame int, sys System) error) error {
	for {
		ok, err := r.NextFrame()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if fn != nil {
			if err = fn(r.st.Frame, r.st.System); err != nil {
				return err
			}
		}
	}
}

// dispatch consumes the command line at the cursor and runs its reader.
func (r *Reader) dispatch() (string, error) {
	line, _ := r.c.Next()
	kw, args := splitCommand(line)
	cmd, ok := r.opt.registry.Lookup(kw)
	if !ok || cmd.Read == nil {
		skipped := 0
		for {
			if _, more := r.c.NextRecord(); !more {
				break
			}
			skipped++
		}
		r.opt.log.Warn("bfm: skipping unknown command", "keyword", kw, "line", r.c.Line(), "records", skipped)
		return kw, r.c.Err()
	}
	if err := cmd.Read(args, r.c, r.st); err != nil {
		return kw, err
	}

	return kw, nil
}

// skipNonCommand consumes a line outside any command block. Only blank lines
// and comments are allowed there.
func (r *Reader) skipNonCommand() error {
	line, _ := r.c.Next()
	if line == "" || line[0] == '#' {
		return nil
	}

	return fmt.Errorf("bfm: line %d: record outside a command block: %w", r.c.Line(), core.ErrFormat)
}
