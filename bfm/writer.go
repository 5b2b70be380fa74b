// SPDX-License-Identifier: MIT
//
// File: writer.go
// Role: Frame writer and the three file write modes.
// Policy:
//   - The file header is written once per physical file.
//   - Header-only commands are written once per Writer.
//   - A frame is rendered in memory and written with one call, so a failed
//     command leaves nothing of its frame in the output.

package bfm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/lvbfm/core"
)

// Mode selects how Create treats an existing file.
type Mode uint8

const (
	// Append writes to the end of the file, creating it if absent. The
	// file header is written only when the file is empty.
	Append Mode = iota
	// New creates the file and fails if it exists.
	New
	// Overwrite truncates or creates the file.
	Overwrite
)

// String returns the mode name used in configuration.
func (m Mode) String() string {
	switch m {
	case Append:
		return "append"
	case New:
		return "new"
	case Overwrite:
		return "overwrite"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode maps "append", "new" or "overwrite" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "append", "":
		return Append, nil
	case "new":
		return New, nil
	case "overwrite":
		return Overwrite, nil
	}

	return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrMode)
}

// Writer emits bfm frames to a stream.
type Writer struct {
	w      io.Writer
	closer io.Closer
	opt    options
	st     *State

	headerDone bool // file header present in the output
	streamed   bool // header-only commands written
	buf        bytes.Buffer
}

// NewWriter returns a Writer for w, which is assumed to be empty.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	o := newOptions(opts)
	return &Writer{w: w, opt: o, st: newState(System{}, o.log)}
}

// Create opens path according to mode and returns a Writer owning the file.
// Open failures wrap core.ErrIO.
func Create(path string, mode Mode, opts ...Option) (*Writer, error) {
	var flag int
	switch mode {
	case Append:
		flag = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	case New:
		flag = os.O_CREATE | os.O_WRONLY | os.O_EXCL
	case Overwrite:
		flag = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	default:
		return nil, fmt.Errorf("Create(%q): %w", path, ErrMode)
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return nil, fmt.Errorf("Create(%q, %s): %w: %w", path, mode, core.ErrIO, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("Create(%q): %w: %w", path, core.ErrIO, err)
	}
	wr := NewWriter(f, opts...)
	wr.closer = f
	wr.headerDone = info.Size() > 0
	wr.opt.log.Debug("bfm: trajectory opened", "path", path, "mode", mode.String(), "size", info.Size())

	return wr, nil
}

// Frames returns the number of frames written.
func (wr *Writer) Frames() int { return wr.st.Frame }

// WriteFrame writes sys as one frame. The first frame of the Writer also
// carries the header-only commands, and the file header if the file was empty.
//
// Errors:
//   - ErrNilSystem without molecules or alphabet.
//   - core.ErrRange for an invalid box.
//   - ErrBondedSolvent if a compressed particle has bonds.
//   - core.ErrIO if the output rejects the write.
func (wr *Writer) WriteFrame(sys System) error {
	if sys.Molecules == nil || sys.Bonds == nil {
		return fmt.Errorf("WriteFrame: %w", ErrNilSystem)
	}
	if err := sys.Box.Validate(); err != nil {
		return fmt.Errorf("WriteFrame: %w", err)
	}
	for _, r := range sys.Molecules.CompressedRanges() {
		for i := r.First; i <= r.Last; i++ {
			if sys.Molecules.At(i).Degree() > 0 {
				return fmt.Errorf("WriteFrame: particle %d: %w", i, ErrBondedSolvent)
			}
		}
	}

	st := wr.st
	st.System = sys
	saved := maps.Clone(st.listed)

	wr.buf.Reset()
	if !wr.headerDone {
		wr.writeHeader()
	}
	for _, c := range wr.opt.registry.writeOrder(!wr.streamed) {
		if err := c.Write(&wr.buf, st); err != nil {
			st.listed = saved
			return fmt.Errorf("WriteFrame: %s: %w", c.Keyword, err)
		}
	}
	if _, err := wr.w.Write(wr.buf.Bytes()); err != nil {
		st.listed = saved
		return fmt.Errorf("WriteFrame: %w: %w", core.ErrIO, err)
	}

	wr.headerDone, wr.streamed = true, true
	st.Frame++
	wr.opt.log.Debug("bfm: frame written",
		"frame", st.Frame, "mcs", sys.Molecules.Age(), "bytes", wr.buf.Len())

	return nil
}

func (wr *Writer) writeHeader() {
	fmt.Fprintf(&wr.buf, "%s=%s\n", KeywordVersion, FormatVersion)
	fmt.Fprintf(&wr.buf, "# created: %s\n", wr.opt.clock().UTC().Format(time.RFC3339))
	for _, c := range wr.opt.comments {
		for _, line := range strings.Split(c, "\n") {
			fmt.Fprintf(&wr.buf, "# %s\n", line)
		}
	}
	wr.buf.WriteByte('\n')
}

// Close closes the file opened by Create. It is a no-op for NewWriter.
func (wr *Writer) Close() error {
	if wr.closer == nil {
		return nil
	}
	err := wr.closer.Close()
	wr.closer = nil
	if err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("Close: %w: %w", core.ErrIO, err)
	}

	return nil
}
