package bfm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvbfm/core"
)

// Cursor is a peekable line iterator. Lines are returned without the
// trailing "\n" or "\r\n"; no other bytes are trimmed, since identifier
// payloads may end in spaces.
type Cursor struct {
	r      *bufio.Reader
	line   int // number of the last consumed line
	peeked bool
	next   string
	eof    bool
	err    error
}

// NewCursor wraps r.
func NewCursor(r io.Reader) *Cursor {
	return &Cursor{r: bufio.NewReader(r)}
}

// Peek returns the next line without consuming it. ok is false at end of
// input or after a read error (see Err).
func (c *Cursor) Peek() (line string, ok bool) {
	if !c.peeked {
		c.fill()
	}
	if c.eof {
		return "", false
	}

	return c.next, true
}

// Next consumes and returns the next line.
func (c *Cursor) Next() (line string, ok bool) {
	line, ok = c.Peek()
	if ok {
		c.peeked = false
		c.line++
	}

	return line, ok
}

// NextRecord consumes the next body line of the current command. Blank lines
// and comments are skipped. ok is false when the next line opens a command
// or the input ends; that line is left unconsumed.
func (c *Cursor) NextRecord() (record string, ok bool) {
	for {
		line, ok := c.Peek()
		if !ok || IsCommand(line) {
			return "", false
		}
		c.Next()
		if line == "" || line[0] == '#' {
			continue
		}
		return line, true
	}
}

// Line returns the 1-based number of the last consumed line.
func (c *Cursor) Line() int { return c.line }

// Err returns the first read error other than io.EOF, wrapped in core.ErrIO.
func (c *Cursor) Err() error { return c.err }

// Errorf builds a format error naming the command, the record and the line.
func (c *Cursor) Errorf(command string, record int, format string, args ...any) error {
	return fmt.Errorf("bfm: line %d: %s record %d: %s: %w",
		c.line, command, record, fmt.Sprintf(format, args...), core.ErrFormat)
}

func (c *Cursor) fill() {
	if c.eof {
		return
	}
	s, err := c.r.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if s == "" {
			c.eof = true
			return
		}
	default:
		c.err = fmt.Errorf("bfm: read after line %d: %w: %w", c.line, core.ErrIO, err)
		c.eof = true
		return
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	c.next, c.peeked = s, true
}

// IsCommand reports whether line opens a command block.
func IsCommand(line string) bool {
	return strings.HasPrefix(line, "!") || strings.HasPrefix(line, "#!")
}

// splitCommand separates "keyword=args" or "keyword args".
func splitCommand(line string) (keyword, args string) {
	if i := strings.IndexAny(line, "= \t"); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+1:])
	}

	return line, ""
}
