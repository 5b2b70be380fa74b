// SPDX-License-Identifier: MIT
//
// File: commands_frame.go
// Role: The !mcs frame: chain-delta lines and compressed solvent blocks.
// Policy:
//   - Records cover indices in ascending order, every index exactly once.
//   - After a frame is read, the bond set equals chain edges plus listed edges.

package bfm

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvbfm/core"
)

// Solvent payload encoding.
const (
	// MaxPayload is the maximum number of payload bytes per solvent line.
	MaxPayload = 256
	// SolventOffset maps a gap of 0 to the first printable non-space byte '!'.
	SolventOffset = 33
	// MaxDirectGap is the largest gap written as a single byte.
	MaxDirectGap = 94
)

func writeMCS(w io.Writer, st *State) error {
	mol := st.Molecules
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s=%d\n", KeywordMCS, mol.Age())

	n := mol.Len()
	ids := make([]byte, 0, 64)
	for i := 0; i < n; {
		if r, ok := mol.CompressedRangeOf(i); ok {
			writeSolvent(bw, st, r)
			i = r.Last + 1
			continue
		}
		p := mol.At(i).Pos()
		fmt.Fprintf(bw, "%d %d %d", p.X, p.Y, p.Z)
		ids = ids[:0]
		j := i
		for j+1 < n && !mol.IsCompressed(j+1) && mol.AreConnected(j, j+1) {
			id, err := st.Bonds.BondIdentifier(mol.At(j + 1).Pos().Sub(mol.At(j).Pos()))
			if err != nil {
				break
			}
			ids = append(ids, id)
			j++
		}
		if len(ids) > 0 {
			bw.WriteByte(' ')
			bw.Write(ids)
		}
		bw.WriteByte('\n')
		i = j + 1
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// linearIndex folds p into box and returns z·X·Y + y·X + x.
func linearIndex(box core.Box, p core.Vec3) int {
	f := box.Fold(p)
	return f.Z*box.X*box.Y + f.Y*box.X + f.X
}

func fromLinearIndex(box core.Box, idx int) core.Vec3 {
	return core.V(idx%box.X, (idx/box.X)%box.Y, idx/(box.X*box.Y))
}

func writeSolvent(bw *bufio.Writer, st *State, r core.IndexRange) {
	idx := make([]int, 0, r.Len())
	for i := r.First; i <= r.Last; i++ {
		idx = append(idx, linearIndex(st.Box, st.Molecules.At(i).Pos()))
	}
	slices.Sort(idx)

	fmt.Fprintf(bw, "$%d:%d ", r.First+1, r.Last+1)
	used, prev := 0, 0
	tok := make([]byte, 0, 24)
	for _, v := range idx {
		d := v - prev
		prev = v
		tok = tok[:0]
		if d <= MaxDirectGap {
			tok = append(tok, byte(d+SolventOffset))
		} else {
			tok = fmt.Appendf(tok, " %d ", d)
		}
		if used+len(tok) > MaxPayload {
			bw.WriteString("\n&")
			used = 0
		}
		bw.Write(tok)
		used += len(tok)
	}
	bw.WriteByte('\n')
}

// frameReader carries the decoding state of one !mcs block.
type frameReader struct {
	c      *Cursor
	st     *State
	next   int // next index to populate
	record int
	chain  []core.Edge
}

func readMCS(args string, c *Cursor, st *State) error {
	age, err := strconv.ParseUint(args, 10, 64)
	if err != nil {
		return c.Errorf(KeywordMCS, 0, "age %q", args)
	}
	if st.Declared < 0 {
		return c.Errorf(KeywordMCS, 0, "frame before %s", KeywordMonomers)
	}
	fr := &frameReader{c: c, st: st}
	for {
		line, ok := c.NextRecord()
		if !ok {
			break
		}
		fr.record++
		switch line[0] {
		case '$':
			err = fr.solvent(line)
		case '&':
			err = c.Errorf(KeywordMCS, fr.record, "continuation line without solvent block")
		default:
			err = fr.chainLine(line)
		}
		if err != nil {
			return err
		}
	}
	if err = c.Err(); err != nil {
		return err
	}
	if err = fr.checkCount(); err != nil {
		return err
	}
	if err = fr.reconcileBonds(); err != nil {
		return err
	}
	st.Molecules.SetAge(age)

	return nil
}

// chainLine decodes "x y z[ ids]".
func (fr *frameReader) chainLine(line string) error {
	var coord [3]int
	rest := line
	for k := 0; k < 3; k++ {
		field := rest
		if sp := strings.IndexByte(rest, ' '); sp >= 0 {
			field, rest = rest[:sp], rest[sp+1:]
		} else {
			rest = ""
			if k < 2 {
				return fr.c.Errorf(KeywordMCS, fr.record, "chain start %q", line)
			}
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return fr.c.Errorf(KeywordMCS, fr.record, "coordinate %q", field)
		}
		coord[k] = v
	}

	pos := core.V(coord[0], coord[1], coord[2])
	if err := fr.place(pos); err != nil {
		return err
	}
	for k := 0; k < len(rest); k++ {
		v, err := fr.st.Bonds.BondVector(rest[k])
		if err != nil {
			return fr.c.Errorf(KeywordMCS, fr.record, "bond identifier %d at byte %d", rest[k], k)
		}
		pos = pos.Add(v)
		if err = fr.place(pos); err != nil {
			return err
		}
		fr.chain = append(fr.chain, core.Edge{A: fr.next - 2, B: fr.next - 1})
	}

	return nil
}

// place assigns pos to the next index.
func (fr *frameReader) place(pos core.Vec3) error {
	mol := fr.st.Molecules
	if fr.next >= mol.Len() {
		return fr.c.Errorf(KeywordMCS, fr.record, "more than %d particles", mol.Len())
	}
	if err := mol.SetPosition(fr.next, pos); err != nil {
		return err
	}
	fr.next++

	return nil
}

// solvent decodes "$first:last payload" plus "&" continuation lines.
func (fr *frameReader) solvent(line string) error {
	c, st := fr.c, fr.st
	head, payload, _ := strings.Cut(line[1:], " ")
	a, b, found := strings.Cut(head, ":")
	first, errA := strconv.Atoi(a)
	last, errB := strconv.Atoi(b)
	if !found || errA != nil || errB != nil || first < 1 || last < first {
		return c.Errorf(KeywordMCS, fr.record, "solvent range %q", head)
	}
	first, last = first-1, last-1
	if first != fr.next {
		return c.Errorf(KeywordMCS, fr.record, "solvent range starts at %d, expected %d", first+1, fr.next+1)
	}
	if last >= st.Molecules.Len() {
		return c.Errorf(KeywordMCS, fr.record, "solvent range ends at %d of %d", last+1, st.Molecules.Len())
	}
	if err := st.Box.Validate(); err != nil {
		return fmt.Errorf("%w: %w", c.Errorf(KeywordMCS, fr.record, "solvent block needs a box"), err)
	}

	volume := st.Box.Volume()
	count := last - first + 1
	prev := 0
	for decoded := 0; decoded < count; {
		if payload == "" {
			cont, ok := c.Peek()
			if !ok || !strings.HasPrefix(cont, "&") {
				return c.Errorf(KeywordMCS, fr.record, "solvent block ends after %d of %d particles", decoded, count)
			}
			c.Next()
			payload = cont[1:]
			continue
		}
		var d int
		if payload[0] == ' ' {
			end := strings.IndexByte(payload[1:], ' ')
			if end < 0 {
				return c.Errorf(KeywordMCS, fr.record, "unterminated gap escape")
			}
			v, err := strconv.Atoi(payload[1 : end+1])
			if err != nil || v < 0 {
				return c.Errorf(KeywordMCS, fr.record, "gap escape %q", payload[1:end+1])
			}
			d, payload = v, payload[end+2:]
		} else {
			ch := payload[0]
			if ch < SolventOffset || int(ch) > SolventOffset+MaxDirectGap {
				return c.Errorf(KeywordMCS, fr.record, "solvent byte %d", ch)
			}
			d, payload = int(ch)-SolventOffset, payload[1:]
		}
		idx := prev + d
		if idx >= volume {
			return c.Errorf(KeywordMCS, fr.record, "linear index %d outside box volume %d", idx, volume)
		}
		prev = idx
		if err := fr.place(fromLinearIndex(st.Box, idx)); err != nil {
			return err
		}
		decoded++
	}
	if payload != "" {
		return c.Errorf(KeywordMCS, fr.record, "%d trailing solvent bytes", len(payload))
	}

	return st.Molecules.MarkCompressed(first, last)
}

// checkCount enforces that the frame populated every declared particle. A
// short first frame is tolerated with a warning unless strict counting is on.
func (fr *frameReader) checkCount() error {
	n := fr.st.Molecules.Len()
	if fr.next == n {
		return nil
	}
	if fr.st.Frame == 0 && !fr.st.strict {
		fr.st.log.Warn("bfm: first frame populates fewer particles than declared",
			"line", fr.c.Line(), "populated", fr.next, "declared", n)
		return nil
	}

	return fmt.Errorf("bfm: line %d: frame %d populates %d of %d particles: %w",
		fr.c.Line(), fr.st.Frame+1, fr.next, n, ErrCountMismatch)
}

// reconcileBonds makes the bonded graph equal chain edges plus listed edges.
func (fr *frameReader) reconcileBonds() error {
	mol := fr.st.Molecules
	want := make(map[core.Edge]struct{}, len(fr.st.listed)+len(fr.chain))
	for e := range fr.st.listed {
		want[e] = struct{}{}
	}
	for _, e := range fr.chain {
		want[e] = struct{}{}
	}
	for _, e := range mol.Edges() {
		if _, ok := want[e]; !ok {
			if err := mol.Disconnect(e.A, e.B); err != nil {
				return err
			}
		}
	}
	edges := make([]core.Edge, 0, len(want))
	for e := range want {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, compareEdges)
	for _, e := range edges {
		if err := mol.Connect(e.A, e.B); err != nil {
			return fmt.Errorf("bfm: line %d: frame %d: bond %d-%d: %w: %w",
				fr.c.Line(), fr.st.Frame+1, e.A+1, e.B+1, core.ErrFormat, err)
		}
		if mol.IsCompressed(e.A) || mol.IsCompressed(e.B) {
			return fmt.Errorf("bfm: line %d: bond %d-%d touches a solvent range: %w: %w",
				fr.c.Line(), e.A+1, e.B+1, core.ErrFormat, ErrBondedSolvent)
		}
	}

	return nil
}
