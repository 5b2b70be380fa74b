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

// Standard keywords.
const (
	KeywordVersion     = "#!version"
	KeywordMonomers    = "!number_of_monomers"
	KeywordBoxX        = "!box_x"
	KeywordBoxY        = "!box_y"
	KeywordBoxZ        = "!box_z"
	KeywordPeriodicX   = "!periodic_x"
	KeywordPeriodicY   = "!periodic_y"
	KeywordPeriodicZ   = "!periodic_z"
	KeywordBondVectors = "!set_of_bondvectors"
	KeywordBonds       = "!bonds"
	KeywordRemoveBonds = "!remove_bonds"
	KeywordAddBonds    = "!add_bonds"
	KeywordMCS         = "!mcs"
)

// FormatVersion is written as #!version in every file header.
const FormatVersion = "2.0"

func standardCommands() []Command {
	return []Command{
		{Keyword: KeywordVersion, Policy: HeaderOnly, Read: readVersion},
		{Keyword: KeywordMonomers, Policy: HeaderOnly, Write: writeMonomers, Read: readMonomers},
		boxCommand(KeywordBoxX, 0),
		boxCommand(KeywordBoxY, 1),
		boxCommand(KeywordBoxZ, 2),
		periodicCommand(KeywordPeriodicX, 0),
		periodicCommand(KeywordPeriodicY, 1),
		periodicCommand(KeywordPeriodicZ, 2),
		{Keyword: KeywordBondVectors, Policy: HeaderOnly, Write: writeBondVectors, Read: readBondVectors},
		{Keyword: KeywordBonds, Policy: HeaderOnly, Write: writeBonds, Read: readBonds},
		{Keyword: KeywordRemoveBonds, Policy: PerFrame, Write: writeRemoveBonds, Read: readRemoveBonds},
		{Keyword: KeywordAddBonds, Policy: PerFrame, Write: writeAddBonds, Read: readAddBonds},
		{Keyword: KeywordMCS, Policy: PerFrame, Write: writeMCS, Read: readMCS},
	}
}

func readVersion(args string, c *Cursor, st *State) error {
	if args == "" {
		return c.Errorf(KeywordVersion, 0, "missing version")
	}
	st.Version = args

	return nil
}

func writeMonomers(w io.Writer, st *State) error {
	_, err := fmt.Fprintf(w, "%s=%d\n", KeywordMonomers, st.Molecules.Len())
	return err
}

func readMonomers(args string, c *Cursor, st *State) error {
	n, err := strconv.Atoi(args)
	if err != nil || n < 0 {
		return c.Errorf(KeywordMonomers, 0, "count %q", args)
	}
	if err = st.Molecules.Resize(n); err != nil {
		return err
	}
	st.Declared = n

	return nil
}

func boxCommand(keyword string, axis int) Command {
	return Command{
		Keyword: keyword,
		Policy:  HeaderOnly,
		Write: func(w io.Writer, st *State) error {
			_, err := fmt.Fprintf(w, "%s=%d\n", keyword, st.Box.Size(axis))
			return err
		},
		Read: func(args string, c *Cursor, st *State) error {
			n, err := strconv.Atoi(args)
			if err != nil || n <= 0 {
				return c.Errorf(keyword, 0, "size %q", args)
			}
			switch axis {
			case 0:
				st.Box.X = n
			case 1:
				st.Box.Y = n
			default:
				st.Box.Z = n
			}
			return nil
		},
	}
}

func periodicCommand(keyword string, axis int) Command {
	return Command{
		Keyword: keyword,
		Policy:  HeaderOnly,
		Write: func(w io.Writer, st *State) error {
			flag := 0
			if st.Box.Periodic(axis) {
				flag = 1
			}
			_, err := fmt.Fprintf(w, "%s=%d\n", keyword, flag)
			return err
		},
		Read: func(args string, c *Cursor, st *State) error {
			var on bool
			switch args {
			case "1", "true":
				on = true
			case "0", "false":
			default:
				return c.Errorf(keyword, 0, "flag %q", args)
			}
			switch axis {
			case 0:
				st.Box.PeriodicX = on
			case 1:
				st.Box.PeriodicY = on
			default:
				st.Box.PeriodicZ = on
			}
			return nil
		},
	}
}

// writeBondVectors emits one "x y z:id" record per alphabet entry.
func writeBondVectors(w io.Writer, st *State) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(KeywordBondVectors + "\n")
	for _, e := range st.Bonds.Entries() {
		fmt.Fprintf(bw, "%d %d %d:%d\n", e.Vector.X, e.Vector.Y, e.Vector.Z, e.Identifier)
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// readBondVectors replaces the alphabet.
func readBondVectors(_ string, c *Cursor, st *State) error {
	st.Bonds.Clear()
	for record := 1; ; record++ {
		line, ok := c.NextRecord()
		if !ok {
			break
		}
		vec, id, found := strings.Cut(line, ":")
		if !found {
			return c.Errorf(KeywordBondVectors, record, "missing ':' in %q", line)
		}
		f := strings.Fields(vec)
		if len(f) != 3 {
			return c.Errorf(KeywordBondVectors, record, "vector %q", vec)
		}
		var comp [3]int
		for k := range f {
			v, err := strconv.Atoi(f[k])
			if err != nil {
				return c.Errorf(KeywordBondVectors, record, "component %q", f[k])
			}
			comp[k] = v
		}
		ident, err := strconv.ParseUint(strings.TrimSpace(id), 10, 8)
		if err != nil {
			return c.Errorf(KeywordBondVectors, record, "identifier %q", id)
		}
		if err = st.Bonds.AddBond(core.V(comp[0], comp[1], comp[2]), byte(ident)); err != nil {
			return fmt.Errorf("%w: %w", c.Errorf(KeywordBondVectors, record, "rejected"), err)
		}
	}
	st.Bonds.UpdateLookupTable()

	return c.Err()
}

// chainImplied reports whether e is carried by a chain line of the current frame.
func chainImplied(st *State, e core.Edge) bool {
	mol := st.Molecules
	if e.B != e.A+1 || mol.IsCompressed(e.A) || mol.IsCompressed(e.B) {
		return false
	}

	return st.Bonds.IsValid(mol.At(e.B).Pos().Sub(mol.At(e.A).Pos()))
}

// explicitEdges returns the edges of the current frame that chains do not carry.
func explicitEdges(st *State) []core.Edge {
	var out []core.Edge
	for _, e := range st.Molecules.Edges() {
		if !chainImplied(st, e) {
			out = append(out, e)
		}
	}

	return out
}

func writeEdgeBlock(w io.Writer, keyword string, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(keyword + "\n")
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d\n", e.A+1, e.B+1)
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

func readEdgeBlock(keyword string, c *Cursor, apply func(core.Edge)) error {
	for record := 1; ; record++ {
		line, ok := c.NextRecord()
		if !ok {
			break
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return c.Errorf(keyword, record, "expected two indices in %q", line)
		}
		a, errA := strconv.Atoi(f[0])
		b, errB := strconv.Atoi(f[1])
		if errA != nil || errB != nil || a < 1 || b < 1 || a == b {
			return c.Errorf(keyword, record, "indices %q", line)
		}
		if a > b {
			a, b = b, a
		}
		apply(core.Edge{A: a - 1, B: b - 1})
	}

	return c.Err()
}

// writeBonds lists every explicit edge and resets the diff baseline.
func writeBonds(w io.Writer, st *State) error {
	edges := explicitEdges(st)
	if err := writeEdgeBlock(w, KeywordBonds, edges); err != nil {
		return err
	}
	clear(st.listed)
	for _, e := range edges {
		st.listed[e] = struct{}{}
	}

	return nil
}

func readBonds(_ string, c *Cursor, st *State) error {
	clear(st.listed)
	return readEdgeBlock(KeywordBonds, c, func(e core.Edge) { st.listed[e] = struct{}{} })
}

func writeRemoveBonds(w io.Writer, st *State) error {
	want := make(map[core.Edge]struct{})
	for _, e := range explicitEdges(st) {
		want[e] = struct{}{}
	}
	var gone []core.Edge
	for e := range st.listed {
		if _, ok := want[e]; !ok {
			gone = append(gone, e)
		}
	}
	if len(gone) == 0 {
		return nil
	}
	slices.SortFunc(gone, compareEdges)
	if err := writeEdgeBlock(w, KeywordRemoveBonds, gone); err != nil {
		return err
	}
	for _, e := range gone {
		delete(st.listed, e)
	}

	return nil
}

func readRemoveBonds(_ string, c *Cursor, st *State) error {
	return readEdgeBlock(KeywordRemoveBonds, c, func(e core.Edge) { delete(st.listed, e) })
}

func writeAddBonds(w io.Writer, st *State) error {
	var added []core.Edge
	for _, e := range explicitEdges(st) {
		if _, ok := st.listed[e]; !ok {
			added = append(added, e)
		}
	}
	if len(added) == 0 {
		return nil
	}
	if err := writeEdgeBlock(w, KeywordAddBonds, added); err != nil {
		return err
	}
	for _, e := range added {
		st.listed[e] = struct{}{}
	}

	return nil
}

func readAddBonds(_ string, c *Cursor, st *State) error {
	return readEdgeBlock(KeywordAddBonds, c, func(e core.Edge) { st.listed[e] = struct{}{} })
}

func compareEdges(x, y core.Edge) int {
	if x.A != y.A {
		return x.A - y.A
	}
	return x.B - y.B
}
