package bfm_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbfm/bfm"
	"github.com/katalvlaran/lvbfm/bondvec"
	"github.com/katalvlaran/lvbfm/core"
)

const shortFrames = `#!version=2.0
!number_of_monomers=3
!box_x=16
!box_y=16
!box_z=16
!set_of_bondvectors
2 0 0:65
!mcs=0
0 0 0
!mcs=1
0 0 0
`

func TestShortFirstFrameWarns(t *testing.T) {
	var logs bytes.Buffer
	r := bfm.NewReader(bfm.NewCursor(strings.NewReader(shortFrames)),
		bfm.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	ok, err := r.NextFrame()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, logs.String(), "fewer particles than declared")

	_, err = r.NextFrame()
	require.ErrorIs(t, err, bfm.ErrCountMismatch)
	assert.ErrorIs(t, err, core.ErrFormat)
	assert.Contains(t, err.Error(), "populates 1 of 3")
}

func TestShortFirstFrameStrict(t *testing.T) {
	r := bfm.NewReader(bfm.NewCursor(strings.NewReader(shortFrames)), bfm.WithStrictMonomerCount())
	_, err := r.NextFrame()
	assert.ErrorIs(t, err, bfm.ErrCountMismatch)
}

func TestReaderFormatErrors(t *testing.T) {
	header := "!number_of_monomers=2\n!box_x=8\n!box_y=8\n!box_z=8\n!set_of_bondvectors\n2 0 0:65\n"
	cases := []struct {
		name, body, want string
	}{
		{"bad age", "!mcs=abc\n", "!mcs record 0"},
		{"unknown identifier", "!mcs=1\n0 0 0 AB\n", "bond identifier 66"},
		{"bad coordinate", "!mcs=1\n0 x 0\n", "coordinate"},
		{"too many particles", "!mcs=1\n0 0 0 AA\n", "more than 2 particles"},
		{"dangling continuation", "!mcs=1\n&!!\n", "continuation line"},
		{"truncated solvent", "!mcs=1\n$1:2 !\n", "ends after 1 of 2"},
		{"solvent byte", "!mcs=1\n$1:2 \x10!\n", "solvent byte 16"},
		{"trailing solvent", "!mcs=1\n$1:2 !\x7f\x7f\n", "1 trailing solvent bytes"},
		{"bond record", "!bonds\n1\n!mcs=1\n0 0 0\n4 0 0\n", "!bonds record 1"},
		{"bond index", "!bonds\n1 9\n!mcs=1\n0 0 0\n4 0 0\n", "bond 1-9"},
		{"vector record", "!set_of_bondvectors\n2 0 0 65\n", "missing ':'"},
		{"outside block", "stray\n", "outside a command block"},
		{"monomer count", "!number_of_monomers=-4\n", "count"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := bfm.NewReader(bfm.NewCursor(strings.NewReader(header + tc.body)))
			err := r.ReadAll(nil)
			require.ErrorIs(t, err, core.ErrFormat)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestSolventEscapeDecoding(t *testing.T) {
	in := "!number_of_monomers=2\n!box_x=16\n!box_y=16\n!box_z=16\n!mcs=5\n$1:2 # 200 \n"
	r := bfm.NewReader(bfm.NewCursor(strings.NewReader(in)))
	ok, err := r.NextFrame()
	require.NoError(t, err)
	require.True(t, ok)

	mol := r.System().Molecules
	assert.Equal(t, core.V(2, 0, 0), mol.At(0).Pos())
	assert.Equal(t, core.V(10, 12, 0), mol.At(1).Pos())
	assert.Equal(t, uint64(5), mol.Age())
	assert.True(t, mol.IsCompressed(0))

	ok, err = r.NextFrame()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnknownCommandSkipped(t *testing.T) {
	in := "!number_of_monomers=1\n!box_x=8\n!box_y=8\n!box_z=8\n!colour=red\nrecord one\nrecord two\n!mcs=0\n3 3 3\n"
	var logs bytes.Buffer
	r := bfm.NewReader(bfm.NewCursor(strings.NewReader(in)),
		bfm.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	require.NoError(t, r.ReadAll(nil))
	assert.Contains(t, logs.String(), "keyword=!colour")
	assert.Equal(t, core.V(3, 3, 3), r.System().Molecules.At(0).Pos())
	assert.Equal(t, 1, r.State().Frame)
}

func TestReadAllStopsOnCallbackError(t *testing.T) {
	var buf bytes.Buffer
	w := bfm.NewWriter(&buf)
	mol := core.NewMolecules()
	mol.AddParticle(core.V(1, 1, 1))
	sys := bfm.System{Molecules: mol, Box: core.NewBox(8, 8, 8), Bonds: bondvec.Classic()}
	for i := 0; i < 3; i++ {
		mol.SetAge(uint64(i))
		require.NoError(t, w.WriteFrame(sys))
	}

	stop := errors.New("stop")
	seen := 0
	err := bfm.NewReader(bfm.NewCursor(&buf)).ReadAll(func(frame int, _ bfm.System) error {
		seen = frame
		if frame == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, seen)
}

// TestCustomCommand registers a per-frame extension command after the
// standard set; it is still written before !mcs.
func TestCustomCommand(t *testing.T) {
	reg := bfm.DefaultRegistry()
	var notes []string
	require.NoError(t, reg.Register(bfm.Command{
		Keyword: "!note",
		Policy:  bfm.PerFrame,
		Write: func(w io.Writer, st *bfm.State) error {
			_, err := fmt.Fprintf(w, "!note=frame%d\n", st.Frame+1)
			return err
		},
		Read: func(args string, _ *bfm.Cursor, _ *bfm.State) error {
			notes = append(notes, args)
			return nil
		},
	}))
	assert.ErrorIs(t, reg.Register(bfm.Command{Keyword: "!note"}), bfm.ErrDuplicateCommand)
	assert.ErrorIs(t, reg.Register(bfm.Command{Keyword: "note"}), bfm.ErrKeyword)
	assert.ErrorIs(t, reg.Register(bfm.Command{Keyword: "!a=b"}), bfm.ErrKeyword)

	mol := core.NewMolecules()
	mol.AddParticle(core.V(0, 0, 0))
	sys := bfm.System{Molecules: mol, Box: core.NewBox(8, 8, 8), Bonds: bondvec.Classic()}
	var buf bytes.Buffer
	w := bfm.NewWriter(&buf, bfm.WithRegistry(reg))
	require.NoError(t, w.WriteFrame(sys))
	require.NoError(t, w.WriteFrame(sys))
	assert.Less(t, strings.Index(buf.String(), "!note=frame1"), strings.Index(buf.String(), "!mcs"))

	require.NoError(t, bfm.NewReader(bfm.NewCursor(&buf), bfm.WithRegistry(reg)).ReadAll(nil))
	assert.Equal(t, []string{"frame1", "frame2"}, notes)
}

func TestReadIntoExistingContainers(t *testing.T) {
	var buf bytes.Buffer
	src := chain5(t)
	require.NoError(t, bfm.NewWriter(&buf).WriteFrame(bfm.System{
		Molecules: src, Box: core.NewBox(32, 32, 32), Bonds: bondvec.Classic(),
	}))

	mol := core.NewMolecules(core.WithMaxDegree(2))
	bonds := bondvec.New()
	r := bfm.NewReader(bfm.NewCursor(&buf), bfm.WithMolecules(mol), bfm.WithBondSet(bonds))
	require.NoError(t, r.ReadAll(nil))
	assert.Equal(t, 5, mol.Len())
	assert.Equal(t, 4, mol.EdgeCount())
	assert.Equal(t, 108, bonds.Len())
}

func TestWriteModes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.bfm")
	mol := chain5(t)
	sys := bfm.System{Molecules: mol, Box: core.NewBox(32, 32, 32), Bonds: bondvec.Classic()}

	write := func(mode bfm.Mode, frames int) error {
		w, err := bfm.Create(path, mode, fixedClock)
		if err != nil {
			return err
		}
		for i := 0; i < frames; i++ {
			mol.SetAge(mol.Age() + 1)
			if err = w.WriteFrame(sys); err != nil {
				return err
			}
		}
		return w.Close()
	}

	require.NoError(t, write(bfm.New, 2))
	err := write(bfm.New, 1)
	require.ErrorIs(t, err, core.ErrIO)
	assert.ErrorIs(t, err, os.ErrExist)

	// append continues the file: no second file header, one more stream
	require.NoError(t, write(bfm.Append, 1))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "#!version="))
	assert.Equal(t, 2, strings.Count(string(data), "!number_of_monomers="))
	snaps, _ := readSnapshots(t, data)
	require.Len(t, snaps, 3)
	assert.Equal(t, uint64(3), snaps[2].Age)

	require.NoError(t, write(bfm.Overwrite, 1))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "!mcs="))

	// append to a missing file writes the header
	other := filepath.Join(dir, "fresh.bfm")
	w, err := bfm.Create(other, bfm.Append)
	require.NoError(t, err)
	require.NoError(t, w.WriteFrame(sys))
	require.NoError(t, w.Close())
	data, err = os.ReadFile(other)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "#!version=2.0\n"))

	_, err = bfm.Create(path, bfm.Mode(9))
	assert.ErrorIs(t, err, bfm.ErrMode)
	_, err = bfm.Open(filepath.Join(dir, "missing.bfm"))
	assert.ErrorIs(t, err, core.ErrIO)
}

func TestParseMode(t *testing.T) {
	for _, m := range []bfm.Mode{bfm.Append, bfm.New, bfm.Overwrite} {
		got, err := bfm.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := bfm.ParseMode("sometimes")
	assert.ErrorIs(t, err, bfm.ErrMode)
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteFailureIsIO(t *testing.T) {
	w := bfm.NewWriter(failingWriter{})
	err := w.WriteFrame(bfm.System{Molecules: chain5(t), Box: core.NewBox(32, 32, 32), Bonds: bondvec.Classic()})
	assert.ErrorIs(t, err, core.ErrIO)
	assert.Equal(t, 0, w.Frames())
}
