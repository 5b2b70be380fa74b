// Package bfm reads and writes "bfm" trajectory files.
//
// A bfm file is line-oriented text. Lines starting with '!' or "#!" open a
// command block; lines starting with '#' alone are comments. Every command is
// registered in a Registry with a write policy:
//
//	HeaderOnly  written once per Writer (particle count, box, alphabet, bonds)
//	PerFrame    written for every frame (bond diffs, !mcs)
//
// The file header (#!version, creation time, free-form metadata) is written
// once per physical file, so appending to a non-empty file skips it.
//
// Frame layout ("!mcs=<age>"):
//
//	x y z <ids>              chain: absolute start, one byte per bond
//	$first:last <payload>    solvent block, 1-based inclusive range
//	&<payload>               solvent continuation line
//
// A chain is a maximal run of consecutive, uncompressed, connected indices
// whose bond vectors belong to the alphabet. Each identifier byte decodes to
// a displacement added to the running position. Bonds not implied by chains
// are carried by !bonds in the header and by !remove_bonds / !add_bonds
// diffs in later frames.
//
// Solvent particles are folded into the box, mapped to the linear index
// z·X·Y + y·X + x and sorted. Successive differences d are written as the
// byte d+33 when d <= 94 and as " <d> " otherwise. A payload line holds at
// most MaxPayload bytes. Solvent particles are interchangeable: reading
// assigns positions to the range in ascending linear-index order, and they
// may not carry bonds.
//
// Reading is driven by a peekable Cursor: a command consumes records until
// the next line that opens a command. Parse failures wrap core.ErrFormat and
// name the command, the record and the line.
package bfm
