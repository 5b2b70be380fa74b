package core

import (
	"fmt"
	"sort"
)

// MarkCompressed flags the inclusive index range [first,last] for compressed
// (solvent) output. Overlapping or adjacent ranges are merged.
// Returns ErrRange if the range is empty or not inside [0,Len).
func (m *Molecules) MarkCompressed(first, last int) error {
	if first < 0 || last < first || last >= len(m.monomers) {
		return fmt.Errorf("Molecules.MarkCompressed(%d,%d) of %d: %w", first, last, len(m.monomers), ErrRange)
	}
	m.compressed = append(m.compressed, IndexRange{First: first, Last: last})
	sort.Slice(m.compressed, func(i, j int) bool { return m.compressed[i].First < m.compressed[j].First })

	merged := m.compressed[:1]
	for _, r := range m.compressed[1:] {
		top := &merged[len(merged)-1]
		if r.First <= top.Last+1 {
			if r.Last > top.Last {
				top.Last = r.Last
			}
			continue
		}
		merged = append(merged, r)
	}
	m.compressed = merged

	return nil
}

// ClearCompressed removes every compressed range.
func (m *Molecules) ClearCompressed() { m.compressed = nil }

// CompressedRanges returns a copy of the compressed ranges, sorted and disjoint.
func (m *Molecules) CompressedRanges() []IndexRange {
	out := make([]IndexRange, len(m.compressed))
	copy(out, m.compressed)

	return out
}

// IsCompressed reports whether index i belongs to a compressed range.
// Complexity: O(log R).
func (m *Molecules) IsCompressed(i int) bool {
	_, ok := m.CompressedRangeOf(i)
	return ok
}

// CompressedRangeOf returns the compressed range containing i, if any.
func (m *Molecules) CompressedRangeOf(i int) (IndexRange, bool) {
	k := sort.Search(len(m.compressed), func(k int) bool { return m.compressed[k].Last >= i })
	if k < len(m.compressed) && m.compressed[k].Contains(i) {
		return m.compressed[k], true
	}

	return IndexRange{}, false
}
