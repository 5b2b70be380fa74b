package lattice

// BufferAddr exposes the identity of the backing buffer so tests can check
// that Setup and CopyFrom do not reallocate needlessly.
func (l *Lattice[T]) BufferAddr() *T {
	if len(l.data) == 0 {
		return nil
	}
	return &l.data[0]
}
