package piecetable

// Stats describes the internal shape of a piece table. It exists for
// testing and introspection; none of its fields are needed to use the
// table.
type Stats struct {
	// Pieces is the number of pieces in the sequence.
	Pieces int

	// Buffers is the number of buffers in the store.
	Buffers int

	// Bytes is the length of the logical text.
	Bytes int

	// BufferedBytes is the total number of bytes held across all
	// buffers. It never shrinks: deleted text stays in its buffer,
	// the pieces just stop referencing it.
	BufferedBytes int
}

// Stats returns the table's current internal counters.
func (t *PieceTable) Stats() Stats {
	s := Stats{
		Pieces:  len(t.pieces),
		Buffers: len(t.buffers),
		Bytes:   t.Len(),
	}
	for _, b := range t.buffers {
		s.BufferedBytes += len(b)
	}
	return s
}
