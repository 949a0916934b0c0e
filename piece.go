package piecetable

// piece references the half-open byte range [start, end) within one
// buffer of the table's store, identified by that buffer's index.
// Pieces are immutable values; mutation replaces them in the sequence.
// A zero-length piece never appears in the sequence.
type piece struct {
	bufferIndex int
	start, end  int
}

// length returns the number of bytes the piece covers.
func (p piece) length() int {
	return p.end - p.start
}

// before returns the sub-piece covering the first offset bytes of p.
func (p piece) before(offset int) piece {
	return piece{bufferIndex: p.bufferIndex, start: p.start, end: p.start + offset}
}

// after returns the sub-piece of p starting offset bytes in.
func (p piece) after(offset int) piece {
	return piece{bufferIndex: p.bufferIndex, start: p.start + offset, end: p.end}
}

// mergeable reports whether next directly continues p: same buffer,
// and next begins at the exact byte where p ends.
func (p piece) mergeable(next piece) bool {
	return p.bufferIndex == next.bufferIndex && p.end == next.start
}
