package piecetable

import (
	"io"
	"strings"
)

// Snapshot is a read-only view of a piece table at a specific point in
// time. It will not change even as the original table is modified:
// buffers are append-only, so the byte ranges captured here never move
// or get overwritten. Capturing is cheap, copying only the piece
// sequence and the store's buffer headers, never text.
type Snapshot struct {
	buffers []buffer
	pieces  []piece
}

// Snapshot captures the table's current state. The call itself must be
// serialized against writers like any other method; the returned
// Snapshot is then immutable and safe to read from any goroutine.
func (t *PieceTable) Snapshot() *Snapshot {
	s := &Snapshot{
		buffers: make([]buffer, len(t.buffers)),
		pieces:  make([]piece, len(t.pieces)),
	}
	copy(s.buffers, t.buffers)
	copy(s.pieces, t.pieces)
	return s
}

// String materializes the snapshot's full logical text.
func (s *Snapshot) String() string {
	var sb strings.Builder
	sb.Grow(s.Len())
	for _, p := range s.pieces {
		sb.Write(s.buffers[p.bufferIndex][p.start:p.end])
	}
	return sb.String()
}

// Len returns the length of the snapshot's logical text in bytes.
func (s *Snapshot) Len() int {
	var total int
	for _, p := range s.pieces {
		total += p.length()
	}
	return total
}

// IsEmpty returns true if the snapshot's logical text is empty.
func (s *Snapshot) IsEmpty() bool {
	return len(s.pieces) == 0
}

// WriteTo streams the snapshot's full logical text to w. It implements
// io.WriterTo.
func (s *Snapshot) WriteTo(w io.Writer) (int64, error) {
	return writePieces(w, s.buffers, s.pieces)
}
