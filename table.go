package piecetable

import (
	"io"
	"strings"
)

// PieceTable is an in-memory editable text. Inserted bytes are
// appended to append-only buffers; the logical text is the ordered
// concatenation of the byte ranges its pieces reference. Edits rewrite
// pieces, never buffer contents, so no operation copies the whole
// text.
//
// The zero value is not ready for use; construct with New, FromString,
// or FromReader.
type PieceTable struct {
	buffers []buffer
	pieces  []piece
}

// New creates an empty piece table.
func New(opts ...Option) *PieceTable {
	t := &PieceTable{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FromString creates a piece table seeded with initial text: one
// buffer holding s, one piece spanning it whole.
func FromString(s string, opts ...Option) *PieceTable {
	t := New(opts...)
	if s == "" {
		return t
	}
	t.pieces = append(t.pieces, t.appendText(s))
	return t
}

// FromReader creates a piece table seeded with the reader's contents.
// The only possible error is the reader's own.
func FromReader(r io.Reader, opts ...Option) (*PieceTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromString(string(data), opts...), nil
}

// split opens a gap in the piece sequence at loc, excising gap bytes
// of logical text starting there, and returns the sequence index at
// which a new piece should be inserted to land in the gap. A gap of 0
// splits without deleting, as on a plain insert.
//
// Splitting at a piece's own start shifts that piece's start forward
// instead of cutting a zero-length prefix off it, so an empty piece is
// never created. A location at or past the end of the sequence leaves
// the sequence untouched.
func (t *PieceTable) split(loc location, gap int) int {
	if loc.pieceIndex >= len(t.pieces) {
		return loc.pieceIndex
	}
	p := t.pieces[loc.pieceIndex]

	if loc.offset == 0 {
		rest := p.after(gap)
		if rest.length() > 0 {
			t.pieces[loc.pieceIndex] = rest
		} else {
			t.pieces = append(t.pieces[:loc.pieceIndex], t.pieces[loc.pieceIndex+1:]...)
		}
		return loc.pieceIndex
	}

	if loc.offset < p.length() {
		t.pieces[loc.pieceIndex] = p.before(loc.offset)
		if loc.offset+gap < p.length() {
			t.insertPiece(loc.pieceIndex+1, p.after(loc.offset+gap))
		}
	}
	return loc.pieceIndex + 1
}

// insertPiece inserts p into the sequence at index i.
func (t *PieceTable) insertPiece(i int, p piece) {
	t.pieces = append(t.pieces, piece{})
	copy(t.pieces[i+1:], t.pieces[i:])
	t.pieces[i] = p
}

// Insert inserts text at the given byte position. A position at or
// beyond the current document length appends at the end; Insert never
// fails. Inserting empty text is a no-op.
func (t *PieceTable) Insert(position int, text string) {
	if text == "" {
		return
	}
	p := t.appendText(text)

	at := t.split(t.locate(position), 0)
	if at > 0 && t.pieces[at-1].mergeable(p) {
		t.pieces[at-1].end = p.end
		return
	}
	t.insertPiece(at, p)
}

// Delete removes length bytes of logical text starting at the given
// byte position. Deleting at or past the end of the document is a
// no-op, and a deletion extending past the end truncates to the end;
// Delete never fails. The deleted bytes stay in their buffers, the
// pieces just stop referencing them.
func (t *PieceTable) Delete(position, length int) {
	if length <= 0 {
		return
	}
	loc := t.locate(position)

	// A mid-piece start needs one split to shave the piece's tail;
	// from then on every deletion starts at a piece boundary. The gap
	// is clamped to the piece remainder so that offset+gap arithmetic
	// cannot overflow on pathological lengths.
	if loc.offset > 0 {
		gap := min(length, t.pieces[loc.pieceIndex].length()-loc.offset)
		t.split(loc, gap)
		length -= gap
		loc.pieceIndex++
		loc.offset = 0
	}

	for length > 0 && loc.pieceIndex < len(t.pieces) {
		gap := min(length, t.pieces[loc.pieceIndex].length())
		t.split(loc, gap)
		length -= gap
	}
}

// Len returns the length of the logical text in bytes.
func (t *PieceTable) Len() int {
	var total int
	for _, p := range t.pieces {
		total += p.length()
	}
	return total
}

// IsEmpty returns true if the logical text is empty.
func (t *PieceTable) IsEmpty() bool {
	return len(t.pieces) == 0
}

// String materializes the full logical text. It is read-only and
// idempotent: repeated calls return identical results and leave the
// table's internal shape untouched.
func (t *PieceTable) String() string {
	var sb strings.Builder
	sb.Grow(t.Len())
	for _, p := range t.pieces {
		sb.Write(t.buffers[p.bufferIndex][p.start:p.end])
	}
	return sb.String()
}

// WriteTo streams the full logical text to w piece by piece, without
// building an intermediate string. It implements io.WriterTo.
func (t *PieceTable) WriteTo(w io.Writer) (int64, error) {
	return writePieces(w, t.buffers, t.pieces)
}

func writePieces(w io.Writer, buffers []buffer, pieces []piece) (int64, error) {
	var written int64
	for _, p := range pieces {
		n, err := w.Write(buffers[p.bufferIndex][p.start:p.end])
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
