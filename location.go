package piecetable

// location addresses a point in the piece sequence as a piece index
// plus a byte offset from that piece's start. The sentinel value
// (len(pieces), 0) addresses the end of the document. Locations are
// ephemeral: any structural change to the sequence invalidates them.
type location struct {
	pieceIndex int
	offset     int
}

// locate resolves an absolute byte position in the logical text to a
// location, by a left-to-right scan accumulating piece lengths.
//
// A position exactly on the boundary between two pieces resolves to
// the start of the following piece, never to the end of the preceding
// one. A position at or past the end of the document resolves to the
// end sentinel. locate never fails; out-of-range positions clamp.
func (t *PieceTable) locate(position int) location {
	if position < 0 {
		position = 0
	}
	var total int
	for i, p := range t.pieces {
		total += p.length()
		if position < total {
			return location{pieceIndex: i, offset: p.length() - (total - position)}
		}
		if position == total {
			return location{pieceIndex: i + 1}
		}
	}
	return location{pieceIndex: len(t.pieces)}
}
