package piecetable

// buffer is an append-only byte container. A buffer is allocated at its
// full capacity up front and only ever grows by appending within that
// capacity, so bytes already written never move or get reused. Pieces
// rely on this stability: a [start, end) range into a buffer remains
// valid for the lifetime of the table.
type buffer []byte

// remaining returns the unwritten capacity left in the buffer.
func (b buffer) remaining() int {
	return cap(b) - len(b)
}

// addBuffer appends a fresh buffer to the store, sized to hold at least
// minCapacity bytes and at least the combined length of all existing
// buffers. Doubling the store's total this way bounds the number of
// allocations under many small inserts.
func (t *PieceTable) addBuffer(minCapacity int) {
	var total int
	for _, b := range t.buffers {
		total += len(b)
	}
	t.buffers = append(t.buffers, make(buffer, 0, max(minCapacity, total)))
}

// bufferWithCapacity returns the index of a buffer with room for at
// least capacity more bytes. The tail buffer is reused when it has
// room; otherwise the store grows by one buffer.
func (t *PieceTable) bufferWithCapacity(capacity int) int {
	if n := len(t.buffers); n == 0 || t.buffers[n-1].remaining() <= capacity {
		t.addBuffer(capacity)
	}
	return len(t.buffers) - 1
}

// appendText appends text to a buffer with room for it and returns a
// piece covering the appended range.
func (t *PieceTable) appendText(text string) piece {
	i := t.bufferWithCapacity(len(text))
	start := len(t.buffers[i])
	t.buffers[i] = append(t.buffers[i], text...)
	return piece{bufferIndex: i, start: start, end: start + len(text)}
}
