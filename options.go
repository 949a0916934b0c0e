package piecetable

// Option is a functional option for configuring a PieceTable.
type Option func(*PieceTable)

// WithCapacity pre-sizes the table's first buffer to hold n bytes, so
// initial content and early inserts land in one allocation instead of
// growing the store piecemeal. It does not change how later buffers
// grow.
func WithCapacity(n int) Option {
	return func(t *PieceTable) {
		if n > 0 && len(t.buffers) == 0 {
			t.buffers = append(t.buffers, make(buffer, 0, n))
		}
	}
}
