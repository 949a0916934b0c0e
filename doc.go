// Package piecetable provides an in-memory piece table for editing large
// texts without copying the whole text on every change.
//
// A piece table stores inserted text in append-only buffers and describes
// the current logical text as an ordered sequence of pieces, each
// referencing a byte range within one buffer. Insert and delete rewrite
// only the affected pieces; the text itself is materialized on demand.
//
// The package provides:
//
//   - Byte-range insert and delete that never fail: out-of-range
//     positions and lengths clamp instead of erroring
//   - On-demand materialization via String or streaming via WriteTo
//   - Eager coalescing of sequential inserts, keeping the piece count
//     near constant for typical typing workloads
//   - Read-only snapshots that stay valid as the table keeps changing
//   - Introspection counters via Stats
//
// Basic usage:
//
//	t := piecetable.FromString("Goodbye World")
//	t.Insert(7, " cruel")   // "Goodbye cruel World"
//	t.Delete(0, 8)          // "cruel World"
//	text := t.String()
//
// Position Semantics:
//
// All positions and lengths are raw byte offsets into the logical text,
// never rune or grapheme indices. The table does not check that an edit
// lands on a character boundary; callers editing multi-byte text must
// align positions themselves.
//
// Thread Safety:
//
// A PieceTable has no internal locking. Callers sharing a table across
// goroutines must serialize every call, including Snapshot, with their
// own lock. A captured Snapshot is immutable and may then be read from
// any goroutine.
package piecetable
