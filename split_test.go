package piecetable

import "testing"

// threePieceTable builds "Hello, World" as three pieces: "Hello"
// and " World" from the seed buffer with "," inserted between them.
func threePieceTable(t *testing.T) *PieceTable {
	t.Helper()
	pt := FromString("Hello World")
	pt.Insert(5, ",")
	if len(pt.pieces) != 3 {
		t.Fatalf("fixture has %d pieces, want 3", len(pt.pieces))
	}
	return pt
}

func TestLocate(t *testing.T) {
	pt := threePieceTable(t) // piece lengths 5, 1, 6

	tests := []struct {
		name     string
		position int
		want     location
	}{
		{"start of document", 0, location{pieceIndex: 0, offset: 0}},
		{"inside first piece", 4, location{pieceIndex: 0, offset: 4}},
		{"boundary prefers next piece", 5, location{pieceIndex: 1, offset: 0}},
		{"second boundary", 6, location{pieceIndex: 2, offset: 0}},
		{"inside last piece", 7, location{pieceIndex: 2, offset: 1}},
		{"document end", 12, location{pieceIndex: 3, offset: 0}},
		{"past end clamps to sentinel", 500, location{pieceIndex: 3, offset: 0}},
		{"negative clamps to start", -9, location{pieceIndex: 0, offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pt.locate(tt.position); got != tt.want {
				t.Errorf("locate(%d) = %+v, want %+v", tt.position, got, tt.want)
			}
		})
	}
}

func TestLocateEmptyTable(t *testing.T) {
	pt := New()
	if got := pt.locate(0); got != (location{}) {
		t.Errorf("locate(0) = %+v, want sentinel {0 0}", got)
	}
}

func TestSplitAtPieceStart(t *testing.T) {
	pt := FromString("Hello")

	// Gap 0 at a piece's start must not touch the sequence.
	if at := pt.split(location{pieceIndex: 0}, 0); at != 0 {
		t.Errorf("split at start, gap 0: index = %d, want 0", at)
	}
	if len(pt.pieces) != 1 || pt.String() != "Hello" {
		t.Errorf("sequence changed: %q, %d pieces", pt.String(), len(pt.pieces))
	}

	// A gap shaves the front of the piece in place.
	if at := pt.split(location{pieceIndex: 0}, 2); at != 0 {
		t.Errorf("split at start, gap 2: index = %d, want 0", at)
	}
	if got := pt.String(); got != "llo" {
		t.Errorf("got %q, want %q", got, "llo")
	}

	// A gap consuming the whole piece removes it.
	if at := pt.split(location{pieceIndex: 0}, 3); at != 0 {
		t.Errorf("split consuming piece: index = %d, want 0", at)
	}
	if len(pt.pieces) != 0 {
		t.Errorf("piece not removed, %d left", len(pt.pieces))
	}
}

func TestSplitMidPiece(t *testing.T) {
	pt := FromString("Hello World")

	// Gap 0 splits into prefix and suffix around the insertion index.
	at := pt.split(location{pieceIndex: 0, offset: 5}, 0)
	if at != 1 {
		t.Errorf("index = %d, want 1", at)
	}
	if len(pt.pieces) != 2 {
		t.Fatalf("%d pieces, want 2", len(pt.pieces))
	}
	if got := pt.String(); got != "Hello World" {
		t.Errorf("got %q, want %q", got, "Hello World")
	}
}

func TestSplitMidPieceWithGap(t *testing.T) {
	pt := FromString("Hello World")

	at := pt.split(location{pieceIndex: 0, offset: 5}, 1)
	if at != 1 {
		t.Errorf("index = %d, want 1", at)
	}
	if got := pt.String(); got != "HelloWorld" {
		t.Errorf("got %q, want %q", got, "HelloWorld")
	}
}

func TestSplitGapReachingPieceEnd(t *testing.T) {
	pt := FromString("Hello World")

	// The gap swallows the whole remainder: no suffix piece.
	at := pt.split(location{pieceIndex: 0, offset: 5}, 6)
	if at != 1 {
		t.Errorf("index = %d, want 1", at)
	}
	if len(pt.pieces) != 1 {
		t.Errorf("%d pieces, want 1", len(pt.pieces))
	}
	if got := pt.String(); got != "Hello" {
		t.Errorf("got %q, want %q", got, "Hello")
	}
}

func TestSplitPastEnd(t *testing.T) {
	pt := FromString("Hello")

	if at := pt.split(location{pieceIndex: 1}, 3); at != 1 {
		t.Errorf("index = %d, want 1", at)
	}
	if got := pt.String(); got != "Hello" {
		t.Errorf("sequence changed: %q", got)
	}
}

// Deleting can leave two pieces that are byte-contiguous in the same
// buffer by coincidence. They stay unmerged: merging happens on the
// insert path only, against the piece just inserted.
func TestDeleteLeavesCoincidentalAdjacency(t *testing.T) {
	pt := threePieceTable(t)
	pt.Delete(5, 1) // removes the inserted "," piece whole

	if got := pt.String(); got != "Hello World" {
		t.Errorf("got %q, want %q", got, "Hello World")
	}
	if len(pt.pieces) != 2 {
		t.Fatalf("%d pieces, want 2", len(pt.pieces))
	}
	if !pt.pieces[0].mergeable(pt.pieces[1]) {
		t.Fatal("fixture pieces are not coincidentally adjacent")
	}
}
