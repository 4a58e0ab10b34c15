package game

import "testing"

func TestChainAppendAndTraverse(t *testing.T) {
	ch := NewChain(Coord{X: 2, Y: 2})
	ids := []SegID{ch.Head()}
	ids = append(ids, ch.AppendTail(Coord{X: 1, Y: 2}))
	ids = append(ids, ch.AppendTail(Coord{X: 0, Y: 2}))

	if ch.Len() != 3 {
		t.Fatalf("Len = %d, want 3", ch.Len())
	}

	cells := ch.Traverse(nil)
	if len(cells) != 3 {
		t.Fatalf("Traverse returned %d cells, want 3", len(cells))
	}
	want := []Coord{{2, 2}, {1, 2}, {0, 2}}
	for i, cell := range cells {
		if cell.ID != ids[i] {
			t.Errorf("cell %d handle = %v, want %v", i, cell.ID, ids[i])
		}
		if cell.Pos != want[i] {
			t.Errorf("cell %d pos = %v, want %v", i, cell.Pos, want[i])
		}
	}
}

func TestChainHandlesStableAcrossAppend(t *testing.T) {
	ch := NewChain(Coord{X: 0, Y: 0})
	first := ch.AppendTail(Coord{X: -1, Y: 0})
	for i := 2; i < 20; i++ {
		ch.AppendTail(Coord{X: -i, Y: 0})
	}
	if ch.Pos(first) != (Coord{X: -1, Y: 0}) {
		t.Errorf("handle %v moved to %v after growth", first, ch.Pos(first))
	}
	if ch.Next(ch.Head()) != first {
		t.Errorf("head successor = %v, want %v", ch.Next(ch.Head()), first)
	}
}

func TestChainTailHasNoSuccessor(t *testing.T) {
	ch := NewChain(Coord{})
	ch.AppendTail(Coord{X: -1})
	last := ch.AppendTail(Coord{X: -2})
	if ch.Next(last) != NoSeg {
		t.Errorf("tail Next = %v, want NoSeg", ch.Next(last))
	}
	cells := ch.Traverse(nil)
	if cells[len(cells)-1].ID != last {
		t.Errorf("traversal ends at %v, want %v", cells[len(cells)-1].ID, last)
	}
}
