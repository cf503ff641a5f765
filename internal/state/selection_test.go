package state

import "testing"

func TestSelection_NewSelection(t *testing.T) {
	if _, ok := NewSelection(0).Index(); ok {
		t.Fatal("empty list should have no selection")
	}
	if i, ok := NewSelection(3).Index(); !ok || i != 0 {
		t.Fatalf("Index = (%d, %v), want (0, true)", i, ok)
	}
}

func TestSelection_MoveIsClamped(t *testing.T) {
	s := NewSelection(3)

	s.Previous(3)
	if i, _ := s.Index(); i != 0 {
		t.Fatalf("Previous at top = %d, want 0", i)
	}
	s.Next(3)
	s.Next(3)
	s.Next(3)
	if i, _ := s.Index(); i != 2 {
		t.Fatalf("Next past bottom = %d, want 2", i)
	}

	var empty Selection
	empty.Next(0)
	empty.Previous(0)
	if _, ok := empty.Index(); ok {
		t.Fatal("moving on an empty list should keep it unset")
	}
}

func TestSelection_AfterRemove(t *testing.T) {
	cases := []struct {
		name     string
		selected int
		removed  int
		remain   int
		want     int
		wantSet  bool
	}{
		{"removed selected middle", 1, 1, 2, 1, true},
		{"removed selected last", 2, 2, 2, 1, true},
		{"removed smaller", 2, 0, 2, 1, true},
		{"removed larger", 0, 2, 2, 0, true},
		{"removed only", 0, 0, 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Selection{index: tc.selected, set: true}
			s.AfterRemove(tc.removed, tc.remain)
			got, ok := s.Index()
			if ok != tc.wantSet || (ok && got != tc.want) {
				t.Fatalf("AfterRemove = (%d, %v), want (%d, %v)", got, ok, tc.want, tc.wantSet)
			}
		})
	}
}

func TestSelection_AfterSwapFollowsStation(t *testing.T) {
	s := Selection{index: 0, set: true}
	s.AfterSwap(0, 1)
	if i, _ := s.Index(); i != 1 {
		t.Fatalf("after swap(0,1) = %d, want 1", i)
	}
	s.AfterSwap(2, 3)
	if i, _ := s.Index(); i != 1 {
		t.Fatalf("unrelated swap moved selection to %d", i)
	}
}

func TestSelection_AfterAppend(t *testing.T) {
	var s Selection
	s.AfterAppend(1)
	if i, ok := s.Index(); !ok || i != 0 {
		t.Fatalf("AfterAppend on empty = (%d, %v), want (0, true)", i, ok)
	}
	s.Next(2)
	s.AfterAppend(3)
	if i, _ := s.Index(); i != 1 {
		t.Fatalf("AfterAppend moved selection to %d, want 1", i)
	}
}
