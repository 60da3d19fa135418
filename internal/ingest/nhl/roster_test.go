package nhl

import "testing"

func TestRosterDeduplicatesAndKeepsOrder(t *testing.T) {
	r := NewRoster()
	for _, id := range []int{101, 102, 101, 103, 102} {
		r.Add(id)
	}

	want := []int{101, 102, 103}
	got := r.IDs()

	if len(got) != len(want) {
		t.Fatalf("IDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if !r.Contains(103) {
		t.Error("Contains(103) = false, want true")
	}
	if r.Contains(999) {
		t.Error("Contains(999) = true, want false")
	}
}

func TestRosterEmpty(t *testing.T) {
	r := NewRoster()
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
	if ids := r.IDs(); len(ids) != 0 {
		t.Errorf("IDs() = %v, want empty", ids)
	}
}
