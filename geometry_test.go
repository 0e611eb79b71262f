package retroui

import "testing"

func TestRect_Intersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 2, 3, 3), NewRect(2, 2, 3, 3)},
		{"disjoint", NewRect(0, 0, 5, 5), NewRect(10, 10, 5, 5), Rect{}},
		{"touching edges", NewRect(0, 0, 5, 5), NewRect(5, 0, 5, 5), Rect{}},
		{"identical", NewRect(1, 2, 3, 4), NewRect(1, 2, 3, 4), NewRect(1, 2, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got.IsEmpty() != tt.want.IsEmpty() {
				t.Fatalf("Intersect() empty = %v, want %v", got.IsEmpty(), tt.want.IsEmpty())
			}
			if !got.IsEmpty() && got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("top-left corner not contained")
	}
	if !r.Contains(5, 7) {
		t.Error("bottom-right interior point not contained")
	}
	if r.Contains(6, 3) {
		t.Error("Right() boundary reported as contained")
	}
	if r.Contains(2, 8) {
		t.Error("Bottom() boundary reported as contained")
	}
}

func TestRect_Inset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v, want {1 1 8 4}", r)
	}

	// Over-insetting collapses to empty rather than going negative.
	if !NewRect(0, 0, 4, 4).Inset(3).IsEmpty() {
		t.Error("over-inset rect is not empty")
	}
}

func TestRect_Translate(t *testing.T) {
	r := NewRect(1, 2, 3, 4).Translate(10, -2)
	if r != NewRect(11, 0, 3, 4) {
		t.Errorf("Translate() = %+v, want {11 0 3 4}", r)
	}
}

func TestNewSize_ClampsNegative(t *testing.T) {
	s := NewSize(-3, 5)
	if s.Width != 0 || s.Height != 5 {
		t.Errorf("NewSize(-3, 5) = %+v, want {0 5}", s)
	}
	if !NewSize(0, 5).IsEmpty() {
		t.Error("zero-width size not reported empty")
	}
}

func TestRect_Union(t *testing.T) {
	got := NewRect(0, 0, 2, 2).Union(NewRect(5, 5, 2, 2))
	if got != NewRect(0, 0, 7, 7) {
		t.Errorf("Union() = %+v, want {0 0 7 7}", got)
	}
}
