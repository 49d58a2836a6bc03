package game

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 20, Y: 20, W: 20, H: 20}, true},
		{"contained", Rect{X: 15, Y: 15, W: 5, H: 5}, true},
		{"left of", Rect{X: -20, Y: 10, W: 20, H: 20}, false},
		{"above", Rect{X: 10, Y: -20, W: 20, H: 20}, false},
		{"touching edges", Rect{X: 30, Y: 10, W: 20, H: 20}, false},
		{"diagonal miss", Rect{X: 40, Y: 40, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 5, Y: 10, W: 20, H: 30}
	if r.Right() != 25 {
		t.Errorf("Right = %v, want 25", r.Right())
	}
	if r.Bottom() != 40 {
		t.Errorf("Bottom = %v, want 40", r.Bottom())
	}
}
