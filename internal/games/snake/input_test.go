package snake

import "testing"

func TestNoImmediateReversal(t *testing.T) {
	tests := []struct {
		requested, applied Direction
		accepted           bool
	}{
		{DirLeft, DirRight, false},
		{DirRight, DirLeft, false},
		{DirUp, DirDown, false},
		{DirDown, DirUp, false},
		{DirUp, DirRight, true},
		{DirDown, DirRight, true},
		{DirRight, DirRight, true},
		{DirDown, DirDown, true},
	}

	for _, tc := range tests {
		got, ok := Accept(tc.requested, tc.applied)
		if ok != tc.accepted {
			t.Errorf("Accept(%s, %s) accepted=%v, expected %v", tc.requested, tc.applied, ok, tc.accepted)
		}
		if ok && got != tc.requested {
			t.Errorf("Accept(%s, %s) = %s", tc.requested, tc.applied, got)
		}
	}
}

func TestSwipeDirection(t *testing.T) {
	origin := Point{X: 100, Y: 100}
	tests := []struct {
		name string
		end  Point
		want Direction
		ok   bool
	}{
		{"right", Point{X: 150, Y: 110}, DirRight, true},
		{"left", Point{X: 40, Y: 90}, DirLeft, true},
		{"down", Point{X: 105, Y: 160}, DirDown, true},
		{"up", Point{X: 95, Y: 31}, DirUp, true},
		{"exactly threshold is ignored", Point{X: 130, Y: 100}, DirRight, false},
		{"short horizontal", Point{X: 120, Y: 105}, DirRight, false},
		{"short vertical", Point{X: 100, Y: 75}, DirRight, false},
		{"zero vector", origin, DirRight, false},
		{"diagonal tie goes vertical", Point{X: 140, Y: 140}, DirDown, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := SwipeDirection(origin, tc.end, DefaultSwipeThreshold)
			if ok != tc.ok {
				t.Fatalf("SwipeDirection() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("SwipeDirection() = %s, expected %s", got, tc.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"up":     DirUp,
		"DOWN":   DirDown,
		" left ": DirLeft,
		"r":      DirRight,
	}
	for in, want := range tests {
		got, err := ParseDirection(in)
		if err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDirection(%q) = %s, expected %s", in, got, want)
		}
	}

	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown directions")
	}
}
