package contrast

import (
	"math"
	"testing"
)

func TestRatioOfTones(t *testing.T) {
	tests := []struct {
		name   string
		t1, t2 float64
		want   float64
	}{
		{name: "black on white", t1: 0, t2: 100, want: 21},
		{name: "white on black", t1: 100, t2: 0, want: 21},
		{name: "same tone", t1: 50, t2: 50, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RatioOfTones(tt.t1, tt.t2); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RatioOfTones(%v, %v) = %v, want %v", tt.t1, tt.t2, got, tt.want)
			}
		})
	}
}

func TestRatioOfTonesSymmetric(t *testing.T) {
	for t1 := 0.0; t1 <= 100; t1 += 5 {
		for t2 := 0.0; t2 <= 100; t2 += 5 {
			a, b := RatioOfTones(t1, t2), RatioOfTones(t2, t1)
			if a != b {
				t.Errorf("RatioOfTones(%v, %v) = %v, RatioOfTones(%v, %v) = %v", t1, t2, a, t2, t1, b)
			}
			if a < RatioMin || a > RatioMax+1e-9 {
				t.Errorf("RatioOfTones(%v, %v) = %v, out of [1, 21]", t1, t2, a)
			}
		}
		if got := RatioOfTones(t1, t1); got != 1 {
			t.Errorf("RatioOfTones(%v, %v) = %v, want 1", t1, t1, got)
		}
	}
}

func TestLighterDarker(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(float64, float64) float64
		tone  float64
		ratio float64
		valid bool
	}{
		{name: "lighter reachable", fn: Lighter, tone: 20, ratio: Ratio45, valid: true},
		{name: "lighter unreachable", fn: Lighter, tone: 90, ratio: Ratio45},
		{name: "lighter out of range", fn: Lighter, tone: 101, ratio: Ratio30},
		{name: "darker reachable", fn: Darker, tone: 90, ratio: Ratio70, valid: true},
		{name: "darker unreachable", fn: Darker, tone: 10, ratio: Ratio45},
		{name: "darker out of range", fn: Darker, tone: -1, ratio: Ratio30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.tone, tt.ratio)
			if !tt.valid {
				if got != -1 {
					t.Errorf("got %v, want -1", got)
				}
				return
			}
			if got < 0 || got > 100 {
				t.Fatalf("got %v, want a tone in [0, 100]", got)
			}
			if r := RatioOfTones(got, tt.tone); r < tt.ratio-ratioEpsilon {
				t.Errorf("RatioOfTones(%v, %v) = %v, want >= %v", got, tt.tone, r, tt.ratio)
			}
		})
	}
}

func TestUnsafeFallbacks(t *testing.T) {
	if got := LighterUnsafe(90, Ratio45); got != 100 {
		t.Errorf("LighterUnsafe(90, 4.5) = %v, want 100", got)
	}
	if got := DarkerUnsafe(10, Ratio45); got != 0 {
		t.Errorf("DarkerUnsafe(10, 4.5) = %v, want 0", got)
	}
	if got, want := LighterUnsafe(20, Ratio45), Lighter(20, Ratio45); got != want {
		t.Errorf("LighterUnsafe(20, 4.5) = %v, want %v", got, want)
	}
}
