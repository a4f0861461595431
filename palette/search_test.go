package palette

import (
	"math"
	"math/rand/v2"
	"testing"
)

var monogramBackground = RGB{10, 10, 13}

func TestPickFallbackWhenBudgetIsZero(t *testing.T) {
	k := DefaultConstraints()
	k.Attempts = 0

	if got := Pick(monogramBackground, k, rand.New(rand.NewPCG(1, 2))); got != Fallback {
		t.Errorf("Pick = %+v, want Fallback %+v", got, Fallback)
	}
	if _, ok := Search(monogramBackground, k, nil); ok {
		t.Error("Search reported success with zero attempts")
	}
}

func TestPickFallbackWhenUnsatisfiable(t *testing.T) {
	k := DefaultConstraints()
	k.MaxAccepted = 1 // nothing in the band can pass

	if got := Pick(monogramBackground, k, rand.New(rand.NewPCG(3, 4))); got != Fallback {
		t.Errorf("Pick = %+v, want Fallback", got)
	}
}

func TestPickBandGuarantee(t *testing.T) {
	k := DefaultConstraints()
	successes := 0

	for seed := uint64(0); seed < 200; seed++ {
		got, ok := Search(monogramBackground, k, rand.New(rand.NewPCG(seed, seed*7+1)))
		if !ok {
			if got != Fallback {
				t.Fatalf("seed %d: failed search returned %+v, want Fallback", seed, got)
			}
			continue
		}
		successes++

		lc := math.Abs(Contrast(got, monogramBackground))
		if lc < k.MinTarget {
			t.Errorf("seed %d: contrast %.2f below band minimum %.0f", seed, lc, k.MinTarget)
		}
		if lc > k.MaxAccepted {
			t.Errorf("seed %d: contrast %.2f above accepted maximum %.0f", seed, lc, k.MaxAccepted)
		}
		if got.MaxChannel() > k.MaxChannel {
			t.Errorf("seed %d: max channel %d above %d", seed, got.MaxChannel(), k.MaxChannel)
		}
		if got.Spread() > k.MaxSpread {
			t.Errorf("seed %d: spread %d above %d", seed, got.Spread(), k.MaxSpread)
		}
	}

	if successes == 0 {
		t.Fatal("search never succeeded with default constraints")
	}
}

func TestPickDeterministicWithSeededSource(t *testing.T) {
	k := DefaultConstraints()
	a := Pick(monogramBackground, k, rand.New(rand.NewPCG(42, 42)))
	b := Pick(monogramBackground, k, rand.New(rand.NewPCG(42, 42)))
	if a != b {
		t.Errorf("same seed produced %+v and %+v", a, b)
	}
}

func TestConstraintsAccepts(t *testing.T) {
	k := DefaultConstraints()
	tests := []struct {
		name string
		c    RGB
		lc   float64
		want bool
	}{
		{"inside", RGB{120, 150, 170}, 55, true},
		{"too harsh", RGB{120, 150, 170}, 70, false},
		{"too bright", RGB{120, 150, 210}, 55, false},
		{"too saturated", RGB{40, 150, 190}, 55, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.Accepts(tt.c, tt.lc); got != tt.want {
				t.Errorf("Accepts(%+v, %.0f) = %v, want %v", tt.c, tt.lc, got, tt.want)
			}
		})
	}
}
