package tuning

import (
	"context"
	"testing"

	"github.com/jgmbenoit/primecount/internal/phitiny"
	"github.com/jgmbenoit/primecount/internal/primesieve"
)

func TestLMOAlphaStaysInBounds(t *testing.T) {
	for _, x := range []int64{10, 1000, 1000000, 1_000_000_000_000} {
		p := LMO(x, 4)
		if p.Alpha < 1 {
			t.Errorf("LMO(%d) alpha = %v, want >= 1", x, p.Alpha)
		}
		if p.Y < 1 {
			t.Errorf("LMO(%d) y = %d, want >= 1", x, p.Y)
		}
	}
}

// TestGourdonZNeverExceedsY is the test the reviewer noted would have
// caught that tuning.Gourdon used to compute a non-trivial alpha_z/z that
// internal/gourdon was never built to consume: Gourdon fixes z = y, so
// this tuner must report the same thing, not a second disagreeing value.
func TestGourdonZNeverExceedsY(t *testing.T) {
	for _, x := range []int64{10, 1000, 1000000, 1_000_000_000_000} {
		p := Gourdon(x, 4)
		if p.Z != p.Y {
			t.Errorf("Gourdon(%d): Z = %d, Y = %d, want Z == Y", x, p.Z, p.Y)
		}
		if p.AlphaZ != 1 {
			t.Errorf("Gourdon(%d): AlphaZ = %v, want 1", x, p.AlphaZ)
		}
	}
}

func TestChooseAlphaClampsToUnit(t *testing.T) {
	if got := chooseAlpha(2, 1.0); got != 1 {
		t.Errorf("chooseAlpha(2,...) = %v, want 1 (x < 3 special case)", got)
	}
	if got := chooseAlpha(1000000, 1.0); got < 1 {
		t.Errorf("chooseAlpha(1000000,...) = %v, want >= 1", got)
	}
}

func TestChooseCClampsToMaxA(t *testing.T) {
	primes, err := primesieve.Primes(context.Background(), 1000000, 2)
	if err != nil {
		t.Fatal(err)
	}
	c := ChooseC(1000000, primes)
	if c > phitiny.MaxA {
		t.Errorf("ChooseC = %d, want <= MaxA (%d)", c, phitiny.MaxA)
	}
}

func TestChooseCAgreesWithBruteForceThreshold(t *testing.T) {
	const y = 10000
	primes, err := primesieve.Primes(context.Background(), y, 2)
	if err != nil {
		t.Fatal(err)
	}
	c := ChooseC(y, primes)
	// p_(c+1)^2 must not exceed y, and (when c < MaxA) p_(c+2)^2 must
	// exceed y, matching GetC's own stopping condition by hand-trace.
	if int(c+1) < len(primes) {
		p := int64(primes[c+1])
		if p*p > y {
			t.Errorf("ChooseC = %d but primes[%d]^2 = %d > y = %d", c, c+1, p*p, y)
		}
	}
	if c < phitiny.MaxA && int(c+2) < len(primes) {
		p := int64(primes[c+2])
		if p*p <= y {
			t.Errorf("ChooseC = %d but primes[%d]^2 = %d <= y = %d, should have advanced", c, c+2, p*p, y)
		}
	}
}
