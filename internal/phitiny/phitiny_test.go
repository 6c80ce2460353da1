package phitiny

import "testing"

func bruteForcePhi(x int64, a int) int64 {
	count := int64(0)
	for n := int64(1); n <= x; n++ {
		divisible := false
		for i := 0; i < a && i < MaxA; i++ {
			if n%firstPrimes[i] == 0 {
				divisible = true
				break
			}
		}
		if !divisible {
			count++
		}
	}
	return count
}

func TestPhiMatchesBruteForce(t *testing.T) {
	for a := 0; a <= MaxA; a++ {
		for x := int64(0); x <= 2000; x++ {
			want := bruteForcePhi(x, a)
			got := Phi(x, a)
			if got != want {
				t.Fatalf("Phi(%d,%d) = %d, want %d", x, a, got, want)
			}
		}
	}
}

func TestGetC(t *testing.T) {
	primes := []int32{0, 2, 3, 5, 7, 11, 13, 17, 19, 23}
	// primes[a+1]^2 <= y
	if c := GetC(3, primes); c != 0 {
		t.Errorf("GetC(3) = %d, want 0", c)
	}
	if c := GetC(9, primes); c != 1 { // primes[2]=3, 3^2=9<=9
		t.Errorf("GetC(9) = %d, want 1", c)
	}
	if c := GetC(10000, primes); c < 1 {
		t.Errorf("GetC(10000) = %d, want >= 1", c)
	}
}
