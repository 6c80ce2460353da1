package arith

import "testing"

func TestIsqrt(t *testing.T) {
	cases := []struct{ n, want int64 }{
		{0, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 2}, {8, 2}, {9, 3},
		{99, 9}, {100, 10}, {101, 10}, {1 << 40, 1 << 20},
	}
	for _, c := range cases {
		if got := Isqrt(c.n); got != c.want {
			t.Errorf("Isqrt(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestIsqrtAgainstBruteForce(t *testing.T) {
	for n := int64(0); n < 10000; n++ {
		got := Isqrt(n)
		if got*got > n || (got+1)*(got+1) <= n {
			t.Fatalf("Isqrt(%d) = %d is not floor(sqrt(%d))", n, got, n)
		}
	}
}

func TestIcbrt(t *testing.T) {
	cases := []struct{ n, want int64 }{
		{0, 0}, {1, 1}, {7, 1}, {8, 2}, {26, 2}, {27, 3}, {1000, 10}, {999, 9},
	}
	for _, c := range cases {
		if got := Icbrt(c.n); got != c.want {
			t.Errorf("Icbrt(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestIroot(t *testing.T) {
	if got := Iroot(64, 6); got != 2 {
		t.Errorf("Iroot(64,6) = %d, want 2", got)
	}
	if got := Iroot(63, 6); got != 1 {
		t.Errorf("Iroot(63,6) = %d, want 1", got)
	}
	if got := Iroot(1000000, 2); got != Isqrt(1000000) {
		t.Errorf("Iroot(x,2) disagrees with Isqrt")
	}
	if got := Iroot(1000000, 3); got != Icbrt(1000000) {
		t.Errorf("Iroot(x,3) disagrees with Icbrt")
	}
}

func TestIlogNeverZero(t *testing.T) {
	for _, n := range []int64{1, 2, 3, 10, 1000, 1000000000} {
		if got := Ilog(n); got < 1 {
			t.Errorf("Ilog(%d) = %d, want >= 1", n, got)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{10, 3, 4}, {9, 3, 3}, {1, 3, 1}, {0, 3, 0},
	}
	for _, c := range cases {
		if got := CeilDiv(c.a, c.b); got != c.want {
			t.Errorf("CeilDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestNextPow2(t *testing.T) {
	cases := []struct{ n, want int64 }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {1023, 1024}, {1024, 1024},
	}
	for _, c := range cases {
		if got := NextPow2(c.n); got != c.want {
			t.Errorf("NextPow2(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestInBetween(t *testing.T) {
	if got := InBetween(1, 5, 10); got != 5 {
		t.Errorf("InBetween(1,5,10) = %d, want 5", got)
	}
	if got := InBetween(1, -5, 10); got != 1 {
		t.Errorf("InBetween(1,-5,10) = %d, want 1", got)
	}
	if got := InBetween(1, 50, 10); got != 10 {
		t.Errorf("InBetween(1,50,10) = %d, want 10", got)
	}
}

func TestMinMaxI64(t *testing.T) {
	if MinI64(3, 7) != 3 || MinI64(7, 3) != 3 {
		t.Error("MinI64 wrong")
	}
	if MaxI64(3, 7) != 7 || MaxI64(7, 3) != 7 {
		t.Error("MaxI64 wrong")
	}
}
