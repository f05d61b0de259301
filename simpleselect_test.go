package sux

import "testing"

func TestSimpleSelectHalfBasic(t *testing.T) {
	// Ones at 0, 3, 64, 130, 1000 within a 1024-bit vector.
	ones := []uint64{0, 3, 64, 130, 1000}
	const n = 1024
	bits := bitsFromOnes(ones, n)
	s := NewSimpleSelectHalf(bits, n)

	if s.NumOnes() != uint64(len(ones)) {
		t.Fatalf("NumOnes() = %d, want %d", s.NumOnes(), len(ones))
	}
	for r, want := range ones {
		if got := s.Select(uint64(r)); got != want {
			t.Fatalf("select(%d) = %d, want %d", r, got, want)
		}
	}
}

func TestSimpleSelectHalf64BitBranch(t *testing.T) {
	// Ones at 0 and 2^20: span exceeds 2^16, exercising the 64-bit
	// sub-inventory branch.
	const big = 1 << 20
	ones := []uint64{0, big}
	bits := bitsFromOnes(ones, big+1)
	s := NewSimpleSelectHalf(bits, big+1)

	if got := s.Select(0); got != 0 {
		t.Fatalf("select(0) = %d, want 0", got)
	}
	if got := s.Select(1); got != big {
		t.Fatalf("select(1) = %d, want %d", got, big)
	}
}

func TestSimpleSelectHalfRankInverse(t *testing.T) {
	const n = 2000
	var ones []uint64
	for p := uint64(0); p < n; p += 2 {
		ones = append(ones, p)
	}
	bits := bitsFromOnes(ones, n)
	sel := NewSimpleSelectHalf(bits, n)
	r := NewRank9(bits, n)

	for i, p := range ones {
		if got := sel.Select(uint64(i)); got != p {
			t.Fatalf("select(%d) = %d, want %d", i, got, p)
		}
		if got := r.Rank(p); got != uint64(i) {
			t.Fatalf("rank(select(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestSimpleSelectHalfSelectNext(t *testing.T) {
	ones := []uint64{1, 5, 6, 9, 200, 201}
	const n = 256
	bits := bitsFromOnes(ones, n)
	s := NewSimpleSelectHalf(bits, n)

	for r := 0; r+1 < len(ones); r++ {
		gotSel, gotNext := s.SelectNext(uint64(r))
		if gotSel != ones[r] || gotNext != ones[r+1] {
			t.Fatalf("selectNext(%d) = (%d,%d), want (%d,%d)", r, gotSel, gotNext, ones[r], ones[r+1])
		}
	}
}

func TestSimpleSelectHalfBoundarySizes(t *testing.T) {
	for _, n := range []uint64{1, 63, 64, 65, 511, 512, 513} {
		var ones []uint64
		for p := uint64(0); p < n; p += 5 {
			ones = append(ones, p)
		}
		bits := bitsFromOnes(ones, n)
		s := NewSimpleSelectHalf(bits, n)
		for i, p := range ones {
			if got := s.Select(uint64(i)); got != p {
				t.Fatalf("n=%d: select(%d) = %d, want %d", n, i, got, p)
			}
		}
	}
}

func BenchmarkSelect(b *testing.B) {
	const n = 1 << 20
	ones := make([]uint64, 0, n/2)
	for p := uint64(0); p < n; p += 2 {
		ones = append(ones, p)
	}
	bits := bitsFromOnes(ones, n)
	s := NewSimpleSelectHalf(bits, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Select(uint64(i) % s.NumOnes())
	}
}
