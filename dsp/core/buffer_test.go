package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestEnsureLenGrows(t *testing.T) {
	out := EnsureLen(nil, 3)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if got := EnsureLen(out, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestDeinterleaveInterleaveRoundTrip(t *testing.T) {
	src := []float32{1, -1, 2, -2, 3, -3}
	left := make([]float64, 8)
	right := make([]float64, 8)

	if n := Deinterleave(left, src, 2, 0, 0); n != 3 {
		t.Fatalf("Deinterleave left n = %d, want 3", n)
	}
	if n := Deinterleave(right, src, 2, 1, 1); n != 2 {
		t.Fatalf("Deinterleave right n = %d, want 2", n)
	}
	if left[2] != 3 || right[0] != -2 {
		t.Fatalf("unexpected planar data: left=%v right=%v", left[:3], right[:2])
	}

	for i := range left[:3] {
		left[i] *= 2
	}

	dst := append([]float32(nil), src...)
	if n := Interleave(dst, left, 2, 0, 0); n != 3 {
		t.Fatalf("Interleave n = %d, want 3", n)
	}

	want := []float32{2, -1, 4, -2, 6, -3}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestDeinterleaveInvalidChannel(t *testing.T) {
	dst := make([]float64, 4)
	if n := Deinterleave(dst, []float32{1, 2}, 2, 2, 0); n != 0 {
		t.Fatalf("n = %d, want 0", n)
	}
	if n := Interleave([]float32{1, 2}, dst, 0, 0, 0); n != 0 {
		t.Fatalf("n = %d, want 0", n)
	}
}
