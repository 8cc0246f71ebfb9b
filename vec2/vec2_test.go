package vec2

import "testing"

func TestNew(t *testing.T) {
	v := New(2.0, 3.0)
	if v.X != 2.0 || v.Y != 3.0 {
		t.Fatalf("unexpected coordinates: %v", v)
	}
}

func TestAddSub(t *testing.T) {
	a := New(1, 2)
	b := New(3, 4)

	if got := a.Add(b); got != New(4, 6) {
		t.Fatalf("Add: got %v", got)
	}
	if got := b.Sub(a); got != New(2, 2) {
		t.Fatalf("Sub: got %v", got)
	}
}

func TestNeg(t *testing.T) {
	if got := New(3, -4).Neg(); got != New(-3, 4) {
		t.Fatalf("Neg: got %v", got)
	}
}

func TestScale(t *testing.T) {
	v := New(3.0, 4.0)
	if got := v.Scale(2.0); got != New(6.0, 8.0) {
		t.Fatalf("Scale: got %v", got)
	}
}

func TestDot(t *testing.T) {
	if got := New(1, 2).Dot(New(3, 4)); got != 11 {
		t.Fatalf("Dot: got %d", got)
	}
	if got := New(1, 0).Dot(New(0, 1)); got != 0 {
		t.Fatalf("orthogonal Dot: got %d", got)
	}
}

func TestZeroIsAdditiveIdentity(t *testing.T) {
	v := New(5, -7)
	if got := v.Add(Zero[int]()); got != v {
		t.Fatalf("v + 0: got %v", got)
	}
}

func TestString(t *testing.T) {
	if got := New(1, 2).String(); got != "(1, 2)" {
		t.Fatalf("String: got %q", got)
	}
}
