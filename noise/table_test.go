package noise

import (
	"errors"
	"testing"
)

func TestReferenceTable(t *testing.T) {
	ref := Reference()
	if err := ref.Validate(); err != nil {
		t.Fatalf("reference table invalid: %v", err)
	}
	if ref[0] != 151 || ref[255] != 180 || ref[256] != 151 || ref[511] != 180 {
		t.Errorf("unexpected reference endpoints: %d %d %d %d", ref[0], ref[255], ref[256], ref[511])
	}
}

func TestReferenceReturnsCopy(t *testing.T) {
	ref := Reference()
	ref[0] = 0
	ref[256] = 0

	if got := Reference()[0]; got != 151 {
		t.Errorf("reference table mutated through copy: got %d", got)
	}
	if got := Noise1(0.25); got != 0.3017578125 {
		t.Errorf("Noise1(0.25) = %v after copy mutation", got)
	}
}

func TestNewTableDeterministic(t *testing.T) {
	a := NewTable(12345)
	b := NewTable(12345)
	c := NewTable(54321)

	if *a != *b {
		t.Error("expected same seed to produce same table")
	}
	if *a == *c {
		t.Error("expected different seeds to produce different tables")
	}
	for _, tbl := range []*Table{a, c} {
		if err := tbl.Validate(); err != nil {
			t.Errorf("shuffled table invalid: %v", err)
		}
	}
}

func TestTableFor(t *testing.T) {
	if *TableFor(0) != Reference() {
		t.Error("seed 0 should select the reference table")
	}
	if *TableFor(9) != *NewTable(9) {
		t.Error("non-zero seed should select a shuffled table")
	}
}

func TestValidateRejectsBrokenTables(t *testing.T) {
	mirror := Reference()
	mirror[300]++
	if err := mirror.Validate(); !errors.Is(err, ErrMirror) {
		t.Errorf("expected ErrMirror, got %v", err)
	}

	dup := Reference()
	dup[1] = dup[0]
	dup[257] = dup[256]
	err := dup.Validate()
	if err == nil {
		t.Fatal("expected error for repeated value")
	}
	if errors.Is(err, ErrMirror) {
		t.Errorf("repeated value reported as mirror error: %v", err)
	}
}

func TestEvalMatchesNoise(t *testing.T) {
	ref := Reference()
	for i := 0; i < 200; i++ {
		x := float64(i)*0.37 - 30
		y := float64(i)*0.11 + 2
		z := float64(i) * -0.05

		if Eval1(&ref, x) != Noise1(x) {
			t.Fatalf("Eval1 differs at %v", x)
		}
		if Eval2(&ref, x, y) != Noise2(x, y) {
			t.Fatalf("Eval2 differs at (%v, %v)", x, y)
		}
		if Eval3(&ref, float32(x), float32(y), float32(z)) != Noise3(float32(x), float32(y), float32(z)) {
			t.Fatalf("Eval3 differs at (%v, %v, %v)", x, y, z)
		}
	}
}

func TestShuffledTableStillZeroAtLattice(t *testing.T) {
	tbl := NewTable(77)
	if v := Eval3(tbl, 4.0, -2.0, 9.0); v != 0 {
		t.Errorf("Eval3 at lattice point = %v, want 0", v)
	}

	differ := 0
	for i := 0; i < 100; i++ {
		x := float64(i)*1.37 + 0.21
		if Eval2(tbl, x, 3.3) != Noise2(x, 3.3) {
			differ++
		}
	}
	if differ < 50 {
		t.Errorf("expected shuffled table to change the field, only %d/100 points differ", differ)
	}
}
