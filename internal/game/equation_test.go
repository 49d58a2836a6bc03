package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestOperationApply(t *testing.T) {
	tests := []struct {
		name    string
		op      Operation
		value   float64
		operand int
		want    float64
		wantOK  bool
	}{
		{"add", OpAdd, 10, 7, 17, true},
		{"subtract", OpSubtract, 10, 3, 7, true},
		{"subtract clamps at zero", OpSubtract, 2, 9, 0, true},
		{"multiply", OpMultiply, 6, 4, 24, true},
		{"divide", OpDivide, 50, 2, 25, true},
		{"divide leaves fraction", OpDivide, 5, 2, 2.5, true},
		{"divide by zero is a no-op", OpDivide, 42, 0, 42, false},
		{"add from zero", OpAdd, 0, 5, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.op.Apply(tt.value, tt.operand)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Apply(%v, %d) = %v, want %v", tt.value, tt.operand, got, tt.want)
			}
		})
	}
}

func TestOperationString(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpAdd, "+"},
		{OpSubtract, "-"},
		{OpMultiply, "x"},
		{OpDivide, ":"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Operation(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
	if got := Label(OpDivide, 4); got != ": 4" {
		t.Errorf("Label = %q, want %q", got, ": 4")
	}
}

func TestIsWhole(t *testing.T) {
	tests := []struct {
		value float64
		want  bool
	}{
		{0, true},
		{50, true},
		{2.5, false},
		{16.666666666666668, false},
		{49.99999999999999, true}, // accumulated float error still counts
	}
	for _, tt := range tests {
		if got := isWhole(tt.value); got != tt.want {
			t.Errorf("isWhole(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestOpPoolGatesDivision(t *testing.T) {
	for _, op := range opPool(5) {
		if op == OpDivide {
			t.Fatal("division should not be offered at low values")
		}
	}

	found := false
	for _, op := range opPool(11) {
		if op == OpDivide {
			found = true
		}
	}
	if !found {
		t.Fatal("division should be offered once the value exceeds 10")
	}
}

func TestRollChallengeRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		op, operand := rollChallenge(rng, 0)
		if op == OpDivide {
			t.Fatal("rolled a division at value 0")
		}
		if op == OpMultiply {
			if operand < 2 || operand > 4 {
				t.Fatalf("multiply operand %d out of range [2, 4]", operand)
			}
			continue
		}
		if operand < 1 || operand > 9 {
			t.Fatalf("operand %d out of range [1, 9]", operand)
		}
	}

	sawDivide := false
	for i := 0; i < 500; i++ {
		op, _ := rollChallenge(rng, 20)
		if op == OpDivide {
			sawDivide = true
			break
		}
	}
	if !sawDivide {
		t.Fatal("never rolled a division at value 20")
	}
}
