package game

import (
	"fmt"
	"math"
	"math/rand"
)

// Operation is the arithmetic a cloud applies to the ship's value.
type Operation uint8

const (
	OpAdd Operation = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the symbol printed on the cloud.
func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "x"
	case OpDivide:
		return ":"
	default:
		return "?"
	}
}

// Apply computes the operation against value. ok is false when the
// operation cannot be applied (division by zero); the value is then
// unchanged. Results never go below zero.
func (o Operation) Apply(value float64, operand int) (result float64, ok bool) {
	res := value
	switch o {
	case OpAdd:
		res += float64(operand)
	case OpSubtract:
		res -= float64(operand)
	case OpMultiply:
		res *= float64(operand)
	case OpDivide:
		if operand == 0 {
			return value, false
		}
		res /= float64(operand)
	}
	if res < 0 {
		res = 0
	}
	return res, true
}

// Label formats the challenge as shown on screen, e.g. ": 4".
func Label(op Operation, operand int) string {
	return fmt.Sprintf("%s %d", op, operand)
}

// isWhole reports whether v has no fractional component.
// Division can leave values like 16.666...; everything else stays exact.
func isWhole(v float64) bool {
	_, frac := math.Modf(v)
	return frac < 1e-9 || frac > 1-1e-9
}

// opPool returns the operations eligible at the given ship value.
// Division only enters the pool once the value is large enough to be
// worth splitting.
func opPool(value float64) []Operation {
	ops := []Operation{OpAdd, OpSubtract, OpMultiply}
	if value > 10 {
		ops = append(ops, OpDivide)
	}
	return ops
}

// rollChallenge picks an operation and operand for a new cloud.
// Multiplication is kept small so the value doesn't explode.
func rollChallenge(rng *rand.Rand, value float64) (Operation, int) {
	ops := opPool(value)
	op := ops[rng.Intn(len(ops))]
	operand := 1 + rng.Intn(9)
	if op == OpMultiply {
		operand = 2 + rng.Intn(3)
	}
	return op, operand
}
