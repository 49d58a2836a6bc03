package game

import "math"

// Ship is the player's spaceship. Its position lives in the ECS world;
// everything else about it lives here.
type Ship struct {
	Value   float64 // the running number painted on the hull
	Fuel    float64
	MaxFuel float64
	W, H    float64
}

// NewShip returns a ship at the start of a run.
func NewShip(startFuel float64) *Ship {
	return &Ship{
		Fuel:    startFuel,
		MaxFuel: startFuel,
		W:       shipW,
		H:       shipH,
	}
}

// Apply runs a cloud's operation against the ship's value.
// penalty is true when the result picked up a fractional component.
// ok is false when the operation was a no-op (division by zero).
func (s *Ship) Apply(op Operation, operand int) (penalty, ok bool) {
	res, ok := op.Apply(s.Value, operand)
	if !ok {
		return false, false
	}
	s.Value = res
	return !isWhole(res), true
}

// Repair rounds the value to the nearest integer, clearing any
// fractional component. Green Star behavior.
func (s *Ship) Repair() {
	s.Value = math.Round(s.Value)
}

// AddFuel tops up the tank, capped at MaxFuel.
func (s *Ship) AddFuel(amount float64) {
	s.Fuel = math.Min(s.Fuel+amount, s.MaxFuel)
}

// BurnFuel drains the tank, floored at zero.
func (s *Ship) BurnFuel(amount float64) {
	s.Fuel = math.Max(s.Fuel-amount, 0)
}

// Empty reports whether the tank has run dry.
func (s *Ship) Empty() bool { return s.Fuel <= 0 }

// FuelPct returns remaining fuel as a 0-100 percentage.
func (s *Ship) FuelPct() int {
	if s.MaxFuel == 0 {
		return 0
	}
	return int(s.Fuel * 100 / s.MaxFuel)
}
