package game

// EffectSet tracks the remaining duration of each timed power-up effect.
// At most one instance per kind is ever active; triggering an effect
// that is already running resets its clock rather than stacking.
type EffectSet struct {
	remaining [powerUpKindCount]int
}

// Trigger starts (or restarts) an effect for the given number of ticks.
func (e *EffectSet) Trigger(kind PowerUpKind, ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	e.remaining[kind] = ticks
}

// Tick advances all running effect timers by one tick.
func (e *EffectSet) Tick() {
	for i := range e.remaining {
		if e.remaining[i] > 0 {
			e.remaining[i]--
		}
	}
}

// Active reports whether the effect is currently running.
func (e *EffectSet) Active(kind PowerUpKind) bool {
	return e.remaining[kind] > 0
}

// Remaining returns ticks left on the effect, zero if inactive.
func (e *EffectSet) Remaining(kind PowerUpKind) int {
	return e.remaining[kind]
}

// Clear stops every effect.
func (e *EffectSet) Clear() {
	for i := range e.remaining {
		e.remaining[i] = 0
	}
}
