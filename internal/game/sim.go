package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/cosmic-calculator/cosmic_calculator/internal/world"
)

// Screen dimensions in pixels. The sim works in screen space; the shell
// renders 1:1.
const (
	ScreenW = 1000
	ScreenH = 700
)

const (
	shipX = 100
	shipW = 100
	shipH = 60

	transitionSpeed    = 10 // px/tick while flying off after a win
	landerDescentSpeed = 3
	figureWalkSpeed    = 2

	// Landing scene geometry, shared with the renderer.
	MoonSurfaceH = 200
	LanderX      = 200
	FigureStartX = 350
	FlagX        = 600

	// Fuel burn per tick: a fixed trickle plus a term that scales with
	// the effective scroll speed, so speed penalties also cost fuel.
	fuelBaseBurn  = 0.01
	fuelSpeedBurn = 0.002

	warningInterval = 300 // check fuel warnings every 5 sec
)

// SoundCue asks the shell to play a sound. The sim stays silent itself
// so it can run headless in tests.
type SoundCue uint8

const (
	CueCollect SoundCue = iota
	CuePenalty
	CueWin
	CueGameOver
)

// Sim is the game simulation. It owns all gameplay state and is stepped
// once per tick by the shell via Advance.
type Sim struct {
	ECS     *ecs.World
	Mission *world.Mission

	State    GameState
	Ship     *Ship
	Clouds   []*Cloud
	PowerUps []*PowerUp
	Stars    []BackgroundStar
	Effects  EffectSet
	Log      *EventLog
	Ticks    uint64

	// ScrollSpeed is the current difficulty speed, before slow-motion
	// or rapid-fire adjustments.
	ScrollSpeed float64

	// Landing scene progress
	LanderY float64
	FigureX float64

	cloudTimer   int
	powerUpTimer int
	cues         []SoundCue
	rng          *rand.Rand

	ship   ecs.Entity
	posMap *ecs.Map[Position]
}

// NewSim creates a simulation for the given mission. The game starts on
// the title screen waiting for a click.
func NewSim(m *world.Mission, seed int64) *Sim {
	s := &Sim{
		Mission: m,
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.newRun()
	s.State = StateTitle
	return s
}

// newRun resets every entity for a fresh flight.
func (s *Sim) newRun() {
	w := ecs.NewWorld(256)
	posMap := ecs.NewMap[Position](w)

	ship := ecs.NewMap2[Position, ShipControlled](w).NewEntity(
		&Position{X: shipX, Y: ScreenH / 2},
		&ShipControlled{},
	)

	log := NewEventLog(50)
	log.Add(fmt.Sprintf("%s. Make the ship's number equal %d.", s.Mission.Name, s.Mission.Target), EventInfo)
	log.Add("Arrows steer. Clouds do math to you.", EventInfo)

	s.ECS = w
	s.State = StatePlaying
	s.Ship = NewShip(s.Mission.StartFuel)
	s.Clouds = nil
	s.PowerUps = nil
	s.Stars = newStarfield(s.rng, starCount)
	s.Effects.Clear()
	s.Log = log
	s.Ticks = 0
	s.ScrollSpeed = s.Mission.BaseScrollSpeed
	s.LanderY = -100
	s.FigureX = 0
	s.cloudTimer = 0
	s.powerUpTimer = 0
	s.cues = nil
	s.ship = ship
	s.posMap = posMap

	// First wall spawns a little deeper so the player has room to react.
	s.spawnCloudWall(200)
}

// ShipPos returns the ship's top-left pixel position.
func (s *Sim) ShipPos() (float64, float64) {
	pos := s.posMap.Get(s.ship)
	return pos.X, pos.Y
}

// ShipRect returns the ship's collision box.
func (s *Sim) ShipRect() Rect {
	x, y := s.ShipPos()
	return Rect{X: x, Y: y, W: s.Ship.W, H: s.Ship.H}
}

// TakeCues drains the pending sound cues.
func (s *Sim) TakeCues() []SoundCue {
	cues := s.cues
	s.cues = nil
	return cues
}

// Speeding reports whether decimal penalties have pushed the scroll
// speed above the mission base.
func (s *Sim) Speeding() bool {
	return s.ScrollSpeed > s.Mission.BaseScrollSpeed
}

// LanderTouchedDown reports whether the landing craft has reached the
// surface.
func (s *Sim) LanderTouchedDown() bool {
	return s.LanderY >= s.landerTargetY()
}

// FlagPlanted reports whether the astronaut has finished the walk to the
// flag position.
func (s *Sim) FlagPlanted() bool {
	return s.FigureX >= FlagX-FigureStartX
}

func (s *Sim) landerTargetY() float64 {
	return ScreenH - MoonSurfaceH - 80
}

// Advance steps the simulation by one tick.
func (s *Sim) Advance(in Input) {
	s.Ticks++
	scrollStars(s.Stars, s.rng)

	switch s.State {
	case StateTitle:
		if in.Start {
			s.newRun()
		}

	case StatePlaying:
		s.advancePlaying(in)

	case StateTransition:
		pos := s.posMap.Get(s.ship)
		pos.X += transitionSpeed
		if pos.X > ScreenW {
			s.State = StateLanding
			s.LanderY = -100
			s.FigureX = 0
		}

	case StateLanding:
		if in.Restart {
			s.newRun()
			return
		}
		s.advanceLanding()

	case StateGameOver:
		if in.Restart {
			s.newRun()
		}
	}
}

func (s *Sim) advancePlaying(in Input) {
	s.moveShip(in)

	// Effective speed and spawn cadence for this tick.
	effSpeed := s.ScrollSpeed
	cloudFreq := s.Mission.CloudFrequency
	if s.Effects.Active(PowerSlowMotion) {
		effSpeed *= 0.5
	}
	if s.Effects.Active(PowerRapidFire) {
		effSpeed = s.Mission.RapidScrollSpeed
		cloudFreq = s.Mission.RapidCloudFrequency
	}
	s.Effects.Tick()

	s.Ship.BurnFuel(fuelBaseBurn + effSpeed*fuelSpeedBurn)
	if s.Ship.Empty() {
		s.State = StateGameOver
		s.Log.Add("FUEL EXHAUSTED. Drifting.", EventCritical)
		s.cues = append(s.cues, CueGameOver)
		return
	}

	s.cloudTimer++
	if s.cloudTimer > cloudFreq {
		s.spawnCloudWall(0)
		s.cloudTimer = 0
	}
	s.powerUpTimer++
	if s.powerUpTimer > s.Mission.PowerUpFrequency {
		s.spawnPowerUp()
		s.powerUpTimer = 0
	}

	s.stepPowerUps(effSpeed)
	s.stepClouds(effSpeed)

	if s.Ticks%warningInterval == 0 {
		s.checkWarnings()
	}
}

// moveShip applies held arrow keys, swapping directions while the
// invert effect runs, and clamps the ship to the screen.
func (s *Sim) moveShip(in Input) {
	up, down := in.Up, in.Down
	if s.Effects.Active(PowerInvert) {
		up, down = down, up
	}

	pos := s.posMap.Get(s.ship)
	if up {
		pos.Y -= s.Mission.PlayerSpeed
	}
	if down {
		pos.Y += s.Mission.PlayerSpeed
	}
	pos.Y = math.Max(0, math.Min(pos.Y, ScreenH-s.Ship.H))
}

// spawnCloudWall adds one cloud per lane just past the right edge.
func (s *Sim) spawnCloudWall(xOffset float64) {
	wallX := float64(ScreenW) + 100 + xOffset
	laneH := float64(ScreenH) / float64(s.Mission.Lanes)
	for i := 0; i < s.Mission.Lanes; i++ {
		op, operand := rollChallenge(s.rng, s.Ship.Value)
		y := float64(i)*laneH + laneH/2 - cloudH/2
		s.Clouds = append(s.Clouds, NewCloud(s.rng, wallX, y, op, operand))
	}
}

func (s *Sim) spawnPowerUp() {
	speedingUp := s.ScrollSpeed > s.Mission.BaseScrollSpeed*1.5
	kind := rollPowerUpKind(s.rng, speedingUp)
	y := 50 + s.rng.Float64()*(ScreenH-100)
	s.PowerUps = append(s.PowerUps, &PowerUp{
		X:    ScreenW + 50,
		Y:    y,
		Kind: kind,
	})
}

func (s *Sim) stepPowerUps(effSpeed float64) {
	shipRect := s.ShipRect()
	kept := s.PowerUps[:0]
	for _, pu := range s.PowerUps {
		pu.Move(effSpeed)
		if shipRect.Intersects(pu.Bounds()) {
			s.collect(pu.Kind)
			continue
		}
		if pu.OffScreen() {
			continue
		}
		kept = append(kept, pu)
	}
	s.PowerUps = kept
}

// collect applies a star's effect to the run.
func (s *Sim) collect(kind PowerUpKind) {
	switch kind {
	case PowerSlowMotion:
		s.Effects.Trigger(PowerSlowMotion, s.Mission.SlowMotionTicks)
		s.Log.Add("Slow motion engaged.", EventBonus)
	case PowerRepair:
		s.Ship.Repair()
		s.ScrollSpeed = s.Mission.BaseScrollSpeed
		s.Log.Add(fmt.Sprintf("Hull repaired. Value rounded to %.0f.", s.Ship.Value), EventBonus)
	case PowerGhost:
		s.Effects.Trigger(PowerGhost, s.Mission.GhostTicks)
		s.Log.Add("Ghost mode. Clouds can't touch you.", EventBonus)
	case PowerInvert:
		s.Effects.Trigger(PowerInvert, s.Mission.InvertTicks)
		s.Log.Add("Controls flipped!", EventWarning)
	case PowerRapidFire:
		s.Effects.Trigger(PowerRapidFire, s.Mission.RapidFireTicks)
		s.Log.Add("Rapid fire! Hold on.", EventWarning)
	}
	s.Ship.AddFuel(s.Mission.FuelPerStar)
	s.cues = append(s.cues, CueCollect)
}

func (s *Sim) stepClouds(effSpeed float64) {
	shipRect := s.ShipRect()
	ghost := s.Effects.Active(PowerGhost)
	kept := s.Clouds[:0]
	for _, c := range s.Clouds {
		c.Move(effSpeed, s.Ticks)
		// Once the win fires mid-wall, the rest of the wall just scrolls.
		if s.State == StatePlaying && !ghost && shipRect.Intersects(c.Bounds()) {
			s.applyCloud(c)
			continue
		}
		if c.OffScreen() {
			continue
		}
		kept = append(kept, c)
	}
	s.Clouds = kept
}

// applyCloud runs a cloud's operation against the ship and handles the
// decimal penalty and the win check.
func (s *Sim) applyCloud(c *Cloud) {
	penalty, ok := s.Ship.Apply(c.Op, c.Operand)
	if !ok {
		return
	}
	s.Log.Add(fmt.Sprintf("Cloud %s: value is now %s.", Label(c.Op, c.Operand), formatValue(s.Ship.Value)), EventInfo)

	if penalty && !s.Effects.Active(PowerRapidFire) {
		s.ScrollSpeed = math.Min(s.ScrollSpeed*1.2, s.Mission.MaxScrollSpeed)
		s.Log.Add("Decimal penalty! Speeding up.", EventWarning)
		s.cues = append(s.cues, CuePenalty)
	}

	if isWhole(s.Ship.Value) && int(math.Round(s.Ship.Value)) == s.Mission.Target {
		s.State = StateTransition
		s.Log.Add("Target matched! Beginning descent.", EventBonus)
		s.cues = append(s.cues, CueWin)
	}
}

func (s *Sim) advanceLanding() {
	if s.LanderY < s.landerTargetY() {
		s.LanderY += landerDescentSpeed
		return
	}
	s.LanderY = s.landerTargetY()
	if !s.FlagPlanted() {
		s.FigureX += figureWalkSpeed
	}
}

func (s *Sim) checkWarnings() {
	switch {
	case s.Ship.Fuel <= 10:
		s.Log.Add("FUEL CRITICAL. Grab a star, any star.", EventCritical)
	case s.Ship.Fuel <= 25:
		s.Log.Add(fmt.Sprintf("Fuel low: %d%%.", s.Ship.FuelPct()), EventWarning)
	}
}

// formatValue prints whole values without a decimal point and fractional
// ones with two digits, matching the hull display.
func formatValue(v float64) string {
	if isWhole(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
