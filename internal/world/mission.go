package world

import (
	"encoding/json"
	"fmt"
)

// Mission is the JSON-serializable definition of a flight mission.
// All speeds are in pixels per tick, all frequencies and durations in
// ticks (the simulation runs at 60 ticks per second).
type Mission struct {
	Name   string `json:"name"`
	Target int    `json:"target"`

	PlayerSpeed      float64 `json:"player_speed"`
	BaseScrollSpeed  float64 `json:"base_scroll_speed"`
	MaxScrollSpeed   float64 `json:"max_scroll_speed"`
	RapidScrollSpeed float64 `json:"rapid_scroll_speed"`

	CloudFrequency      int `json:"cloud_frequency"`
	RapidCloudFrequency int `json:"rapid_cloud_frequency"`
	PowerUpFrequency    int `json:"powerup_frequency"`
	Lanes               int `json:"lanes"`

	StartFuel   float64 `json:"start_fuel"`
	FuelPerStar float64 `json:"fuel_per_star"`

	SlowMotionTicks int `json:"slow_motion_ticks"`
	GhostTicks      int `json:"ghost_ticks"`
	InvertTicks     int `json:"invert_ticks"`
	RapidFireTicks  int `json:"rapid_fire_ticks"`
}

// LoadMission parses a Mission from JSON bytes.
func LoadMission(data []byte) (*Mission, error) {
	var m Mission
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse mission: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that the mission tunables are playable.
func (m *Mission) Validate() error {
	if m.Target <= 0 {
		return fmt.Errorf("mission %q: target must be positive, got %d", m.Name, m.Target)
	}
	if m.Lanes < 1 {
		return fmt.Errorf("mission %q: need at least 1 lane, got %d", m.Name, m.Lanes)
	}
	if m.PlayerSpeed <= 0 {
		return fmt.Errorf("mission %q: player speed must be positive", m.Name)
	}
	if m.BaseScrollSpeed <= 0 {
		return fmt.Errorf("mission %q: base scroll speed must be positive", m.Name)
	}
	if m.MaxScrollSpeed < m.BaseScrollSpeed {
		return fmt.Errorf("mission %q: max scroll speed %.1f below base %.1f",
			m.Name, m.MaxScrollSpeed, m.BaseScrollSpeed)
	}
	if m.CloudFrequency <= 0 || m.RapidCloudFrequency <= 0 || m.PowerUpFrequency <= 0 {
		return fmt.Errorf("mission %q: spawn frequencies must be positive", m.Name)
	}
	if m.StartFuel <= 0 {
		return fmt.Errorf("mission %q: start fuel must be positive", m.Name)
	}
	if m.SlowMotionTicks <= 0 || m.GhostTicks <= 0 || m.InvertTicks <= 0 || m.RapidFireTicks <= 0 {
		return fmt.Errorf("mission %q: effect durations must be positive", m.Name)
	}
	return nil
}

// DefaultMission returns the standard moon run tunables, used when no
// mission file is available.
func DefaultMission() *Mission {
	return &Mission{
		Name:                "Mission to Moon",
		Target:              50,
		PlayerSpeed:         9,
		BaseScrollSpeed:     5,
		MaxScrollSpeed:      18,
		RapidScrollSpeed:    12,
		CloudFrequency:      160,
		RapidCloudFrequency: 40,
		PowerUpFrequency:    600,
		Lanes:               3,
		StartFuel:           100,
		FuelPerStar:         15,
		SlowMotionTicks:     600,
		GhostTicks:          300,
		InvertTicks:         300,
		RapidFireTicks:      300,
	}
}
