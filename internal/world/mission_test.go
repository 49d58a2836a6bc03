package world

import (
	"strings"
	"testing"

	"github.com/cosmic-calculator/cosmic_calculator/assets"
)

func TestLoadEmbeddedMissions(t *testing.T) {
	tests := []struct {
		file       string
		wantTarget int
	}{
		{"missions/moon.json", 50},
		{"missions/mars.json", 100},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			data, err := assets.Missions.ReadFile(tt.file)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			m, err := LoadMission(data)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if m.Target != tt.wantTarget {
				t.Errorf("target = %d, want %d", m.Target, tt.wantTarget)
			}
			if m.Name == "" {
				t.Error("mission has no name")
			}
		})
	}
}

func TestLoadMissionRejectsBadJSON(t *testing.T) {
	if _, err := LoadMission([]byte("not json")); err == nil {
		t.Fatal("expected a parse error")
	} else if !strings.Contains(err.Error(), "parse mission") {
		t.Errorf("error %q should mention the parse stage", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Mission)
		wantOK bool
	}{
		{"default is valid", func(m *Mission) {}, true},
		{"zero target", func(m *Mission) { m.Target = 0 }, false},
		{"negative target", func(m *Mission) { m.Target = -5 }, false},
		{"no lanes", func(m *Mission) { m.Lanes = 0 }, false},
		{"frozen player", func(m *Mission) { m.PlayerSpeed = 0 }, false},
		{"frozen scroll", func(m *Mission) { m.BaseScrollSpeed = 0 }, false},
		{"max below base", func(m *Mission) { m.MaxScrollSpeed = m.BaseScrollSpeed - 1 }, false},
		{"no cloud spawns", func(m *Mission) { m.CloudFrequency = 0 }, false},
		{"no rapid spawns", func(m *Mission) { m.RapidCloudFrequency = 0 }, false},
		{"no star spawns", func(m *Mission) { m.PowerUpFrequency = 0 }, false},
		{"no fuel", func(m *Mission) { m.StartFuel = 0 }, false},
		{"zero-length effect", func(m *Mission) { m.GhostTicks = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultMission()
			tt.mutate(m)
			err := m.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
