package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("COSMIC_TEST_STR", "mars")
	if got := GetEnv("COSMIC_TEST_STR", "moon"); got != "mars" {
		t.Errorf("got %q, want %q", got, "mars")
	}
	if got := GetEnv("COSMIC_TEST_UNSET", "moon"); got != "moon" {
		t.Errorf("got %q, want fallback %q", got, "moon")
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		fallback bool
		want     bool
	}{
		{"unset uses fallback", "", false, true, true},
		{"true", "true", true, false, true},
		{"one", "1", true, false, true},
		{"yes", "yes", true, false, true},
		{"y", "y", true, false, true},
		{"false", "false", true, true, false},
		{"zero", "0", true, true, false},
		{"garbage uses fallback", "maybe", true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const key = "COSMIC_TEST_BOOL"
			if tt.set {
				t.Setenv(key, tt.value)
			}
			if got := GetEnvBool(key, tt.fallback); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
