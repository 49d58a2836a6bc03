package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain pulls a streamer dry and returns every sample it produced.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestToneSampleCount(t *testing.T) {
	d := 100 * time.Millisecond
	got := drain(t, NewTone(440, d, WaveSine, testRate))
	if want := testRate.N(d); len(got) != want {
		t.Errorf("sample count = %d, want %d", len(got), want)
	}
}

func TestToneStaysInRange(t *testing.T) {
	waves := map[string]Wave{
		"sine":   WaveSine,
		"square": WaveSquare,
		"saw":    WaveSaw,
	}
	for name, wave := range waves {
		t.Run(name, func(t *testing.T) {
			for i, s := range drain(t, NewTone(440, 50*time.Millisecond, wave, testRate)) {
				if s[0] < -1 || s[0] > 1 {
					t.Fatalf("sample %d = %v out of [-1, 1]", i, s[0])
				}
				if s[0] != s[1] {
					t.Fatalf("sample %d: channels differ, %v vs %v", i, s[0], s[1])
				}
			}
		})
	}
}

func TestSquareWaveIsBinary(t *testing.T) {
	for i, s := range drain(t, NewTone(440, 50*time.Millisecond, WaveSquare, testRate)) {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d = %v, square wave must be exactly +/-1", i, s[0])
		}
	}
}

func TestSweepSampleCount(t *testing.T) {
	d := 200 * time.Millisecond
	got := drain(t, NewSweep(440, 110, d, WaveSine, testRate))
	if want := testRate.N(d); len(got) != want {
		t.Errorf("sample count = %d, want %d", len(got), want)
	}
}

// constStreamer emits 1.0 forever, for probing the envelope shape.
type constStreamer struct{}

func (constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0] = 1
		samples[i][1] = 1
	}
	return len(samples), true
}

func (constStreamer) Err() error { return nil }

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(constStreamer{}, d, 10*time.Millisecond, 20*time.Millisecond, testRate)
	got := drain(t, env)

	if want := testRate.N(d); len(got) != want {
		t.Fatalf("sample count = %d, want %d", len(got), want)
	}
	if got[0][0] != 0 {
		t.Errorf("attack should start from silence, got %v", got[0][0])
	}
	if mid := got[len(got)/2][0]; mid != 1 {
		t.Errorf("sustain should pass the signal through, got %v", mid)
	}
	if last := got[len(got)-1][0]; last > 0.01 {
		t.Errorf("release should end near silence, got %v", last)
	}

	// Attack ramps monotonically.
	att := testRate.N(10 * time.Millisecond)
	for i := 1; i < att; i++ {
		if got[i][0] < got[i-1][0] {
			t.Fatalf("attack dipped at sample %d: %v < %v", i, got[i][0], got[i-1][0])
		}
	}
}

func TestEnvelopeClampsOversizedRamps(t *testing.T) {
	// attack + release longer than the sound itself
	d := 20 * time.Millisecond
	env := NewEnvelope(constStreamer{}, d, 50*time.Millisecond, 50*time.Millisecond, testRate)
	got := drain(t, env)

	if want := testRate.N(d); len(got) != want {
		t.Fatalf("sample count = %d, want %d", len(got), want)
	}
	for i, s := range got {
		if s[0] < 0 || s[0] > 1 {
			t.Fatalf("sample %d = %v out of [0, 1]", i, s[0])
		}
	}
}

func TestVolumeSilentAtZero(t *testing.T) {
	s := newVolume(NewTone(440, 20*time.Millisecond, WaveSine, testRate), 0)
	for i, smp := range drain(t, s) {
		if smp[0] != 0 || smp[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, smp)
		}
	}
}

func TestSoundBuildersProduceAudio(t *testing.T) {
	builders := map[string]func(beep.SampleRate, float64) beep.Streamer{
		"collect":   collectSound,
		"penalty":   penaltySound,
		"win":       winSound,
		"game over": gameOverSound,
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			got := drain(t, build(testRate, 0.6))
			if len(got) == 0 {
				t.Fatal("no samples produced")
			}
			peak := 0.0
			for i, s := range got {
				if math.Abs(s[0]) > 1 {
					t.Fatalf("sample %d = %v clips", i, s[0])
				}
				peak = math.Max(peak, math.Abs(s[0]))
			}
			if peak == 0 {
				t.Error("sound is completely silent")
			}
		})
	}
}
