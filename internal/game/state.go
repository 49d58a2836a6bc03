package game

// GameState identifies which screen the game is on.
type GameState uint8

const (
	StateTitle      GameState = iota // waiting for a click to launch
	StatePlaying                     // main flight
	StateTransition                  // target matched, ship flies off-screen
	StateLanding                     // landing scene and victory flag
	StateGameOver                    // fuel ran out
)

func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateTransition:
		return "transition"
	case StateLanding:
		return "landing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Input is one tick's worth of player input, sampled by the shell.
// Up/Down are held-key state; Start and Restart are edge-triggered.
type Input struct {
	Up      bool
	Down    bool
	Start   bool // mouse click
	Restart bool // space key
}
