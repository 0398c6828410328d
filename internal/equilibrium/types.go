package equilibrium

// Outcome is the kind of result an evaluation produced.
type Outcome int

const (
	// InvalidInput means the inputs were rejected; no state changed.
	InvalidInput Outcome = iota
	// Success means the configuration is balanced.
	Success
	// RetryAvailable means the ramp is unbalanced and attempts remain.
	RetryAvailable
	// Mismatch means the seesaw is unbalanced; retries are unlimited.
	Mismatch
	// GameOver means the ramp attempts are exhausted.
	GameOver
	// Settled means the ramp was already won and evaluation was refused.
	Settled
)

var outcomeNames = map[Outcome]string{
	InvalidInput:   "invalid_input",
	Success:        "success",
	RetryAvailable: "retry_available",
	Mismatch:       "mismatch",
	GameOver:       "game_over",
	Settled:        "settled",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// ParseOutcome maps the String form back to an Outcome.
func ParseOutcome(s string) (Outcome, bool) {
	for o, name := range outcomeNames {
		if name == s {
			return o, true
		}
	}
	return InvalidInput, false
}

// Terminal reports whether no further evaluation can change the game.
func (o Outcome) Terminal() bool {
	return o == GameOver || o == Settled
}

// Direction is the sense of friction along the ramp.
type Direction int

const (
	UpSlope Direction = iota
	DownSlope
)

func (d Direction) String() string {
	if d == UpSlope {
		return "up-slope"
	}
	return "down-slope"
}

// Rand is the random source the engines draw from. *math/rand.Rand
// satisfies it; tests inject fixed sequences.
type Rand interface {
	Intn(n int) int
}
