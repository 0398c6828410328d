package equilibrium

import "errors"

// Domain errors for puzzle setup.
var (
	// ErrGeneratorExhausted indicates the puzzle generator ran past its draw
	// cap without finding a clean answer. This is a defect in the sampling
	// domain, never a runtime condition to recover from.
	ErrGeneratorExhausted = errors.New("equilibrium: puzzle generator exhausted its draw limit")

	// ErrUnknownAngle indicates a ramp angle outside the fixed angle set.
	ErrUnknownAngle = errors.New("equilibrium: ramp angle not in the allowed set")

	// ErrParameterBounds indicates a puzzle parameter outside its domain.
	ErrParameterBounds = errors.New("equilibrium: parameter out of valid bounds")

	// ErrUncleanAnswer indicates a puzzle whose answer needs more than four decimals.
	ErrUncleanAnswer = errors.New("equilibrium: answer has more than four decimals")
)

// GenerationError wraps a generator failure with the number of draws made.
type GenerationError struct {
	Draws   int
	Wrapped error
}

func (e *GenerationError) Error() string {
	return e.Wrapped.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Wrapped
}
