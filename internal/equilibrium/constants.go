package equilibrium

const (
	// Gravity is the gravitational acceleration in m/s².
	Gravity = 9.8
	// Epsilon is the absolute slack, in newtons or kilograms, allowed when
	// judging balance.
	Epsilon = 0.5

	StartingAttempts = 3

	MinWeightP1 = 50
	MaxWeightP1 = 120
	MinDistP1   = 20
	MaxDistP1   = 100
	DistP1Step  = 20
	MinDistP2   = 10
	MaxDistP2   = 100

	// MinWeightP2 is the smallest weight the seesaw accepts as an answer.
	MinWeightP2 = 0.01

	// MaxTilt is the largest seesaw board rotation in degrees.
	MaxTilt = 15.0
	// MaxMoment is the moment difference that maps to MaxTilt.
	MaxMoment = MaxWeightP1 * MaxDistP1

	// AnswerDecimals is how many decimals a generated answer may carry.
	AnswerDecimals = 4
	// AnswerTolerance bounds the rounding residue of a clean answer.
	AnswerTolerance = 1e-6
)

// Angles is the fixed set of ramp angles in degrees.
var Angles = []int{45, 30, 60, 16, 37, 53}

// ValidAngle reports whether deg belongs to [Angles].
func ValidAngle(deg int) bool {
	for _, a := range Angles {
		if a == deg {
			return true
		}
	}
	return false
}
