package physics

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/staticsim/internal/equilibrium"
)

const (
	MsgInvalidMasses   = "enter valid masses (>0)"
	MsgInvalidFriction = "enter a valid friction coefficient (>=0)"
)

// Forces holds every magnitude of one ramp configuration, in newtons.
type Forces struct {
	Weight1           float64
	Weight2           float64
	ParallelWeight    float64
	NormalForce       float64
	MaxFriction       float64
	Tension           float64
	NetForce          float64
	Friction          float64
	FrictionDirection equilibrium.Direction
	Balanced          bool
}

// ResolveIncline computes the forces on the ramp block for the given angle
// in degrees. The rope is massless and the pulley frictionless, so the
// tension equals the hanging weight. Friction saturates at its maximum when
// the system is not balanced.
func ResolveIncline(angleDeg, mass1, mass2, mu float64) Forces {
	sin, cos := equilibrium.SinCos(angleDeg)

	f := Forces{
		Weight1: mass1 * equilibrium.Gravity,
		Weight2: mass2 * equilibrium.Gravity,
	}
	f.ParallelWeight = f.Weight1 * sin
	f.NormalForce = f.Weight1 * cos
	f.MaxFriction = mu * f.NormalForce
	f.Tension = f.Weight2
	f.NetForce = f.ParallelWeight - f.Weight2

	f.FrictionDirection = equilibrium.DownSlope
	if f.NetForce > 0 {
		f.FrictionDirection = equilibrium.UpSlope
	}

	if math.Abs(f.NetForce) < f.MaxFriction+equilibrium.Epsilon {
		f.Balanced = true
		f.Friction = math.Abs(f.NetForce)
	} else {
		f.Friction = f.MaxFriction
	}
	return f
}

// InclineInputs are the values the player controls on the ramp.
type InclineInputs struct {
	Mass1 float64
	Mass2 float64
	Mu    float64
}

func (in InclineInputs) GetParams() map[string]float64 {
	return map[string]float64{
		"m1": in.Mass1,
		"m2": in.Mass2,
		"mu": in.Mu,
	}
}

func (in *InclineInputs) SetParam(name string, value float64) error {
	switch name {
	case "m1":
		in.Mass1 = value
	case "m2":
		in.Mass2 = value
	case "mu":
		in.Mu = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// InclineResult is the outcome of one ramp evaluation. Forces is zero
// unless the inputs were accepted.
type InclineResult struct {
	Forces
	Kind              equilibrium.Outcome
	AttemptsRemaining int
	Angle             int
	Reason            string
}

// InclinedPlane is the ramp and pulley puzzle.
type InclinedPlane struct {
	rng      equilibrium.Rand
	log      *slog.Logger
	id       string
	angle    int
	attempts int
	won      bool
	inputs   InclineInputs
}

// NewInclinedPlane creates a ramp puzzle and starts its first game.
func NewInclinedPlane(rng equilibrium.Rand, opts ...Option) *InclinedPlane {
	s := newSettings(opts)
	p := &InclinedPlane{rng: rng, log: s.logger}
	p.Reset()
	return p
}

// Reset starts a new game on a random angle from [equilibrium.Angles].
func (p *InclinedPlane) Reset() {
	angle := equilibrium.Angles[p.rng.Intn(len(equilibrium.Angles))]
	p.start(angle)
}

// ResetWithAngle starts a new game on a chosen angle.
func (p *InclinedPlane) ResetWithAngle(deg int) error {
	if !equilibrium.ValidAngle(deg) {
		return fmt.Errorf("%w: %d (allowed: %v)", equilibrium.ErrUnknownAngle, deg, equilibrium.Angles)
	}
	p.start(deg)
	return nil
}

func (p *InclinedPlane) start(angle int) {
	p.id = newGameID()
	p.angle = angle
	p.attempts = equilibrium.StartingAttempts
	p.won = false
	p.inputs = InclineInputs{}
	p.log.Info("incline game started", "game", p.id, "angle", angle)
}

// Evaluate judges the ramp with the given masses in kilograms and friction
// coefficient. Rejected inputs consume no attempt. Once the game is won or
// lost the state is frozen until the next reset.
func (p *InclinedPlane) Evaluate(mass1, mass2, mu float64) InclineResult {
	res := InclineResult{
		AttemptsRemaining: p.attempts,
		Angle:             p.angle,
	}

	switch {
	case p.won:
		res.Kind = equilibrium.Settled
		res.Balanced = true
		return res
	case p.attempts <= 0:
		res.Kind = equilibrium.GameOver
		return res
	case !validMass(mass1) || !validMass(mass2):
		res.Kind = equilibrium.InvalidInput
		res.Reason = MsgInvalidMasses
		return res
	case mu < 0 || !equilibrium.Finite(mu):
		res.Kind = equilibrium.InvalidInput
		res.Reason = MsgInvalidFriction
		return res
	}

	forces := ResolveIncline(float64(p.angle), mass1, mass2, mu)
	if reason := forces.overflow(); reason != "" {
		res.Kind = equilibrium.InvalidInput
		res.Reason = reason
		return res
	}
	p.inputs = InclineInputs{Mass1: mass1, Mass2: mass2, Mu: mu}
	res.Forces = forces

	if res.Balanced {
		p.won = true
		res.Kind = equilibrium.Success
	} else {
		p.attempts--
		res.AttemptsRemaining = p.attempts
		res.Kind = equilibrium.RetryAvailable
		if p.attempts == 0 {
			res.Kind = equilibrium.GameOver
		}
	}

	p.log.Debug("incline evaluated",
		"game", p.id,
		"angle", p.angle,
		"m1", mass1,
		"m2", mass2,
		"mu", mu,
		"net", res.NetForce,
		"max_friction", res.MaxFriction,
		"outcome", res.Kind.String(),
		"attempts", p.attempts,
	)
	return res
}

// overflow names the input whose forces left the float range, or returns
// "" when every magnitude is finite.
func (f Forces) overflow() string {
	for _, v := range []float64{f.Weight1, f.Weight2, f.ParallelWeight, f.NormalForce, f.NetForce} {
		if !equilibrium.Finite(v) {
			return MsgInvalidMasses
		}
	}
	if !equilibrium.Finite(f.MaxFriction) {
		return MsgInvalidFriction
	}
	return ""
}

func validMass(m float64) bool {
	return m > 0 && equilibrium.Finite(m)
}

// ID identifies the current game in logs.
func (p *InclinedPlane) ID() string { return p.id }

func (p *InclinedPlane) Angle() int { return p.angle }

func (p *InclinedPlane) AttemptsRemaining() int { return p.attempts }

func (p *InclinedPlane) Won() bool { return p.won }

// Lost reports whether the attempts ran out without a win.
func (p *InclinedPlane) Lost() bool { return !p.won && p.attempts <= 0 }

// Finished reports whether evaluation is frozen until the next reset.
func (p *InclinedPlane) Finished() bool { return p.won || p.attempts <= 0 }

// Inputs returns the last accepted inputs, zero after a reset.
func (p *InclinedPlane) Inputs() InclineInputs { return p.inputs }
