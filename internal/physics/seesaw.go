package physics

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/staticsim/internal/equilibrium"
)

const MsgInvalidWeight = "enter a valid weight for P2"

// SeesawResult is the outcome of one seesaw evaluation.
type SeesawResult struct {
	Kind     equilibrium.Outcome
	Balanced bool
	WeightP2 float64
	MomentP1 float64
	MomentP2 float64
	Tilt     float64
	Reason   string
}

// Seesaw is the lever puzzle. Person 1 sits at a generated distance on the
// left; the player picks the weight of person 2 on the right.
type Seesaw struct {
	gen      *Generator
	log      *slog.Logger
	id       string
	puzzle   Puzzle
	correct  float64
	input    float64
	momentP1 float64
	momentP2 float64
	won      bool
}

// NewSeesaw creates a seesaw and generates its first puzzle.
func NewSeesaw(rng equilibrium.Rand, opts ...Option) (*Seesaw, error) {
	s := newSettings(opts)
	ss := &Seesaw{
		gen: NewGenerator(rng, s.maxDraws),
		log: s.logger,
	}
	if err := ss.NewGame(); err != nil {
		return nil, err
	}
	return ss, nil
}

// NewGame generates a fresh puzzle. On error the previous game is kept.
func (s *Seesaw) NewGame() error {
	p, draws, err := s.gen.Generate()
	if err != nil {
		s.log.Error("seesaw generator exhausted", "draws", draws)
		return fmt.Errorf("seesaw new game: %w", err)
	}
	s.install(p)
	s.log.Info("seesaw game started",
		"game", s.id,
		"weight_p1", p.WeightP1,
		"dist_p1", p.DistP1,
		"dist_p2", p.DistP2,
		"draws", draws,
	)
	return nil
}

// Load installs a fixed puzzle after validating it.
func (s *Seesaw) Load(p Puzzle) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.install(p)
	s.log.Info("seesaw puzzle loaded", "game", s.id, "weight_p1", p.WeightP1, "dist_p1", p.DistP1, "dist_p2", p.DistP2)
	return nil
}

func (s *Seesaw) install(p Puzzle) {
	s.id = newGameID()
	s.puzzle = p
	s.correct = p.CorrectWeightP2()
	s.input = 0
	s.momentP1 = 0
	s.momentP2 = 0
	s.won = false
}

// Evaluate judges the seesaw with person 2 weighing weightP2 kilograms.
func (s *Seesaw) Evaluate(weightP2 float64) SeesawResult {
	s.input = weightP2

	momentP2 := weightP2 * float64(s.puzzle.DistP2)
	if !(weightP2 > equilibrium.MinWeightP2) || !equilibrium.Finite(momentP2*equilibrium.Gravity) {
		return SeesawResult{
			Kind:     equilibrium.InvalidInput,
			Balanced: s.won,
			WeightP2: weightP2,
			MomentP1: s.momentP1,
			MomentP2: s.momentP2,
			Tilt:     s.TiltAngle(),
			Reason:   MsgInvalidWeight,
		}
	}

	s.momentP1 = s.puzzle.MomentP1()
	s.momentP2 = momentP2

	s.won = s.puzzle.Balances(weightP2)

	res := SeesawResult{
		Kind:     equilibrium.Mismatch,
		Balanced: s.won,
		WeightP2: weightP2,
		MomentP1: s.momentP1,
		MomentP2: s.momentP2,
		Tilt:     s.TiltAngle(),
	}
	if s.won {
		res.Kind = equilibrium.Success
	}

	s.log.Debug("seesaw evaluated",
		"game", s.id,
		"weight_p2", weightP2,
		"moment_p1", s.momentP1,
		"moment_p2", s.momentP2,
		"outcome", res.Kind.String(),
	)
	return res
}

// TiltAngle is the board rotation in degrees for the current moments.
func (s *Seesaw) TiltAngle() float64 {
	return TiltAngle(s.momentP1, s.momentP2, s.won)
}

// TiltAngle maps a moment difference to a board rotation in degrees,
// clamped to ±[equilibrium.MaxTilt]. A won board rests level. Positive
// angles lower person 1's side.
func TiltAngle(momentP1, momentP2 float64, won bool) float64 {
	if won {
		return 0
	}
	angle := (momentP1 - momentP2) / equilibrium.MaxMoment * equilibrium.MaxTilt
	return equilibrium.Clamp(angle, -equilibrium.MaxTilt, equilibrium.MaxTilt)
}

// ID identifies the current game in logs.
func (s *Seesaw) ID() string { return s.id }

func (s *Seesaw) Puzzle() Puzzle { return s.puzzle }

func (s *Seesaw) WeightP1() int { return s.puzzle.WeightP1 }

func (s *Seesaw) DistP1() int { return s.puzzle.DistP1 }

func (s *Seesaw) DistP2() int { return s.puzzle.DistP2 }

// CorrectWeightP2 exposes the answer. It is meant for tests and debugging
// and is never shown during normal play.
func (s *Seesaw) CorrectWeightP2() float64 { return s.correct }

// WeightP2 is the last weight submitted, valid or not.
func (s *Seesaw) WeightP2() float64 { return s.input }

func (s *Seesaw) Won() bool { return s.won }

// Moments returns the moments of the last accepted evaluation.
func (s *Seesaw) Moments() (p1, p2 float64) { return s.momentP1, s.momentP2 }
