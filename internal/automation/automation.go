// Package automation runs scripted play sessions described in YAML.
package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/staticsim/internal/equilibrium"
	"github.com/san-kum/staticsim/internal/physics"
)

const (
	LevelIncline = "incline"
	LevelSeesaw  = "seesaw"

	ActionReset    = "reset"
	ActionNewGame  = "new_game"
	ActionEvaluate = "evaluate"
)

var (
	ErrUnknownLevel  = errors.New("automation: unknown level")
	ErrUnknownAction = errors.New("automation: unknown action")
	ErrExpectation   = errors.New("automation: expectation not met")
)

// Scenario defines a scripted session against both levels.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Seed        int64          `yaml:"seed"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single step in a scenario. Angle pins the ramp on an
// incline reset; Puzzle pins the seesaw on a new game.
type ScenarioStep struct {
	Level  string             `yaml:"level"`
	Action string             `yaml:"action"`
	Angle  int                `yaml:"angle,omitempty"`
	Puzzle *physics.Puzzle    `yaml:"puzzle,omitempty"`
	Params map[string]float64 `yaml:"params,omitempty"`
	Expect *Expectation       `yaml:"expect,omitempty"`
}

// Expectation lists the checks made after a step. Unset fields are skipped.
type Expectation struct {
	Outcome  string `yaml:"outcome,omitempty"`
	Attempts *int   `yaml:"attempts,omitempty"`
	Won      *bool  `yaml:"won,omitempty"`
}

// StepResult records the engine state after a step. Outcome is only
// meaningful for evaluate steps.
type StepResult struct {
	Step     int
	Level    string
	Action   string
	Outcome  equilibrium.Outcome
	Attempts int
	Won      bool
	Angle    int
	Tilt     float64
}

type Options struct {
	Logger   *slog.Logger
	Rand     equilibrium.Rand
	MaxDraws int
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

type session struct {
	rng    equilibrium.Rand
	opts   []physics.Option
	plane  *physics.InclinedPlane
	inputs physics.InclineInputs
	seesaw *physics.Seesaw
}

// RunScenario executes all steps in a scenario on fresh engines. It stops
// at the first failing step and returns the results gathered so far.
func RunScenario(ctx context.Context, scenario *Scenario, opts Options) ([]StepResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rng := opts.Rand
	if rng == nil {
		seed := scenario.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	s := &session{
		rng:  rng,
		opts: []physics.Option{physics.WithLogger(logger), physics.WithMaxDraws(opts.MaxDraws)},
	}

	results := make([]StepResult, 0, len(scenario.Steps))
	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		logger.Info("scenario step", "scenario", scenario.Name, "step", i+1, "level", step.Level, "action", step.Action)

		res, err := s.run(step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		res.Step = i + 1
		results = append(results, res)

		if err := check(step, res); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return results, nil
}

func (s *session) run(step ScenarioStep) (StepResult, error) {
	switch step.Level {
	case LevelIncline:
		return s.runIncline(step)
	case LevelSeesaw:
		return s.runSeesaw(step)
	default:
		return StepResult{}, fmt.Errorf("%w: %q", ErrUnknownLevel, step.Level)
	}
}

func (s *session) runIncline(step ScenarioStep) (StepResult, error) {
	if s.plane == nil {
		s.plane = physics.NewInclinedPlane(s.rng, s.opts...)
	}
	p := s.plane

	res := StepResult{Level: step.Level, Action: step.Action}
	switch step.Action {
	case ActionReset, ActionNewGame:
		if step.Angle != 0 {
			if err := p.ResetWithAngle(step.Angle); err != nil {
				return res, err
			}
		} else {
			p.Reset()
		}
		s.inputs = physics.InclineInputs{}
	case ActionEvaluate:
		for name, v := range step.Params {
			if err := s.inputs.SetParam(name, v); err != nil {
				return res, err
			}
		}
		out := p.Evaluate(s.inputs.Mass1, s.inputs.Mass2, s.inputs.Mu)
		res.Outcome = out.Kind
	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
	}

	res.Attempts = p.AttemptsRemaining()
	res.Won = p.Won()
	res.Angle = p.Angle()
	return res, nil
}

func (s *session) runSeesaw(step ScenarioStep) (StepResult, error) {
	res := StepResult{Level: step.Level, Action: step.Action}

	if s.seesaw == nil {
		ss, err := physics.NewSeesaw(s.rng, s.opts...)
		if err != nil {
			return res, err
		}
		s.seesaw = ss
	}
	ss := s.seesaw

	switch step.Action {
	case ActionReset, ActionNewGame:
		var err error
		if step.Puzzle != nil {
			err = ss.Load(*step.Puzzle)
		} else {
			err = ss.NewGame()
		}
		if err != nil {
			return res, err
		}
	case ActionEvaluate:
		w, ok := step.Params["weight"]
		if !ok {
			return res, errors.New("seesaw evaluate: missing param weight")
		}
		out := ss.Evaluate(w)
		res.Outcome = out.Kind
	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
	}

	res.Won = ss.Won()
	res.Tilt = ss.TiltAngle()
	return res, nil
}

func check(step ScenarioStep, res StepResult) error {
	e := step.Expect
	if e == nil {
		return nil
	}
	if e.Outcome != "" {
		want, ok := equilibrium.ParseOutcome(e.Outcome)
		if !ok {
			return fmt.Errorf("%w: unknown outcome %q", ErrExpectation, e.Outcome)
		}
		if step.Action != ActionEvaluate || res.Outcome != want {
			return fmt.Errorf("%w: outcome %s, want %s", ErrExpectation, res.Outcome, want)
		}
	}
	if e.Attempts != nil && res.Attempts != *e.Attempts {
		return fmt.Errorf("%w: attempts %d, want %d", ErrExpectation, res.Attempts, *e.Attempts)
	}
	if e.Won != nil && res.Won != *e.Won {
		return fmt.Errorf("%w: won %v, want %v", ErrExpectation, res.Won, *e.Won)
	}
	return nil
}
