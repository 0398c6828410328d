package physics

import (
	"log/slog"

	"github.com/google/uuid"
)

// MaxGeneratorDraws caps the seesaw rejection sampler.
const MaxGeneratorDraws = 100000

type settings struct {
	logger   *slog.Logger
	maxDraws int
}

// Option configures an engine.
type Option func(*settings)

// WithLogger routes engine logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxDraws overrides the generator draw cap.
func WithMaxDraws(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxDraws = n
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		logger:   slog.Default(),
		maxDraws: MaxGeneratorDraws,
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

func newGameID() string {
	return uuid.NewString()
}
