package equilibrium

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"testing"
)

func TestIsClean(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		clean bool
	}{
		{"integer", 20, true},
		{"two decimals", 12.5, true},
		{"four decimals", 1.0625, true},
		{"repeating", 100.0 / 3.0, false},
		{"five decimals", 1.03125, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClean(tt.value); got != tt.clean {
				t.Errorf("IsClean(%v) = %v, want %v", tt.value, got, tt.clean)
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(3.14159, 2); math.Abs(got-3.14) > 1e-12 {
		t.Errorf("RoundTo(3.14159, 2) = %v, want 3.14", got)
	}
	if got := RoundTo(-2.5, 0); got != -3 {
		t.Errorf("RoundTo(-2.5, 0) = %v, want -3", got)
	}
}

func TestSinCos(t *testing.T) {
	sin, cos := SinCos(30)
	if math.Abs(sin-0.5) > 1e-12 {
		t.Errorf("sin(30) = %v, want 0.5", sin)
	}
	if math.Abs(cos-math.Sqrt(3)/2) > 1e-12 {
		t.Errorf("cos(30) = %v, want %v", cos, math.Sqrt(3)/2)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-20, -15},
		{20, 15},
		{3, 3},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, -15, 15); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestValidAngle(t *testing.T) {
	for _, a := range Angles {
		if !ValidAngle(a) {
			t.Errorf("angle %d should be valid", a)
		}
	}
	if ValidAngle(90) {
		t.Error("angle 90 should not be valid")
	}
}

func TestOutcome_String(t *testing.T) {
	for o := InvalidInput; o <= Settled; o++ {
		parsed, ok := ParseOutcome(o.String())
		if !ok || parsed != o {
			t.Errorf("ParseOutcome(%q) = %v, %v", o.String(), parsed, ok)
		}
	}
	if Outcome(99).String() != "unknown" {
		t.Error("expected unknown for out-of-range outcome")
	}
	if _, ok := ParseOutcome("nope"); ok {
		t.Error("expected ParseOutcome to reject unknown names")
	}
}

func TestOutcome_Terminal(t *testing.T) {
	if !GameOver.Terminal() || !Settled.Terminal() {
		t.Error("GameOver and Settled must be terminal")
	}
	if Success.Terminal() || RetryAvailable.Terminal() {
		t.Error("Success and RetryAvailable must not be terminal")
	}
}

func TestGenerationError(t *testing.T) {
	err := fmt.Errorf("new game: %w", &GenerationError{Draws: 10, Wrapped: ErrGeneratorExhausted})
	if !errors.Is(err, ErrGeneratorExhausted) {
		t.Error("expected wrapped ErrGeneratorExhausted")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Draws != 10 {
		t.Errorf("expected GenerationError with 10 draws, got %v", genErr)
	}
}

func TestParallelFor(t *testing.T) {
	for _, n := range []int{0, 1, 7, 71, 1000} {
		hits := make([]int32, n)
		var calls atomic.Int32
		ParallelFor(n, 8, func(start, end int) {
			calls.Add(1)
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, h)
			}
		}
		if n == 0 && calls.Load() != 0 {
			t.Errorf("n=0: fn called %d times", calls.Load())
		}
	}
}
