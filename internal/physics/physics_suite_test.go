package physics_test

import (
	"io"
	"log/slog"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPhysics(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Physics Suite")
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// domainRand answers each Intn(n) with a fixed value per n.
type domainRand map[int]int

func (d domainRand) Intn(n int) int {
	return d[n]
}
