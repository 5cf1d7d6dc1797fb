package sigcore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalCycleRange(t *testing.T) {
	cases := []Float{0, math.Pi, -math.Pi, 3 * math.Pi, -3 * math.Pi, 0.1, -0.1, 100 * math.Pi}

	for _, c := range cases {
		got := principalCycle(c)
		assert.Greater(t, got, -math.Pi-1e-9)
		assert.LessOrEqual(t, got, math.Pi+1e-9)
	}
}

func TestPrincipalCycleIdempotent(t *testing.T) {
	for _, c := range []Float{0.5, -0.5, math.Pi - 1e-6} {
		once := principalCycle(c)
		twice := principalCycle(once)
		assert.InDelta(t, once, twice, 1e-12)
	}
}

func TestAngularNormRoundTrip(t *testing.T) {
	for _, fnor := range []Float{0, 0.01, 0.25, -0.3} {
		assert.InDelta(t, fnor, angularToNorm(normToAngular(fnor)), 1e-12)
	}
}
