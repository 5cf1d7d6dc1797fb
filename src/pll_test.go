package sigcore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPLLTrackLocksOntoStaticTone(t *testing.T) {
	const fnor = 0.05

	src := NewNCQO(fnor)
	pll := NewPLL(0, 0.02)

	for i := 0; i < 4000; i++ {
		pll.Track(src.Read())
	}

	assert.InDelta(t, fnor, pll.NCQO().GetFreq(), 5e-3)
}

func TestPLLFeedLockIncreasesOnMatchedTone(t *testing.T) {
	const fnor = 0.03

	src := NewNCQO(fnor)
	pll := NewPLL(fnor, 0.02)

	for i := 0; i < 2000; i++ {
		s := src.Read()
		pll.Feed(real(s))
	}

	assert.Greater(t, pll.Lock(), 0.0)
}

func TestPLLCoefficientsPositive(t *testing.T) {
	pll := NewPLL(0, 0.01)

	assert.Greater(t, pll.alpha, 0.0)
	assert.Greater(t, pll.beta, 0.0)
}

func TestPLLTrackOutputIsMixedDown(t *testing.T) {
	pll := NewPLL(0.1, 0.02)

	x := complex(math.Cos(0.1), math.Sin(0.1))
	mix := pll.Track(x)

	assert.InDelta(t, 1, real(mix)*real(mix)+imag(mix)*imag(mix), 0.2)
}
