package sigcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArmFilterOrderZeroIsPassthrough(t *testing.T) {
	f := newArmFilter(0, 0.1)

	x := complex(0.3, -0.7)
	assert.Equal(t, x, f.feed(x))
}

func TestArmFilterFIRUnityDCGain(t *testing.T) {
	f := newArmFilter(1, 0.05)

	var out complex128

	for i := 0; i < 500; i++ {
		out = f.feed(complex(1, 0))
	}

	assert.InDelta(t, 1, real(out), 0.05)
	assert.InDelta(t, 0, imag(out), 1e-9)
}

func TestArmFilterIIRUnityDCGain(t *testing.T) {
	f := newArmFilter(4, 0.05)

	var out complex128

	for i := 0; i < 2000; i++ {
		out = f.feed(complex(1, 0))
	}

	assert.InDelta(t, 1, real(out), 0.05)
}

func TestArmFilterThresholdSelectsFIR(t *testing.T) {
	f := newArmFilter(FIROrderThreshold, 0.05)

	_, isFIR := f.(*firFilter)
	assert.True(t, isFIR)
}

func TestBrickwallLowpassNormalizedToUnityDC(t *testing.T) {
	taps := brickwallLowpass(0.1, 21)

	var sum Float
	for _, v := range taps {
		sum += v
	}

	assert.InDelta(t, 1, sum, 1e-9)
}
