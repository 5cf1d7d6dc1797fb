package sigcore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNCQOInitStartsAtUnity(t *testing.T) {
	n := NewNCQO(0.1)

	assert.InDelta(t, 1, n.GetI(), 1e-12)
	assert.InDelta(t, 0, n.GetQ(), 1e-12)
	assert.InDelta(t, 0, n.GetPhase(), 1e-12)
}

func TestNCQOStepAdvancesByOmega(t *testing.T) {
	n := NewNCQO(0.1)
	omega := n.GetAngFreq()

	n.Step()

	assert.InDelta(t, principalCycle(omega), n.GetPhase(), 1e-9)
}

func TestNCQOReadReturnsPreStepValue(t *testing.T) {
	n := NewNCQO(0.1)

	first := n.Read()
	assert.InDelta(t, 1, real(first), 1e-12)
	assert.InDelta(t, 0, imag(first), 1e-12)

	assert.InDelta(t, principalCycle(n.GetAngFreq()), n.GetPhase(), 1e-9)
}

func TestNCQOSetFreqUpdatesOmega(t *testing.T) {
	n := NewNCQO(0.1)
	n.SetFreq(0.2)

	assert.InDelta(t, 0.2, n.GetFreq(), 1e-12)
	assert.InDelta(t, twoPi*0.2, n.GetAngFreq(), 1e-9)
}

func TestNCQOFixedRejectsNonPositiveFreq(t *testing.T) {
	_, err := NewFixedNCQO(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigRejected)

	_, err = NewFixedNCQO(-0.1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigRejected)
}

func TestNCQOFixedMutationsAreRefusedNotFatal(t *testing.T) {
	n, err := NewFixedNCQO(0.25)
	require.NoError(t, err)

	before := n.GetFreq()

	n.SetFreq(0.4)
	n.IncFreq(0.1)
	n.SetAngFreq(1.0)
	n.IncAngFreq(0.5)
	n.SetPhase(1.0)

	assert.InDelta(t, before, n.GetFreq(), 1e-12)
}

func TestNCQOFixedTableMatchesContinuousMode(t *testing.T) {
	fnor := 0.125 // table size = 8, an exact period

	fixed, err := NewFixedNCQO(fnor)
	require.NoError(t, err)

	cont := NewNCQO(fnor)

	for i := 0; i < 16; i++ {
		fv := fixed.Read()
		cv := cont.Read()

		assert.InDelta(t, real(cv), real(fv), 1e-9, "sample %d", i)
		assert.InDelta(t, imag(cv), imag(fv), 1e-9, "sample %d", i)
	}
}

func TestNCQOFixedTableWrapsModuloLength(t *testing.T) {
	fixed, err := NewFixedNCQO(0.25) // table size 4
	require.NoError(t, err)

	var first complex128

	for i := 0; i < 4; i++ {
		v := fixed.Read()
		if i == 0 {
			first = v
		}
	}

	wrapped := fixed.Read()
	assert.InDelta(t, real(first), real(wrapped), 1e-12)
	assert.InDelta(t, imag(first), imag(wrapped), 1e-12)
}

func TestNCQOIQIdentity(t *testing.T) {
	n := NewNCQO(0.073)

	for i := 0; i < 50; i++ {
		i0, q0 := n.GetI(), n.GetQ()
		mag := i0*i0 + q0*q0
		assert.InDelta(t, 1, mag, 1e-9)

		n.Step()
	}
}

func TestNCQOGetIAfterSetPhase(t *testing.T) {
	n := NewNCQO(0.1)
	n.SetPhase(math.Pi / 3)

	assert.InDelta(t, math.Cos(math.Pi/3), n.GetI(), 1e-9)
	assert.InDelta(t, math.Sin(math.Pi/3), n.GetQ(), 1e-9)
}
