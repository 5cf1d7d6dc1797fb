package sigcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssemblyRejectsUnknownKind(t *testing.T) {
	cfg := DefaultAssemblyConfig()
	cfg.Kind = "16psk"

	_, err := NewAssembly(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigRejected)
}

func TestNewAssemblyRejectsInvertedBaudLimits(t *testing.T) {
	cfg := DefaultAssemblyConfig()
	cfg.BaudMin = 0.5
	cfg.BaudMax = 0.1

	_, err := NewAssembly(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigRejected)
}

func TestPipelineFeedProducesSymbols(t *testing.T) {
	cfg := DefaultAssemblyConfig()
	cfg.CarrierHintFnor = 0.02
	cfg.BaudHintBnor = 0.2

	p, err := NewAssembly(cfg)
	require.NoError(t, err)

	src := NewPSKBurstSource(0.02, 2, 20, []int{0, 1, 2, 3, 0, 1})

	for i := 0; i < 2000; i++ {
		p.Feed(src.Next())
	}

	_, _, ok := p.Symbols().Read(new(uint64))
	assert.True(t, ok)
}

func TestBPSKQPSK8PSKConstructorsAgreeWithDefaultAssembly(t *testing.T) {
	b, err := NewBPSKAssembly(0.01, 0.01, 4, 0.1)
	require.NoError(t, err)
	assert.Equal(t, CostasBPSK, b.Costas().kind)

	q, err := NewQPSKAssembly(0.01, 0.01, 4, 0.1)
	require.NoError(t, err)
	assert.Equal(t, CostasQPSK, q.Costas().kind)

	e, err := New8PSKAssembly(0.01, 0.01, 4, 0.1)
	require.NoError(t, err)
	assert.Equal(t, Costas8PSK, e.Costas().kind)
}
