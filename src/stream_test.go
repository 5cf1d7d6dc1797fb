package sigcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolStreamReadYourWrites(t *testing.T) {
	s := NewSymbolStream(4)
	cursor := s.NewCursor()

	s.Write(complex(1, 0))
	s.Write(complex(2, 0))

	v, err, ok := s.Read(&cursor)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, complex(1, 0), v)

	v, err, ok = s.Read(&cursor)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, complex(2, 0), v)

	_, err, ok = s.Read(&cursor)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSymbolStreamOverrunResyncs(t *testing.T) {
	s := NewSymbolStream(2)
	cursor := uint64(0)

	for i := 0; i < 5; i++ {
		s.Write(complex(float64(i), 0))
	}

	_, err, ok := s.Read(&cursor)
	require.ErrorIs(t, err, ErrStreamOverrun)
	assert.False(t, ok)
	assert.Equal(t, s.Tell(), cursor)

	// Further reads proceed normally from the resynchronized cursor.
	s.Write(complex(99, 0))

	v, err, ok := s.Read(&cursor)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, complex(99, 0), v)
}

func TestSymbolStreamMultipleReadersIndependent(t *testing.T) {
	s := NewSymbolStream(8)
	slow := s.NewCursor()

	s.Write(complex(1, 0))

	fast := s.NewCursor()
	s.Write(complex(2, 0))

	v, _, ok := s.Read(&fast)
	require.True(t, ok)
	assert.Equal(t, complex(2, 0), v)

	v, _, ok = s.Read(&slow)
	require.True(t, ok)
	assert.Equal(t, complex(1, 0), v)
}
