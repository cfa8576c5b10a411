package matrix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type badDim struct{}

func (badDim) Size() int { return 0 }

func TestShapeLen_PanicsOnBadMarker(t *testing.T) {
	t.Parallel()

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		err, ok := rec.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrBadShape))
	}()
	_ = New[int, badDim, badDim]()
}

func TestValidateIndex(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateIndex(0, 1))
	assert.ErrorIs(t, validateIndex(1, 1), ErrOutOfRange)
	assert.ErrorIs(t, validateIndex(-1, 1), ErrOutOfRange)
}

func TestValidateDivisor(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateDivisor([]int{1, 2}))
	assert.ErrorIs(t, validateDivisor([]int{1, 0}), ErrDivisionByZero)
	assert.ErrorIs(t, validateDivisor([]uint8{0}), ErrDivisionByZero)
	assert.NoError(t, validateDivisor([]float64{0, 1}), "float division never faults")
}

func TestZeroValue_ReadsLeaveStorageNil(t *testing.T) {
	t.Parallel()

	var m Matrix[int, two, two]
	_ = m.Transpose()
	_ = m.String()
	_ = m.Values()
	_, _ = m.Col(1)
	_, _ = m.At(0, 0)
	_ = Mul(&m, &m)
	_, _ = Inverse(&m)
	assert.Nil(t, m.data)

	require.NoError(t, m.Set(0, 0, 5))
	assert.Len(t, m.data, 4)
}

type two struct{}

func (two) Size() int { return 2 }
