package matrix_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/matrix"
)

func TestNew_DefaultZero(t *testing.T) {
	t.Parallel()

	m := matrix.New[int, dim.D3, dim.D4]()
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, 12, m.Len())
	assert.Equal(t, make([]int, 12), m.Values())

	z := matrix.Zeros[int, dim.D3, dim.D2]()
	assert.Equal(t, make([]int, 6), z.Values())
}

func TestZeroValue_IsUsable(t *testing.T) {
	t.Parallel()

	var m matrix.Matrix3d
	assert.Equal(t, 0.0, MustAt(t, &m, 2, 2))
	MustSet(t, &m, 1, 1, 5)
	assert.Equal(t, []float64{0, 0, 0, 0, 5, 0, 0, 0, 0}, m.Values())

	var a, b matrix.Matrix2i
	assert.Equal(t, []int{0, 0, 0, 0}, a.Add(&b).Values())
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	id := matrix.Identity[int, dim.D3]()
	assert.Equal(t, []int{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Values())

	id4 := matrix.Identity[float32, dim.D4]()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := float32(0)
			if r == c {
				want = 1
			}
			assert.Equal(t, want, MustAt(t, id4, r, c), "(%d,%d)", r, c)
		}
	}
}

func TestFromValues_RowMajorOrder(t *testing.T) {
	t.Parallel()

	m := matrix.FromValues[float32, dim.D3, dim.D3](1, 2, 3, 4, 5, 6, 7, 8, 9)
	want := [][]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	for r := 0; r < 3; r++ {
		row, err := m.Row(r)
		require.NoError(t, err)
		assert.Equal(t, want[r], []float32(row), "row %d", r)
	}
}

func TestFromValues_TruncatesAndPads(t *testing.T) {
	t.Parallel()

	long := matrix.FromValues[int, dim.D2, dim.D2](1, 2, 3, 4, 5, 6)
	assert.Equal(t, []int{1, 2, 3, 4}, long.Values())

	short := matrix.FromValues[int, dim.D2, dim.D2](9)
	assert.Equal(t, []int{9, 0, 0, 0}, short.Values())

	empty := matrix.FromValues[int, dim.D2, dim.D2]()
	assert.Equal(t, []int{0, 0, 0, 0}, empty.Values())
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	m := matrix.FromRows[int, dim.D2, dim.D3]([]int{1, 2, 3, 99}, []int{4}, []int{7, 7, 7})
	assert.Equal(t, []int{1, 2, 3, 4, 0, 0}, m.Values())
}

func TestAtSet_OutOfRange(t *testing.T) {
	t.Parallel()

	m := m22(1, 2, 3, 4)
	for _, tc := range []struct{ r, c int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(tc.r, tc.c)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", tc.r, tc.c)
		assert.ErrorIs(t, m.Set(tc.r, tc.c, 0), matrix.ErrOutOfRange, "Set(%d,%d)", tc.r, tc.c)
	}
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Values(), "failed Set must not write")
}

func TestRow_ViewMutatesOwner(t *testing.T) {
	t.Parallel()

	m := m22(1, 2, 3, 4)
	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, 2, row.Len())

	v, err := row.At(1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	require.NoError(t, row.Set(1, 5))
	assert.Equal(t, []float64{1, 2, 3, 5}, m.Values())

	row[0] = -3 // plain indexing aliases too
	assert.Equal(t, -3.0, MustAt(t, m, 1, 0))

	_, err = row.At(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, row.Set(-1, 0), matrix.ErrOutOfRange)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestRow_AppendDoesNotClobberNextRow(t *testing.T) {
	t.Parallel()

	m := m22(1, 2, 3, 4)
	row, err := m.Row(0)
	require.NoError(t, err)
	_ = append(row, 42)
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Values())
}

func TestCol(t *testing.T) {
	t.Parallel()

	m := matrix.FromValues[int, dim.D3, dim.D2](1, 2, 3, 4, 5, 6)
	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, col)

	col[0] = 100 // a copy, not a view
	assert.Equal(t, 2, MustAt(t, m, 0, 1))

	_, err = m.Col(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	m := m22(1, 2, 3, 4)
	c := m.Clone()
	MustSet(t, c, 0, 0, 10)
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 10.0, MustAt(t, c, 0, 0))
}

func TestSwap(t *testing.T) {
	t.Parallel()

	a := m22(1, 2, 3, 4)
	b := m22(5, 6, 7, 8)
	a.Swap(b)
	assert.Equal(t, []float64{5, 6, 7, 8}, a.Values())
	assert.Equal(t, []float64{1, 2, 3, 4}, b.Values())
}

func TestAssign_CopyAndSwap(t *testing.T) {
	t.Parallel()

	src := m33(1, 2, 3, 4, 5, 6, 7, 8, 9)
	var dst matrix.Matrix3d
	got := dst.Assign(src)
	require.Same(t, &dst, got)
	assert.Equal(t, src.Values(), dst.Values())

	MustSet(t, src, 0, 0, -1) // dst is independent of src
	assert.Equal(t, 1.0, MustAt(t, &dst, 0, 0))

	dst.Assign(matrix.Identity[float64, dim.D3]())
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, dst.Values())

	dst.Assign(&dst) // self-assignment keeps contents
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, dst.Values())
}

func TestSwapRows(t *testing.T) {
	t.Parallel()

	m := matrix.FromValues[int, dim.D3, dim.D2](1, 2, 3, 4, 5, 6)
	require.NoError(t, m.SwapRows(0, 2))
	assert.Equal(t, []int{5, 6, 3, 4, 1, 2}, m.Values())

	require.NoError(t, m.SwapRows(1, 1))
	assert.Equal(t, []int{5, 6, 3, 4, 1, 2}, m.Values())

	assert.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SwapRows(-1, 0), matrix.ErrOutOfRange)
}

func TestEqualAndAllClose(t *testing.T) {
	t.Parallel()

	a := m22(1, 2, 3, 4)
	b := m22(1, 2, 3, 4+1e-12)
	assert.True(t, matrix.Equal(a, a.Clone()))
	assert.False(t, matrix.Equal(a, b))
	assert.True(t, matrix.AllClose(a, b, 0, eps))
	assert.False(t, matrix.AllClose(a, m22(1, 2, 3, 5), 0, eps))
}

func TestZeroValue_ConcurrentReads(t *testing.T) {
	t.Parallel()

	var m matrix.Matrix[float64, dim.D3, dim.D3]
	want := "0 0 0\n0 0 0\n0 0 0\n"

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr := m.Transpose()
			assert.Equal(t, want, m.String())
			assert.True(t, matrix.Equal(tr, &m))
			assert.Equal(t, make([]float64, 9), matrix.Mul(&m, &m).Values())
			_, _ = matrix.Inverse(&m)
			_ = m.Clone()
			_ = m.Add(&m)
			v, err := m.At(2, 2)
			assert.NoError(t, err)
			assert.Equal(t, 0.0, v)
		}()
	}
	wg.Wait()
}
