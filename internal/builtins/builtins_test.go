package builtins

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lispy-lang/impl/internal/value"
)

func nums(ns ...int32) []value.Value {
	out := make([]value.Value, len(ns))
	for i, n := range ns {
		out[i] = value.Number(n)
	}
	return out
}

func TestFolds(t *testing.T) {
	testCases := []struct {
		name string
		fold Fold
		args []value.Value
		want int32
	}{
		{"sum nothing", Sum, nil, 0},
		{"sum one number", Sum, nums(1), 1},
		{"sum two numbers", Sum, nums(1, 2), 3},
		{"sum three numbers", Sum, nums(1, 2, 3), 6},
		{"subtract nothing", Subtract, nil, 0},
		{"subtract one number", Subtract, nums(1), 1},
		{"subtract two numbers", Subtract, nums(1, 2), -1},
		{"subtract three numbers", Subtract, nums(4, 2, 1), 1},
		// Deliberately 0, not the multiplicative identity.
		{"multiply nothing", Product, nil, 0},
		{"multiply one number", Product, nums(1), 1},
		{"multiply two numbers", Product, nums(2, 3), 6},
		{"multiply three numbers", Product, nums(2, 3, 4), 24},
		{"divide nothing", Divide, nil, 0},
		{"divide one number", Divide, nums(1), 1},
		{"divide two numbers", Divide, nums(4, 2), 2},
		{"divide ignore remainder", Divide, nums(3, 2), 1},
		{"divide three numbers", Divide, nums(8, 2, 2), 2},
		{"divide truncates toward zero", Divide, nums(-7, 2), -3},
		{"divide zero dividend", Divide, nums(0, 5), 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fold(tc.args)
			require.NoError(t, err)
			require.True(t, got.IsNumber())
			assert.Equal(t, tc.want, got.Int())
		})
	}
}

func TestNonNumbersCountAsZero(t *testing.T) {
	args := []value.Value{
		value.Number(5),
		value.Function(value.OpSum),
		value.List(nums(1, 2)),
		value.Number(2),
	}
	got, err := Sum(args)
	require.NoError(t, err)
	assert.Equal(t, int32(7), got.Int())

	got, err = Product([]value.Value{value.GroupBegin(), value.Number(9)})
	require.NoError(t, err)
	assert.Equal(t, int32(0), got.Int())
}

func TestDivideByZero(t *testing.T) {
	for _, args := range [][]value.Value{
		nums(1, 0),
		nums(8, 2, 0, 1),
		{value.Number(3), value.Error("overflow")},
	} {
		_, err := Divide(args)
		require.Error(t, err)
		assert.True(t, errors.Is(err, value.ErrDivisionByZero), "got %v", err)
	}
}

func TestWraparound(t *testing.T) {
	got, err := Sum(nums(math.MaxInt32, 1))
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), got.Int())

	got, err = Divide(nums(math.MinInt32, -1))
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), got.Int())
}

func TestApply(t *testing.T) {
	testCases := []struct {
		op   value.Op
		want int32
	}{
		{value.OpSum, 14},
		{value.OpSubtract, 10},
		{value.OpProduct, 24},
		{value.OpDivide, 6},
	}
	for _, tc := range testCases {
		got, err := Apply(tc.op, nums(12, 2))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Int(), tc.op.String())
	}

	_, err := Apply(value.Op(42), nums(1))
	assert.True(t, errors.Is(err, value.ErrNotApplicable))
}
