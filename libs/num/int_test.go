package num_test

import (
	"testing"

	"github.com/crucible-fi/crucible/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntFromString(t *testing.T) {
	i, bad := num.IntFromString("-150")
	require.False(t, bad)
	assert.True(t, i.IsNegative())
	assert.Equal(t, "-150", i.String())

	i, bad = num.IntFromString("150")
	require.False(t, bad)
	assert.True(t, i.IsPositive())
	assert.Equal(t, "150", i.String())

	_, bad = num.IntFromString("abc")
	assert.True(t, bad)

	// negative zero normalizes to zero
	i, bad = num.IntFromString("-0")
	require.False(t, bad)
	assert.True(t, i.IsZero())
	assert.False(t, i.IsNegative())
}

func TestIntSigns(t *testing.T) {
	zero := num.IntZero()
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPositive())
	assert.False(t, zero.IsNegative())

	i := num.NewInt(-42)
	assert.True(t, i.IsNegative())
	i.FlipSign()
	assert.True(t, i.IsPositive())

	// flipping zero keeps it positive
	zero.FlipSign()
	assert.False(t, zero.IsNegative())
}

func TestIntCompare(t *testing.T) {
	assert.True(t, num.NewInt(3).GT(num.NewInt(-5)))
	assert.True(t, num.NewInt(-5).LT(num.NewInt(-3)))
	assert.True(t, num.NewInt(7).EQ(num.NewInt(7)))
	assert.False(t, num.NewInt(7).EQ(num.NewInt(-7)))
}

func TestIntAddSum(t *testing.T) {
	i := num.NewInt(10)
	i.AddSum(num.NewInt(-4), num.NewInt(-4))
	assert.Equal(t, "2", i.String())

	i.AddSum(num.NewInt(-5))
	assert.Equal(t, "-3", i.String())

	i.AddSum(num.NewInt(3))
	assert.True(t, i.IsZero())
	assert.False(t, i.IsNegative())
}

func TestIntApplyTo(t *testing.T) {
	bal := num.NewUint(100)

	got, ok := num.NewInt(50).ApplyTo(bal)
	require.True(t, ok)
	assert.Equal(t, "150", got.String())

	got, ok = num.NewInt(-100).ApplyTo(bal)
	require.True(t, ok)
	assert.True(t, got.IsZero())

	_, ok = num.NewInt(-101).ApplyTo(bal)
	assert.False(t, ok)

	// the input is never mutated
	assert.Equal(t, "100", bal.String())
}
