package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/hops/internal/tensornet"
)

func validBase(t *testing.T) Params {
	t.Helper()
	p, err := New(2, 4, 3, 0.01, 10.0)
	require.NoError(t, err)
	return p
}

func TestNew(t *testing.T) {
	p := validBase(t)
	assert.Equal(t, 2, p.SystemDimension)
	assert.Equal(t, 4, p.Depth)
}

func TestNew_Positivity(t *testing.T) {
	_, err := New(0, 4, 3, 0.01, 10.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, tensornet.ErrNotPositive)
	assert.EqualError(t, err, "system dimension must be positive!")

	_, err = New(2, 4, 3, -0.01, 10.0)
	assert.EqualError(t, err, "timestep must be positive!")
}

func TestNewWithTensors(t *testing.T) {
	base := validBase(t)
	tens, err := tensornet.NewTDVP1Site(10, 50)
	require.NoError(t, err)

	composite, err := NewWithTensors(base, tens)
	require.NoError(t, err)
	assert.Equal(t, base, composite.Params)
	assert.Equal(t, tens, composite.TensorParams)
}

func TestNewWithTensors_Missing(t *testing.T) {
	_, err := NewWithTensors(validBase(t), nil)
	assert.ErrorIs(t, err, ErrMissingTensorParams)
}

func TestCompositeEquality(t *testing.T) {
	base := validBase(t)
	tens, _ := tensornet.NewTEBD(20, 0.001)
	otherTens, _ := tensornet.NewTEBD(20, 0.002)

	a, err := NewWithTensors(base, tens)
	require.NoError(t, err)
	b, err := NewWithTensors(base, tens)
	require.NoError(t, err)
	c, err := NewWithTensors(base, otherTens)
	require.NoError(t, err)

	assert.True(t, a == b, "composites with equal fields must compare equal")
	assert.False(t, a == c)
}

func TestCompositeFootprint(t *testing.T) {
	base := validBase(t)
	tens, _ := tensornet.NewTEBD(20, 0.001)
	otherTens, _ := tensornet.NewTEBD(21, 0.001)

	a, _ := NewWithTensors(base, tens)
	b, _ := NewWithTensors(base, tens)
	c, _ := NewWithTensors(base, otherTens)

	fpA, err := a.Footprint()
	require.NoError(t, err)
	fpB, err := b.Footprint()
	require.NoError(t, err)
	fpC, err := c.Footprint()
	require.NoError(t, err)

	assert.Equal(t, fpA, fpB)
	assert.NotEqual(t, fpA, fpC)

	keyA, err := a.Key()
	require.NoError(t, err)
	assert.Len(t, keyA, 64)
}
