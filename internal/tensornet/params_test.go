package tensornet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTDVP1Site(t *testing.T) {
	p, err := NewTDVP1Site(10, 50)
	require.NoError(t, err)
	assert.Equal(t, 10, p.NumIterLanczos)
	assert.Equal(t, 50, p.MaxBondDimension)
	assert.Equal(t, ModeTDVP1Site, p.Mode())
}

func TestNewTDVP1Site_Positivity(t *testing.T) {
	_, err := NewTDVP1Site(0, 50)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotPositive)
	assert.EqualError(t, err, "number of Lanczos iterations must be positive!")

	_, err = NewTDVP1Site(10, -1)
	assert.EqualError(t, err, "maximum bond dimension must be positive!")
}

func TestNewTDVP2Site(t *testing.T) {
	p, err := NewTDVP2Site(5, 100, 1e-8)
	require.NoError(t, err)
	assert.Equal(t, ModeTDVP2Site, p.Mode())
	assert.Equal(t, 1e-8, p.SVDRelativeTolerance)
}

func TestNewTDVP2Site_ValidationOrder(t *testing.T) {
	// With several invalid fields the first declared one wins.
	_, err := NewTDVP2Site(-1, 0, -0.5)
	assert.EqualError(t, err, "number of Lanczos iterations must be positive!")

	_, err = NewTDVP2Site(5, 0, -0.5)
	assert.EqualError(t, err, "maximum bond dimension must be positive!")

	_, err = NewTDVP2Site(5, 100, -0.5)
	assert.EqualError(t, err, "relative SVD tolerance must be positive!")
}

func TestNewTEBD(t *testing.T) {
	p, err := NewTEBD(20, 0.001)
	require.NoError(t, err)
	assert.Equal(t, ModeTEBD, p.Mode())

	_, err = NewTEBD(20, -0.001)
	require.Error(t, err)
	assert.EqualError(t, err, "SVD relative tolerance must be positive!")

	_, err = NewTEBD(0, 0.001)
	assert.EqualError(t, err, "maximum bond dimension must be positive!")
}

func TestParamsValueSemantics(t *testing.T) {
	a, err := NewTDVP2Site(10, 50, 1e-6)
	require.NoError(t, err)
	b, err := NewTDVP2Site(10, 50, 1e-6)
	require.NoError(t, err)
	c, err := NewTDVP2Site(10, 51, 1e-6)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	// Comparable records work directly as map keys.
	cache := map[TDVP2SiteParams]string{a: "hit"}
	assert.Equal(t, "hit", cache[b])
	_, ok := cache[c]
	assert.False(t, ok)
}

func TestFootprintStable(t *testing.T) {
	a, _ := NewTEBD(20, 0.001)
	b, _ := NewTEBD(20, 0.001)
	c, _ := NewTEBD(21, 0.001)

	fpA, err := a.Footprint()
	require.NoError(t, err)
	fpB, err := b.Footprint()
	require.NoError(t, err)
	fpC, err := c.Footprint()
	require.NoError(t, err)

	assert.Equal(t, fpA, fpB)
	assert.NotEqual(t, fpA, fpC)
}

func TestFootprintSeparatesModes(t *testing.T) {
	// TDVP1 and TEBD records with numerically identical fields must
	// not collide.
	tdvp, _ := NewTDVP1Site(20, 20)
	tebd, _ := NewTEBD(20, 20)

	fp1, err := tdvp.Footprint()
	require.NoError(t, err)
	fp2, err := tebd.Footprint()
	require.NoError(t, err)
	assert.NotEqual(t, fp1, fp2)
}
