package operators

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CreationAnnihilation returns the bosonic creation and annihilation
// operators for a Fock space truncated at the given dimension. The
// creation matrix carries sqrt(i+1) at (i, i+1); the annihilation
// matrix is its exact transpose. A dimension of one yields two zero
// matrices.
func CreationAnnihilation(dimension int) (*mat.Dense, *mat.Dense, error) {
	if dimension < 1 {
		return nil, nil, ErrNonPositiveDimension
	}
	creation := mat.NewDense(dimension, dimension, nil)
	annihilation := mat.NewDense(dimension, dimension, nil)
	for i := 0; i < dimension-1; i++ {
		v := math.Sqrt(float64(i + 1))
		creation.Set(i, i+1, v)
		annihilation.Set(i+1, i, v)
	}
	return creation, annihilation, nil
}

// Number returns the occupation-number operator: a diagonal matrix
// with entries 0..dimension-1.
func Number(dimension int) (*mat.Dense, error) {
	if dimension < 1 {
		return nil, ErrNonPositiveDimension
	}
	n := mat.NewDense(dimension, dimension, nil)
	for i := 0; i < dimension; i++ {
		n.Set(i, i, float64(i))
	}
	return n, nil
}

// Identity returns the identity operator of the given dimension.
func Identity(dimension int) (*mat.Dense, error) {
	if dimension < 1 {
		return nil, ErrNonPositiveDimension
	}
	id := mat.NewDense(dimension, dimension, nil)
	for i := 0; i < dimension; i++ {
		id.Set(i, i, 1)
	}
	return id, nil
}

// Pauli returns the Pauli matrices sigma_x, sigma_y, sigma_z.
func Pauli() (*mat.CDense, *mat.CDense, *mat.CDense) {
	sx := mat.NewCDense(2, 2, []complex128{
		0, 1,
		1, 0,
	})
	sy := mat.NewCDense(2, 2, []complex128{
		0, -1i,
		1i, 0,
	})
	sz := mat.NewCDense(2, 2, []complex128{
		1, 0,
		0, -1,
	})
	return sx, sy, sz
}

// SigmaPlus returns the spin raising operator (sigma_x + i*sigma_y)/2.
func SigmaPlus() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		0, 1,
		0, 0,
	})
}

// SigmaMinus returns the spin lowering operator (sigma_x - i*sigma_y)/2.
func SigmaMinus() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		0, 0,
		1, 0,
	})
}
