// Package hierarchy holds the parameter container for the hierarchy
// integrator and its tensor-network extension.
package hierarchy

import (
	"errors"

	"github.com/san-kum/hops/internal/footprint"
	"github.com/san-kum/hops/internal/tensornet"
)

// ErrMissingTensorParams indicates a composite built without an
// integration parameter record.
var ErrMissingTensorParams = errors.New("hierarchy: tensor-network parameters are required")

// Params is the base parameter record of the hierarchy integrator.
// All fields are fixed at construction.
type Params struct {
	// SystemDimension is the local Hilbert space dimension.
	SystemDimension int `msgpack:"system_dimension"`
	// Depth is the truncation depth of the hierarchy.
	Depth int `msgpack:"depth"`
	// NumModes is the number of bath expansion modes.
	NumModes int `msgpack:"num_modes"`
	// Timestep is the integrator step size.
	Timestep float64 `msgpack:"timestep"`
	// Duration is the total propagation time.
	Duration float64 `msgpack:"duration"`
}

// New validates and constructs base hierarchy parameters.
func New(systemDimension, depth, numModes int, timestep, duration float64) (Params, error) {
	for _, f := range []struct {
		value float64
		name  string
	}{
		{float64(systemDimension), "system dimension"},
		{float64(depth), "hierarchy depth"},
		{float64(numModes), "number of bath modes"},
		{timestep, "timestep"},
		{duration, "duration"},
	} {
		if f.value <= 0 {
			return Params{}, &tensornet.PositivityError{Name: f.name}
		}
	}
	return Params{
		SystemDimension: systemDimension,
		Depth:           depth,
		NumModes:        numModes,
		Timestep:        timestep,
		Duration:        duration,
	}, nil
}

// Footprint returns the stable byte encoding of the base parameters.
func (p Params) Footprint() ([]byte, error) {
	return footprint.Encode("HIParams", p)
}

// ParamsWithTensors extends the base hierarchy parameters with the
// parameter record of the chosen MPS integration scheme. The
// composite owns its tensor parameter value; records are never shared
// between composites.
type ParamsWithTensors struct {
	Params
	// TensorParams selects and configures the MPS integration scheme.
	TensorParams tensornet.Parameters
}

// NewWithTensors combines validated base parameters with an
// integration parameter record.
func NewWithTensors(base Params, tensorParams tensornet.Parameters) (ParamsWithTensors, error) {
	if tensorParams == nil {
		return ParamsWithTensors{}, ErrMissingTensorParams
	}
	return ParamsWithTensors{Params: base, TensorParams: tensorParams}, nil
}

// Footprint encodes the base parameters together with the tensor
// parameter record, so composites differing in either part produce
// distinct keys.
func (p ParamsWithTensors) Footprint() ([]byte, error) {
	baseFP, err := p.Params.Footprint()
	if err != nil {
		return nil, err
	}
	tensFP, err := p.TensorParams.Footprint()
	if err != nil {
		return nil, err
	}
	return footprint.Encode("HIParamsWTensors", [][]byte{baseFP, tensFP})
}

// Key returns the hex digest of the composite footprint, used by the
// parameter store and upstream caches.
func (p ParamsWithTensors) Key() (string, error) {
	fp, err := p.Footprint()
	if err != nil {
		return "", err
	}
	return footprint.Key("HIParamsWTensors", fp)
}
