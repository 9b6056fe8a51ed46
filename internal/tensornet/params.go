package tensornet

import (
	"github.com/san-kum/hops/internal/footprint"
)

// Parameters is the common surface of the per-mode parameter records.
// Implementations are comparable value types; the integration engine
// uses them (and their footprints) as cache keys.
type Parameters interface {
	// Mode returns the integration mode the record configures.
	Mode() IntegrationMode
	// Footprint returns a deterministic binary encoding of the record,
	// stable across processes.
	Footprint() ([]byte, error)
}

// TDVP1SiteParams configures the single-site time-dependent
// variational principle.
type TDVP1SiteParams struct {
	// NumIterLanczos is the iteration count for the Lanczos
	// exponentiation inside each local update.
	NumIterLanczos int `msgpack:"numiter_lanczos"`
	// MaxBondDimension caps the MPS bond dimension.
	MaxBondDimension int `msgpack:"max_bond_dimension"`
}

// NewTDVP1Site validates and constructs single-site TDVP parameters.
func NewTDVP1Site(numIterLanczos, maxBondDimension int) (TDVP1SiteParams, error) {
	if err := positivityTest(numIterLanczos, "number of Lanczos iterations"); err != nil {
		return TDVP1SiteParams{}, err
	}
	if err := positivityTest(maxBondDimension, "maximum bond dimension"); err != nil {
		return TDVP1SiteParams{}, err
	}
	return TDVP1SiteParams{
		NumIterLanczos:   numIterLanczos,
		MaxBondDimension: maxBondDimension,
	}, nil
}

func (p TDVP1SiteParams) Mode() IntegrationMode { return ModeTDVP1Site }

func (p TDVP1SiteParams) Footprint() ([]byte, error) {
	return footprint.Encode(string(ModeTDVP1Site), p)
}

// TDVP2SiteParams configures the two-site time-dependent variational
// principle.
type TDVP2SiteParams struct {
	NumIterLanczos   int `msgpack:"numiter_lanczos"`
	MaxBondDimension int `msgpack:"max_bond_dimension"`
	// SVDRelativeTolerance is the relative threshold below which
	// singular values are truncated after a two-site update.
	SVDRelativeTolerance float64 `msgpack:"svd_relative_tolerance"`
}

// NewTDVP2Site validates and constructs two-site TDVP parameters.
func NewTDVP2Site(numIterLanczos, maxBondDimension int, svdRelativeTolerance float64) (TDVP2SiteParams, error) {
	if err := positivityTest(numIterLanczos, "number of Lanczos iterations"); err != nil {
		return TDVP2SiteParams{}, err
	}
	if err := positivityTest(maxBondDimension, "maximum bond dimension"); err != nil {
		return TDVP2SiteParams{}, err
	}
	if err := positivityTest(svdRelativeTolerance, "relative SVD tolerance"); err != nil {
		return TDVP2SiteParams{}, err
	}
	return TDVP2SiteParams{
		NumIterLanczos:       numIterLanczos,
		MaxBondDimension:     maxBondDimension,
		SVDRelativeTolerance: svdRelativeTolerance,
	}, nil
}

func (p TDVP2SiteParams) Mode() IntegrationMode { return ModeTDVP2Site }

func (p TDVP2SiteParams) Footprint() ([]byte, error) {
	return footprint.Encode(string(ModeTDVP2Site), p)
}

// TEBDParams configures time-evolving block decimation.
type TEBDParams struct {
	MaxBondDimension     int     `msgpack:"max_bond_dimension"`
	SVDRelativeTolerance float64 `msgpack:"svd_relative_tolerance"`
}

// NewTEBD validates and constructs TEBD parameters.
func NewTEBD(maxBondDimension int, svdRelativeTolerance float64) (TEBDParams, error) {
	if err := positivityTest(maxBondDimension, "maximum bond dimension"); err != nil {
		return TEBDParams{}, err
	}
	if err := positivityTest(svdRelativeTolerance, "SVD relative tolerance"); err != nil {
		return TEBDParams{}, err
	}
	return TEBDParams{
		MaxBondDimension:     maxBondDimension,
		SVDRelativeTolerance: svdRelativeTolerance,
	}, nil
}

func (p TEBDParams) Mode() IntegrationMode { return ModeTEBD }

func (p TEBDParams) Footprint() ([]byte, error) {
	return footprint.Encode(string(ModeTEBD), p)
}
