package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/hops/internal/footprint"
	"github.com/san-kum/hops/internal/tensornet"
)

// Store persists generated parameter sets under their footprint key,
// so repeated runs with identical parameters land in the same entry.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type ParamSetMetadata struct {
	Key       string    `json:"key"`
	Mode      string    `json:"mode"`
	Timestamp time.Time `json:"timestamp"`
	Fields    Fields    `json:"fields"`
}

// Fields is the JSON projection of a parameter record.
type Fields struct {
	NumIterLanczos       int     `json:"numiter_lanczos,omitempty"`
	MaxBondDimension     int     `json:"max_bond_dimension"`
	SVDRelativeTolerance float64 `json:"svd_relative_tolerance,omitempty"`
}

// Save writes the parameter set's metadata under its footprint key and
// returns the key.
func (s *Store) Save(params tensornet.Parameters) (string, error) {
	fp, err := params.Footprint()
	if err != nil {
		return "", err
	}
	key, err := footprint.Key("paramset", fp)
	if err != nil {
		return "", err
	}

	setDir := filepath.Join(s.baseDir, key)
	if err := os.MkdirAll(setDir, 0755); err != nil {
		return "", err
	}

	meta := ParamSetMetadata{
		Key:       key,
		Mode:      string(params.Mode()),
		Timestamp: time.Now(),
		Fields:    projectFields(params),
	}

	metaPath := filepath.Join(setDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	return key, nil
}

func (s *Store) List() ([]ParamSetMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ParamSetMetadata{}, nil
		}
		return nil, err
	}

	sets := make([]ParamSetMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta ParamSetMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		sets = append(sets, meta)
	}

	return sets, nil
}

func (s *Store) Load(key string) (*ParamSetMetadata, error) {
	metaPath := filepath.Join(s.baseDir, key, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("parameter set not found: %s", key)
	}

	var meta ParamSetMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func projectFields(params tensornet.Parameters) Fields {
	switch p := params.(type) {
	case tensornet.TDVP1SiteParams:
		return Fields{
			NumIterLanczos:   p.NumIterLanczos,
			MaxBondDimension: p.MaxBondDimension,
		}
	case tensornet.TDVP2SiteParams:
		return Fields{
			NumIterLanczos:       p.NumIterLanczos,
			MaxBondDimension:     p.MaxBondDimension,
			SVDRelativeTolerance: p.SVDRelativeTolerance,
		}
	case tensornet.TEBDParams:
		return Fields{
			MaxBondDimension:     p.MaxBondDimension,
			SVDRelativeTolerance: p.SVDRelativeTolerance,
		}
	default:
		return Fields{}
	}
}
