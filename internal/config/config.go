package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/hops/internal/tensornet"
)

const (
	DefaultNumIterLanczos       = 10
	DefaultMaxBondDimension     = 50
	DefaultSVDRelativeTolerance = 1e-8
	DefaultSystemDimension      = 2
	DefaultDepth                = 4
	DefaultNumModes             = 3
	DefaultTimestep             = 0.01
	DefaultDuration             = 10.0
)

type Config struct {
	Mode        string            `yaml:"mode"`
	Integration IntegrationConfig `yaml:"integration"`
	Hierarchy   HierarchyConfig   `yaml:"hierarchy"`
}

type IntegrationConfig struct {
	NumIterLanczos       int     `yaml:"numiter_lanczos"`
	MaxBondDimension     int     `yaml:"max_bond_dimension"`
	SVDRelativeTolerance float64 `yaml:"svd_relative_tolerance"`
}

type HierarchyConfig struct {
	SystemDimension int     `yaml:"system_dimension"`
	Depth           int     `yaml:"depth"`
	NumModes        int     `yaml:"num_modes"`
	Timestep        float64 `yaml:"timestep"`
	Duration        float64 `yaml:"duration"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode: string(tensornet.ModeTDVP1Site),
		Integration: IntegrationConfig{
			NumIterLanczos:       DefaultNumIterLanczos,
			MaxBondDimension:     DefaultMaxBondDimension,
			SVDRelativeTolerance: DefaultSVDRelativeTolerance,
		},
		Hierarchy: HierarchyConfig{
			SystemDimension: DefaultSystemDimension,
			Depth:           DefaultDepth,
			NumModes:        DefaultNumModes,
			Timestep:        DefaultTimestep,
			Duration:        DefaultDuration,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetFields maps the integration section to the field set the chosen
// mode declares. Unknown modes yield nil; GenerateParameters reports
// them properly.
func (c *Config) GetFields() tensornet.Fields {
	switch tensornet.IntegrationMode(c.Mode) {
	case tensornet.ModeTDVP1Site:
		return tensornet.Fields{
			tensornet.FieldNumIterLanczos:   c.Integration.NumIterLanczos,
			tensornet.FieldMaxBondDimension: c.Integration.MaxBondDimension,
		}
	case tensornet.ModeTDVP2Site:
		return tensornet.Fields{
			tensornet.FieldNumIterLanczos:       c.Integration.NumIterLanczos,
			tensornet.FieldMaxBondDimension:     c.Integration.MaxBondDimension,
			tensornet.FieldSVDRelativeTolerance: c.Integration.SVDRelativeTolerance,
		}
	case tensornet.ModeTEBD:
		return tensornet.Fields{
			tensornet.FieldMaxBondDimension:     c.Integration.MaxBondDimension,
			tensornet.FieldSVDRelativeTolerance: c.Integration.SVDRelativeTolerance,
		}
	default:
		return nil
	}
}

// GenerateParameters builds the integration parameter record described
// by the config.
func (c *Config) GenerateParameters() (tensornet.Parameters, error) {
	mode, err := tensornet.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	return tensornet.GenerateParameters(mode, c.GetFields())
}

// Hierarchy parameters are validated by the hierarchy package; the
// config only carries the raw values.
func (c *Config) HierarchyValues() (systemDimension, depth, numModes int, timestep, duration float64) {
	h := c.Hierarchy
	return h.SystemDimension, h.Depth, h.NumModes, h.Timestep, h.Duration
}
