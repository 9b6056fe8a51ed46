package config

var Presets = map[string]map[string]*Config{
	"TDVP1": {
		"fast": {
			Mode: "TDVP1",
			Integration: IntegrationConfig{NumIterLanczos: 5, MaxBondDimension: 20},
			Hierarchy:   HierarchyConfig{SystemDimension: 2, Depth: 3, NumModes: 2, Timestep: 0.02, Duration: 10.0},
		},
		"accurate": {
			Mode: "TDVP1",
			Integration: IntegrationConfig{NumIterLanczos: 20, MaxBondDimension: 100},
			Hierarchy:   HierarchyConfig{SystemDimension: 2, Depth: 6, NumModes: 4, Timestep: 0.005, Duration: 10.0},
		},
	},
	"TDVP2": {
		"balanced": {
			Mode: "TDVP2",
			Integration: IntegrationConfig{NumIterLanczos: 10, MaxBondDimension: 50, SVDRelativeTolerance: 1e-8},
			Hierarchy:   HierarchyConfig{SystemDimension: 2, Depth: 4, NumModes: 3, Timestep: 0.01, Duration: 10.0},
		},
		"tight": {
			Mode: "TDVP2",
			Integration: IntegrationConfig{NumIterLanczos: 25, MaxBondDimension: 200, SVDRelativeTolerance: 1e-12},
			Hierarchy:   HierarchyConfig{SystemDimension: 2, Depth: 8, NumModes: 5, Timestep: 0.002, Duration: 10.0},
		},
	},
	"TEBD": {
		"coarse": {
			Mode: "TEBD",
			Integration: IntegrationConfig{MaxBondDimension: 20, SVDRelativeTolerance: 1e-6},
			Hierarchy:   HierarchyConfig{SystemDimension: 2, Depth: 3, NumModes: 2, Timestep: 0.02, Duration: 10.0},
		},
		"fine": {
			Mode: "TEBD",
			Integration: IntegrationConfig{MaxBondDimension: 100, SVDRelativeTolerance: 1e-10},
			Hierarchy:   HierarchyConfig{SystemDimension: 2, Depth: 6, NumModes: 4, Timestep: 0.005, Duration: 10.0},
		},
	},
}

func GetPreset(mode, preset string) *Config {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	cfg, ok := modePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(mode string) []string {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modePresets))
	for name := range modePresets {
		names = append(names, name)
	}
	return names
}
