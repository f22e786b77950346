package config

// Presets are named check profiles: "quick" trades samples for speed,
// "strict" tightens the accepted discrepancy.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"quick": {
		Check: CheckConfig{Samples: 2, Step: DefaultStep},
		Size:  SizeConfig{MaxMeshSize: DefaultMaxMeshSize},
		Plot:  PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight, Points: DefaultPlotPoints},
	},
	"strict": {
		Check: CheckConfig{Samples: 20, Step: 1e-7, AbsTol: 1e-6, RelTol: 1e-4},
		Size:  SizeConfig{MaxMeshSize: DefaultMaxMeshSize},
		Plot:  PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight, Points: DefaultPlotPoints},
	},
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	return Presets[name]
}
