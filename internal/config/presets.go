package config

// Presets are starting configurations for systems whose embedding
// parameters are well known from the literature. Delay values assume the
// sampling rates of the synth generators.
var Presets = map[string]*Config{
	"lorenz": {
		Dimension: 3, Delay: 8,
		MaxRadius: 10.0, NumRadii: 20,
	},
	"logistic": {
		Dimension: 2, Delay: 1,
		MaxRadius: 0.5, NumRadii: 20,
	},
	"sine": {
		Dimension: 2, Delay: 5,
		MaxRadius: 1.0, NumRadii: 20,
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.MaxRadius == 0 {
		cfg.MaxRadius = DefaultMaxRadius
	}
	if cfg.NumRadii == 0 {
		cfg.NumRadii = DefaultNumRadii
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
