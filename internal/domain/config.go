package domain

// Config represents the conversor configuration loaded from conversor.yaml.
type Config struct {
	Service ServiceConfig
	UI      UIConfig
}

type ServiceConfig struct {
	// Origin is scheme://host[:port]; every request goes to this origin.
	Origin string
}

type UIConfig struct {
	DefaultCategory Category

	// LatestOnly drops responses older than the newest submission.
	LatestOnly bool
}

// DefaultConfig provides sane defaults if conversor.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Service: ServiceConfig{
			Origin: "http://127.0.0.1:8000",
		},
		UI: UIConfig{
			DefaultCategory: CategoryTemperature,
			LatestOnly:      false,
		},
	}
}
