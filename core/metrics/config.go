package metrics

// Config represents metrics specific configuration.
type Config struct {
	Enabled bool   `long:"enabled"`
	Address string `long:"address" description:"listen address for the prometheus endpoint"`
	Path    string `long:"path"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Enabled: true,
		Address: "localhost:2112",
		Path:    "/metrics",
	}
}
