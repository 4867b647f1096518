package driven

// OutputDefaults holds the configurable output locations and names the
// CLI falls back to when the corresponding flags are left unset. Empty
// fields mean "keep the flag's built-in default".
type OutputDefaults struct {
	ExtractOutputDir string
	ExtractPrefix    string
	CombineName      string
	SliceName        string
	CombineListName  string
}

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and layering
// user values over the built-in defaults.
type ConfigStore interface {
	// Defaults returns the configured output defaults.
	Defaults() OutputDefaults

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
