package config

const (
	defaultDestination     = "dist"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultMaxDepth        = 64
	defaultLockDestination = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Destination: defaultDestination,
		},
		Placement: Placement{
			LockDestination: defaultLockDestination,
			MaxDepth:        defaultMaxDepth,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
