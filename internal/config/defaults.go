package config

const (
	defaultDataDir               = "~/.local/share/registrar"
	defaultLogDir                = "~/.local/share/registrar/logs"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
	defaultBusyTimeoutMillis     = 5000
	defaultRequestTimeoutSeconds = 10
	defaultAppName               = "registrar"
	defaultAppVersion            = "dev"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Store: Store{
			BusyTimeoutMillis:     defaultBusyTimeoutMillis,
			RequestTimeoutSeconds: defaultRequestTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		App: App{
			Name:    defaultAppName,
			Version: defaultAppVersion,
		},
	}
}
