package settings

const (
	defaultLogLevel   = "warn"
	defaultMaxBackups = 3
	defaultMaxAge     = 7
	defaultMaxSize    = 10
)

// Default returns the compiled-in configuration for the named program.
// Logs stay on stderr unless FileLogName is set.
func Default(name string) Config {
	return Config{
		App: App{Name: name},
		Logger: Logger{
			LogLevel:   defaultLogLevel,
			MaxBackups: defaultMaxBackups,
			MaxAge:     defaultMaxAge,
			MaxSize:    defaultMaxSize,
		},
	}
}
