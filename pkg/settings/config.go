package settings

type Config struct {
	App    App    `mapstructure:"app" validate:"required"`
	Logger Logger `mapstructure:"logger" validate:"required"`
}

// App is the configuration for the running program
type App struct {
	Name string `mapstructure:"name" validate:"required"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"min=0"`  // Days
	MaxSize     int    `mapstructure:"max_size" validate:"min=0"` // Megabytes
	Compress    bool   `mapstructure:"compress"`
}
