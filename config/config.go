package config

// Config contains all application settings
type Config struct {
	ConsoleHost   string `mapstructure:"CONSOLE_IP" yaml:"console_ip"`
	ConsolePort   int    `mapstructure:"CONSOLE_PORT" yaml:"console_port"`
	BindPort      int    `mapstructure:"PORT" yaml:"port"`
	BindHost      string `mapstructure:"HOST" yaml:"host"`
	DatabaseURL   string `mapstructure:"DATABASE_URL" yaml:"database_url"`
	NATSServerURL string `mapstructure:"NATS_URL" yaml:"nats_url"`
	PollInterval  int    `mapstructure:"POLL_INTERVAL" yaml:"poll_interval"`

	// Version
	BuildVersion string `yaml:"-"`
	BuildHash    string `yaml:"-"`
	BuildTime    string `yaml:"-"`
}
