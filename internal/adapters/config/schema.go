package config

// Fredfile represents the structure of the fred.yaml settings file.
// It configures the host program only. Tasks are registered in code.
type Fredfile struct {
	LogLevel    string            `yaml:"log_level"`
	Telemetry   string            `yaml:"telemetry"`
	StepTimeout *string           `yaml:"step_timeout"`
	Env         map[string]string `yaml:"env"`
}
