package domain

import (
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// TelemetryBackend selects the tracer used while executing tasks.
type TelemetryBackend string

const (
	// TelemetryNone disables tracing.
	TelemetryNone TelemetryBackend = "none"
	// TelemetryOTel records spans through OpenTelemetry.
	TelemetryOTel TelemetryBackend = "otel"
	// TelemetryProgrock records vertices on a progrock tape.
	TelemetryProgrock TelemetryBackend = "progrock"
)

// DefaultStepTimeout bounds a single external command invoked by a step.
const DefaultStepTimeout = 5 * time.Minute

// Settings holds host program settings. Tasks are never configured here.
type Settings struct {
	LogLevel    LogLevel
	Telemetry   TelemetryBackend
	StepTimeout time.Duration
	Env         map[string]string
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel:    LogLevelInfo,
		Telemetry:   TelemetryNone,
		StepTimeout: DefaultStepTimeout,
	}
}

// ParseTelemetryBackend converts a string to a TelemetryBackend.
// An empty string selects TelemetryNone.
func ParseTelemetryBackend(s string) (TelemetryBackend, error) {
	switch b := TelemetryBackend(strings.ToLower(s)); b {
	case "":
		return TelemetryNone, nil
	case TelemetryNone, TelemetryOTel, TelemetryProgrock:
		return b, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidSettings, "unknown telemetry backend"), "telemetry", s)
	}
}
