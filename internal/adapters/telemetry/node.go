package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fred/internal/adapters/config"
	"go.trai.ch/fred/internal/adapters/telemetry/progrock"
	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the OpenTelemetry tracer.
const InstrumentationName = "fred"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracer(settings.Telemetry), nil
		},
	})
}

// NewTracer selects the tracer for backend. Unknown backends get the no-op tracer.
func NewTracer(backend domain.TelemetryBackend) ports.Tracer {
	switch backend {
	case domain.TelemetryOTel:
		return NewOTelTracer(InstrumentationName)
	case domain.TelemetryProgrock:
		return progrock.New()
	default:
		return NewNoOpTracer()
	}
}
