package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fred/internal/adapters/config"
	"go.trai.ch/fred/internal/adapters/logger"
	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/ports"
)

// NodeID is the unique identifier for the process runner Graft node.
const NodeID graft.ID = "adapter.process_runner"

func init() {
	graft.Register(graft.Node[ports.ProcessRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ProcessRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log, settings), nil
		},
	})
}
