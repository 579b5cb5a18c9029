package ports

import (
	"context"

	"go.trai.ch/fred/internal/core/domain"
)

// ProcessRunner runs external commands to completion.
//
//go:generate go run go.uber.org/mock/mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessRunner interface {
	// Run executes cmd and waits for it to exit.
	// A non-zero exit status is reported in the result, not as an error.
	// An error means the command could not be started or timed out.
	Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error)

	// MustRun is Run that also fails with domain.ErrCommandFailed on non-zero exit.
	MustRun(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error)
}
