package steps

import (
	"context"
	"path/filepath"

	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/ports"
)

// CommandBuilder describes the command to run for a file.
type CommandBuilder func(f domain.File) (domain.Command, error)

// Command is a Step that runs an external command per file, requires it to
// succeed and replaces the file content with the command's stdout.
func Command(name string, runner ports.ProcessRunner, build CommandBuilder) *Each {
	return NewEach(name, func(ctx context.Context, f domain.File) error {
		cmd, err := build(f)
		if err != nil {
			return err
		}
		result, err := runner.MustRun(ctx, cmd)
		if err != nil {
			return err
		}
		f.SetContent(result.Stdout)
		return nil
	})
}

// Exec is a CommandBuilder running name with args followed by the file target.
func Exec(name string, args ...string) CommandBuilder {
	return func(f domain.File) (domain.Command, error) {
		return domain.Command{
			Name: name,
			Args: append(append([]string(nil), args...), domain.Target(f)),
		}, nil
	}
}

// Gofmt formats Go source. A file on disk is passed by path; a virtual file
// is piped through stdin.
func Gofmt(runner ports.ProcessRunner) *Each {
	return Command("gofmt", runner, func(f domain.File) (domain.Command, error) {
		if p := f.Path(); p != "" {
			return domain.Command{Name: "gofmt", Args: []string{p}}, nil
		}
		content, err := f.Content()
		if err != nil {
			return domain.Command{}, err
		}
		return domain.Command{Name: "gofmt", Stdin: content}, nil
	})
}

// GoTest runs go test for the package holding each file. A virtual file's
// name is passed as the package pattern, e.g. "./...".
func GoTest(runner ports.ProcessRunner, args ...string) *Each {
	return Command("go test", runner, func(f domain.File) (domain.Command, error) {
		cmdArgs := append([]string{"test"}, args...)
		if p := f.Path(); p != "" {
			return domain.Command{Name: "go", Args: append(cmdArgs, "."), Dir: filepath.Dir(p)}, nil
		}
		return domain.Command{Name: "go", Args: append(cmdArgs, f.Name())}, nil
	})
}
