package steps_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fred/internal/adapters/shell"
	"go.trai.ch/fred/internal/adapters/steps"
	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/lazy"
	"go.trai.ch/fred/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestCommand_ReplacesContentWithStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)

	gomock.InOrder(
		runner.EXPECT().MustRun(gomock.Any(), domain.Command{Name: "lint", Args: []string{"-v", "fa"}}).
			Return(domain.ProcessResult{Stdout: "fa ok"}, nil),
		runner.EXPECT().MustRun(gomock.Any(), domain.Command{Name: "lint", Args: []string{"-v", "fb"}}).
			Return(domain.ProcessResult{Stdout: "fb ok"}, nil),
	)

	step := steps.Command("lint", runner, steps.Exec("lint", "-v"))

	got, err := step.Apply(context.Background(), virtualFiles("a", "b")).Collect()
	require.NoError(t, err)
	assert.Equal(t, []string{"fa ok", "fb ok"}, contents(t, got))
}

func TestCommand_FailsWhenSecondElementIsPulled(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)

	failed := zerr.With(zerr.Wrap(domain.ErrCommandFailed, "command exited with non-zero status"), "exit_code", 1)
	gomock.InOrder(
		runner.EXPECT().MustRun(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{Stdout: "first"}, nil),
		runner.EXPECT().MustRun(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{ExitCode: 1}, failed),
	)

	step := steps.Command("check", runner, steps.Exec("check"))

	var seen []string
	var iterErr error
	for f, err := range step.Apply(context.Background(), virtualFiles("a", "b", "c")).All() {
		if err != nil {
			iterErr = err
			break
		}
		c, _ := f.Content()
		seen = append(seen, c)
	}

	assert.Equal(t, []string{"first"}, seen)
	require.ErrorIs(t, iterErr, domain.ErrStepFailed)
	require.ErrorIs(t, iterErr, domain.ErrCommandFailed)
}

func TestCommand_PartialIterationRunsNothingFurther(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	runner.EXPECT().MustRun(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{Stdout: "x"}, nil).Times(1)

	seq := steps.Command("once", runner, steps.Exec("once")).Apply(context.Background(), virtualFiles("a", "b"))
	for range seq.All() {
		break
	}
}

func TestGofmt_Commands(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)

	onDisk := domain.NewRealFile("/src/main.go")
	virtual := domain.NewVirtualFile("snippet.go")
	virtual.SetContent("package x")

	gomock.InOrder(
		runner.EXPECT().MustRun(gomock.Any(), domain.Command{Name: "gofmt", Args: []string{"/src/main.go"}}).
			Return(domain.ProcessResult{Stdout: "formatted main"}, nil),
		runner.EXPECT().MustRun(gomock.Any(), domain.Command{Name: "gofmt", Stdin: "package x"}).
			Return(domain.ProcessResult{Stdout: "package x\n"}, nil),
	)

	got, err := steps.Gofmt(runner).Apply(context.Background(), lazy.Of[domain.File](onDisk, virtual)).Collect()
	require.NoError(t, err)
	assert.Equal(t, []string{"formatted main", "package x\n"}, contents(t, got))
}

func TestGoTest_Commands(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)

	gomock.InOrder(
		runner.EXPECT().MustRun(gomock.Any(), domain.Command{Name: "go", Args: []string{"test", "-count=1", "."}, Dir: "/repo/pkg"}).
			Return(domain.ProcessResult{Stdout: "ok pkg"}, nil),
		runner.EXPECT().MustRun(gomock.Any(), domain.Command{Name: "go", Args: []string{"test", "-count=1", "./..."}}).
			Return(domain.ProcessResult{Stdout: "ok all"}, nil),
	)

	files := lazy.Of[domain.File](domain.NewRealFile("/repo/pkg/pkg_test.go"), domain.NewVirtualFile("./..."))

	got, err := steps.GoTest(runner, "-count=1").Apply(context.Background(), files).Collect()
	require.NoError(t, err)
	assert.Equal(t, []string{"ok pkg", "ok all"}, contents(t, got))
}

func TestCommand_WithShellRunner(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}
	require.NoError(t, os.WriteFile(paths[0], []byte("alpha\n"), 0o600))
	require.NoError(t, os.WriteFile(paths[1], []byte("beta\n"), 0o600))

	files := lazy.Of[domain.File](domain.NewRealFile(paths[0]), domain.NewRealFile(paths[1]))
	step := steps.Command("tr", shell.NewRunner(logger, nil), func(f domain.File) (domain.Command, error) {
		return domain.Command{Name: "sh", Args: []string{"-c", "tr a-z A-Z < \"$1\"", "sh", f.Path()}}, nil
	})

	got, err := step.Apply(context.Background(), files).Collect()
	require.NoError(t, err)
	assert.Equal(t, []string{"ALPHA\n", "BETA\n"}, contents(t, got))
}
