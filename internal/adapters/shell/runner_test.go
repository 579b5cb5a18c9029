package shell_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fred/internal/adapters/shell"
	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func sh(script string, dir string) domain.Command {
	return domain.Command{Name: "sh", Args: []string{"-c", script}, Dir: dir}
}

func TestRunner_Run_CapturesStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(mockLogger, nil)

	result, err := runner.Run(context.Background(), sh("echo line1; echo line2", t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "line1\nline2\n", result.Stdout)
	assert.Empty(t, result.Stderr)
}

func TestRunner_Run_ForwardsStderrLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Warn("part1part2"),
		mockLogger.EXPECT().Warn("tail"),
	)

	runner := shell.NewRunner(mockLogger, nil)

	result, err := runner.Run(context.Background(),
		sh("printf part1 >&2; sleep 0.1; echo part2 >&2; printf tail >&2", t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, "part1part2\ntail", result.Stderr)
}

func TestRunner_Run_NonZeroExitIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(mockLogger, nil)

	result, err := runner.Run(context.Background(), sh("exit 42", t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, 42, result.ExitCode)
}

func TestRunner_MustRun_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("boom")

	runner := shell.NewRunner(mockLogger, nil)

	result, err := runner.MustRun(context.Background(), sh("echo boom >&2; exit 3", t.TempDir()))
	require.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.Equal(t, 3, result.ExitCode)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, 3, meta["exit_code"])
	assert.Equal(t, "boom", meta["stderr"])
	assert.Equal(t, "sh", meta["command"])
}

func TestRunner_MustRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(mockLogger, nil)

	result, err := runner.MustRun(context.Background(), sh("printf ok", t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Stdout)
}

func TestRunner_Run_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(mockLogger, nil)

	_, err := runner.Run(context.Background(), domain.Command{Name: "nonexistent-command-xyz123", Dir: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start command")
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(mockLogger, nil)

	_, err := runner.Run(context.Background(), domain.Command{})
	require.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestRunner_Run_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	settings := domain.DefaultSettings()
	settings.StepTimeout = 50 * time.Millisecond
	runner := shell.NewRunner(mockLogger, settings)

	_, err := runner.Run(context.Background(), sh("sleep 5", t.TempDir()))
	require.ErrorIs(t, err, domain.ErrCommandTimeout)
}

func TestRunner_Run_EnvironmentPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	t.Setenv("FRED_TEST_SYSTEM", "system")
	t.Setenv("FRED_TEST_HOST", "system")

	settings := domain.DefaultSettings()
	settings.Env = map[string]string{"FRED_TEST_HOST": "host", "FRED_TEST_CMD": "host"}
	runner := shell.NewRunner(mockLogger, settings)

	cmd := sh(`printf '%s %s %s' "$FRED_TEST_SYSTEM" "$FRED_TEST_HOST" "$FRED_TEST_CMD"`, t.TempDir())
	cmd.Env = []string{"FRED_TEST_CMD=cmd"}

	result, err := runner.Run(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "system host cmd", result.Stdout)
}

func TestRunner_Run_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(mockLogger, nil)
	dir := t.TempDir()

	result, err := runner.Run(context.Background(), domain.Command{Name: "/bin/sh", Args: []string{"-c", "ls"}, Dir: dir})
	require.NoError(t, err)
	assert.Empty(t, result.Stdout)
}

func TestRunner_Run_Stdin(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(mockLogger, nil)

	cmd := domain.Command{Name: "cat", Stdin: "piped content\n", Dir: t.TempDir()}
	result, err := runner.Run(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "piped content\n", result.Stdout)
}
