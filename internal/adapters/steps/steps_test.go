package steps_test

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fred/internal/adapters/fs"
	"go.trai.ch/fred/internal/adapters/steps"
	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/lazy"
	"go.trai.ch/fred/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func virtualFiles(contents ...string) *lazy.Sequence[domain.File] {
	files := make([]domain.File, len(contents))
	for i, c := range contents {
		f := domain.NewVirtualFile("f" + string(rune('a'+i)))
		f.SetContent(c)
		files[i] = f
	}
	return lazy.Of(files...)
}

func contents(t *testing.T, files []domain.File) []string {
	t.Helper()
	out := make([]string, len(files))
	for i, f := range files {
		c, err := f.Content()
		require.NoError(t, err)
		out[i] = c
	}
	return out
}

func TestTransform(t *testing.T) {
	step := steps.Transform("upper", func(s string) (string, error) {
		return strings.ToUpper(s), nil
	})

	got, err := step.Apply(context.Background(), virtualFiles("one", "two")).Collect()
	require.NoError(t, err)
	assert.Equal(t, []string{"ONE", "TWO"}, contents(t, got))
	assert.Equal(t, "upper", step.Name())
}

func TestTransform_Failure(t *testing.T) {
	boom := errors.New("boom")
	step := steps.Transform("explode", func(s string) (string, error) {
		if s == "bad" {
			return "", boom
		}
		return s, nil
	})

	got, err := step.Apply(context.Background(), virtualFiles("ok", "bad", "never")).Collect()
	require.ErrorIs(t, err, domain.ErrStepFailed)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"ok"}, contents(t, got))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "explode", zErr.Metadata()["step"])
	assert.Equal(t, "fb", zErr.Metadata()["path"])
}

func TestEach_CancelledContext(t *testing.T) {
	calls := 0
	step := steps.NewEach("count", func(context.Context, domain.File) error {
		calls++
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := step.Apply(ctx, virtualFiles("a")).Collect()
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, err, domain.ErrStepFailed)
	assert.Zero(t, calls)
}

func TestDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockContentHasher(ctrl)
	hasher.EXPECT().Digest("hello").Return("0000000000000001")

	got, err := steps.Digest(hasher).Apply(context.Background(), virtualFiles("hello")).Collect()
	require.NoError(t, err)
	assert.Equal(t, []string{"0000000000000001  fa\n"}, contents(t, got))
}

func TestDigest_RealFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0o600))

	hasher := fs.NewHasher()
	files := lazy.Of[domain.File](domain.NewRealFile(path))

	got, err := steps.Digest(hasher).Apply(context.Background(), files).Collect()
	require.NoError(t, err)
	assert.Equal(t, []string{hasher.Digest("payload") + "  " + path + "\n"}, contents(t, got))
}

func TestDigest_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockContentHasher(ctrl)

	files := lazy.Of[domain.File](domain.NewRealFile(filepath.Join(t.TempDir(), "missing")))

	_, err := steps.Digest(hasher).Apply(context.Background(), files).Collect()
	require.ErrorIs(t, err, domain.ErrStepFailed)
	require.ErrorIs(t, err, iofs.ErrNotExist)
}
