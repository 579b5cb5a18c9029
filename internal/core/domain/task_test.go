package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fred/internal/core/domain"
)

func TestTask_Synopsis(t *testing.T) {
	task := domain.NewTask("deploy", nil, domain.NewBody(nil,
		domain.Required("target"),
		domain.Optional("mode", "debug"),
	))

	assert.Equal(t, "deploy <target> [mode=debug]", task.Synopsis())
}

func TestTask_Synopsis_NoParams(t *testing.T) {
	task := domain.NewTask("clean", nil, domain.NoOp())
	assert.Equal(t, "clean", task.Synopsis())
}

func TestBody_Bind(t *testing.T) {
	body := domain.NewBody(nil,
		domain.Required("target"),
		domain.Optional("mode", "debug"),
		domain.Optional("retries", 3),
	)

	t.Run("Supplied values win over defaults", func(t *testing.T) {
		args, missing := body.Bind(map[string]any{"target": "prod", "mode": "release"})
		assert.Empty(t, missing)
		assert.Equal(t, "prod", args.String("target"))
		assert.Equal(t, "release", args.String("mode"))
		retries, ok := args.Int("retries")
		assert.True(t, ok)
		assert.Equal(t, 3, retries)
	})

	t.Run("Missing required parameter is reported", func(t *testing.T) {
		_, missing := body.Bind(map[string]any{"mode": "release"})
		assert.Equal(t, []string{"target"}, missing)
	})

	t.Run("Nil value counts as absent", func(t *testing.T) {
		_, missing := body.Bind(map[string]any{"target": nil})
		assert.Equal(t, []string{"target"}, missing)
	})

	t.Run("Undeclared arguments are dropped", func(t *testing.T) {
		args, _ := body.Bind(map[string]any{"target": "prod", "extra": true})
		_, ok := args["extra"]
		assert.False(t, ok)
	})
}

func TestArgs_Accessors(t *testing.T) {
	args := domain.Args{"name": "fred", "count": int64(2), "verbose": true, "ratio": 0.5}

	assert.Equal(t, "fred", args.String("name"))
	assert.Equal(t, "0.5", args.String("ratio"))
	assert.Empty(t, args.String("absent"))

	count, ok := args.Int("count")
	assert.True(t, ok)
	assert.Equal(t, 2, count)

	_, ok = args.Int("name")
	assert.False(t, ok)

	verbose, ok := args.Bool("verbose")
	assert.True(t, ok)
	assert.True(t, verbose)
}

func TestArgs_Accessors_ParseStrings(t *testing.T) {
	args := domain.Args{"count": "3", "verbose": "false", "bad": "x"}

	count, ok := args.Int("count")
	assert.True(t, ok)
	assert.Equal(t, 3, count)

	verbose, ok := args.Bool("verbose")
	assert.True(t, ok)
	assert.False(t, verbose)

	_, ok = args.Int("bad")
	assert.False(t, ok)
	_, ok = args.Bool("bad")
	assert.False(t, ok)
}

func TestNoOp(t *testing.T) {
	res, err := domain.NoOp().Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, res)
}
