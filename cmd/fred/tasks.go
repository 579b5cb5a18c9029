package main

import (
	"context"
	"strconv"
	"strings"

	"go.trai.ch/fred/internal/adapters/steps"
	"go.trai.ch/fred/internal/app"
	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// registerTasks declares the tasks this host offers.
func registerTasks(c *app.Components) error {
	a := c.App

	checksum := domain.NewBody(func(ctx context.Context, args domain.Args) (any, error) {
		files := a.Load(ctx, c.Walker.Tree(args.String("dir"), "vendor", "node_modules")).
			Pipe(steps.Digest(c.Hasher))
		return concat(files)
	}, domain.Optional("dir", "."))

	unformatted := domain.NewBody(func(ctx context.Context, args domain.Args) (any, error) {
		source, err := c.Resolver.Glob(args.String("dir"), args.String("pattern"))
		if err != nil {
			return nil, err
		}
		files := a.Load(ctx, source).
			Pipe(steps.Command("gofmt -l", c.Runner, steps.Exec("gofmt", "-l")))
		return concat(files)
	}, domain.Optional("dir", "."), domain.Optional("pattern", "*.go"))

	test := domain.NewBody(func(ctx context.Context, args domain.Args) (any, error) {
		flags, err := testFlags(args)
		if err != nil {
			return nil, err
		}
		return concat(a.Create(ctx, args.String("pkg")).Pipe(steps.GoTest(c.Runner, flags...)))
	}, domain.Optional("pkg", "./..."), domain.Optional("verbose", false), domain.Optional("count", 0))

	if err := a.Task("checksum", checksum); err != nil {
		return err
	}
	if err := a.Task("fmt", unformatted); err != nil {
		return err
	}
	if err := a.Task("test", test); err != nil {
		return err
	}
	return a.Alias("default", "fmt", "test")
}

// testFlags maps the verbose and count arguments to go test flags.
func testFlags(args domain.Args) ([]string, error) {
	verbose, ok := args.Bool("verbose")
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "verbose must be a boolean"), "verbose", args.String("verbose"))
	}
	count, ok := args.Int("count")
	if !ok || count < 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "count must be a non-negative integer"), "count", args.String("count"))
	}

	var flags []string
	if verbose {
		flags = append(flags, "-v")
	}
	if count > 0 {
		flags = append(flags, "-count="+strconv.Itoa(count))
	}
	return flags, nil
}

// concat joins the content of every file in p.
func concat(p *pipeline.Pipeline) (string, error) {
	var b strings.Builder
	for f, err := range p.All() {
		if err != nil {
			return "", err
		}
		content, err := f.Content()
		if err != nil {
			return "", err
		}
		b.WriteString(content)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
