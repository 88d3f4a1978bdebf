package main

import (
	"context"
	"dagger/gitcred/internal/dagger"
)

// Build compiles every package, without producing artifacts.
func (g *Gitcred) Build(ctx context.Context,
	// Source code directory
	// +defaultPath="/"
	src *dagger.Directory,
) (string, error) {
	// trim source for better caching
	src = src.Filter(dagger.DirectoryFilterOpts{
		Exclude: []string{"**/*_test.go"},
		Include: []string{"**/*.go", "go.mod", "go.sum"},
	})

	return g.goWithSource(src). //nolint:wrapcheck
					Container().
					WithExec([]string{"go", "build", "./..."}).
					Stdout(ctx)
}

// Initializes a container with Go and the source.
func (g *Gitcred) goWithSource(src *dagger.Directory) *dagger.GoWithSource {
	return dag.Go().
		WithSource(src).
		WithCgoDisabled().
		WithEnvVariable("GOFIPS140", "latest")
}
