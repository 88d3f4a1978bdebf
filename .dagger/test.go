package main

import (
	"context"
	"dagger/gitcred/internal/dagger"
)

// Run tests.
func (g *Gitcred) Test(
	// source code directory
	// +defaultPath="/"
	src *dagger.Directory,
) *Test {
	return &Test{
		Gitcred: g,
		Src:     src,
	}
}

// Test organizes testing operations.
type Test struct {
	*Gitcred

	// +private
	Src *dagger.Directory
}

// Run all tests.
func (t *Test) All(ctx context.Context) (string, error) {
	unitResults, unitErr := t.Unit(ctx)

	out := "Unit Test Results:\n" + unitResults

	return out, unitErr
}

// Run unit tests.
func (t *Test) Unit(ctx context.Context) (string, error) {
	return dag.Go(). //nolint:wrapcheck
				WithSource(t.Src).
				Container().
				WithExec([]string{"go", "test", "./..."}).
				Stdout(ctx)
}
