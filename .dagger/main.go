// CI/CD operations for gitcred.
package main

import (
	"dagger/gitcred/internal/dagger"
)

// Gitcred organizes CI/CD operations.
type Gitcred struct {
	// +private
	Source *dagger.Directory

	// +private
	Token *dagger.Secret
}

func New(
	// Source code directory
	// +defaultPath="/"
	source *dagger.Directory,
	// GitHub API token, used for releases
	// +optional
	token *dagger.Secret,
) *Gitcred {
	return &Gitcred{
		Source: source,
		Token:  token,
	}
}
