// Package ociauth bridges Git credentials to ORAS registry
// authentication, for registries whose credentials arrive over the Git
// credential protocol.
package ociauth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/act3-ai/go-common/pkg/logger"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/act3-ai/gitcred/pkg/protocol/credential"
)

// ErrHostMismatch indicates a server address not described by the
// store's credential.
var ErrHostMismatch = errors.New("server address does not match credential host")

// Credential converts a Git credential into an ORAS credential. Absent
// attributes convert to empty strings, so a credential with neither
// username nor password converts to [auth.EmptyCredential].
func Credential(cred *credential.Credential) auth.Credential {
	username, _ := cred.Get(credential.KeyUsername)
	password, _ := cred.Get(credential.KeyPassword)

	return auth.Credential{
		Username: username,
		Password: password,
	}
}

// Record describes registry credentials for a host as a Git
// credential, the form a helper writes back to Git. The username and
// password are set only when non-empty.
func Record(host string, cred auth.Credential) *credential.Credential {
	c := credential.New()
	c.Set(credential.KeyHost, host)

	if cred.Username != "" {
		c.Set(credential.KeyUsername, cred.Username)
	}
	if cred.Password != "" {
		c.Set(credential.KeyPassword, cred.Password)
	}

	return c
}

// NewStore initializes a single-credential [credentials.Store] backed
// by a Git credential. The credential's host attribute keys the store;
// operations on any other server address do not touch it. The store
// shares the credential with the caller and is not safe for concurrent
// use.
func NewStore(cred *credential.Credential) credentials.Store {
	return &store{cred: cred}
}

// store is the default implementation of [credentials.Store] over a
// single credential.
type store struct {
	cred *credential.Credential
}

// Get resolves the store's credential when serverAddress matches its
// host, and [auth.EmptyCredential] otherwise.
func (s *store) Get(ctx context.Context, serverAddress string) (auth.Credential, error) {
	log := logger.FromContext(ctx)

	if !s.matches(serverAddress) {
		log.DebugContext(ctx, "no credential for server", slog.String("serverAddress", serverAddress))
		return auth.EmptyCredential, nil
	}

	log.DebugContext(ctx, "resolved credential for server", slog.String("serverAddress", serverAddress))
	return Credential(s.cred), nil
}

// Put updates the credential's username and password. Storing for a
// server address other than the credential's host is rejected.
func (s *store) Put(ctx context.Context, serverAddress string, cred auth.Credential) error {
	if !s.matches(serverAddress) {
		return fmt.Errorf("%w: got %s", ErrHostMismatch, serverAddress)
	}

	s.cred.Set(credential.KeyUsername, cred.Username)
	s.cred.Set(credential.KeyPassword, cred.Password)
	return nil
}

// Delete clears the credential's username and password. Deleting an
// unmatched server address is a no-op.
func (s *store) Delete(ctx context.Context, serverAddress string) error {
	if !s.matches(serverAddress) {
		return nil
	}

	s.cred.Clear(credential.KeyUsername)
	s.cred.Clear(credential.KeyPassword)
	return nil
}

func (s *store) matches(serverAddress string) bool {
	host, ok := s.cred.Get(credential.KeyHost)
	return ok && host == serverAddress
}
