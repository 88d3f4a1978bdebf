package ociauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"oras.land/oras-go/v2/registry/remote/auth"

	"github.com/act3-ai/gitcred/pkg/protocol/credential"
)

const testRegistry = "registry.example.com"

func TestCredential(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cred := credential.New()
		cred.Set(credential.KeyUsername, "alice")
		cred.Set(credential.KeyPassword, "hunter2")

		got := Credential(cred)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "hunter2", got.Password)
	})

	t.Run("Success - Empty", func(t *testing.T) {
		got := Credential(credential.New())
		assert.Equal(t, auth.EmptyCredential, got)
	})
}

func TestRecord(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cred := Record(testRegistry, auth.Credential{
			Username: "alice",
			Password: "hunter2",
		})

		want := credential.New()
		want.Set(credential.KeyHost, testRegistry)
		want.Set(credential.KeyUsername, "alice")
		want.Set(credential.KeyPassword, "hunter2")
		assert.True(t, cred.Equal(want))
	})

	t.Run("Success - Empty Credential", func(t *testing.T) {
		cred := Record(testRegistry, auth.EmptyCredential)

		want := credential.New()
		want.Set(credential.KeyHost, testRegistry)
		assert.True(t, cred.Equal(want))
	})
}

func TestNewStore(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cred := credential.New()
		cred.Set(credential.KeyHost, testRegistry)

		storeI := NewStore(cred)
		assert.NotNil(t, storeI)

		s, ok := storeI.(*store)
		assert.True(t, ok)
		assert.Equal(t, cred, s.cred)
	})
}

func Test_store_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cred := credential.New()
		cred.Set(credential.KeyHost, testRegistry)
		cred.Set(credential.KeyUsername, "alice")
		cred.Set(credential.KeyPassword, "hunter2")

		s := NewStore(cred)

		got, err := s.Get(t.Context(), testRegistry)
		assert.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "hunter2", got.Password)
	})

	t.Run("Success - Unmatched Server", func(t *testing.T) {
		cred := credential.New()
		cred.Set(credential.KeyHost, testRegistry)
		cred.Set(credential.KeyPassword, "hunter2")

		s := NewStore(cred)

		got, err := s.Get(t.Context(), "other.example.com")
		assert.NoError(t, err)
		assert.Equal(t, auth.EmptyCredential, got)
	})

	t.Run("Success - Absent Host Matches Nothing", func(t *testing.T) {
		s := NewStore(credential.New())

		got, err := s.Get(t.Context(), testRegistry)
		assert.NoError(t, err)
		assert.Equal(t, auth.EmptyCredential, got)
	})
}

func Test_store_Put(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cred := credential.New()
		cred.Set(credential.KeyHost, testRegistry)

		s := NewStore(cred)

		err := s.Put(t.Context(), testRegistry, auth.Credential{
			Username: "alice",
			Password: "hunter2",
		})
		assert.NoError(t, err)

		username, ok := cred.Get(credential.KeyUsername)
		assert.True(t, ok)
		assert.Equal(t, "alice", username)

		password, ok := cred.Get(credential.KeyPassword)
		assert.True(t, ok)
		assert.Equal(t, "hunter2", password)
	})

	t.Run("Error - Unmatched Server", func(t *testing.T) {
		cred := credential.New()
		cred.Set(credential.KeyHost, testRegistry)

		s := NewStore(cred)

		err := s.Put(t.Context(), "other.example.com", auth.Credential{Username: "alice"})
		assert.ErrorIs(t, err, ErrHostMismatch)

		_, ok := cred.Get(credential.KeyUsername)
		assert.False(t, ok)
	})
}

func Test_store_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cred := credential.New()
		cred.Set(credential.KeyHost, testRegistry)
		cred.Set(credential.KeyUsername, "alice")
		cred.Set(credential.KeyPassword, "hunter2")

		s := NewStore(cred)

		err := s.Delete(t.Context(), testRegistry)
		assert.NoError(t, err)

		_, ok := cred.Get(credential.KeyUsername)
		assert.False(t, ok)
		_, ok = cred.Get(credential.KeyPassword)
		assert.False(t, ok)

		// the host remains, the store still answers for it
		host, ok := cred.Get(credential.KeyHost)
		assert.True(t, ok)
		assert.Equal(t, testRegistry, host)
	})

	t.Run("Success - Unmatched Server", func(t *testing.T) {
		cred := credential.New()
		cred.Set(credential.KeyHost, testRegistry)
		cred.Set(credential.KeyPassword, "hunter2")

		s := NewStore(cred)

		err := s.Delete(t.Context(), "other.example.com")
		assert.NoError(t, err)

		password, ok := cred.Get(credential.KeyPassword)
		assert.True(t, ok)
		assert.Equal(t, "hunter2", password)
	})
}
