// Package gitauth bridges Git credentials to go-git transport
// authentication.
package gitauth

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/act3-ai/gitcred/pkg/protocol/credential"
)

// ErrIncomplete indicates a credential lacks attributes required by an
// authentication method.
var ErrIncomplete = errors.New("incomplete credential")

// BasicAuth converts a credential into an HTTP basic auth method for
// go-git remote operations. The username and password must both be
// present; an empty username is accepted as some token schemes carry
// the whole secret in the password.
func BasicAuth(cred *credential.Credential) (*githttp.BasicAuth, error) {
	username, ok := cred.Get(credential.KeyUsername)
	if !ok {
		return nil, fmt.Errorf("%w: missing username", ErrIncomplete)
	}

	password, ok := cred.Get(credential.KeyPassword)
	if !ok {
		return nil, fmt.Errorf("%w: missing password", ErrIncomplete)
	}

	return &githttp.BasicAuth{
		Username: username,
		Password: password,
	}, nil
}

// TokenAuth converts a credential into a bearer token auth method for
// servers that reject basic auth. Most Git hosts expect tokens through
// [BasicAuth] instead.
func TokenAuth(cred *credential.Credential) (*githttp.TokenAuth, error) {
	password, ok := cred.Get(credential.KeyPassword)
	if !ok {
		return nil, fmt.Errorf("%w: missing password", ErrIncomplete)
	}

	return &githttp.TokenAuth{Token: password}, nil
}

// defaultPorts per protocol, matching go-git's transport defaults.
var defaultPorts = map[string]int{
	"http":  80,
	"https": 443,
	"git":   9418,
	"ssh":   22,
}

// FromEndpoint describes a go-git endpoint as a credential, the form a
// helper receives when Git needs a credential for that remote. The
// host includes the port when it differs from the protocol default,
// the path has one leading "/" trimmed, and the username and password
// are set only when non-empty.
func FromEndpoint(ep *transport.Endpoint) *credential.Credential {
	cred := credential.New()
	cred.Set(credential.KeyProtocol, ep.Protocol)

	host := ep.Host
	if ep.Port > 0 && ep.Port != defaultPorts[ep.Protocol] {
		// Host carries IPv6 brackets already and JoinHostPort adds its own
		host = net.JoinHostPort(strings.Trim(ep.Host, "[]"), strconv.Itoa(ep.Port))
	}
	if host != "" {
		cred.Set(credential.KeyHost, host)
	}

	cred.Set(credential.KeyPath, strings.TrimPrefix(ep.Path, "/"))

	if ep.User != "" {
		cred.Set(credential.KeyUsername, ep.User)
	}
	if ep.Password != "" {
		cred.Set(credential.KeyPassword, ep.Password)
	}

	return cred
}

// ParseURL parses a remote address into a credential description,
// accepting every address form Git itself accepts, including scp-like
// SSH addresses the url attribute cannot express.
func ParseURL(address string) (*credential.Credential, error) {
	ep, err := transport.NewEndpoint(address)
	if err != nil {
		return nil, fmt.Errorf("parsing remote address: %w", err)
	}

	return FromEndpoint(ep), nil
}
