// Package comms facilitates receiving credential descriptions from and
// writing completed credentials to Git.
package comms

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/act3-ai/gitcred/pkg/protocol/credential"
)

// Communicator provides handling of Git credential protocol requests
// and responses. It reads a single stream and is not safe for
// concurrent use.
type Communicator interface {
	RequestHandler
	ResponseHandler
}

// RequestHandler receives credential descriptions from Git.
type RequestHandler interface {
	// ReceiveCredential reads attribute lines into a
	// [credential.Credential] until a blank line or EOF ends the
	// description.
	ReceiveCredential(ctx context.Context) (*credential.Credential, error)
}

// ResponseHandler sends completed credentials to Git.
type ResponseHandler interface {
	// WriteCredential writes one attribute line per present field of
	// a [credential.Credential].
	WriteCredential(ctx context.Context, cred *credential.Credential) error
}

// NewCommunicator initializes a [Communicator].
func NewCommunicator(in io.Reader, out io.Writer, opts ...Option) Communicator {
	c := &defaultCommunicator{
		in:  bufio.NewScanner(in),
		out: out,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultCommunicator is the default implementation of [Communicator].
type defaultCommunicator struct {
	in  *bufio.Scanner
	out io.Writer

	urlEnabled bool
}

// ReceiveCredential reads attribute lines into a
// [credential.Credential] until a blank line or EOF ends the
// description. Later attributes overwrite earlier ones, and
// unrecognized attributes are skipped so newer Git versions remain
// compatible. The url attribute is recognized only when the
// [Communicator] was initialized with [WithURL].
func (c *defaultCommunicator) ReceiveCredential(ctx context.Context) (*credential.Credential, error) {
	slog.DebugContext(ctx, "receiving credential description from Git")

	cred := credential.New()
	for c.in.Scan() {
		line := c.in.Text()
		if line == "" {
			// blank line completes the description
			return cred, nil
		}
		if len(line) > credential.MaxLineLength {
			return nil, fmt.Errorf("%w: %d bytes exceeds %d", credential.ErrLineTooLong, len(line), credential.MaxLineLength)
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%w: %q", credential.ErrInvalidLine, line)
		}

		if err := c.handleAttribute(ctx, cred, credential.Key(key), value); err != nil {
			return nil, err
		}
	}
	if err := c.in.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: exceeds %d bytes", credential.ErrLineTooLong, credential.MaxLineLength)
		}
		return nil, fmt.Errorf("reading credential description from Git: %w", err)
	}

	// EOF completes the description like a blank line
	return cred, nil
}

// handleAttribute applies a single key=value attribute to cred. Field
// attribute values never reach error messages or the logs; a url value
// that fails validation is echoed for diagnosis.
func (c *defaultCommunicator) handleAttribute(ctx context.Context, cred *credential.Credential, key credential.Key, value string) error {
	switch {
	case credential.SupportedKey(key):
		slog.DebugContext(ctx, "read credential attribute from Git", slog.String("key", string(key)))
		cred.Set(key, value)
	case key == credential.KeyURL && c.urlEnabled:
		slog.DebugContext(ctx, "read url attribute from Git")
		u, err := url.Parse(value)
		if err != nil {
			var urlErr *url.Error
			if errors.As(err, &urlErr) {
				// url.Error echoes the URL on its own, keep the cause
				err = urlErr.Err
			}
			return fmt.Errorf("%w: %q: %w", credential.ErrInvalidURL, value, err)
		}
		if !u.IsAbs() {
			return fmt.Errorf("%w: %q: not an absolute URL", credential.ErrInvalidURL, value)
		}
		cred.SetURL(u)
	default:
		// skipped for forwards compatibility with newer Git versions
		slog.DebugContext(ctx, "ignoring unrecognized credential attribute", slog.String("key", string(key)))
	}

	return nil
}

// WriteCredential writes one attribute line per present field of a
// [credential.Credential], in the order Git expects. Absent attributes
// are skipped entirely while empty ones produce a key= line. No blank
// line is written; completing the stream belongs to the caller.
func (c *defaultCommunicator) WriteCredential(ctx context.Context, cred *credential.Credential) error {
	slog.DebugContext(ctx, "writing credential to Git", slog.Any("credential", cred))

	for _, key := range credential.FieldKeys() {
		value, ok := cred.Get(key)
		if !ok {
			continue
		}

		line := fmt.Sprintf("%s=%s", key, value)
		if _, err := c.out.Write(withNewline([]byte(line))); err != nil {
			return fmt.Errorf("writing %s attribute to Git: %w", key, err)
		}
	}

	return nil
}

func withNewline(line []byte) []byte {
	return append(line, '\n')
}
