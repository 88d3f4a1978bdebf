package credential

import (
	"log/slog"
	"slices"

	"github.com/act3-ai/go-common/pkg/redact"
)

// MaxLineLength is the maximum length in bytes of a single attribute
// line, excluding the line terminator.
const MaxLineLength = 65534

// Key is a credential attribute key exchanged with Git.
//
// https://git-scm.com/docs/git-credential#IOFMT.
type Key string

// Supported credential attributes.
const (
	KeyProtocol Key = "protocol"
	KeyHost     Key = "host"
	KeyPath     Key = "path"
	KeyUsername Key = "username"
	KeyPassword Key = "password"

	// KeyURL is a compound attribute decomposed into the attributes
	// above, never stored itself.
	//
	// https://git-scm.com/docs/git-credential#Documentation/git-credential.txt-codeurlcode.
	KeyURL Key = "url"
)

// FieldKeys returns the attribute keys backed by a [Credential] field,
// in serialization order.
func FieldKeys() []Key {
	return []Key{
		KeyProtocol,
		KeyHost,
		KeyPath,
		KeyUsername,
		KeyPassword,
	}
}

// SupportedKey returns true if a [Key] names a [Credential] field.
func SupportedKey(key Key) bool {
	return slices.Contains(FieldKeys(), key)
}

// Credential is a single credential description exchanged with Git.
//
// Every attribute is optional. A nil field means the attribute was
// never provided, which is not the same as an attribute set to the
// empty string; Git distinguishes the two and so does this package.
type Credential struct {
	// Protocol over which the credential is used, e.g. "https".
	Protocol *string
	// Host is the remote host, including the port when one was
	// specified, e.g. "example.com:8443".
	Host *string
	// Path to the resource on the host, typically the repository path.
	Path *string
	// Username for the credential.
	Username *string
	// Password or token for the credential.
	Password *string
}

// New initializes an empty [Credential], all attributes absent.
func New() *Credential {
	return &Credential{}
}

// field maps a [Key] to its backing field, nil for keys that do not
// name one.
func (c *Credential) field(key Key) **string {
	switch key {
	case KeyProtocol:
		return &c.Protocol
	case KeyHost:
		return &c.Host
	case KeyPath:
		return &c.Path
	case KeyUsername:
		return &c.Username
	case KeyPassword:
		return &c.Password
	default:
		return nil
	}
}

// Set overwrites the attribute named by key, replacing any prior value.
// Returns false for keys that do not name a [Credential] field, leaving
// the credential unchanged.
func (c *Credential) Set(key Key, value string) bool {
	f := c.field(key)
	if f == nil {
		return false
	}
	*f = &value
	return true
}

// Clear resets the attribute named by key to absent. Returns false for
// keys that do not name a [Credential] field.
func (c *Credential) Clear(key Key) bool {
	f := c.field(key)
	if f == nil {
		return false
	}
	*f = nil
	return true
}

// Get reads the attribute named by key, returning false when it is
// absent or the key does not name a [Credential] field.
func (c *Credential) Get(key Key) (string, bool) {
	f := c.field(key)
	if f == nil || *f == nil {
		return "", false
	}
	return **f, true
}

// Equal reports whether two credentials describe the same attributes.
// An absent attribute is not equal to one set to the empty string.
func (c *Credential) Equal(other *Credential) bool {
	if c == nil || other == nil {
		return c == other
	}
	for _, key := range FieldKeys() {
		value, ok := c.Get(key)
		otherValue, otherOK := other.Get(key)
		if ok != otherOK || value != otherValue {
			return false
		}
	}
	return true
}

// LogValue renders the credential as a group of its present attributes
// with the password redacted.
//
// Implements [slog.LogValuer].
func (c *Credential) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(FieldKeys()))
	for _, key := range FieldKeys() {
		value, ok := c.Get(key)
		if !ok {
			continue
		}
		if key == KeyPassword {
			value = redact.String(value)
		}
		attrs = append(attrs, slog.String(string(key), value))
	}
	return slog.GroupValue(attrs...)
}
