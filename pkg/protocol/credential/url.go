package credential

import (
	"net/url"
	"strings"
)

// SetURL decomposes a parsed URL into credential attributes, as Git
// does when a credential description is condensed into a single url
// attribute. Every affected attribute is overwritten, so a url line
// replaces values set by earlier attribute lines.
//
// The protocol is the URL scheme, verbatim. The host includes the port
// when one was specified; a URL without an authority component, such as
// file:///path, clears the host. The path has exactly one leading "/"
// removed and is always set, possibly to the empty string; an opaque
// URL such as mailto:alice@example.com carries its opaque part as the
// path. The username and password are set only when non-empty and
// cleared otherwise, so empty userinfo never produces empty
// credentials. Decoded values are used throughout, the attribute
// stream carries no escaping.
//
// https://git-scm.com/docs/git-credential#Documentation/git-credential.txt-codeurlcode.
func (c *Credential) SetURL(u *url.URL) {
	c.Set(KeyProtocol, u.Scheme)

	if u.Host != "" {
		c.Set(KeyHost, u.Host)
	} else {
		c.Clear(KeyHost)
	}

	path := u.Path
	if u.Opaque != "" {
		path = u.Opaque
	}
	c.Set(KeyPath, strings.TrimPrefix(path, "/"))

	if username := u.User.Username(); username != "" {
		c.Set(KeyUsername, username)
	} else {
		c.Clear(KeyUsername)
	}

	if password, _ := u.User.Password(); password != "" {
		c.Set(KeyPassword, password)
	} else {
		c.Clear(KeyPassword)
	}
}

// FromURL initializes a [Credential] from a parsed URL.
func FromURL(u *url.URL) *Credential {
	c := New()
	c.SetURL(u)
	return c
}
