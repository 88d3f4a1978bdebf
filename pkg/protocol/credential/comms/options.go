package comms

// Option configures a [Communicator].
type Option func(*defaultCommunicator)

// WithURL enables handling of the url attribute, which condenses a
// credential description into a single line. Without it url lines are
// treated as unrecognized attributes and skipped.
//
// https://git-scm.com/docs/git-credential#Documentation/git-credential.txt-codeurlcode.
func WithURL() Option {
	return func(c *defaultCommunicator) {
		c.urlEnabled = true
	}
}
