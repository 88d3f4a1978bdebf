// Package credential defines types used in the Git credential helper
// protocol.
//
// Git describes the credential it needs as a stream of key=value
// attribute lines terminated by a blank line, and expects completed
// credentials back in the same format. This package models a single
// credential and the attribute keys Git exchanges; reading and writing
// the attribute streams is handled by the comms subpackage.
//
// See https://git-scm.com/docs/git-credential#IOFMT.
package credential
