// Package testutils provides test scaffolding for driving Git's side
// of the credential protocol.
package testutils

import (
	"bufio"
	"fmt"
	"io"
)

// ReverseCommunicator is the reverse of comms.Communicator, acting as
// Git sending a credential description and receiving the completed
// credential.
type ReverseCommunicator interface {
	AttributeSender
	AttributeReceiver
}

// AttributeSender sends credential description lines to a helper.
type AttributeSender interface {
	// SendAttribute sends a single key=value attribute line.
	SendAttribute(key, value string) error
	// SendRaw sends a line verbatim, for malformed input.
	SendRaw(line string) error
	// SendTerminator sends the blank line completing a description.
	SendTerminator() error
}

// AttributeReceiver receives completed credential lines from a helper.
type AttributeReceiver interface {
	// ReceiveLines collects the helper's output lines in order until
	// EOF or a blank line.
	ReceiveLines() ([]string, error)
}

// NewReverseCommunicator initializes a [ReverseCommunicator].
func NewReverseCommunicator(in io.Reader, out io.Writer) ReverseCommunicator {
	return &reverseCommunicator{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

type reverseCommunicator struct {
	in  *bufio.Scanner
	out io.Writer
}

// SendAttribute sends a single key=value attribute line.
func (c *reverseCommunicator) SendAttribute(key, value string) error {
	return c.SendRaw(fmt.Sprintf("%s=%s", key, value))
}

// SendRaw sends a line verbatim, for malformed input.
func (c *reverseCommunicator) SendRaw(line string) error {
	if _, err := c.out.Write(withNewline([]byte(line))); err != nil {
		return fmt.Errorf("writing line to helper: %w", err)
	}

	return nil
}

// SendTerminator sends the blank line completing a description.
func (c *reverseCommunicator) SendTerminator() error {
	return c.SendRaw("")
}

// ReceiveLines collects the helper's output lines in order until EOF
// or a blank line.
func (c *reverseCommunicator) ReceiveLines() ([]string, error) {
	lines := make([]string, 0, 5)
	for c.in.Scan() {
		line := c.in.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := c.in.Err(); err != nil {
		return lines, fmt.Errorf("scanning helper output: %w", err)
	}

	return lines, nil
}

func withNewline(line []byte) []byte {
	return append(line, '\n')
}
