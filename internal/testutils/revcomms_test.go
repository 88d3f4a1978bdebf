package testutils

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReverseCommunicator(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		in := strings.NewReader("foo")
		out := new(bytes.Buffer)

		revCommI := NewReverseCommunicator(in, out)
		assert.NotNil(t, revCommI)

		revComm, ok := revCommI.(*reverseCommunicator)
		assert.True(t, ok)
		assert.NotNil(t, revComm)
		assert.NotNil(t, revComm.in)
		assert.Equal(t, out, revComm.out)
	})
}

func Test_reverseCommunicator_SendAttribute(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		out := new(bytes.Buffer)
		revcomm := NewReverseCommunicator(nil, out)

		err := revcomm.SendAttribute("host", "example.com")
		assert.NoError(t, err)

		outRaw, err := io.ReadAll(out)
		assert.NoError(t, err)
		assert.Equal(t, "host=example.com\n", string(outRaw))
	})

	t.Run("Success - Empty Value", func(t *testing.T) {
		out := new(bytes.Buffer)
		revcomm := NewReverseCommunicator(nil, out)

		err := revcomm.SendAttribute("path", "")
		assert.NoError(t, err)

		outRaw, err := io.ReadAll(out)
		assert.NoError(t, err)
		assert.Equal(t, "path=\n", string(outRaw))
	})
}

func Test_reverseCommunicator_SendRaw(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		out := new(bytes.Buffer)
		revcomm := NewReverseCommunicator(nil, out)

		err := revcomm.SendRaw("notakeyvaluepair")
		assert.NoError(t, err)

		outRaw, err := io.ReadAll(out)
		assert.NoError(t, err)
		assert.Equal(t, "notakeyvaluepair\n", string(outRaw))
	})
}

func Test_reverseCommunicator_SendTerminator(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		out := new(bytes.Buffer)
		revcomm := NewReverseCommunicator(nil, out)

		err := revcomm.SendTerminator()
		assert.NoError(t, err)

		outRaw, err := io.ReadAll(out)
		assert.NoError(t, err)
		assert.Equal(t, "\n", string(outRaw))
	})
}

func Test_reverseCommunicator_ReceiveLines(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// this test intentionally does not use a comms.Communicator, incase
		// bugs are introduced.
		in := new(bytes.Buffer)
		revcomm := NewReverseCommunicator(in, nil)

		_, err := fmt.Fprintf(in, "protocol=https\n")
		assert.NoError(t, err)
		_, err = fmt.Fprintf(in, "host=example.com\n")
		assert.NoError(t, err)

		lines, err := revcomm.ReceiveLines()
		assert.NoError(t, err)
		assert.Equal(t, []string{"protocol=https", "host=example.com"}, lines)
	})

	t.Run("Success - Stops At Blank Line", func(t *testing.T) {
		// this test intentionally does not use a comms.Communicator, incase
		// bugs are introduced.
		in := new(bytes.Buffer)
		revcomm := NewReverseCommunicator(in, nil)

		_, err := fmt.Fprintf(in, "username=alice\n\npassword=ignored\n")
		assert.NoError(t, err)

		lines, err := revcomm.ReceiveLines()
		assert.NoError(t, err)
		assert.Equal(t, []string{"username=alice"}, lines)
	})

	t.Run("Success - No Output", func(t *testing.T) {
		revcomm := NewReverseCommunicator(new(bytes.Buffer), nil)

		lines, err := revcomm.ReceiveLines()
		assert.NoError(t, err)
		assert.Empty(t, lines)
	})
}
