//go:build !windows

package testsupport

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/creack/pty"
)

// RunInPTY runs the command attached to a pseudo-terminal and returns
// its combined output. Used to test terminal-only behavior such as
// styled output.
func RunInPTY(t testing.TB, name string, args ...string) (string, error) {
	t.Helper()

	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	tty, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return "", err
	}
	defer tty.Close()

	var output bytes.Buffer
	done := make(chan struct{})
	go func() {
		// The pty returns EIO once the child exits; treat any read
		// error as end of output.
		_, _ = io.Copy(&output, tty)
		close(done)
	}()

	waitErr := cmd.Wait()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out draining pty output")
	}

	return output.String(), waitErr
}
