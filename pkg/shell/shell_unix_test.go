//go:build !windows && !plan9

package shell

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/elves/setvar/pkg/prog"
)

func TestProgram_TerminalIsInteractive(t *testing.T) {
	setupHome(t)
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	const want = "set: Universal var 'foo' created but shadowed by global var of the same name."
	found := make(chan struct{})
	go func() {
		var got []byte
		buf := make([]byte, 1024)
		for {
			n, err := ptmx.Read(buf)
			got = append(got, buf[:n]...)
			if bytes.Contains(got, []byte(want)) {
				close(found)
				return
			}
			if err != nil {
				return
			}
		}
	}()

	exit := prog.Run([3]*os.File{tty, tty, tty},
		[]string{"setvar", "-c", "set -g foo a\nset -U foo b"}, Program{})
	if exit != 0 {
		t.Errorf("got exit %d, want 0", exit)
	}
	select {
	case <-found:
	case <-time.After(5 * time.Second):
		t.Errorf("timed out waiting for %q on the terminal", want)
	}
}
