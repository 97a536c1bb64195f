package util

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// PausePrompt is shown before waiting for a key.
const PausePrompt = "Press any key to finish"

// WaitForKey prints the prompt to out and blocks until one key is read from in.
// When in is a terminal it is switched to raw mode so a single keystroke is
// enough; otherwise it reads up to the next newline or EOF.
func WaitForKey(in *os.File, out io.Writer) error {
	if out != nil {
		fmt.Fprint(out, PausePrompt)
		defer fmt.Fprintln(out)
	}
	if in == nil {
		return nil
	}
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer func() {
			_ = term.Restore(fd, state)
		}()
		var b [1]byte
		_, err = in.Read(b[:])
		if err != nil && err != io.EOF {
			return err
		}
		return nil
	}
	_, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}
