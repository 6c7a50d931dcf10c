package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

/*
   references:
   - https://no-color.org/
   - https://github.com/sitkevij/no_color
*/

// IsTerminal checks if stdout is a terminal using go-isatty
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// ShouldUseColors determines if coloured output should be used
func ShouldUseColors() bool {
	if noColor := os.Getenv("NO_COLOR"); noColor != "" {
		return false
	}

	if forceColor := os.Getenv("FORCE_COLOR"); forceColor != "" {
		return forceColor != "0"
	}

	if ctokenColors := os.Getenv("CTOKEN_FORCE_COLORS"); ctokenColors != "" {
		return strings.ToLower(ctokenColors) == "true"
	}

	return IsTerminal()
}

// WaitForKeypress prints the prompt and blocks until a single key is read
// from in. Nothing happens when in is not a terminal (pipes, CI, tests).
func WaitForKeypress(in *os.File, out io.Writer, prompt string) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	fmt.Fprintln(out, prompt)

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("unable to switch terminal to raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, state)
	}()

	buf := make([]byte, 1)
	if _, err := in.Read(buf); err != nil && err != io.EOF {
		return fmt.Errorf("unable to read keypress: %w", err)
	}
	return nil
}
