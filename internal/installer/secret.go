package installer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/loadout-sh/loadout/internal/platform"
)

// promptSecret reads a secret without echoing it. Empty input means the
// operator chose to skip. Falls back to a plain line read when stdin is
// not a terminal (piped input, tests).
func promptSecret(w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, platform.Bold(prompt))

	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return "", nil
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}
