package platform

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/loadout-sh/loadout/internal/run"
)

// DetectShellRC determines the user's shell RC file path and shell name.
// It checks $SHELL first, then falls back to file-existence checks.
func DetectShellRC(home string) (rcPath, shellName string) {
	shell := os.Getenv("SHELL")

	switch {
	case strings.HasSuffix(shell, "zsh"):
		return filepath.Join(home, ".zshrc"), "zsh"
	case strings.HasSuffix(shell, "fish"):
		return filepath.Join(home, ".config", "fish", "config.fish"), "fish"
	case strings.HasSuffix(shell, "bash"):
		return filepath.Join(home, ".bashrc"), "bash"
	}

	// Fallback: check if .zshrc exists (common on macOS)
	if FileExists(filepath.Join(home, ".zshrc")) {
		return filepath.Join(home, ".zshrc"), "zsh"
	}

	// Default to bash
	return filepath.Join(home, ".bashrc"), "bash"
}

// AppendPathToRC adds dir to PATH in the given shell RC file.
// For fish, it uses fish_add_path. For bash/zsh, it appends an export line.
// Returns (true, nil) if the file was modified, (false, nil) if already configured.
func AppendPathToRC(r run.Runner, dir, shellName, rcPath string) (modified bool, err error) {
	// Fish uses a different mechanism
	if shellName == "fish" {
		if err := r.RunQuiet("fish", "-c", "fish_add_path "+dir); err != nil {
			return false, err
		}
		return true, nil
	}

	// bash/zsh: check idempotency
	pathLine := "\n# Added by loadout\nexport PATH=\"" + dir + ":$PATH\"\n"

	content, err := os.ReadFile(rcPath)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	if strings.Contains(string(content), dir) {
		return false, nil // already configured
	}

	// Ensure parent directory exists (relevant for new files)
	if err := os.MkdirAll(filepath.Dir(rcPath), 0755); err != nil {
		return false, err
	}

	if err := os.WriteFile(rcPath, append(content, []byte(pathLine)...), 0644); err != nil {
		return false, err
	}
	return true, nil
}

// OptDir returns the directory used for source checkouts, checking
// $LOADOUT_OPT_DIR first and falling back to /opt.
func OptDir() string {
	if dir := os.Getenv("LOADOUT_OPT_DIR"); dir != "" {
		return dir
	}
	return "/opt"
}

// WordlistDir returns the shared wordlist directory, checking
// $LOADOUT_WORDLIST_DIR first and falling back to /usr/share/wordlists.
func WordlistDir() string {
	if dir := os.Getenv("LOADOUT_WORDLIST_DIR"); dir != "" {
		return dir
	}
	return "/usr/share/wordlists"
}

// InvokingUser returns the user the installer is acting for. When running
// under sudo this is $SUDO_USER, not root, so ownership fixups hand files
// back to the real operator.
func InvokingUser() string {
	if u := os.Getenv("SUDO_USER"); u != "" {
		return u
	}
	return os.Getenv("USER")
}
