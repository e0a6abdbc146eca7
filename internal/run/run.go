// Package run abstracts external process invocation behind a small
// interface so callers can be tested against a fake runner.
package run

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands.
type Runner interface {
	// Run executes a command with stdin/stdout/stderr inherited.
	Run(name string, args ...string) error
	// RunQuiet executes a command and discards stdout/stderr.
	RunQuiet(name string, args ...string) error
	// Output executes a command and returns its stdout as a trimmed string.
	Output(name string, args ...string) (string, error)
	// Exists checks if a command exists in PATH.
	Exists(name string) bool
}

// System is the Runner backed by os/exec.
type System struct{}

func (System) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (System) RunQuiet(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run()
}

func (System) Output(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = nil
	err := cmd.Run()
	return strings.TrimSpace(out.String()), err
}

func (System) Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
