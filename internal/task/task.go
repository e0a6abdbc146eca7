// Package task defines the fixed registry of installable tools. Each
// task pairs an idempotency check with an install action; the registry
// order is the canonical "install everything" order.
package task

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/loadout-sh/loadout/internal/platform"
	"github.com/loadout-sh/loadout/internal/run"
)

// Context carries everything a task needs to act on the host: the
// command runner, scratch space, target directories, and the identity
// of the invoking user for ownership fixups.
type Context struct {
	Runner      run.Runner
	Out         io.Writer
	TmpDir      string // scoped scratch dir, removed on process exit
	OptDir      string // source checkouts land in OptDir/<tool>
	WordlistDir string
	HomeDir     string
	User        string // invoking user (SUDO_USER-aware), may be empty
	PM          platform.PackageManager
	IndexMarker string // mtime records the last package index refresh
	NgrokToken  string // optional, empty means skip authtoken config
}

// EnsureFreshIndex refreshes the package index unless it was refreshed
// within platform.IndexMaxAge. Failures are downgraded to a warning;
// the install itself may still succeed against a stale index.
func (c *Context) EnsureFreshIndex() {
	refreshed, err := platform.RefreshIndex(c.Runner, c.PM, c.IndexMarker, platform.IndexMaxAge)
	if err != nil {
		platform.Warnf(c.Out, "package index refresh failed: %v", err)
		return
	}
	if refreshed {
		platform.Infof(c.Out, "package index refreshed")
	}
}

// Privileged runs a command through sudo when not already root.
func (c *Context) Privileged(name string, args ...string) error {
	return platform.RunPrivileged(c.Runner, name, args...)
}

// ChownTree hands ownership of path back to the invoking user. Best
// effort: clones into shared paths are usable by root either way.
func (c *Context) ChownTree(path string) {
	if c.User == "" {
		return
	}
	if err := c.Privileged("chown", "-R", c.User+":"+c.User, path); err != nil {
		platform.Warnf(c.Out, "could not chown %s to %s: %v", path, c.User, err)
	}
}

// InstallBinary places a downloaded binary into /usr/local/bin with 0755.
func (c *Context) InstallBinary(src, name string) error {
	return c.Privileged("install", "-m", "0755", src, filepath.Join("/usr/local/bin", name))
}

// Task represents one installable tool.
type Task struct {
	ID      int
	Name    string
	Purpose string
	Bin     string // binary checked on PATH when CheckFn is nil; defaults to Name

	CheckFn   func(*Context) bool            // nil → Bin on PATH
	InstallFn func(*Context) error           // nil → system package named Name
	VersionFn func(*Context) (string, error) // nil → no version reported
}

// IsInstalled reports whether the task's goal state already holds.
// The check is cheap and never mutates the host.
func (t *Task) IsInstalled(ctx *Context) bool {
	if t.CheckFn != nil {
		return t.CheckFn(ctx)
	}
	bin := t.Bin
	if bin == "" {
		bin = t.Name
	}
	return ctx.Runner.Exists(bin)
}

// Install runs the task's install action.
func (t *Task) Install(ctx *Context) error {
	if t.InstallFn != nil {
		return t.InstallFn(ctx)
	}
	ctx.EnsureFreshIndex()
	return platform.InstallSystemPackages(ctx.Runner, ctx.PM, []string{t.Name})
}

// Version returns the tool's version string, if the task reports one.
func (t *Task) Version(ctx *Context) (string, error) {
	if t.VersionFn != nil {
		return t.VersionFn(ctx)
	}
	return "", fmt.Errorf("no version function for %s", t.Name)
}
