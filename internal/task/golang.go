package task

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/loadout-sh/loadout/internal/fetch"
	"github.com/loadout-sh/loadout/internal/platform"
)

// GoVersion is the pinned Go toolchain installed by the go task.
const GoVersion = "1.25.1"

// Golang returns the Go toolchain task definition: official tarball
// unpacked under /usr/local/go, with a PATH entry appended to the
// invoking user's shell RC.
func Golang() Task {
	return Task{
		ID:      16,
		Name:    "go",
		Purpose: "Go toolchain",
		InstallFn: func(ctx *Context) error {
			tarball := fmt.Sprintf("go%s.%s-%s.tar.gz", GoVersion, runtime.GOOS, runtime.GOARCH)
			url := "https://go.dev/dl/" + tarball

			staged := filepath.Join(ctx.TmpDir, tarball)
			if err := fetch.Download(url, staged); err != nil {
				return err
			}

			// A stale partial tree under /usr/local/go breaks the unpack
			if err := ctx.Privileged("rm", "-rf", "/usr/local/go"); err != nil {
				return err
			}
			if err := ctx.Privileged("tar", "-C", "/usr/local", "-xzf", staged); err != nil {
				return fmt.Errorf("unpacking Go toolchain: %w", err)
			}

			rcPath, shellName := platform.DetectShellRC(ctx.HomeDir)
			if modified, err := platform.AppendPathToRC(ctx.Runner, "/usr/local/go/bin", shellName, rcPath); err != nil {
				platform.Warnf(ctx.Out, "could not add /usr/local/go/bin to PATH: %v", err)
			} else if modified {
				platform.Infof(ctx.Out, "added /usr/local/go/bin to PATH in %s", filepath.Base(rcPath))
			}
			return nil
		},
		VersionFn: func(ctx *Context) (string, error) {
			return ctx.Runner.Output("go", "version")
		},
	}
}
