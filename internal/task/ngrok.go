package task

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/loadout-sh/loadout/internal/fetch"
	"github.com/loadout-sh/loadout/internal/platform"
)

// Ngrok returns the ngrok task definition. When the operator supplied an
// authtoken at the prompt it is written to the ngrok config; otherwise
// the binary is installed unconfigured.
func Ngrok() Task {
	return Task{
		ID:      18,
		Name:    "ngrok",
		Purpose: "tunnels to localhost",
		InstallFn: func(ctx *Context) error {
			url := fmt.Sprintf("https://bin.equinox.io/c/bNyj1mQVY4c/ngrok-v3-stable-%s-%s.tgz",
				runtime.GOOS, runtime.GOARCH)

			archive := filepath.Join(ctx.TmpDir, "ngrok.tgz")
			if err := fetch.Download(url, archive); err != nil {
				return err
			}
			if err := ctx.Runner.RunQuiet("tar", "-xzf", archive, "-C", ctx.TmpDir); err != nil {
				return fmt.Errorf("unpacking ngrok: %w", err)
			}
			if err := ctx.InstallBinary(filepath.Join(ctx.TmpDir, "ngrok"), "ngrok"); err != nil {
				return err
			}

			if ctx.NgrokToken == "" {
				platform.Infof(ctx.Out, "no authtoken provided; run 'ngrok config add-authtoken <token>' later")
				return nil
			}
			if err := ctx.Runner.RunQuiet("ngrok", "config", "add-authtoken", ctx.NgrokToken); err != nil {
				platform.Warnf(ctx.Out, "could not configure ngrok authtoken: %v", err)
			}
			return nil
		},
		VersionFn: func(ctx *Context) (string, error) {
			return ctx.Runner.Output("ngrok", "version")
		},
	}
}
