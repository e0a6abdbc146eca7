package task

import (
	"path/filepath"

	"github.com/loadout-sh/loadout/internal/fetch"
	"github.com/loadout-sh/loadout/internal/platform"
)

const dockerScriptURL = "https://get.docker.com"

// Docker returns the docker task definition: the convenience install
// script, then membership in the docker group for the invoking user so
// the daemon is usable without sudo.
func Docker() Task {
	return Task{
		ID:      15,
		Name:    "docker",
		Purpose: "container runtime",
		InstallFn: func(ctx *Context) error {
			script := filepath.Join(ctx.TmpDir, "get-docker.sh")
			if err := fetch.Download(dockerScriptURL, script); err != nil {
				return err
			}
			if err := ctx.Privileged("sh", script); err != nil {
				return err
			}
			if ctx.User != "" {
				if err := ctx.Privileged("usermod", "-aG", "docker", ctx.User); err != nil {
					platform.Warnf(ctx.Out, "could not add %s to docker group: %v", ctx.User, err)
				}
			}
			return nil
		},
		VersionFn: func(ctx *Context) (string, error) {
			return ctx.Runner.Output("docker", "--version")
		},
	}
}
