package task

import (
	"path/filepath"

	"github.com/loadout-sh/loadout/internal/fetch"
	"github.com/loadout-sh/loadout/internal/platform"
)

const vscodeDebURL = "https://update.code.visualstudio.com/latest/linux-deb-x64/stable"

// VSCode returns the Visual Studio Code task definition: the upstream
// .deb staged in scratch space and installed through the package
// manager so dependencies resolve.
func VSCode() Task {
	return Task{
		ID:      19,
		Name:    "vscode",
		Purpose: "code editor",
		Bin:     "code",
		InstallFn: func(ctx *Context) error {
			deb := filepath.Join(ctx.TmpDir, "code.deb")
			if err := fetch.Download(vscodeDebURL, deb); err != nil {
				return err
			}
			ctx.EnsureFreshIndex()
			return platform.InstallLocalPackage(ctx.Runner, ctx.PM, deb)
		},
		VersionFn: func(ctx *Context) (string, error) {
			return ctx.Runner.Output("code", "--version")
		},
	}
}
