package task

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/loadout-sh/loadout/internal/fetch"
)

// Nuclei returns the nuclei task definition. There is no stable download
// URL, so the version is resolved through the GitHub releases API and
// the matching zip asset is staged, unpacked, and installed.
func Nuclei() Task {
	return Task{
		ID:      17,
		Name:    "nuclei",
		Purpose: "template-based vulnerability scanner",
		InstallFn: func(ctx *Context) error {
			release, err := fetch.LatestRelease("projectdiscovery/nuclei")
			if err != nil {
				return fmt.Errorf("resolving nuclei version: %w", err)
			}

			osName := runtime.GOOS
			if osName == "darwin" {
				osName = "macOS"
			}
			asset, err := release.FindAsset(osName, runtime.GOARCH, ".zip")
			if err != nil {
				return err
			}

			archive := filepath.Join(ctx.TmpDir, asset.Name)
			if err := fetch.Download(asset.BrowserDownloadURL, archive); err != nil {
				return err
			}
			if err := ctx.Runner.RunQuiet("unzip", "-o", archive, "-d", ctx.TmpDir); err != nil {
				return fmt.Errorf("unpacking %s: %w", asset.Name, err)
			}
			return ctx.InstallBinary(filepath.Join(ctx.TmpDir, "nuclei"), "nuclei")
		},
		VersionFn: func(ctx *Context) (string, error) {
			return ctx.Runner.Output("nuclei", "-version")
		},
	}
}
