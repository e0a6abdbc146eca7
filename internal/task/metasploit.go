package task

import (
	"os"
	"path/filepath"

	"github.com/loadout-sh/loadout/internal/fetch"
)

const msfInstallURL = "https://raw.githubusercontent.com/rapid7/metasploit-omnibus/master/config/templates/metasploit-framework-wrappers/msfupdate.erb"

// Metasploit returns the metasploit-framework task definition. The
// framework has no usable fallback when its installer script cannot be
// retrieved, so a failed or empty download aborts the whole run.
func Metasploit() Task {
	return Task{
		ID:      14,
		Name:    "metasploit",
		Purpose: "exploitation framework",
		Bin:     "msfconsole",
		InstallFn: func(ctx *Context) error {
			script := filepath.Join(ctx.TmpDir, "msfinstall")
			if err := fetch.Download(msfInstallURL, script); err != nil {
				return Fatalf("metasploit installer: %w", err)
			}
			if err := os.Chmod(script, 0755); err != nil {
				return err
			}
			return ctx.Privileged("bash", script)
		},
		VersionFn: func(ctx *Context) (string, error) {
			return ctx.Runner.Output("msfconsole", "--version")
		},
	}
}
