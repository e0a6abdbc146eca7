package task

import (
	"path/filepath"

	"github.com/loadout-sh/loadout/internal/fetch"
	"github.com/loadout-sh/loadout/internal/platform"
)

const rockyouURL = "https://github.com/brannondorsey/naive-hashcat/releases/download/data/rockyou.txt"

// Wordlists returns the shared wordlist task: the SecLists checkout plus
// a plain rockyou.txt, both under the wordlist directory.
func Wordlists() Task {
	return Task{
		ID:      13,
		Name:    "wordlists",
		Purpose: "SecLists and rockyou under the shared wordlist dir",
		CheckFn: func(ctx *Context) bool {
			return platform.FileExists(filepath.Join(ctx.WordlistDir, "seclists"))
		},
		InstallFn: func(ctx *Context) error {
			dest := filepath.Join(ctx.WordlistDir, "seclists")
			if err := cloneInto(ctx, "https://github.com/danielmiessler/SecLists.git", dest); err != nil {
				return err
			}

			rockyou := filepath.Join(ctx.WordlistDir, "rockyou.txt")
			if platform.FileExists(rockyou) {
				return nil
			}
			staged := filepath.Join(ctx.TmpDir, "rockyou.txt")
			if err := fetch.Download(rockyouURL, staged); err != nil {
				// SecLists already landed; rockyou is a nice-to-have
				platform.Warnf(ctx.Out, "rockyou download failed: %v", err)
				return nil
			}
			if err := ctx.Privileged("cp", staged, rockyou); err != nil {
				return err
			}
			ctx.ChownTree(rockyou)
			return nil
		},
	}
}
