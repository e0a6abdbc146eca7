package task

import (
	"fmt"
	"path/filepath"

	"github.com/loadout-sh/loadout/internal/platform"
)

// cloneInto performs a shallow clone of repoURL into dest and hands the
// checkout back to the invoking user.
func cloneInto(ctx *Context, repoURL, dest string) error {
	if err := ctx.Privileged("mkdir", "-p", filepath.Dir(dest)); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dest), err)
	}
	if err := ctx.Privileged("git", "clone", "--depth", "1", repoURL, dest); err != nil {
		return fmt.Errorf("cloning %s: %w", repoURL, err)
	}
	ctx.ChownTree(dest)
	return nil
}

// optDirCheck returns a check predicate for a marker directory under OptDir.
func optDirCheck(name string) func(*Context) bool {
	return func(ctx *Context) bool {
		return platform.FileExists(filepath.Join(ctx.OptDir, name))
	}
}

// Sqlmap returns the sqlmap task definition (cloned, not packaged, so
// --update works from the checkout).
func Sqlmap() Task {
	return Task{
		ID:      9,
		Name:    "sqlmap",
		Purpose: "SQL injection testing",
		CheckFn: optDirCheck("sqlmap"),
		InstallFn: func(ctx *Context) error {
			return cloneInto(ctx, "https://github.com/sqlmapproject/sqlmap.git",
				filepath.Join(ctx.OptDir, "sqlmap"))
		},
	}
}

// Responder returns the Responder task definition.
func Responder() Task {
	return Task{
		ID:      11,
		Name:    "responder",
		Purpose: "LLMNR/NBT-NS/mDNS poisoner",
		CheckFn: optDirCheck("Responder"),
		InstallFn: func(ctx *Context) error {
			return cloneInto(ctx, "https://github.com/lgandx/Responder.git",
				filepath.Join(ctx.OptDir, "Responder"))
		},
	}
}

// ExploitDB returns the exploitdb task definition: the full checkout
// plus a searchsploit symlink on PATH.
func ExploitDB() Task {
	return Task{
		ID:      12,
		Name:    "exploitdb",
		Purpose: "exploit database and searchsploit",
		CheckFn: optDirCheck("exploitdb"),
		InstallFn: func(ctx *Context) error {
			dest := filepath.Join(ctx.OptDir, "exploitdb")
			if err := cloneInto(ctx, "https://gitlab.com/exploit-database/exploitdb.git", dest); err != nil {
				return err
			}
			// searchsploit is usable straight from the checkout
			src := filepath.Join(dest, "searchsploit")
			if err := ctx.Privileged("ln", "-sf", src, "/usr/local/bin/searchsploit"); err != nil {
				platform.Warnf(ctx.Out, "could not link searchsploit: %v", err)
			}
			return nil
		},
	}
}
