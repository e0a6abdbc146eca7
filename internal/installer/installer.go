// Package installer drives the interactive provisioning run: menu,
// selection parsing, and the sequential task loop with its two-tier
// failure policy.
package installer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/loadout-sh/loadout/internal/platform"
	"github.com/loadout-sh/loadout/internal/run"
	"github.com/loadout-sh/loadout/internal/task"
	"github.com/loadout-sh/loadout/internal/tui"
)

// Run executes the whole interactive flow. A nil return means either a
// completed run or an explicit quit; any error is fatal and the caller
// exits nonzero.
func Run(version string) error {
	return withScratchDir(func(tmpDir string) error {
		return runInteractive(version, tmpDir)
	})
}

// withScratchDir creates the process-wide scratch directory and
// guarantees its removal on every exit path: normal return, error
// return, and interrupt.
func withScratchDir(fn func(tmpDir string) error) error {
	tmpDir, err := os.MkdirTemp("", "loadout-*")
	if err != nil {
		return fmt.Errorf("creating scratch dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }
	defer cleanup()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigc)
		close(sigc)
	}()
	go func() {
		if _, ok := <-sigc; !ok {
			return
		}
		cleanup()
		os.Exit(130)
	}()

	return fn(tmpDir)
}

func runInteractive(version, tmpDir string) error {
	out := os.Stdout
	runner := run.System{}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("getting home directory: %w", err)
	}

	ctx := &task.Context{
		Runner:      runner,
		Out:         out,
		TmpDir:      tmpDir,
		OptDir:      platform.OptDir(),
		WordlistDir: platform.WordlistDir(),
		HomeDir:     home,
		User:        platform.InvokingUser(),
		PM:          platform.DetectPackageManager(runner),
		IndexMarker: indexMarker(home),
	}

	tasks := task.All()
	installed := make([]bool, len(tasks))
	for i := range tasks {
		installed[i] = tasks[i].IsInstalled(ctx)
	}

	input, err := readSelection(out, version, tasks, installed)
	if err != nil {
		return err
	}

	sel, err := ParseSelection(input)
	if err != nil {
		platform.Errorf(out, "%v", err)
		return err
	}
	for _, tok := range sel.Unknown {
		platform.Warnf(out, "ignoring unrecognized selection %q", tok)
	}
	if sel.Quit {
		platform.Infof(out, "nothing to do")
		return nil
	}

	selected := sel.Tasks()
	if len(selected) == 0 {
		platform.Errorf(out, "selection matched no tasks")
		return fmt.Errorf("selection matched no tasks")
	}

	// One secret prompt up front, only when the run needs it.
	for _, t := range selected {
		if t.Name == "ngrok" {
			token, err := promptSecret(out, "ngrok authtoken (enter to skip): ")
			if err != nil {
				return err
			}
			ctx.NgrokToken = token
			break
		}
	}

	return runTasks(ctx, selected)
}

// runTasks executes the selected tasks in order. Recoverable failures
// are downgraded to warnings; fatal errors abort immediately.
func runTasks(ctx *task.Context, selected []task.Task) error {
	var done, skipped, failed []string

	for i := range selected {
		t := &selected[i]
		platform.PrintStep(ctx.Out, i+1, len(selected), t.Name+" — "+t.Purpose)

		if t.IsInstalled(ctx) {
			platform.Okf(ctx.Out, "%s already installed", t.Name)
			skipped = append(skipped, t.Name)
			continue
		}

		if err := t.Install(ctx); err != nil {
			if task.IsFatal(err) {
				platform.Errorf(ctx.Out, "%s: %v", t.Name, err)
				return err
			}
			platform.Warnf(ctx.Out, "%s failed: %v (continuing)", t.Name, err)
			if t.InstallFn == nil {
				platform.PrintCommand(ctx.Out, platform.InstallHintForPM(ctx.PM, t.Name))
			}
			failed = append(failed, t.Name)
			continue
		}

		if ver, err := t.Version(ctx); err == nil && ver != "" {
			platform.Okf(ctx.Out, "%s installed (%s)", t.Name, firstLine(ver))
		} else {
			platform.Okf(ctx.Out, "%s installed", t.Name)
		}
		done = append(done, t.Name)
	}

	printSummary(ctx.Out, done, skipped, failed)
	return nil
}

func printSummary(w io.Writer, done, skipped, failed []string) {
	platform.PrintBanner(w, "Summary")
	if len(done) > 0 {
		fmt.Fprintf(w, "  %s %s\n", platform.BoldGreen("installed:"), strings.Join(done, ", "))
	}
	if len(skipped) > 0 {
		fmt.Fprintf(w, "  %s %s\n", platform.Bold("already present:"), strings.Join(skipped, ", "))
	}
	if len(failed) > 0 {
		fmt.Fprintf(w, "  %s %s\n", platform.Yellow("failed:"), strings.Join(failed, ", "))
	}
	fmt.Fprintln(w)
}

// readSelection shows the menu and reads one selection line: the Bubble
// Tea menu on a TTY, a plain printed menu otherwise.
func readSelection(out io.Writer, version string, tasks []task.Task, installed []bool) (string, error) {
	if !tui.IsAccessible() && isTTY() {
		input, quit, err := tui.RunMenu(version, tasks, installed)
		if err != nil {
			return "", fmt.Errorf("menu: %w", err)
		}
		if quit {
			return "0", nil
		}
		return input, nil
	}

	printPlainMenu(out, version, tasks, installed)
	fmt.Fprint(out, platform.Bold("Select tools (e.g. 1,3,7 or 'all', 0 to quit): "))
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "", ErrEmptySelection
	}
	return scanner.Text(), nil
}

func printPlainMenu(w io.Writer, version string, tasks []task.Task, installed []bool) {
	platform.PrintBanner(w, "loadout "+version)
	for i, t := range tasks {
		badge := " "
		if installed[i] {
			badge = platform.BoldGreen("*")
		}
		fmt.Fprintf(w, " %2d) %s %-12s %s\n", t.ID, badge, t.Name, t.Purpose)
	}
	fmt.Fprintf(w, " %2d)   %-12s %s\n", task.AllID, "everything", "install the full kit")
	fmt.Fprintf(w, "  0)   %-12s %s\n\n", "quit", "exit without changes")
}

func isTTY() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// indexMarker returns the package-index freshness marker path under the
// user cache dir, falling back to the home dotdir.
func indexMarker(home string) string {
	if cache, err := os.UserCacheDir(); err == nil {
		dir := filepath.Join(cache, "loadout")
		if os.MkdirAll(dir, 0755) == nil {
			return filepath.Join(dir, "pkg-index-stamp")
		}
	}
	return filepath.Join(home, ".loadout-index-stamp")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
