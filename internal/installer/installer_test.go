package installer

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/loadout-sh/loadout/internal/task"
)

// fakeRunner records invocations and returns scripted results.
type fakeRunner struct {
	calls  [][]string
	exists map[string]bool
	errs   map[string]error
}

func (f *fakeRunner) record(name string, args []string) []string {
	argv := append([]string{name}, args...)
	f.calls = append(f.calls, argv)
	return argv
}

func (f *fakeRunner) Run(name string, args ...string) error {
	argv := f.record(name, args)
	return f.errs[strings.Join(argv, " ")]
}

func (f *fakeRunner) RunQuiet(name string, args ...string) error {
	argv := f.record(name, args)
	return f.errs[strings.Join(argv, " ")]
}

func (f *fakeRunner) Output(name string, args ...string) (string, error) {
	argv := f.record(name, args)
	return "", f.errs[strings.Join(argv, " ")]
}

func (f *fakeRunner) Exists(name string) bool { return f.exists[name] }

func testContext(t *testing.T) (*task.Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &task.Context{
		Runner: &fakeRunner{exists: map[string]bool{}},
		Out:    &out,
		TmpDir: t.TempDir(),
	}, &out
}

func stubTask(id int, name string, installedAlready bool, installs *[]string, installErr error) task.Task {
	return task.Task{
		ID:   id,
		Name: name,
		CheckFn: func(*task.Context) bool {
			return installedAlready
		},
		InstallFn: func(*task.Context) error {
			*installs = append(*installs, name)
			return installErr
		},
	}
}

func TestRunTasks_SkipsInstalled(t *testing.T) {
	ctx, out := testContext(t)
	var installs []string

	tasks := []task.Task{
		stubTask(1, "alpha", true, &installs, nil),
		stubTask(2, "beta", false, &installs, nil),
	}

	if err := runTasks(ctx, tasks); err != nil {
		t.Fatalf("runTasks() error = %v", err)
	}
	if len(installs) != 1 || installs[0] != "beta" {
		t.Errorf("installs = %v, want [beta] (alpha already installed)", installs)
	}
	if !strings.Contains(out.String(), "already installed") {
		t.Error("expected 'already installed' line for alpha")
	}
}

func TestRunTasks_SecondRunIsNoOp(t *testing.T) {
	ctx, _ := testContext(t)
	var installs []string

	installed := false
	tk := task.Task{
		ID:   1,
		Name: "gamma",
		CheckFn: func(*task.Context) bool {
			return installed
		},
		InstallFn: func(*task.Context) error {
			installs = append(installs, "gamma")
			installed = true
			return nil
		},
	}

	if err := runTasks(ctx, []task.Task{tk}); err != nil {
		t.Fatal(err)
	}
	if err := runTasks(ctx, []task.Task{tk}); err != nil {
		t.Fatal(err)
	}
	if len(installs) != 1 {
		t.Errorf("mutating action ran %d times across two runs, want 1", len(installs))
	}
}

func TestRunTasks_RecoverableFailureContinues(t *testing.T) {
	ctx, out := testContext(t)
	var installs []string

	tasks := []task.Task{
		stubTask(1, "broken", false, &installs, errors.New("boom")),
		stubTask(2, "after", false, &installs, nil),
	}

	if err := runTasks(ctx, tasks); err != nil {
		t.Fatalf("runTasks() error = %v, recoverable failures must not abort", err)
	}
	if len(installs) != 2 {
		t.Errorf("installs = %v, want both tasks attempted", installs)
	}
	if !strings.Contains(out.String(), "[WARN]") {
		t.Error("expected a warning line for the failed task")
	}
}

func TestRunTasks_FatalAborts(t *testing.T) {
	ctx, _ := testContext(t)
	var installs []string

	tasks := []task.Task{
		stubTask(1, "fatal", false, &installs, task.Fatalf("required download was empty")),
		stubTask(2, "never", false, &installs, nil),
	}

	err := runTasks(ctx, tasks)
	if err == nil {
		t.Fatal("runTasks() expected fatal error")
	}
	if !task.IsFatal(err) {
		t.Errorf("error %v should carry the fatal marker", err)
	}
	if len(installs) != 1 {
		t.Errorf("installs = %v, fatal error must stop the run", installs)
	}
}

func TestWithScratchDir_RemovedOnSuccess(t *testing.T) {
	var captured string
	err := withScratchDir(func(tmpDir string) error {
		captured = tmpDir
		if _, err := os.Stat(tmpDir); err != nil {
			t.Errorf("scratch dir should exist during the run: %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(captured); !os.IsNotExist(err) {
		t.Errorf("scratch dir %s still exists after a clean run", captured)
	}
}

func TestWithScratchDir_RemovedOnError(t *testing.T) {
	var captured string
	wantErr := errors.New("fatal path")
	err := withScratchDir(func(tmpDir string) error {
		captured = tmpDir
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("withScratchDir() error = %v, want %v", err, wantErr)
	}
	if _, err := os.Stat(captured); !os.IsNotExist(err) {
		t.Errorf("scratch dir %s still exists after an error exit", captured)
	}
}
