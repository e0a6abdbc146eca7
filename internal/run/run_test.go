package run

import (
	"strings"
	"testing"
)

func TestRun_Success(t *testing.T) {
	var r System
	if err := r.Run("true"); err != nil {
		t.Errorf("Run(true) error = %v", err)
	}
}

func TestRun_Failure(t *testing.T) {
	var r System
	if err := r.Run("false"); err == nil {
		t.Error("Run(false) expected error")
	}
}

func TestRunQuiet_Success(t *testing.T) {
	var r System
	if err := r.RunQuiet("true"); err != nil {
		t.Errorf("RunQuiet(true) error = %v", err)
	}
}

func TestRunQuiet_Failure(t *testing.T) {
	var r System
	if err := r.RunQuiet("false"); err == nil {
		t.Error("RunQuiet(false) expected error")
	}
}

func TestOutput_Trims(t *testing.T) {
	var r System
	out, err := r.Output("echo", "hello")
	if err != nil {
		t.Fatalf("Output(echo) error = %v", err)
	}
	if out != "hello" {
		t.Errorf("Output(echo hello) = %q, want %q", out, "hello")
	}
	if strings.ContainsAny(out, "\n") {
		t.Error("Output should trim trailing newline")
	}
}

func TestExists(t *testing.T) {
	var r System
	if !r.Exists("sh") {
		t.Error("Exists(sh) = false, want true")
	}
	if r.Exists("definitely-not-a-real-command-xyz") {
		t.Error("Exists(nonexistent) = true, want false")
	}
}
