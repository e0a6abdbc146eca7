package platform

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func TestApply_DisabledByDefault(t *testing.T) {
	colorEnabled = false
	if got := Red("danger"); got != "danger" {
		t.Errorf("expected plain text with color disabled, got %q", got)
	}
}

func TestApply_Enabled(t *testing.T) {
	colorEnabled = true
	defer func() { colorEnabled = false }()

	got := Green("ok")
	if !strings.HasPrefix(got, "\033[32m") || !strings.HasSuffix(got, "\033[0m") {
		t.Errorf("expected ANSI-wrapped string, got %q", got)
	}
}

func TestInitColor_RespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	colorEnabled = true
	InitColor()
	if colorEnabled {
		t.Error("NO_COLOR should disable color")
	}
}

func TestInitColor_RespectsDumbTerm(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "dumb")
	colorEnabled = true
	InitColor()
	if colorEnabled {
		t.Error("TERM=dumb should disable color")
	}
}

var stampRe = regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[(INFO|OK|WARN|ERROR)\] `)

func TestDiagnosticLines_Format(t *testing.T) {
	colorEnabled = false

	tests := []struct {
		name  string
		print func(buf *bytes.Buffer)
		tag   string
	}{
		{"info", func(b *bytes.Buffer) { Infof(b, "checking %s", "nmap") }, "[INFO]"},
		{"ok", func(b *bytes.Buffer) { Okf(b, "installed") }, "[OK]"},
		{"warn", func(b *bytes.Buffer) { Warnf(b, "retrying") }, "[WARN]"},
		{"error", func(b *bytes.Buffer) { Errorf(b, "download failed") }, "[ERROR]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			line := buf.String()

			if !stampRe.MatchString(line) {
				t.Errorf("line %q does not match timestamped format", line)
			}
			if !strings.Contains(line, tt.tag) {
				t.Errorf("line %q missing severity tag %s", line, tt.tag)
			}
			if !strings.HasSuffix(line, "\n") {
				t.Errorf("line %q missing trailing newline", line)
			}
		})
	}
}

func TestPrintStep(t *testing.T) {
	colorEnabled = false
	var buf bytes.Buffer
	PrintStep(&buf, 3, 19, "gobuster")
	if !strings.Contains(buf.String(), "[3/19] gobuster") {
		t.Errorf("PrintStep output = %q", buf.String())
	}
}
