package platform

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// colorEnabled controls whether ANSI escape codes are emitted.
// Set once by InitColor().
var colorEnabled bool

// InitColor determines whether color output should be enabled.
// It respects NO_COLOR (https://no-color.org/), TERM=dumb, and non-TTY stdout.
func InitColor() {
	if os.Getenv("NO_COLOR") != "" {
		colorEnabled = false
		return
	}
	if os.Getenv("TERM") == "dumb" {
		colorEnabled = false
		return
	}
	colorEnabled = term.IsTerminal(int(os.Stdout.Fd()))
}

// ANSI escape codes
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiCyan   = "\033[36m"
)

// apply wraps s with the given ANSI code when color is enabled.
func apply(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + ansiReset
}

// --- Semantic color functions ---

func Bold(s string) string      { return apply(ansiBold, s) }
func Red(s string) string       { return apply(ansiRed, s) }
func Green(s string) string     { return apply(ansiGreen, s) }
func Yellow(s string) string    { return apply(ansiYellow, s) }
func Blue(s string) string      { return apply(ansiBlue, s) }
func Cyan(s string) string      { return apply(ansiCyan, s) }
func BoldRed(s string) string   { return apply(ansiBold+ansiRed, s) }
func BoldGreen(s string) string { return apply(ansiBold+ansiGreen, s) }
func BoldBlue(s string) string  { return apply(ansiBold+ansiBlue, s) }
func BoldCyan(s string) string  { return apply(ansiBold+ansiCyan, s) }

// --- High-level print helpers ---

// PrintBanner prints a bold cyan banner line: "\n=== title ===\n"
func PrintBanner(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", BoldCyan("=== "+title+" ==="))
}

// PrintSectionLabel prints a bold section label: "\n[label]\n"
func PrintSectionLabel(w io.Writer, label string) {
	fmt.Fprintf(w, "\n%s\n", Bold("["+label+"]"))
}

// PrintStep prints a bold blue step label: "\n[n/total] label\n"
func PrintStep(w io.Writer, n, total int, label string) {
	fmt.Fprintf(w, "\n%s %s\n", BoldBlue(fmt.Sprintf("[%d/%d]", n, total)), label)
}

// PrintCommand prints an indented cyan shell command for the user to copy.
func PrintCommand(w io.Writer, cmd string) {
	fmt.Fprintf(w, "    %s\n", Cyan(cmd))
}

// --- Timestamped diagnostic lines ---

// stamp returns the wall-clock prefix used on diagnostic lines.
func stamp() string {
	return time.Now().Format("15:04:05")
}

// Infof prints a timestamped informational line: "[15:04:05] [INFO] msg"
func Infof(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "[%s] [INFO] %s\n", stamp(), fmt.Sprintf(format, a...))
}

// Okf prints a timestamped success line: "[15:04:05] [OK] msg"
func Okf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "[%s] %s %s\n", stamp(), BoldGreen("[OK]"), fmt.Sprintf(format, a...))
}

// Warnf prints a timestamped warning line: "[15:04:05] [WARN] msg"
func Warnf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "[%s] %s %s\n", stamp(), Yellow("[WARN]"), fmt.Sprintf(format, a...))
}

// Errorf prints a timestamped error line: "[15:04:05] [ERROR] msg"
func Errorf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "[%s] %s %s\n", stamp(), BoldRed("[ERROR]"), fmt.Sprintf(format, a...))
}
