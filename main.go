package main

import (
	"fmt"
	"os"

	"github.com/loadout-sh/loadout/internal/installer"
	"github.com/loadout-sh/loadout/internal/platform"
)

// version is set via -ldflags at build time
var version = "dev"

const helpText = `
loadout - interactive security & dev tooling provisioner

Usage:
  loadout

Presents a numbered menu of tools and installs the ones you select.
Selections are comma/space separated task numbers (e.g. "1,3,7"),
or "all" / "everything" / "20" for the full kit. Enter 0 to quit.

Tools already present on the host are detected and skipped.

Options:
  --help, -h       Show this help message
  --version, -v    Show version

Environment:
  LOADOUT_OPT_DIR        Checkout directory for cloned tools (default /opt)
  LOADOUT_WORDLIST_DIR   Shared wordlist directory (default /usr/share/wordlists)
  NO_COLOR, ACCESSIBLE   Disable the TUI menu and color output
`

func main() {
	platform.InitColor()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			fmt.Print(helpText)
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("loadout %s\n", version)
			os.Exit(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", os.Args[1])
			fmt.Print(helpText)
			os.Exit(1)
		}
	}

	if err := installer.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
