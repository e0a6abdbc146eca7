package platform

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/loadout-sh/loadout/internal/run"
)

// PackageManager represents a system package manager.
type PackageManager int

const (
	PMNone   PackageManager = iota
	PMBrew                  // macOS (Homebrew)
	PMApt                   // Debian, Ubuntu, Kali
	PMDnf                   // Fedora, RHEL, CentOS Stream
	PMPacman                // Arch, Manjaro
	PMApk                   // Alpine
)

// IndexMaxAge is how long a package index refresh stays fresh. A second
// refresh within this window is skipped.
const IndexMaxAge = 60 * time.Minute

// DetectPackageManager returns the detected system package manager.
func DetectPackageManager(r run.Runner) PackageManager {
	if runtime.GOOS == "darwin" && r.Exists("brew") {
		return PMBrew
	}
	if r.Exists("apt-get") {
		return PMApt
	}
	if r.Exists("dnf") {
		return PMDnf
	}
	if r.Exists("pacman") {
		return PMPacman
	}
	if r.Exists("apk") {
		return PMApk
	}
	return PMNone
}

// RefreshIndex refreshes the package index unless marker shows a refresh
// newer than maxAge. The marker file's mtime records the last refresh.
// Returns true if a refresh actually ran.
func RefreshIndex(r run.Runner, pm PackageManager, marker string, maxAge time.Duration) (bool, error) {
	if info, err := os.Stat(marker); err == nil {
		if time.Since(info.ModTime()) < maxAge {
			return false, nil
		}
	}

	var err error
	switch pm {
	case PMBrew:
		err = r.RunQuiet("brew", "update")
	case PMApt:
		err = RunPrivileged(r, "apt-get", "update")
	case PMDnf:
		err = RunPrivileged(r, "dnf", "makecache")
	case PMPacman:
		err = RunPrivileged(r, "pacman", "-Sy")
	case PMApk:
		err = RunPrivileged(r, "apk", "update")
	default:
		return false, fmt.Errorf("no package manager detected")
	}
	if err != nil {
		return false, err
	}

	touchMarker(marker)
	return true, nil
}

// touchMarker creates marker or resets its mtime to now. Best effort.
func touchMarker(marker string) {
	if f, err := os.OpenFile(marker, os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		f.Close()
	}
	now := time.Now()
	os.Chtimes(marker, now, now)
}

// RunPrivileged runs a command through sudo when not already root.
func RunPrivileged(r run.Runner, name string, args ...string) error {
	if os.Geteuid() != 0 && r.Exists("sudo") {
		return r.RunQuiet("sudo", append([]string{name}, args...)...)
	}
	return r.RunQuiet(name, args...)
}

// InstallSystemPackages batch-installs packages via the given package manager.
func InstallSystemPackages(r run.Runner, pm PackageManager, names []string) error {
	if len(names) == 0 {
		return nil
	}
	switch pm {
	case PMBrew:
		return r.RunQuiet("brew", append([]string{"install"}, names...)...)
	case PMApt:
		return RunPrivileged(r, "apt-get", append([]string{"install", "-y"}, names...)...)
	case PMDnf:
		return RunPrivileged(r, "dnf", append([]string{"install", "-y"}, names...)...)
	case PMPacman:
		return RunPrivileged(r, "pacman", append([]string{"-S", "--noconfirm"}, names...)...)
	case PMApk:
		return RunPrivileged(r, "apk", append([]string{"add"}, names...)...)
	default:
		return fmt.Errorf("no package manager detected")
	}
}

// InstallLocalPackage installs a downloaded package file (e.g. a .deb)
// through the package manager so dependencies resolve.
func InstallLocalPackage(r run.Runner, pm PackageManager, path string) error {
	switch pm {
	case PMApt:
		return RunPrivileged(r, "apt-get", "install", "-y", path)
	case PMDnf:
		return RunPrivileged(r, "dnf", "install", "-y", path)
	default:
		return fmt.Errorf("local package install not supported for %s", pm)
	}
}

// InstallHintForPM returns the appropriate install command string for user display.
func InstallHintForPM(pm PackageManager, name string) string {
	switch pm {
	case PMBrew:
		return "brew install " + name
	case PMApt:
		return "sudo apt-get install -y " + name
	case PMDnf:
		return "sudo dnf install -y " + name
	case PMPacman:
		return "sudo pacman -S --noconfirm " + name
	case PMApk:
		return "apk add " + name
	default:
		if runtime.GOOS == "darwin" {
			return "brew install " + name
		}
		return "apt install " + name
	}
}

// String returns the package manager name.
func (pm PackageManager) String() string {
	names := []string{"none", "brew", "apt", "dnf", "pacman", "apk"}
	if int(pm) < len(names) {
		return names[pm]
	}
	return fmt.Sprintf("PackageManager(%d)", pm)
}
