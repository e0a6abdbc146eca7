package task

import (
	"path/filepath"
)

// Impacket returns the impacket task definition. The idempotency check
// asks the Python runtime whether the module imports, which also covers
// installs that predate this tool.
func Impacket() Task {
	return Task{
		ID:      10,
		Name:    "impacket",
		Purpose: "Python classes for network protocols",
		CheckFn: func(ctx *Context) bool {
			return ctx.Runner.RunQuiet("python3", "-c", "import impacket") == nil
		},
		InstallFn: func(ctx *Context) error {
			dest := filepath.Join(ctx.OptDir, "impacket")
			if err := cloneInto(ctx, "https://github.com/fortra/impacket.git", dest); err != nil {
				return err
			}
			// Editable checkout install; a failure leaves the clone for
			// the operator to finish by hand.
			return ctx.Privileged("python3", "-m", "pip", "install", "--break-system-packages", dest)
		},
	}
}
