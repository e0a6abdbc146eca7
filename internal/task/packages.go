package task

// The simple tasks: one system package each, checked by binary on PATH.

// Nmap returns the nmap task definition.
func Nmap() Task {
	return Task{
		ID:      1,
		Name:    "nmap",
		Purpose: "network scanner",
		VersionFn: func(ctx *Context) (string, error) {
			return ctx.Runner.Output("nmap", "--version")
		},
	}
}

// Masscan returns the masscan task definition.
func Masscan() Task {
	return Task{
		ID:      2,
		Name:    "masscan",
		Purpose: "mass IP port scanner",
	}
}

// Gobuster returns the gobuster task definition.
func Gobuster() Task {
	return Task{
		ID:      3,
		Name:    "gobuster",
		Purpose: "directory and DNS brute-forcer",
		VersionFn: func(ctx *Context) (string, error) {
			return ctx.Runner.Output("gobuster", "version")
		},
	}
}

// Ffuf returns the ffuf task definition.
func Ffuf() Task {
	return Task{
		ID:      4,
		Name:    "ffuf",
		Purpose: "fast web fuzzer",
	}
}

// Nikto returns the nikto task definition.
func Nikto() Task {
	return Task{
		ID:      5,
		Name:    "nikto",
		Purpose: "web server scanner",
	}
}

// Hydra returns the hydra task definition.
func Hydra() Task {
	return Task{
		ID:      6,
		Name:    "hydra",
		Purpose: "network login cracker",
	}
}

// John returns the John the Ripper task definition.
func John() Task {
	return Task{
		ID:      7,
		Name:    "john",
		Purpose: "password cracker",
	}
}

// Hashcat returns the hashcat task definition.
func Hashcat() Task {
	return Task{
		ID:      8,
		Name:    "hashcat",
		Purpose: "GPU password recovery",
		VersionFn: func(ctx *Context) (string, error) {
			return ctx.Runner.Output("hashcat", "--version")
		},
	}
}
