package domain

// Command describes an external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds "KEY=VALUE" overrides applied on top of the inherited environment.
	Env []string
	// Stdin is fed to the process when non-empty.
	Stdin string
}

// ProcessResult is the outcome of a process that ran to completion.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}
