package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskNotFound is returned when a requested task or one of its dependencies is not registered.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrCycleDetected is returned when resolving a task revisits a task that is still being resolved.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrMissingArguments is returned when a task parameter has neither a supplied value nor a default.
	ErrMissingArguments = zerr.New("missing arguments")

	// ErrInvalidRegistration is returned when a task is registered with an unsupported shape.
	ErrInvalidRegistration = zerr.New("invalid task registration")

	// ErrTaskExecutionFailed is returned when a task body returns an error.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrInvalidArgument is returned when a task argument is malformed or has the wrong type.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrNoTargetsSpecified is returned when no task name is given to the run command.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrStepFailed is returned when a pipeline step cannot transform a file.
	ErrStepFailed = zerr.New("step failed")

	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandTimeout is returned when an external command exceeds the configured step timeout.
	ErrCommandTimeout = zerr.New("command timed out")

	// ErrFileReadFailed is returned when the content of a real file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrWalkFailed is returned when a directory tree cannot be walked.
	ErrWalkFailed = zerr.New("failed to walk directory")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidSettings is returned when a settings value is out of range.
	ErrInvalidSettings = zerr.New("invalid settings")
)
