package errors

import "fmt"

// ConfigurationError reports a structural mistake in a command declaration,
// such as a duplicate option name or a method whose signature does not match
// its declared options. It is raised (via panic) at registration or parser
// construction time, never at dispatch time.
type ConfigurationError struct{ Msg string }

func (e ConfigurationError) Error() string { return e.Msg }

// UnknownCommandError indicates the user selected a command that is not
// registered at the current tree level. Suggestion, if present, is a close
// match the user may have intended.
type UnknownCommandError struct{ Name, Suggestion string }

func (e UnknownCommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown command: %s (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown command: %s", e.Name)
}

// UsageError wraps an argument parsing failure for a specific command.
type UsageError struct {
	Command string
	Msg     string
}

func (e UsageError) Error() string {
	return fmt.Sprintf("%s: error: %s", e.Command, e.Msg)
}

// Helper constructors
func NewConfiguration(format string, args ...any) error {
	return ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}
func NewUnknownCommand(name, suggestion string) error {
	return UnknownCommandError{Name: name, Suggestion: suggestion}
}
func NewUsage(command, format string, args ...any) error {
	return UsageError{Command: command, Msg: fmt.Sprintf(format, args...)}
}
