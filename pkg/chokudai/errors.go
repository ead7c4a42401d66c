package chokudai

import "fmt"

// ConfigurationError reports a search configuration no search can run
// with: a non-positive beam width or depth, or a root state that is
// already terminal. Not recoverable at the engine level.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "chokudai: invalid configuration: " + e.Reason
}

func errConfig(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// StuckStateError reports a non-terminal state with no legal actions.
// This indicates a malformed GameState implementation, not an engine bug,
// and is surfaced immediately without retry.
type StuckStateError struct{}

func (e *StuckStateError) Error() string {
	return "chokudai: non-terminal state has no legal actions"
}
