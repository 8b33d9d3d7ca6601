package types

// Limit constants used across the codebase. Color constants stay here so the
// agent and CLI render consistently.
const (
	// MaxAgentIterations is the maximum number of agent loop turns per input.
	MaxAgentIterations = 10
)

// Terminal color escape codes.
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorGray   = "\033[90m"
)
