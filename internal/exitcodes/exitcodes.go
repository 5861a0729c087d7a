package exitcodes

// Exit codes for the reclaim CLI
// These codes form the operational contract with wrapper scripts
const (
	Success       = 0 // Successful execution (including operator quit)
	InvalidConfig = 2 // Configuration file or argument invalid
	RuntimeError  = 4 // Runtime error during execution
)
