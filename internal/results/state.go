package results

// StateToolResult represents the result of tools that take no arguments:
// clear, delete_last_char and get_state
type StateToolResult struct {
	Message string          `json:"message"`
	State   CalculatorState `json:"state"`
}
