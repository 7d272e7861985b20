package results

// EvaluateToolResult represents the result of the evaluate tool
type EvaluateToolResult struct {
	Message   string          `json:"message"`
	Evaluated bool            `json:"evaluated"`
	State     CalculatorState `json:"state"`
}
