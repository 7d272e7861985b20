package results

// AppendDigitToolResult represents the result of the append_digit tool
type AppendDigitToolResult struct {
	Message   string              `json:"message"`
	Arguments AppendDigitToolArgs `json:"arguments"`
	State     CalculatorState     `json:"state"`
}

// AppendDigitToolArgs represents the input arguments for the append_digit tool
type AppendDigitToolArgs struct {
	Token string `json:"token"`
}
