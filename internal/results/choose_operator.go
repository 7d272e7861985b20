package results

// ChooseOperatorToolResult represents the result of the choose_operator tool
type ChooseOperatorToolResult struct {
	Message   string                 `json:"message"`
	Arguments ChooseOperatorToolArgs `json:"arguments"`
	State     CalculatorState        `json:"state"`
}

// ChooseOperatorToolArgs represents the input arguments for the choose_operator tool
type ChooseOperatorToolArgs struct {
	Operator string `json:"operator"`
}
