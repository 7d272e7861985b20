package results

import "github.com/averycrespi/calculator-mcp/internal/calculator"

// CalculatorState represents the calculator state returned by every tool
type CalculatorState struct {
	PreviousOperand string  `json:"previous_operand"`
	CurrentOperand  string  `json:"current_operand"`
	PendingOperator string  `json:"pending_operator,omitempty"`
	Phase           string  `json:"phase"`
	Display         Display `json:"display"`
}

// NewCalculatorState converts a snapshot into its tool result representation
func NewCalculatorState(snapshot calculator.Snapshot) CalculatorState {
	return CalculatorState{
		PreviousOperand: snapshot.PreviousOperand,
		CurrentOperand:  snapshot.CurrentOperand,
		PendingOperator: snapshot.Operator.Name(),
		Phase:           snapshot.Phase.String(),
		Display:         NewDisplay(snapshot),
	}
}
