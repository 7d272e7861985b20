package calculator

import (
	"fmt"
	"strconv"
)

// Snapshot is a serialisable copy of the calculator state
type Snapshot struct {
	PreviousOperand  string   `json:"previous_operand" yaml:"previous_operand"`
	PreviousIsResult bool     `json:"previous_is_result,omitempty" yaml:"previous_is_result,omitempty"`
	CurrentOperand   string   `json:"current_operand" yaml:"current_operand"`
	CurrentIsResult  bool     `json:"current_is_result,omitempty" yaml:"current_is_result,omitempty"`
	Operator         Operator `json:"operator,omitempty" yaml:"operator,omitempty"`
	Phase            Phase    `json:"phase" yaml:"phase"`
}

// Transition describes the outcome of one mutation
type Transition struct {
	Applied bool
	From    Phase
	State   Snapshot
}

// Snapshot captures the current state
func (c *Calculator) Snapshot() Snapshot {
	return Snapshot{
		PreviousOperand:  c.previous.String(),
		PreviousIsResult: c.previous.IsNumeric(),
		CurrentOperand:   c.current.String(),
		CurrentIsResult:  c.current.IsNumeric(),
		Operator:         c.operator,
		Phase:            c.Phase(),
	}
}

// Restore replaces the state with s. The phase recorded in s is ignored and re-derived.
func (c *Calculator) Restore(s Snapshot) error {
	previous, err := restoreOperand(s.PreviousOperand, s.PreviousIsResult)
	if err != nil {
		return fmt.Errorf("previous operand: %w", err)
	}
	current, err := restoreOperand(s.CurrentOperand, s.CurrentIsResult)
	if err != nil {
		return fmt.Errorf("current operand: %w", err)
	}
	if s.Operator != OperatorNone && !s.Operator.IsSet() {
		return fmt.Errorf("invalid operator: %d", int(s.Operator))
	}

	c.previous = previous
	c.current = current
	c.operator = s.Operator
	return nil
}

func restoreOperand(text string, numeric bool) (Operand, error) {
	if !numeric {
		return TextOperand(text), nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Operand{}, fmt.Errorf("invalid result value %q: %w", text, err)
	}
	return NumberOperand(v), nil
}
