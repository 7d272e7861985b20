package calculator

import (
	"fmt"
	"strings"
)

// Operator is an arithmetic operation waiting to be applied
type Operator int

const (
	OperatorNone Operator = iota
	OperatorAdd
	OperatorSubtract
	OperatorMultiply
	OperatorDivide
)

var operatorNames = map[Operator]string{
	OperatorAdd:      "add",
	OperatorSubtract: "subtract",
	OperatorMultiply: "multiply",
	OperatorDivide:   "divide",
}

var operatorSymbols = map[Operator]string{
	OperatorAdd:      "+",
	OperatorSubtract: "-",
	OperatorMultiply: "×",
	OperatorDivide:   "÷",
}

// ParseOperator accepts an operator name, its display symbol, or the ASCII forms "*" and "/"
func ParseOperator(s string) (Operator, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "*":
		return OperatorMultiply, nil
	case "/":
		return OperatorDivide, nil
	}
	for op, name := range operatorNames {
		if s == name || s == operatorSymbols[op] {
			return op, nil
		}
	}
	return OperatorNone, fmt.Errorf("unknown operator: %q", s)
}

// IsSet reports whether op is one of the four arithmetic operators
func (op Operator) IsSet() bool {
	_, ok := operatorNames[op]
	return ok
}

// Name returns the lower-case name, or "" for OperatorNone
func (op Operator) Name() string {
	return operatorNames[op]
}

// Symbol returns the display symbol, or "" for OperatorNone
func (op Operator) Symbol() string {
	return operatorSymbols[op]
}

func (op Operator) String() string {
	if !op.IsSet() {
		return "none"
	}
	return op.Name()
}

// Apply computes a op b. Division by zero follows IEEE 754 and yields ±Inf or NaN.
func (op Operator) Apply(a, b float64) (float64, bool) {
	switch op {
	case OperatorAdd:
		return a + b, true
	case OperatorSubtract:
		return a - b, true
	case OperatorMultiply:
		return a * b, true
	case OperatorDivide:
		return a / b, true
	default:
		return 0, false
	}
}

// MarshalText encodes the operator by name so JSON and YAML snapshots stay readable
func (op Operator) MarshalText() ([]byte, error) {
	return []byte(op.Name()), nil
}

// UnmarshalText decodes an operator name; an empty value decodes to OperatorNone
func (op *Operator) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*op = OperatorNone
		return nil
	}
	parsed, err := ParseOperator(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}
