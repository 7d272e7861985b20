package calculator

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// enter presses each rune of digits as its own button
func enter(c *Calculator, digits string) {
	for _, r := range digits {
		c.AppendDigit(string(r))
	}
}

// compute runs a single "a op b =" sequence and returns the current operand
func compute(t *testing.T, a string, op Operator, b string) *Calculator {
	t.Helper()
	c := New()
	enter(c, a)
	require.True(t, c.ChooseOperator(op))
	enter(c, b)
	require.True(t, c.Evaluate())
	return c
}

func TestNew(t *testing.T) {
	c := New()
	assert.Equal(t, "", c.Previous())
	assert.Equal(t, "", c.Current())
	assert.Equal(t, OperatorNone, c.Operator())
	assert.Equal(t, PhaseEmpty, c.Phase())
}

func TestAppendDigit(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expected string
	}{
		{
			name:     "Digits concatenate",
			tokens:   []string{"1", "2", "3"},
			expected: "123",
		},
		{
			name:     "Single decimal point",
			tokens:   []string{"1", ".", "5"},
			expected: "1.5",
		},
		{
			name:     "Second decimal point rejected",
			tokens:   []string{"1", ".", "5", ".", "2"},
			expected: "1.52",
		},
		{
			name:     "Two decimal points in a row",
			tokens:   []string{".", "."},
			expected: ".",
		},
		{
			name:     "Leading zeros are kept as entered",
			tokens:   []string{"0", "0", "7"},
			expected: "007",
		},
		{
			name:     "Non-digit tokens are not validated",
			tokens:   []string{"4", "x"},
			expected: "4x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for _, token := range tt.tokens {
				c.AppendDigit(token)
			}
			assert.Equal(t, tt.expected, c.Current())
		})
	}
}

func TestAppendDigit_RejectedDecimalReportsNoChange(t *testing.T) {
	c := New()
	assert.True(t, c.AppendDigit("."))
	assert.False(t, c.AppendDigit("."))
	assert.Equal(t, ".", c.Current())
}

func TestDeleteLastChar(t *testing.T) {
	for _, digits := range []string{"7", "42", "3.14", "1000", "0.", "9876543210"} {
		t.Run(digits, func(t *testing.T) {
			c := New()
			enter(c, digits)
			assert.True(t, c.DeleteLastChar())
			assert.Equal(t, digits[:len(digits)-1], c.Current())
		})
	}
}

func TestDeleteLastChar_Empty(t *testing.T) {
	c := New()
	assert.False(t, c.DeleteLastChar())
	assert.Equal(t, "", c.Current())
	assert.Equal(t, PhaseEmpty, c.Phase())
}

func TestDeleteLastChar_OnResultTurnsItIntoText(t *testing.T) {
	c := compute(t, "6", OperatorMultiply, "7")
	require.Equal(t, PhaseEvaluated, c.Phase())

	assert.True(t, c.DeleteLastChar())
	assert.Equal(t, "4", c.Current())
	assert.Equal(t, PhaseEnteringFirst, c.Phase())
}

func TestClear(t *testing.T) {
	setups := map[string]func(c *Calculator){
		"empty":           func(c *Calculator) {},
		"entering first":  func(c *Calculator) { enter(c, "12") },
		"operator chosen": func(c *Calculator) {
			enter(c, "12")
			c.ChooseOperator(OperatorAdd)
		},
		"entering second": func(c *Calculator) {
			enter(c, "12")
			c.ChooseOperator(OperatorAdd)
			enter(c, "3")
		},
		"evaluated": func(c *Calculator) {
			enter(c, "12")
			c.ChooseOperator(OperatorAdd)
			enter(c, "3")
			c.Evaluate()
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			c := New()
			setup(c)
			c.Clear()
			assert.Equal(t, Snapshot{Phase: PhaseEmpty}, c.Snapshot())
		})
	}
}

func TestChooseOperator_EmptyCurrentIsNoop(t *testing.T) {
	c := New()
	before := c.Snapshot()
	assert.False(t, c.ChooseOperator(OperatorAdd))
	assert.Equal(t, before, c.Snapshot())

	enter(c, "5")
	require.True(t, c.ChooseOperator(OperatorSubtract))
	before = c.Snapshot()
	assert.False(t, c.ChooseOperator(OperatorMultiply))
	assert.Equal(t, before, c.Snapshot())
	assert.Equal(t, OperatorSubtract, c.Operator())
}

func TestChooseOperator_MovesCurrentToPrevious(t *testing.T) {
	c := New()
	enter(c, "12.5")
	require.True(t, c.ChooseOperator(OperatorDivide))

	assert.Equal(t, "12.5", c.Previous())
	assert.Equal(t, "", c.Current())
	assert.Equal(t, OperatorDivide, c.Operator())
	assert.Equal(t, PhaseOperatorChosen, c.Phase())
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		op       Operator
		b        string
		expected float64
	}{
		{name: "Add", a: "2", op: OperatorAdd, b: "3", expected: 5},
		{name: "Divide", a: "10", op: OperatorDivide, b: "4", expected: 2.5},
		{name: "Multiply", a: "6", op: OperatorMultiply, b: "7", expected: 42},
		{name: "Subtract", a: "5", op: OperatorSubtract, b: "9", expected: -4},
		{name: "Decimals", a: "1.5", op: OperatorMultiply, b: "2", expected: 3},
		{name: "Trailing decimal point", a: "3.", op: OperatorAdd, b: ".5", expected: 3.5},
		{name: "Operand beyond float64 range", a: strings.Repeat("9", 400), op: OperatorAdd, b: "1", expected: math.Inf(1)},
		{name: "Negative overflow", a: "0", op: OperatorSubtract, b: strings.Repeat("9", 400), expected: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := compute(t, tt.a, tt.op, tt.b)
			value, ok := c.CurrentValue()
			require.True(t, ok)
			assert.Equal(t, tt.expected, value)
			assert.Equal(t, "", c.Previous())
			assert.Equal(t, OperatorNone, c.Operator())
			assert.Equal(t, PhaseEvaluated, c.Phase())
		})
	}
}

func TestEvaluate_DivideByZero(t *testing.T) {
	c := compute(t, "5", OperatorDivide, "0")
	value, ok := c.CurrentValue()
	require.True(t, ok)
	assert.True(t, math.IsInf(value, 1))
	assert.Equal(t, "Infinity", c.Current())

	// The sentinel propagates into the next operation.
	require.True(t, c.ChooseOperator(OperatorAdd))
	enter(c, "1")
	require.True(t, c.Evaluate())
	value, _ = c.CurrentValue()
	assert.True(t, math.IsInf(value, 1))
}

func TestEvaluate_ZeroDividedByZero(t *testing.T) {
	c := compute(t, "0", OperatorDivide, "0")
	assert.Equal(t, "NaN", c.Current())
	_, ok := c.CurrentValue()
	assert.False(t, ok)

	// NaN does not parse as an operand, so a following evaluation is a no-op.
	require.True(t, c.ChooseOperator(OperatorAdd))
	enter(c, "1")
	before := c.Snapshot()
	assert.False(t, c.Evaluate())
	assert.Equal(t, before, c.Snapshot())
}

func TestEvaluate_IncompleteOperandsAreNoop(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Calculator)
	}{
		{
			name:  "Empty calculator",
			setup: func(c *Calculator) {},
		},
		{
			name:  "First operand only",
			setup: func(c *Calculator) { enter(c, "8") },
		},
		{
			name:  "Operator chosen without second operand",
			setup: func(c *Calculator) {
				enter(c, "8")
				c.ChooseOperator(OperatorAdd)
			},
		},
		{
			name:  "Malformed second operand",
			setup: func(c *Calculator) {
				enter(c, "8")
				c.ChooseOperator(OperatorAdd)
				enter(c, ".")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.setup(c)
			before := c.Snapshot()
			assert.False(t, c.Evaluate())
			assert.Equal(t, before, c.Snapshot())
		})
	}
}

func TestEvaluate_NoopKeepsPendingOperator(t *testing.T) {
	c := New()
	enter(c, "8")
	c.ChooseOperator(OperatorMultiply)
	c.Evaluate()
	assert.Equal(t, OperatorMultiply, c.Operator())
	assert.Equal(t, "8", c.Previous())
}

func TestChaining(t *testing.T) {
	c := New()
	c.AppendDigit("2")
	c.ChooseOperator(OperatorAdd)
	c.AppendDigit("3")
	c.ChooseOperator(OperatorSubtract)

	assert.Equal(t, "5", c.Previous())
	assert.Equal(t, OperatorSubtract, c.Operator())

	c.AppendDigit("1")
	require.True(t, c.Evaluate())
	assert.Equal(t, "4", c.Current())
}

func TestChaining_HugeOperandCollapses(t *testing.T) {
	c := New()
	enter(c, strings.Repeat("9", 400))
	c.ChooseOperator(OperatorAdd)
	enter(c, "1")
	require.True(t, c.ChooseOperator(OperatorMultiply))

	assert.Equal(t, "Infinity", c.Previous())
	assert.Equal(t, OperatorMultiply, c.Operator())
	assert.Equal(t, PhaseOperatorChosen, c.Phase())
}

func TestChaining_ThreeAdditions(t *testing.T) {
	c := New()
	enter(c, "2")
	c.ChooseOperator(OperatorAdd)
	enter(c, "3")
	c.ChooseOperator(OperatorAdd)
	enter(c, "4")
	c.Evaluate()
	assert.Equal(t, "9", c.Current())
}

func TestAppendDigit_AfterEvaluateExtendsResult(t *testing.T) {
	c := compute(t, "2", OperatorAdd, "3")
	c.AppendDigit("1")
	assert.Equal(t, "51", c.Current())
	assert.Equal(t, PhaseEnteringFirst, c.Phase())
}

func TestPhaseTransitions(t *testing.T) {
	c := New()
	assert.Equal(t, PhaseEmpty, c.Phase())

	c.AppendDigit("9")
	assert.Equal(t, PhaseEnteringFirst, c.Phase())

	c.ChooseOperator(OperatorSubtract)
	assert.Equal(t, PhaseOperatorChosen, c.Phase())

	c.AppendDigit("4")
	assert.Equal(t, PhaseEnteringSecond, c.Phase())

	c.ChooseOperator(OperatorAdd)
	assert.Equal(t, PhaseOperatorChosen, c.Phase())
	assert.Equal(t, "5", c.Previous())

	c.AppendDigit("1")
	c.Evaluate()
	assert.Equal(t, PhaseEvaluated, c.Phase())

	c.Clear()
	assert.Equal(t, PhaseEmpty, c.Phase())
}

func TestEvaluate_ResultTextIsPlainDecimal(t *testing.T) {
	c := compute(t, "1", OperatorDivide, "10000000")
	assert.Equal(t, "0.0000001", c.Current())

	c = compute(t, "1"+strings.Repeat("0", 25), OperatorMultiply, "1")
	assert.Equal(t, "1"+strings.Repeat("0", 25), c.Current())
}
