// Package calculator tracks the two operands and pending operator of a
// four-function calculator driven one button press at a time.
package calculator

// Calculator holds the previous operand, the operand being entered, and the pending operator.
// It is not safe for concurrent use.
type Calculator struct {
	previous Operand
	current  Operand
	operator Operator
}

// New creates an empty calculator
func New() *Calculator {
	c := &Calculator{}
	c.Clear()
	return c
}

// Clear resets both operands and the pending operator
func (c *Calculator) Clear() {
	c.previous = Operand{}
	c.current = Operand{}
	c.operator = OperatorNone
}

// AppendDigit appends token to the current operand. A second decimal point is rejected.
// Other tokens are not validated.
func (c *Calculator) AppendDigit(token string) bool {
	if token == DecimalPoint && c.current.HasDecimalPoint() {
		return false
	}
	c.current = c.current.Append(token)
	return true
}

// DeleteLastChar removes the last character of the current operand
func (c *Calculator) DeleteLastChar() bool {
	if c.current.String() == "" {
		return false
	}
	c.current = c.current.DropLast()
	return true
}

// ChooseOperator sets the pending operator and moves the current operand to the previous one.
// A pending computation is evaluated first so that 2 + 3 + 4 chains left to right.
func (c *Calculator) ChooseOperator(op Operator) bool {
	if c.current.IsEmpty() {
		return false
	}
	if !c.previous.IsEmpty() {
		c.Evaluate()
	}
	c.operator = op
	c.previous = c.current
	c.current = Operand{}
	return true
}

// Evaluate applies the pending operator to both operands and stores the result as the
// current operand. With an unparseable operand or no pending operator it leaves the
// state untouched, including the pending operator.
func (c *Calculator) Evaluate() bool {
	prev, ok := c.previous.Float()
	if !ok {
		return false
	}
	curr, ok := c.current.Float()
	if !ok {
		return false
	}
	result, ok := c.operator.Apply(prev, curr)
	if !ok {
		return false
	}
	c.current = NumberOperand(result)
	c.previous = Operand{}
	c.operator = OperatorNone
	return true
}

// Previous returns the text of the previous operand
func (c *Calculator) Previous() string {
	return c.previous.String()
}

// Current returns the text of the current operand
func (c *Calculator) Current() string {
	return c.current.String()
}

// CurrentValue returns the current operand as a number, if it parses
func (c *Calculator) CurrentValue() (float64, bool) {
	return c.current.Float()
}

// Operator returns the pending operator
func (c *Calculator) Operator() Operator {
	return c.operator
}

// Phase returns the current phase of the input cycle
func (c *Calculator) Phase() Phase {
	return phaseOf(c.previous, c.current, c.operator)
}
