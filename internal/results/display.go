package results

import (
	"math"
	"strconv"
	"strings"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
)

// Display represents the two lines of a calculator screen
type Display struct {
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

// NewDisplay formats a snapshot for a two-line screen. The previous line is only
// shown while an operator is pending.
func NewDisplay(snapshot calculator.Snapshot) Display {
	display := Display{
		Current: FormatOperand(snapshot.CurrentOperand),
	}
	if snapshot.Operator.IsSet() {
		display.Previous = FormatOperand(snapshot.PreviousOperand) + " " + snapshot.Operator.Symbol()
	}
	return display
}

// FormatOperand groups the integer part of an operand with thousands separators.
// The fractional part, including a lone trailing decimal point, is kept as entered.
func FormatOperand(operand string) string {
	intPart, fracPart, hasPoint := strings.Cut(operand, calculator.DecimalPoint)

	intDisplay := ""
	if v, err := calculator.ParseNumber(intPart); err == nil && !math.IsNaN(v) {
		intDisplay = groupThousands(v)
	}

	if hasPoint {
		return intDisplay + calculator.DecimalPoint + fracPart
	}
	return intDisplay
}

func groupThousands(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}

	digits := strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
