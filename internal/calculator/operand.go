package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DecimalPoint is the token that starts the fractional part of an operand
const DecimalPoint = "."

// Operand holds either raw text being entered or the numeric result of an evaluation.
// The zero value is an empty text operand.
type Operand struct {
	text    string
	value   float64
	numeric bool
}

// TextOperand returns an operand holding raw entered text
func TextOperand(text string) Operand {
	return Operand{text: text}
}

// NumberOperand returns an operand holding an evaluated value
func NumberOperand(value float64) Operand {
	return Operand{value: value, numeric: true}
}

// IsEmpty reports whether the operand is empty text
func (o Operand) IsEmpty() bool {
	return !o.numeric && o.text == ""
}

// IsNumeric reports whether the operand holds an evaluated value
func (o Operand) IsNumeric() bool {
	return o.numeric
}

// String returns the text representation of the operand
func (o Operand) String() string {
	if o.numeric {
		return formatNumber(o.value)
	}
	return o.text
}

// Float converts the operand to a number. It fails for empty or malformed text and for NaN.
// Text too large for a float64 converts to ±Inf.
func (o Operand) Float() (float64, bool) {
	if o.numeric {
		return o.value, !math.IsNaN(o.value)
	}
	v, err := ParseNumber(o.text)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ParseNumber parses operand text. Out of range values are kept as the ±Inf or ±0
// strconv rounds them to.
func ParseNumber(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}

// Append returns a text operand with token added to the end of o's text representation
func (o Operand) Append(token string) Operand {
	return TextOperand(o.String() + token)
}

// DropLast returns a text operand without the last character of o's text representation
func (o Operand) DropLast() Operand {
	s := o.String()
	if s == "" {
		return o
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return TextOperand(s[:len(s)-size])
}

// HasDecimalPoint reports whether the text representation already contains a decimal point
func (o Operand) HasDecimalPoint() bool {
	return strings.Contains(o.String(), DecimalPoint)
}

func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
