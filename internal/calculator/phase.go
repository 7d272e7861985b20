package calculator

// Phase is the position of the calculator in its input cycle
type Phase string

const (
	PhaseEmpty          Phase = "empty"
	PhaseEnteringFirst  Phase = "entering_first"
	PhaseOperatorChosen Phase = "operator_chosen"
	PhaseEnteringSecond Phase = "entering_second"
	PhaseEvaluated      Phase = "evaluated"
)

func (p Phase) String() string {
	return string(p)
}

// phaseOf derives the phase from the operand/operator state; it is never stored
func phaseOf(previous, current Operand, operator Operator) Phase {
	if operator.IsSet() {
		if current.IsEmpty() {
			return PhaseOperatorChosen
		}
		return PhaseEnteringSecond
	}
	switch {
	case current.IsNumeric():
		return PhaseEvaluated
	case !current.IsEmpty():
		return PhaseEnteringFirst
	case !previous.IsEmpty():
		// Only reachable through Restore with a hand-edited snapshot.
		return PhaseEnteringFirst
	default:
		return PhaseEmpty
	}
}
