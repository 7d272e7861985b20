package types

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
)

// Session defines the calculator operations exposed to MCP tools
type Session interface {
	AppendDigit(ctx context.Context, token string) (calculator.Transition, error)
	ChooseOperator(ctx context.Context, op calculator.Operator) (calculator.Transition, error)
	DeleteLastChar(ctx context.Context) (calculator.Transition, error)
	Clear(ctx context.Context) (calculator.Transition, error)
	Evaluate(ctx context.Context) (calculator.Transition, error)
	Snapshot(ctx context.Context) calculator.Snapshot
}
