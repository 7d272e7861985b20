// Package session owns the single calculator instance behind the MCP server.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/pkg/types"
)

var _ types.Session = &Manager{}

// Manager serialises access to the calculator and persists every change
type Manager struct {
	calc  *calculator.Calculator
	store Store
	mu    sync.Mutex
}

// NewManager creates a manager with an empty calculator. A nil store disables persistence.
func NewManager(store Store) *Manager {
	if store == nil {
		store = NopStore{}
	}
	return &Manager{
		calc:  calculator.New(),
		store: store,
	}
}

// Initialize restores the last saved snapshot, if there is one
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot, err := m.store.Load(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("No saved calculator state, starting empty")
			return nil
		}
		return fmt.Errorf("failed to load calculator state: %w", err)
	}

	if err := m.calc.Restore(snapshot); err != nil {
		return fmt.Errorf("failed to restore calculator state: %w", err)
	}

	slog.Info("Restored calculator state",
		"previous_operand", snapshot.PreviousOperand,
		"current_operand", snapshot.CurrentOperand,
		"operator", snapshot.Operator.String())
	return nil
}

func (m *Manager) AppendDigit(ctx context.Context, token string) (calculator.Transition, error) {
	return m.apply(ctx, "append_digit", func(c *calculator.Calculator) bool {
		return c.AppendDigit(token)
	})
}

func (m *Manager) ChooseOperator(ctx context.Context, op calculator.Operator) (calculator.Transition, error) {
	return m.apply(ctx, "choose_operator", func(c *calculator.Calculator) bool {
		return c.ChooseOperator(op)
	})
}

func (m *Manager) DeleteLastChar(ctx context.Context) (calculator.Transition, error) {
	return m.apply(ctx, "delete_last_char", func(c *calculator.Calculator) bool {
		return c.DeleteLastChar()
	})
}

func (m *Manager) Clear(ctx context.Context) (calculator.Transition, error) {
	return m.apply(ctx, "clear", func(c *calculator.Calculator) bool {
		before := c.Snapshot()
		c.Clear()
		return before != c.Snapshot()
	})
}

func (m *Manager) Evaluate(ctx context.Context) (calculator.Transition, error) {
	return m.apply(ctx, "evaluate", func(c *calculator.Calculator) bool {
		return c.Evaluate()
	})
}

// Snapshot returns the current state without changing it
func (m *Manager) Snapshot(ctx context.Context) calculator.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.calc.Snapshot()
}

// apply runs one mutation to completion under the lock. Unchanged state is not saved.
// A failed save still returns the new transition along with the error.
func (m *Manager) apply(ctx context.Context, op string, mutate func(c *calculator.Calculator) bool) (calculator.Transition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.calc.Phase()
	applied := mutate(m.calc)
	transition := calculator.Transition{
		Applied: applied,
		From:    from,
		State:   m.calc.Snapshot(),
	}

	slog.Debug("Calculator updated",
		"op", op,
		"applied", applied,
		"from", from,
		"to", transition.State.Phase)

	if !applied {
		return transition, nil
	}

	if err := m.store.Save(ctx, transition.State); err != nil {
		slog.Error("Failed to save calculator state", "op", op, "error", err)
		return transition, fmt.Errorf("failed to save calculator state: %w", err)
	}

	return transition, nil
}
