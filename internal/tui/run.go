package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/greenledger/greenledger/internal/storage"
)

// Run loads the collection and blocks inside the browser until quit.
func Run(ctx context.Context, store *storage.Store) error {
	txns := store.Transactions(ctx)
	cats := store.Categories(ctx)
	set := store.Settings(ctx)

	m := NewModel(txns, cats, set, time.Now)
	program := tea.NewProgram(m, tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
