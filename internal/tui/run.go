// Package tui is the interactive field-positioning screen. A live cheque
// preview fills the terminal; fields are dragged with the mouse or
// nudged from the keyboard, and every release persists through the
// layout engine.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chequeflow/chequeflow/internal/layout"
)

// Config holds everything the positioning screen needs. Engine and
// Calibration must share the same Calibration instance so drag ratios
// track terminal resizes.
type Config struct {
	Engine      *layout.Engine
	Calibration *Calibration
	Warnings    *StatusSink
	Payee       string
	Amount      string
	ChequeNo    string
	Date        string
}

// Run starts the positioning screen and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Engine == nil {
		return fmt.Errorf("layout engine is required")
	}
	if cfg.Calibration == nil {
		return fmt.Errorf("calibration is required")
	}
	if cfg.Warnings == nil {
		cfg.Warnings = NewStatusSink()
	}
	if cfg.Payee == "" {
		cfg.Payee = "ตัวอย่าง ผู้รับเงิน"
	}
	if cfg.Amount == "" {
		cfg.Amount = "1234.50"
	}

	p := tea.NewProgram(newModel(ctx, cfg),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("positioning screen failed: %w", err)
	}
	return nil
}
