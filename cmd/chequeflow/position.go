package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chequeflow/chequeflow/internal/layout"
	"github.com/chequeflow/chequeflow/internal/tui"
)

func positionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position",
		Short: "Interactively drag cheque fields into place",
		Long: `Open a live cheque preview in the terminal. Drag fields with the mouse
or nudge them with the arrow keys; every release saves the positions
for the active user. Sample payee and amount text can be supplied to
position against realistic content.`,
		Example: `  chequeflow position
  chequeflow position --payee "บริษัท ตัวอย่าง จำกัด" --amount 98765.43`,
		RunE: runPosition,
	}

	cmd.Flags().String("payee", "", "Sample payee shown while positioning")
	cmd.Flags().String("amount", "", "Sample amount shown while positioning")
	cmd.Flags().String("date", "", "Sample cheque date (YYYY-MM-DD)")

	return cmd
}

func runPosition(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	payee, _ := cmd.Flags().GetString("payee")
	amount, _ := cmd.Flags().GetString("amount")
	date, _ := cmd.Flags().GetString("date")

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeStorage(store)

	user, err := requireUser(ctx, store)
	if err != nil {
		return err
	}

	// The engine and the screen share one calibration so drag ratios
	// track terminal resizes; persistence warnings land in the screen's
	// status line instead of stderr.
	cal := tui.NewCalibration()
	warnings := tui.NewStatusSink()
	engine := layout.NewEngine(store,
		layout.WithCalibrator(cal),
		layout.WithWarnFunc(warnings.Warn),
	)
	if err := engine.LoadForUser(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}

	return tui.Run(ctx, tui.Config{
		Engine:      engine,
		Calibration: cal,
		Warnings:    warnings,
		Payee:       payee,
		Amount:      amount,
		Date:        date,
	})
}
