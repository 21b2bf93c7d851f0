package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chequeflow/chequeflow/internal/cli"
	"github.com/chequeflow/chequeflow/internal/history"
	"github.com/chequeflow/chequeflow/internal/layout"
	"github.com/chequeflow/chequeflow/internal/model"
	"github.com/chequeflow/chequeflow/internal/render"
	"github.com/chequeflow/chequeflow/internal/words"
)

// Print pacing. The settle delay lets the terminal finish drawing before
// the page is considered printed; the history delay matches the pause
// the print dialog used to need before the record was committed.
const (
	printSettleDelay   = 50 * time.Millisecond
	historyPersistWait = 1 * time.Second
)

func printCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print a cheque with the active user's saved layout",
		Long: `Render a cheque using the active user's field positions, spell the
amount out in the configured language, and record it in the print
history.

A cheque number that was already printed on the same bank prompts for
confirmation before printing again.`,
		Example: `  chequeflow print --payee "ACME Supplies Co., Ltd." --amount 1500.50
  chequeflow print --payee "Somchai J." --amount 99 --cheque-no 100234 --date 2026-09-01`,
		RunE: runPrint,
	}

	cmd.Flags().String("payee", "", "Payee name (required)")
	cmd.Flags().String("amount", "", "Amount in baht, e.g. 1234.50 (required)")
	cmd.Flags().String("cheque-no", "", "Cheque number for duplicate detection")
	cmd.Flags().String("date", time.Now().Format("2006-01-02"), "Cheque date (YYYY-MM-DD)")
	cmd.Flags().Bool("ac-payee", true, "Print the A/C PAYEE ONLY crossing")
	cmd.Flags().Bool("bearer-strike", true, "Strike out 'or bearer'")
	cmd.Flags().Bool("preview", false, "Show the cheque guides instead of text-only output")
	cmd.Flags().BoolP("yes", "y", false, "Skip the duplicate confirmation prompt")

	return cmd
}

func runPrint(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	payee, _ := cmd.Flags().GetString("payee")
	amount, _ := cmd.Flags().GetString("amount")
	chequeNo, _ := cmd.Flags().GetString("cheque-no")
	date, _ := cmd.Flags().GetString("date")
	acPayee, _ := cmd.Flags().GetBool("ac-payee")
	noBearer, _ := cmd.Flags().GetBool("bearer-strike")
	preview, _ := cmd.Flags().GetBool("preview")
	assumeYes, _ := cmd.Flags().GetBool("yes")

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeStorage(store)

	user, err := requireUser(ctx, store)
	if err != nil {
		return err
	}

	engine := layout.NewEngine(store, layout.WithWarnFunc(warnToLog))
	if err := engine.LoadForUser(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}
	cfg := engine.Config()

	rec := model.ChequeRecord{
		ChequeNo: chequeNo,
		Date:     date,
		Payee:    payee,
		Amount:   amount,
		Language: cfg.Language,
		Bank:     layout.PresetLabel(cfg.PresetID),
		ACPayee:  acPayee,
		NoBearer: noBearer,
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	hist := history.NewService(store)
	dup, err := hist.FindDuplicate(ctx, user.ID, chequeNo, rec.Bank)
	if err != nil {
		return err
	}
	if dup != nil && !assumeYes {
		fmt.Println(cli.FormatWarning(fmt.Sprintf( //nolint:forbidigo // User-facing output
			"cheque %s was already printed on %s for %s", dup.ChequeNo, dup.PrintDate, dup.Payee)))

		ok, promptErr := cli.NewPrompter(os.Stdin, os.Stdout).Confirm(ctx, "Print it again?", false)
		if promptErr != nil {
			return promptErr
		}
		if !ok {
			fmt.Println(cli.FormatInfo("print cancelled")) //nolint:forbidigo // User-facing output
			return nil
		}
	}

	mode := render.ModeTextOnly
	if preview {
		mode = render.ModePreview
	}

	amt, _ := model.ParseAmount(amount)
	face := render.Cheque{
		Layout:     cfg.Layout,
		Offset:     cfg.Offset,
		Language:   cfg.Language,
		BankLabel:  rec.Bank,
		Date:       model.SplitDate(date, cfg.Language),
		Payee:      payee,
		AmountText: words.Convert(amount, cfg.Language),
		AmountBox:  amt.Boxed(),
		ACPayee:    acPayee,
		NoBearer:   noBearer,
	}

	r := render.NewRenderer(render.ChequeWidthMM, mode)
	fmt.Println(r.Render(face)) //nolint:forbidigo // User-facing output

	// Let the output settle before declaring the page printed.
	time.Sleep(printSettleDelay)
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("printed %s to %s", amt.Boxed(), payee))) //nolint:forbidigo // User-facing output

	select {
	case <-time.After(historyPersistWait):
	case <-ctx.Done():
		return ctx.Err()
	}

	saved, err := hist.Append(ctx, user.ID, rec)
	if err != nil {
		return fmt.Errorf("cheque printed but not recorded: %w", err)
	}
	fmt.Println(cli.SubtleStyle.Render("recorded as " + saved.ID)) //nolint:forbidigo // User-facing output

	return nil
}
