package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chequeflow/chequeflow/internal/cli"
	"github.com/chequeflow/chequeflow/internal/history"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage the active user's print history",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyVoidCmd())
	cmd.AddCommand(historyClearCmd())
	cmd.AddCommand(historyExportCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List printed cheques, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			user, err := requireUser(ctx, store)
			if err != nil {
				return err
			}

			records, err := history.NewService(store).List(ctx, user.ID)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println(cli.InfoStyle.Render("No cheques printed yet.")) //nolint:forbidigo // User-facing output
				return nil
			}

			fmt.Println(cli.FormatTitle("Print History")) //nolint:forbidigo // User-facing output

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPRINTED\tCHEQUE NO\tBANK\tPAYEE\tAMOUNT\tSTATUS")
			for _, r := range records {
				chequeNo := r.ChequeNo
				if chequeNo == "" {
					chequeNo = "-"
				}
				line := fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\t%s",
					r.ID, r.PrintDate, chequeNo, r.Bank, r.Payee, r.Amount, r.Status)
				if r.Voided() {
					line = cli.VoidStyle.Render(line)
				}
				fmt.Fprintln(w, line)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("net total: %.2f baht", history.NetTotal(records)))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func historyVoidCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "void <record-id>",
		Aliases: []string{"restore"},
		Short:   "Void a printed cheque, or restore a voided one",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			user, err := requireUser(ctx, store)
			if err != nil {
				return err
			}

			status, err := history.NewService(store).ToggleStatus(ctx, user.ID, args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("record %s is now %s", args[0], status))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func historyClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the active user's entire history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
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

			if !assumeYes {
				ok, promptErr := cli.NewPrompter(os.Stdin, os.Stdout).
					Confirm(ctx, "Delete all history for "+user.DisplayName+"?", false)
				if promptErr != nil {
					return promptErr
				}
				if !ok {
					fmt.Println(cli.FormatInfo("nothing deleted")) //nolint:forbidigo // User-facing output
					return nil
				}
			}

			if err := history.NewService(store).Clear(ctx, user.ID); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("history cleared")) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func historyExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the history as CSV for spreadsheets",
		Long: `Write the print history as UTF-8 CSV with Thai column headers. The file
starts with a byte order mark so Excel renders the Thai text correctly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			output, _ := cmd.Flags().GetString("output")

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			user, err := requireUser(ctx, store)
			if err != nil {
				return err
			}

			records, err := history.NewService(store).List(ctx, user.ID)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer func() {
				if closeErr := f.Close(); closeErr != nil {
					fmt.Fprintln(os.Stderr, cli.FormatError("failed to close export file: "+closeErr.Error()))
				}
			}()

			if err := history.ExportCSV(f, records, true); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("exported %d records to %s", len(records), output))) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "cheque_history.csv", "Destination CSV file")

	return cmd
}
