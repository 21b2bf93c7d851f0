package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chequeflow/chequeflow/internal/cli"
	"github.com/chequeflow/chequeflow/internal/model"
	"github.com/chequeflow/chequeflow/internal/words"
)

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <amount>",
		Short: "Spell an amount out in Thai or English cheque words",
		Long: `Convert a numeric amount into the words written on a cheque.

Thai output uses บาท/สตางค์ and closes whole amounts with ถ้วน; English
output closes with "Only". Amounts of a billion baht or more have no
English spelling and come back marked as too large.`,
		Example: `  chequeflow convert 1234.50
  chequeflow convert --lang en 1234.50`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}

	cmd.Flags().String("lang", "th", "Output language (th, en)")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	langFlag, _ := cmd.Flags().GetString("lang")
	lang := model.Language(strings.ToUpper(langFlag))
	if !lang.Valid() {
		return fmt.Errorf("unsupported language %q (use th or en)", langFlag)
	}

	amount := args[0]
	amt, ok := model.ParseAmount(amount)
	if !ok {
		return fmt.Errorf("%q is not a printable amount", amount)
	}

	fmt.Println(words.Convert(amount, lang))         //nolint:forbidigo // User-facing output
	fmt.Println(cli.SubtleStyle.Render(amt.Boxed())) //nolint:forbidigo // User-facing output

	return nil
}
