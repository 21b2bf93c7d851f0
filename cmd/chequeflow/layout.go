package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chequeflow/chequeflow/internal/cli"
	"github.com/chequeflow/chequeflow/internal/common"
	"github.com/chequeflow/chequeflow/internal/layout"
	"github.com/chequeflow/chequeflow/internal/model"
)

func layoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect and adjust the active user's field positions",
		Long: `Every printable field sits at a millimeter coordinate on the cheque.
These commands show and change the active user's saved positions; for
interactive dragging use 'chequeflow position'.`,
	}

	cmd.AddCommand(layoutShowCmd())
	cmd.AddCommand(layoutSetCmd())
	cmd.AddCommand(layoutPresetCmd())
	cmd.AddCommand(layoutResetCmd())
	cmd.AddCommand(layoutOffsetCmd())
	cmd.AddCommand(layoutLangCmd())
	cmd.AddCommand(layoutFontCmd())

	return cmd
}

// withEngine loads the active user's layout engine and hands it to fn.
func withEngine(cmd *cobra.Command, fn func(engine *layout.Engine) error) error {
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

	engine := layout.NewEngine(store, layout.WithWarnFunc(warnToLog))
	if err := engine.LoadForUser(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}

	return fn(engine)
}

func layoutShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved positions, offset, language, and font",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEngine(cmd, func(engine *layout.Engine) error {
				cfg := engine.Config()

				fmt.Println(cli.FormatTitle(layout.PresetLabel(cfg.PresetID))) //nolint:forbidigo // User-facing output

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "FIELD\tX (mm)\tY (mm)")
				for _, id := range model.AllFields {
					pos := cfg.Layout[id]
					fmt.Fprintf(w, "%s\t%.1f\t%.1f\n", id, pos.X, pos.Y)
				}
				if err := w.Flush(); err != nil {
					return err
				}

				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf( //nolint:forbidigo // User-facing output
					"offset %.1f, %.1f mm · language %s · font %s %dpt",
					cfg.Offset.X, cfg.Offset.Y, cfg.Language, cfg.Font.Family, cfg.Font.Size)))
				return nil
			})
		},
	}
}

func layoutSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <x-mm> <y-mm>",
		Short: "Place a field at exact millimeter coordinates",
		Example: `  chequeflow layout set payee 20 26
  chequeflow layout set amountNumber 125.5 35`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid x coordinate %q", args[1])
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid y coordinate %q", args[2])
			}

			return withEngine(cmd, func(engine *layout.Engine) error {
				id := model.FieldID(args[0])
				if err := engine.SetFieldPosition(cmd.Context(), id, model.Position{X: x, Y: y}); err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s placed at %.1f, %.1f mm", id, x, y))) //nolint:forbidigo // User-facing output
				return nil
			})
		},
	}
}

func layoutPresetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preset [id]",
		Short: "List bank presets, or switch to one",
		Long: `Without an argument, list the shipped bank presets. With an argument,
replace the saved positions with that bank's defaults.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tBANK")
				for _, p := range layout.Presets() {
					fmt.Fprintf(w, "%s\t%s\n", p.ID, p.Label)
				}
				return w.Flush()
			}

			id := args[0]
			if _, ok := layout.PresetByID(id); !ok {
				return fmt.Errorf("%w: %s", common.ErrUnknownPreset, id)
			}

			return withEngine(cmd, func(engine *layout.Engine) error {
				engine.SelectPreset(cmd.Context(), id)
				fmt.Println(cli.FormatSuccess("switched to " + layout.PresetLabel(id))) //nolint:forbidigo // User-facing output
				return nil
			})
		},
	}
}

func layoutResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the active preset's default positions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEngine(cmd, func(engine *layout.Engine) error {
				engine.ResetToPresetDefault(cmd.Context())
				fmt.Println(cli.FormatSuccess("positions and offset reset to bank defaults")) //nolint:forbidigo // User-facing output
				return nil
			})
		},
	}
}

func layoutOffsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "offset <x-mm> <y-mm>",
		Short: "Shift the whole cheque to compensate for printer margins",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid x offset %q", args[0])
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid y offset %q", args[1])
			}

			return withEngine(cmd, func(engine *layout.Engine) error {
				engine.ApplyGlobalOffset(cmd.Context(), model.Offset{X: x, Y: y})
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("offset set to %.1f, %.1f mm", x, y))) //nolint:forbidigo // User-facing output
				return nil
			})
		},
	}
}

func layoutLangCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "lang <th|en>",
		Short:     "Set the cheque language",
		ValidArgs: []string{"th", "en"},
		Args:      cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := model.Language(strings.ToUpper(args[0]))
			if !lang.Valid() {
				return fmt.Errorf("unsupported language %q (use th or en)", args[0])
			}

			return withEngine(cmd, func(engine *layout.Engine) error {
				engine.SetLanguage(cmd.Context(), lang)
				fmt.Println(cli.FormatSuccess("language set to " + args[0])) //nolint:forbidigo // User-facing output
				return nil
			})
		},
	}
}

func layoutFontCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "font",
		Short: "Set the cheque typeface",
		RunE: func(cmd *cobra.Command, _ []string) error {
			family, _ := cmd.Flags().GetString("family")
			size, _ := cmd.Flags().GetInt("size")
			bold, _ := cmd.Flags().GetBool("bold")

			return withEngine(cmd, func(engine *layout.Engine) error {
				font := engine.Config().Font
				if family != "" {
					font.Family = family
				}
				if size != 0 {
					font.Size = size
				}
				font.Bold = bold

				engine.SetFont(cmd.Context(), font)
				applied := engine.Config().Font
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("font set to %s %dpt", applied.Family, applied.Size))) //nolint:forbidigo // User-facing output
				return nil
			})
		},
	}

	cmd.Flags().String("family", "", "Font family (e.g. Sarabun, Angsana New)")
	cmd.Flags().Int("size", 0, "Font size in points")
	cmd.Flags().Bool("bold", false, "Bold text")

	return cmd
}
