package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/chequeflow/chequeflow/internal/cli"
	"github.com/chequeflow/chequeflow/internal/identity"
)

// loginSpinnerDelay is the artificial pause applied to mock logins.
const loginSpinnerDelay = 800 * time.Millisecond

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and switch the active user",
		Long: `Log in with an email address or a demo social provider. Each user gets
their own print history and saved field positions.

No passwords are involved: identity here only namespaces local data.`,
	}

	cmd.AddCommand(loginEmailCmd())
	cmd.AddCommand(loginSocialCmd())

	return cmd
}

func loginEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "email <address>",
		Short:   "Log in with an email address",
		Example: `  chequeflow login email somchai@example.co.th`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			user, err := identity.NewManager(store, identity.WithLoginDelay(loginSpinnerDelay)).LoginEmail(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("logged in as %s (%s)", user.DisplayName, user.ID))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func loginSocialCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "social <provider>",
		Short:     "Log in with a demo social provider",
		ValidArgs: []string{"facebook", "line", "apple"},
		Args:      cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			user, err := identity.NewManager(store, identity.WithLoginDelay(loginSpinnerDelay)).LoginSocial(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("logged in as %s (%s)", user.DisplayName, user.ID))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			if err := identity.NewManager(store).Logout(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatInfo("logged out")) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active user",
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

			fmt.Printf("%s (%s via %s)\n", user.DisplayName, user.ID, user.Provider) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List every user known to this machine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			users, err := identity.NewManager(store).Users(ctx)
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Println(cli.InfoStyle.Render("No users yet. Use 'chequeflow login' to create one.")) //nolint:forbidigo // User-facing output
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPROVIDER\tEMAIL")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.DisplayName, u.Provider, u.Email)
			}
			return w.Flush()
		},
	}
}
