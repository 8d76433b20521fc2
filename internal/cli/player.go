package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerLoginCmd())
	cmd.AddCommand(newPlayerStatusCmd())
	cmd.AddCommand(newPlayerHandCmd())
	cmd.AddCommand(newPlayerBalanceCmd())

	return cmd
}

// playerPath builds an API path under the saved player id
func playerPath(suffix string) (string, error) {
	if cfg.PlayerID == "" {
		return "", fmt.Errorf("no player session - run 'bjack player create' or 'bjack player login' first")
	}
	return "/api/v1/players/" + cfg.PlayerID + suffix, nil
}

func newPlayerCreateCmd() *cobra.Command {
	var name, pass string
	var balance int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a player (guest unless --pass is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			req := map[string]any{"username": name}
			if pass != "" {
				req["password"] = pass
			}
			if balance > 0 {
				req["balance"] = balance
			}
			var result AuthResult

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			// Save session for subsequent commands
			if err := cfg.SaveSession(result.SessionToken, result.Player.ID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (registers the account)")
	cmd.Flags().IntVar(&balance, "balance", 0, "Starting balance (default 100)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login with existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" || pass == "" {
				return fmt.Errorf("--user and --pass are required")
			}

			req := map[string]string{
				"username": user,
				"password": pass,
			}
			var result AuthResult

			if err := client.Post("/api/v1/players/login", req, &result); err != nil {
				return err
			}

			// Save session for subsequent commands
			if err := cfg.SaveSession(result.SessionToken, result.Player.ID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newPlayerStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current game status",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := playerPath("")
			if err != nil {
				return err
			}

			var result StatusResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerHandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hand",
		Short: "Show your cards and the visible dealer cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := playerPath("/hand")
			if err != nil {
				return err
			}

			var result HandResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show your balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := playerPath("/balance")
			if err != nil {
				return err
			}

			var result BalanceResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
