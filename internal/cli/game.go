package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game table commands",
	}

	cmd.AddCommand(newGameBetCmd())
	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameHitCmd())
	cmd.AddCommand(newGameStandCmd())
	cmd.AddCommand(newGameDoubleCmd())
	cmd.AddCommand(newGameSplitCmd())
	cmd.AddCommand(newGameResetCmd())

	return cmd
}

func newGameBetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bet <amount>",
		Short: "Place a bet for the next game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			path, err := playerPath("/bet")
			if err != nil {
				return err
			}

			req := map[string]int{"amount": amount}
			var result BetResult
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Deal a new game with the placed bet",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := playerPath("/start")
			if err != nil {
				return err
			}

			var result StartResult
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameHitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hit",
		Short: "Draw a card to your active hand",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := playerPath("/hit")
			if err != nil {
				return err
			}

			var result HitResult
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameStandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stand",
		Short: "Stand on your active hand",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := playerPath("/stand")
			if err != nil {
				return err
			}

			var result StandResult
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDoubleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "double",
		Short: "Double your bet for exactly one more card",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := playerPath("/double")
			if err != nil {
				return err
			}

			var result DoubleResult
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split",
		Short: "Split a pair into two hands",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := playerPath("/split")
			if err != nil {
				return err
			}

			if err := client.Post(path, nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Hand split. Now playing hand 1.")
			return nil
		},
	}
}

func newGameResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Abandon the game and clear the table",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := playerPath("/reset")
			if err != nil {
				return err
			}

			if err := client.Post(path, nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game reset")
			return nil
		},
	}
}
