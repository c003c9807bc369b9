package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles-go/internal/api/request"
	"github.com/mcoot/wordtiles-go/internal/api/response"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameDeleteCmd())
	cmd.AddCommand(newGamePlaceCmd())
	cmd.AddCommand(newGameRemoveCmd())
	cmd.AddCommand(newGameLockCmd())
	cmd.AddCommand(newGameRecallCmd())
	cmd.AddCommand(newGameShuffleCmd())
	cmd.AddCommand(newGameRegenerateCmd())
	cmd.AddCommand(newGameTurnsCmd())

	return cmd
}

func gamePath(id string, parts ...string) string {
	path := "/api/v1/games/" + url.PathEscape(id)
	if len(parts) > 0 {
		path += "/" + strings.Join(parts, "/")
	}
	return path
}

func parseCoord(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", name, value)
	}
	return n, nil
}

func newGameNewCmd() *cobra.Command {
	var req request.CreateGameRequest

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Post(cmd.Context(), "/api/v1/games", req, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&req.BoardSize, "size", 0, "Board size (server default if unset)")
	cmd.Flags().IntVar(&req.RackSize, "rack", 0, "Rack size (server default if unset)")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a game's board, rack and score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Get(cmd.Context(), gamePath(args[0]), &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameList
			if err := client.Get(cmd.Context(), "/api/v1/games", &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), gamePath(args[0]), nil); err != nil {
				return err
			}
			output(cmd).PrintMessage(fmt.Sprintf("Deleted game %s", args[0]))
			return nil
		},
	}
}

func newGamePlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <id> <row> <col> <letter>",
		Short: "Place a rack tile on the board",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := parseCoord("row", args[1])
			if err != nil {
				return err
			}
			col, err := parseCoord("col", args[2])
			if err != nil {
				return err
			}
			letter := strings.ToUpper(args[3])
			if utf8.RuneCountInString(letter) != 1 {
				return fmt.Errorf("letter must be a single character")
			}

			req := request.PlaceTileRequest{Row: row, Col: col, Letter: letter}
			var result response.PlacementResult
			if err := client.Post(cmd.Context(), gamePath(args[0], "tiles"), req, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id> <row> <col>",
		Short: "Return a tile placed this turn to the rack",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := parseCoord("row", args[1])
			if err != nil {
				return err
			}
			col, err := parseCoord("col", args[2])
			if err != nil {
				return err
			}

			path := gamePath(args[0], "tiles", strconv.Itoa(row), strconv.Itoa(col))
			var result response.PlacementResult
			if err := client.Delete(cmd.Context(), path, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock <id>",
		Short: "Lock in the current turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.CommitSummary
			if err := client.Post(cmd.Context(), gamePath(args[0], "lock"), nil, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameRecallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recall <id>",
		Short: "Return every tile placed this turn to the rack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.RecallResponse
			if err := client.Post(cmd.Context(), gamePath(args[0], "recall"), nil, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameShuffleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle <id>",
		Short: "Shuffle the rack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.RackResponse
			if err := client.Post(cmd.Context(), gamePath(args[0], "shuffle"), nil, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameRegenerateCmd() *cobra.Command {
	var req request.RegenerateRequest

	cmd := &cobra.Command{
		Use:   "regenerate <id>",
		Short: "Replace the board with an empty one (before any tile is placed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Post(cmd.Context(), gamePath(args[0], "regenerate"), req, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&req.BoardSize, "size", 0, "New board size")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func newGameTurnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "turns <id>",
		Short: "Show the game's locked turns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.TurnsResponse
			if err := client.Get(cmd.Context(), gamePath(args[0], "turns"), &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}
