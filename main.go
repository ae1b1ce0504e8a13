//go:build !lambda

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"maplist-generator/internal/maplist"
	"maplist-generator/internal/rng"
)

// BatchOutput is the JSON result of generating every match of a tournament.
type BatchOutput struct {
	Date       string        `json:"date"`
	Tournament int           `json:"tournamentId"`
	Workers    int           `json:"workers"`
	Results    []MatchResult `json:"results"`
	TotalMs    int64         `json:"totalMs"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "maplist-generator",
		Short:         "Generate fair tournament map lists from team map pools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(), newShuffleCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		jsonOut bool
		verbose bool
		seed    string
	)
	cmd := &cobra.Command{
		Use:   "generate <tournament.json> [matchId]",
		Short: "Generate the map list of one match, or of every match",
		Long: `Generate the map list of one match of a tournament export.

When matchId is omitted or 0, every match is generated in parallel.
The seed defaults to "<tournamentId>-<matchId>".`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var matchID int
			if len(args) == 2 {
				var err error
				matchID, err = strconv.Atoi(args[1])
				if err != nil {
					return eris.Errorf("invalid matchId %q", args[1])
				}
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newConsoleLogger(cmd.ErrOrStderr(), cfg.level(verbose))

			data, err := LoadTournament(args[0])
			if err != nil {
				return err
			}
			logLoaded(log, data)

			if matchID == 0 {
				return runAll(cmd, data, cfg, log, seed, jsonOut)
			}
			r, err := runMatch(data, matchID, seed, cfg.options(log)...)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), FormatResult(data, r))
			return err
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log search progress to stderr")
	cmd.Flags().StringVar(&seed, "seed", "", "Override the match seed")
	return cmd
}

func runAll(cmd *cobra.Command, data *InputData, cfg config, log zerolog.Logger, seed string, jsonOut bool) error {
	reqs, err := requestsFor(data, seed)
	if err != nil {
		return err
	}

	start := time.Now()
	lists, err := maplist.GenerateAll(cmd.Context(), reqs, cfg.options(log)...)
	if err != nil {
		return err
	}
	totalMs := time.Since(start).Milliseconds()

	results := make([]MatchResult, len(lists))
	for i, ml := range lists {
		results[i] = MatchResult{
			MatchID: data.Matches[i].ID,
			Round:   data.Matches[i].Round,
			Seed:    reqs[i].Seed,
			Maps:    ml,
		}
	}

	if jsonOut {
		workers := cfg.Workers
		if workers == 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		return writeJSON(cmd.OutOrStdout(), BatchOutput{
			Date:       time.Now().UTC().Format(time.RFC3339),
			Tournament: data.Tournament.ID,
			Workers:    workers,
			Results:    results,
			TotalMs:    totalMs,
		})
	}

	out := cmd.OutOrStdout()
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, FormatResult(data, r))
	}
	fmt.Fprintf(out, "\n%d matches in %.1fs\n", len(results), float64(totalMs)/1000)
	return nil
}

func newShuffleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle <seed> <items...>",
		Short: "Print the seeded shuffle of the given items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shuffled := rng.Shuffle(rng.New(args[0]), args[1:])
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(shuffled, " "))
			return err
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(v), "failed to encode output")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
