// Command flashcards runs the flashcard API and its maintenance tasks.
//
//	flashcards serve                     start the HTTP server (default)
//	flashcards migrate                   apply store migrations and exit
//	flashcards generate --text "..."     print generated flashcards
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:           "flashcards",
		Short:         "Flashcard REST API with LLM-backed generation",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context())
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("fatal", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply store migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)
			return app.Migrate(cmd.Context(), cfg.Database, logger)
		},
	}
}

func generateCmd() *cobra.Command {
	var (
		text   string
		count  int
		asJSON bool
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "generate [text]",
		Short: "Generate flashcards from text with the configured LLM",
		RunE: func(cmd *cobra.Command, args []string) error {
			if text == "" {
				text = strings.Join(args, " ")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			var n *int
			if cmd.Flags().Changed("count") {
				n = &count
			}

			out, cards, err := app.Generate(cmd.Context(), cfg, logger, text, n)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case raw:
				fmt.Fprintln(w, out)
			case asJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(cards)
			default:
				for i, c := range cards {
					fmt.Fprintf(w, "%d. Q: %s\n   A: %s\n", i+1, c.Question, c.Answer)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "source text (defaults to the positional arguments)")
	cmd.Flags().IntVarP(&count, "count", "n", 5, "number of flashcards")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print cards as JSON")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw completion")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
