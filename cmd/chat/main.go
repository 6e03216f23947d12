package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"conversational-assistant/config"
	"conversational-assistant/internal/app"
	"conversational-assistant/pkg/log"
)

var (
	flagMessage  string
	flagVerbose  bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant from the terminal",
	Long: `chat routes each line to the calculator, search or generative branch,
exactly like the HTTP API, and keeps the conversation history for the session.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagMessage, "message", "m", "", "send a single message and exit")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print intent, confidence and branch")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "error", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    flagLogLevel,
		Mode:     cfg.Logger.Mode,
		Encoding: log.EncodingConsole,
	})

	a, err := app.New(ctx, logger, cfg, app.Deps{})
	if err != nil {
		return fmt.Errorf("failed to initialize assistant: %w", err)
	}
	defer a.Close()

	s := newSession(a.UseCase, cmd.OutOrStdout(), flagVerbose)
	if flagMessage != "" {
		s.send(ctx, flagMessage)
		return nil
	}
	return s.repl(ctx, cmd.InOrStdin())
}

