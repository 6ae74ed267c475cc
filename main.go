package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"ideaspark/internal/llm"
	"ideaspark/internal/transport"
)

func main() {
	flag.Usage = usage
	flag.Parse()
	if err := checkArgs(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "ideaspark: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := LoadConfig()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	httpClient := transport.NewHTTPClient(cfg.HTTPTimeout)
	policy := llm.DefaultRetryPolicy()
	policy.MaxAttempts = cfg.MaxAttempts
	client := llm.NewGeminiClient(llm.GeminiConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	}, httpClient, logger, policy)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := NewSession(client, logger, os.Stdin, os.Stdout)
	if err := session.Run(ctx); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// checkArgs rejects positional arguments: concepts are read interactively,
// and silently ignoring argv would surprise anyone running
// `ideaspark "some concept"`.
func checkArgs(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q (concepts are read interactively)", args[0])
	}
	return nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `ideaspark - structured brainstorming angles for a concept

Usage:
  ideaspark

Reads concepts interactively and prints five brainstorming angles per concept
(target users, core problem, business models, key technologies, ethics).

Environment:
  GOOGLE_API_KEY           required, Gemini API key (a local .env is honored)
  IDEASPARK_MODEL          model name (default gemini-2.5-flash)
  IDEASPARK_BASE_URL       API base URL override
  IDEASPARK_HTTP_TIMEOUT   request timeout (default 30s)
  IDEASPARK_MAX_ATTEMPTS   attempts for transient failures (default 3)
  IDEASPARK_LOG_LEVEL      debug|info|warn|error (default warn)
`)
}

func newLogger(level string) *slog.Logger {
	slogLevel := slog.LevelWarn
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel}))
}
