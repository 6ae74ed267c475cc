package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"ideaspark/internal/llm"
)

// Session runs the interactive collect-generate-present loop.
type Session struct {
	client    llm.Client
	logger    *slog.Logger
	in        io.Reader
	out       io.Writer
	presenter *Presenter
}

// NewSession wires a session reading concepts from in and writing results to
// out.
func NewSession(client llm.Client, logger *slog.Logger, in io.Reader, out io.Writer) *Session {
	return &Session{
		client:    client,
		logger:    logger,
		in:        in,
		out:       out,
		presenter: NewPresenter(out),
	}
}

// Run prompts for concepts until the user types exit/quit or input ends.
// Each generation failure is reported and the loop offers a fresh prompt; if
// input then ends without a later success (e.g. piped stdin), the last error
// is returned so the process can exit non-zero.
func (s *Session) Run(ctx context.Context) error {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	cyan.Fprintln(s.out, "--- IdeaSpark: Your Dynamic Brainstorming Partner ---")
	yellow.Fprintln(s.out, "Enter a vague concept, and I'll generate structured brainstorming angles for you.")
	yellow.Fprintln(s.out, "Type 'exit' to quit.")

	scanner := bufio.NewScanner(s.in)
	var lastErr error

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		green.Fprint(s.out, "\nEnter your concept (e.g. 'AI for fitness', 'sustainable tech'): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(s.out)
			return lastErr
		}

		concept := strings.TrimSpace(scanner.Text())
		if concept == "" {
			yellow.Fprintln(s.out, "Please enter a concept to brainstorm.")
			continue
		}
		switch strings.ToLower(concept) {
		case "exit", "quit":
			cyan.Fprintln(s.out, "Exiting IdeaSpark. Happy ideating!")
			return nil
		}

		requestID := uuid.New().String()
		s.logger.Info("generating ideas",
			slog.String("request_id", requestID),
			slog.Int("concept_len", len(concept)))

		yellow.Fprintln(s.out, "\nBrainstorming... Please wait a moment. (This may take 10-30 seconds)")

		start := time.Now()
		raw, err := s.client.Generate(ctx, BuildPrompt(concept))
		if err != nil {
			// An interrupt ends the session; everything else offers a
			// fresh prompt.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			s.logger.Error("generation failed",
				slog.String("request_id", requestID),
				slog.String("error", err.Error()))
			red.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		lastErr = nil
		s.logger.Info("generation succeeded",
			slog.String("request_id", requestID),
			slog.Duration("elapsed", time.Since(start)))

		s.presenter.Present(concept, raw)
	}
}
