package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Angle is one brainstorming dimension with its bullet points.
type Angle struct {
	Category string   `json:"category"`
	Points   []string `json:"points"`
}

// Result is the structured shape the model is asked to return.
type Result struct {
	Idea   string  `json:"idea"`
	Angles []Angle `json:"angles"`
}

// parseResult attempts a best-effort structured parse of the model's text.
// It never fails the flow: the second return value reports whether the text
// could be used as a structured result. A response with an empty angle list
// still counts as structured as long as it carries the idea back.
func parseResult(raw string) (*Result, bool) {
	var res Result
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &res); err != nil {
		return nil, false
	}
	if res.Idea == "" && len(res.Angles) == 0 {
		return nil, false
	}
	return &res, true
}

// Presenter writes idea responses to the terminal.
type Presenter struct {
	out io.Writer
}

// NewPresenter creates a Presenter writing to out.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// Present displays the model's response. Structured responses get a banner,
// upper-cased category headers and bullet points; anything the parser cannot
// handle is printed unmodified.
func (p *Presenter) Present(concept, raw string) {
	result, ok := parseResult(raw)
	if !ok {
		fmt.Fprintln(p.out, raw)
		return
	}

	cyan := color.New(color.FgCyan, color.Bold)
	magenta := color.New(color.FgMagenta, color.Bold)
	white := color.New(color.FgWhite)

	idea := result.Idea
	if idea == "" {
		idea = concept
	}

	rule := strings.Repeat("=", 80)
	cyan.Fprintf(p.out, "\n%s BRAINSTORMING RESULTS %s\n", strings.Repeat("=", 30), strings.Repeat("=", 30))
	white.Fprintf(p.out, "Original Concept: %s\n", idea)
	cyan.Fprintln(p.out, rule)

	if len(result.Angles) == 0 {
		white.Fprintln(p.out, "\n(No angles generated for this concept)")
	}
	for _, angle := range result.Angles {
		category := angle.Category
		if category == "" {
			category = "Unknown Category"
		}
		magenta.Fprintf(p.out, "\n--- %s ---\n", strings.ToUpper(category))
		if len(angle.Points) == 0 {
			white.Fprintln(p.out, "  (No specific points generated for this category)")
			continue
		}
		for _, point := range angle.Points {
			white.Fprintf(p.out, "  - %s\n", point)
		}
	}
	cyan.Fprintf(p.out, "\n%s\n", rule)
}
