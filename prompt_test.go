package main

import (
	"strings"
	"testing"
)

func TestBuildPromptContainsConceptAndCategories(t *testing.T) {
	concepts := []string{
		"AI for fitness",
		"sustainable tech",
		"a marketplace for spare GPU time & edge nodes",
	}
	for _, concept := range concepts {
		prompt := BuildPrompt(concept)
		if !strings.Contains(prompt, concept) {
			t.Fatalf("prompt does not contain concept %q", concept)
		}
		for _, category := range categories {
			if !strings.Contains(prompt, category) {
				t.Fatalf("prompt missing category %q", category)
			}
		}
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	if BuildPrompt("solar bikes") != BuildPrompt("solar bikes") {
		t.Fatal("prompt is not deterministic for the same concept")
	}
}

func TestFiveCategories(t *testing.T) {
	if len(categories) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(categories))
	}
}
