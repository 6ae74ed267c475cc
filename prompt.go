package main

import (
	"fmt"
	"strings"
)

// categories are the five fixed brainstorming angles every prompt asks for.
var categories = []string{
	"Target Users/Audience",
	"Core Problem Solved",
	"Potential Business Models/Monetization",
	"Key Technologies/Features",
	"Ethical/Societal Considerations",
}

const promptTemplate = `You are an expert startup ideator and business strategist.
Your task is to take the user's vague concept and generate 5 distinct, structured brainstorming angles.
For each angle, provide 3-5 specific, actionable points.
The angles should cover the following categories:
%s

Concept to brainstorm: "%s"`

// BuildPrompt renders the fixed instruction template around the concept.
// The result is deterministic and contains the concept verbatim.
func BuildPrompt(concept string) string {
	var labels strings.Builder
	for _, c := range categories {
		labels.WriteString("- ")
		labels.WriteString(c)
		labels.WriteString("\n")
	}
	return fmt.Sprintf(promptTemplate, strings.TrimRight(labels.String(), "\n"), concept)
}
