package main

import (
	"strings"
	"testing"
)

func TestCheckArgs(t *testing.T) {
	if err := checkArgs(nil); err != nil {
		t.Fatalf("no args should pass: %v", err)
	}
	err := checkArgs([]string{"solar bikes"})
	if err == nil {
		t.Fatal("expected error for a positional argument")
	}
	if !strings.Contains(err.Error(), "solar bikes") {
		t.Fatalf("error should name the offending argument: %v", err)
	}
}
