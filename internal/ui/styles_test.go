package ui

import (
	"strings"
	"testing"
)

func TestStatusLines(t *testing.T) {
	tests := []struct {
		name   string
		render func(string) string
		symbol string
	}{
		{"success", Success, SymbolCheck},
		{"failure", Failure, SymbolCross},
		{"warning", Warning, SymbolWarning},
		{"step", Step, SymbolArrowRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.render("wrote out.nivssdf")
			if !strings.Contains(out, tt.symbol+" wrote out.nivssdf") {
				t.Errorf("expected symbol and message in %q", out)
			}
		})
	}
}

func TestField(t *testing.T) {
	out := Field("Chassis", "3")
	if !strings.HasPrefix(out, "Chassis") || !strings.HasSuffix(out, "3") {
		t.Errorf("unexpected field rendering %q", out)
	}
}
