package src

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// kotlincTimeout bounds how long the external compiler may run.
const kotlincTimeout = 10 * time.Second

// invalidMarkers are literal markers that mark code as known-bad without
// invoking any toolchain.
var invalidMarkers = []string{"THIS IS INVALID"}

// delimiterPair is one bracket family checked for balance.
type delimiterPair struct {
	Name  string
	Open  byte
	Close byte
}

var delimiterPairs = []delimiterPair{
	{"braces", '{', '}'},
	{"parentheses", '(', ')'},
}

// CheckCompilation reports whether Kotlin code looks compilable. Fast local
// heuristics run first; only when they pass is kotlinc attempted, on a
// temporary file with a hard timeout. A missing or timed-out toolchain
// degrades silently to the heuristic result. This call never returns an
// error and never blocks past the timeout.
func CheckCompilation(ctx context.Context, code string) CompilationOutcome {
	var errs []string

	for _, p := range delimiterPairs {
		open := strings.Count(code, string(p.Open))
		closed := strings.Count(code, string(p.Close))
		if open != closed {
			errs = append(errs, fmt.Sprintf("Unbalanced %s: %d open, %d close", p.Name, open, closed))
		}
	}

	for _, marker := range invalidMarkers {
		if strings.Contains(code, marker) {
			errs = append(errs, "Invalid syntax detected")
		}
	}

	for i, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "import") {
			continue
		}
		if strings.Contains(trimmed, "com.nonexistent") || strings.Contains(trimmed, "import .") {
			errs = append(errs, fmt.Sprintf("Line %d: Unresolved import or invalid package", i+1))
		}
	}

	// Heuristic failures are definitive; don't pay for a compiler run.
	if len(errs) > 0 {
		return CompilationOutcome{Success: false, Errors: errs}
	}

	if outcome, ok := tryKotlinc(ctx, code); ok {
		return outcome
	}

	return CompilationOutcome{Success: true}
}

// tryKotlinc compiles code with kotlinc if it is installed. Returns false
// when the toolchain is unavailable or the run times out, letting the
// heuristic result stand.
func tryKotlinc(ctx context.Context, code string) (CompilationOutcome, bool) {
	tmp, err := os.CreateTemp("", "compose-check-*.kt")
	if err != nil {
		return CompilationOutcome{}, false
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(code); err != nil {
		tmp.Close()
		return CompilationOutcome{}, false
	}
	tmp.Close()

	ctx, cancel := context.WithTimeout(ctx, kotlincTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "kotlinc", tmp.Name())
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	runErr := cmd.Run()
	if ctx.Err() != nil {
		// Timed out; treat the toolchain as unavailable.
		return CompilationOutcome{}, false
	}
	if runErr != nil {
		var execErr *exec.Error
		if errors.As(runErr, &execErr) {
			// kotlinc not installed.
			return CompilationOutcome{}, false
		}
	}

	outcome := parseKotlincOutput(buf.String())
	outcome.Success = runErr == nil
	return outcome, true
}

// parseKotlincOutput splits compiler diagnostics into errors and warnings
// by a case-insensitive substring match.
func parseKotlincOutput(out string) CompilationOutcome {
	var outcome CompilationOutcome
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		switch {
		case strings.Contains(lower, "error:"):
			outcome.Errors = append(outcome.Errors, trimmed)
		case strings.Contains(lower, "warning:"):
			outcome.Warnings = append(outcome.Warnings, trimmed)
		}
	}
	return outcome
}
