package src

import "context"

// ValidationReport bundles everything the front-end shows when validation
// is requested for an iteration.
type ValidationReport struct {
	Findings     []LintFinding
	Compilation  CompilationOutcome
	FixesApplied []string
	FixedCode    string
}

// RunValidation lints the code, applies the auto-fixer, and runs the
// compilation check over the fixed result.
func RunValidation(ctx context.Context, code string) *ValidationReport {
	report := &ValidationReport{
		Findings:     ValidateComposeCode(code),
		FixesApplied: missingImports(code),
		FixedCode:    AutoFixComposeCode(code),
	}
	report.Compilation = CheckCompilation(ctx, report.FixedCode)
	return report
}
