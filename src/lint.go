package src

import "strings"

// importRule maps a symbol trigger to the import line its presence implies.
type importRule struct {
	Trigger string
	Import  string
}

// validatorRules are the import checks the validator runs, in order. The
// auto-fixer repairs a wider set (see fixerRules); the validator reports
// only the component-level symbols.
var validatorRules = []importRule{
	{"Text(", "import androidx.compose.material3.Text"},
	{"Button(", "import androidx.compose.material3.Button"},
	{"Image(", "import androidx.compose.foundation.Image"},
	{"Modifier", "import androidx.compose.ui.Modifier"},
}

// accessibilityWindow is how many lines after an Image( call are scanned
// for a contentDescription parameter.
const accessibilityWindow = 5

// ValidateComposeCode scans generated Compose code for a fixed catalogue of
// structural defects and reports them as findings. It is pure and
// deterministic: checks run in a fixed order, do not short-circuit each
// other, and never mutate the input. Code with no triggers yields an empty
// list.
func ValidateComposeCode(code string) []LintFinding {
	var findings []LintFinding
	lines := strings.Split(code, "\n")

	for _, rule := range validatorRules {
		if strings.Contains(code, rule.Trigger) && !strings.Contains(code, rule.Import) {
			findings = append(findings, LintFinding{
				Severity:   SeverityError,
				Message:    "Missing import: " + strings.TrimPrefix(rule.Import, "import "),
				Line:       findLine(lines, rule.Trigger),
				Suggestion: "Add: " + rule.Import,
			})
		}
	}

	// Every Image call must carry a contentDescription within the next few
	// lines, or screen readers have nothing to announce.
	for i, line := range lines {
		if !strings.Contains(line, "Image(") {
			continue
		}
		end := i + 1 + accessibilityWindow
		if end > len(lines) {
			end = len(lines)
		}
		window := strings.Join(lines[i+1:end], "\n")
		if !strings.Contains(window, "contentDescription") {
			findings = append(findings, LintFinding{
				Severity:   SeverityWarning,
				Message:    "Image missing contentDescription for accessibility",
				Line:       i + 1,
				Suggestion: "Add contentDescription parameter to Image",
			})
		}
	}

	return findings
}

// findLine returns the 1-based number of the first line containing text,
// defaulting to 1 when no line matches.
func findLine(lines []string, text string) int {
	for i, line := range lines {
		if strings.Contains(line, text) {
			return i + 1
		}
	}
	return 1
}
