package src

import "strings"

// ReviewAccessibility scans generated code for accessibility concerns and
// returns human-readable findings. The list is never empty: when no rule
// fires, a single all-clear line is returned, since report assembly expects
// at least one bullet per section.
func ReviewAccessibility(code string) []string {
	var findings []string

	if strings.Contains(code, "Image") && !strings.Contains(code, "contentDescription") {
		findings = append(findings, "Missing contentDescription for Image components")
	}

	if strings.Contains(code, "Button") {
		if !strings.Contains(code, ".size(") || !strings.Contains(code, "48.dp") {
			findings = append(findings, "Ensure buttons meet minimum touch target size (48dp)")
		}
	}

	if strings.Contains(code, "Text") {
		findings = append(findings, "Consider adding semantics for screen readers")
	}

	if len(findings) == 0 {
		findings = append(findings, "No major accessibility issues found")
	}
	return findings
}

// ReviewDesign evaluates generated code against Material 3 conventions.
// Same non-empty guarantee as ReviewAccessibility.
func ReviewDesign(code string) []string {
	var findings []string

	if !strings.Contains(code, "MaterialTheme") {
		findings = append(findings, "Consider using MaterialTheme for consistent theming")
	}

	if strings.Contains(code, "padding") {
		findings = append(findings, "Good: Using padding for spacing")
	} else {
		findings = append(findings, "Consider adding padding for better visual hierarchy")
	}

	if strings.Contains(code, "Arrangement") {
		findings = append(findings, "Good: Using Arrangement for proper spacing")
	}

	if strings.Contains(code, "Alignment") {
		findings = append(findings, "Good: Using Alignment for proper positioning")
	}

	if len(findings) == 0 {
		findings = append(findings, "Code follows Material 3 guidelines")
	}
	return findings
}
