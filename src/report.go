package src

import "strings"

const (
	reportBanner = "======================================================================"

	SectionCode          = "GENERATED JETPACK COMPOSE UI CODE"
	SectionAccessibility = "ACCESSIBILITY REVIEW"
	SectionDesign        = "DESIGN REVIEW (Material 3 Guidelines)"
)

// AssembleReport concatenates the generated code and both finding lists
// under fixed section banners. Pure string assembly; this is the terminal
// pipeline output.
func AssembleReport(code string, accessibility, design []string) string {
	lines := []string{
		reportBanner,
		SectionCode,
		reportBanner,
		"",
		code,
		"",
		reportBanner,
		SectionAccessibility,
		reportBanner,
	}

	for _, finding := range accessibility {
		lines = append(lines, "  • "+finding)
	}

	lines = append(lines,
		"",
		reportBanner,
		SectionDesign,
		reportBanner,
	)

	for _, finding := range design {
		lines = append(lines, "  • "+finding)
	}

	lines = append(lines, reportBanner)
	return strings.Join(lines, "\n")
}

// ExtractCodeFromReport pulls the Kotlin code back out of an assembled
// report, scanning from the @Composable marker to its closing brace. The
// whole report is returned when no code region can be found.
func ExtractCodeFromReport(report string) string {
	var codeLines []string
	inCode := false

	for _, line := range strings.Split(report, "\n") {
		if strings.Contains(line, "@Composable") {
			inCode = true
		}
		if inCode {
			codeLines = append(codeLines, line)
		}
		if inCode && strings.TrimSpace(line) == "}" && len(codeLines) > 5 {
			break
		}
	}

	if len(codeLines) == 0 {
		return report
	}
	return strings.Join(codeLines, "\n")
}

// ExtractReportSection returns the bullet lines of one banner-delimited
// section, or a fixed placeholder when the section is empty or absent.
func ExtractReportSection(report, sectionName string) string {
	var sectionLines []string
	inSection := false

	for _, line := range strings.Split(report, "\n") {
		if strings.Contains(line, sectionName) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if strings.Contains(line, "==========") {
			// A run of = this long only appears in banners.
			if len(sectionLines) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "•") {
			sectionLines = append(sectionLines, line)
		}
	}

	if len(sectionLines) == 0 {
		return "No issues found"
	}
	return strings.Join(sectionLines, "\n")
}
