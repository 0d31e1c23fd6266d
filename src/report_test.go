package src

import (
	"strings"
	"testing"
)

const sampleCode = `import androidx.compose.material3.Text

@Composable
fun GeneratedUI() {
    Text(
        text = "Hello",
        style = MaterialTheme.typography.bodyLarge
    )
}`

func TestAssembleReportStructure(t *testing.T) {
	report := AssembleReport(sampleCode,
		[]string{"Consider adding semantics for screen readers"},
		[]string{"Good: Using padding for spacing"})

	for _, want := range []string{
		SectionCode,
		SectionAccessibility,
		SectionDesign,
		"  • Consider adding semantics for screen readers",
		"  • Good: Using padding for spacing",
		sampleCode,
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestExtractCodeFromReportRoundTrip(t *testing.T) {
	report := AssembleReport(sampleCode, []string{"a"}, []string{"b"})
	code := ExtractCodeFromReport(report)

	if !strings.Contains(code, "@Composable") {
		t.Fatalf("extracted code missing @Composable:\n%s", code)
	}
	if !strings.Contains(code, "Text(") {
		t.Fatalf("extracted code missing body:\n%s", code)
	}
	if strings.Contains(code, SectionAccessibility) {
		t.Fatalf("extracted code leaked into review sections:\n%s", code)
	}
}

func TestExtractCodeFromReportNoMarker(t *testing.T) {
	report := "free-form text with no composable"
	if got := ExtractCodeFromReport(report); got != report {
		t.Fatalf("expected whole report back, got %q", got)
	}
}

func TestExtractReportSection(t *testing.T) {
	report := AssembleReport(sampleCode,
		[]string{"first finding", "second finding"},
		[]string{"design note"})

	accessibility := ExtractReportSection(report, SectionAccessibility)
	if !strings.Contains(accessibility, "first finding") ||
		!strings.Contains(accessibility, "second finding") {
		t.Fatalf("accessibility section incomplete: %q", accessibility)
	}
	if strings.Contains(accessibility, "design note") {
		t.Fatalf("accessibility section bled into design: %q", accessibility)
	}

	design := ExtractReportSection(report, SectionDesign)
	if !strings.Contains(design, "design note") {
		t.Fatalf("design section incomplete: %q", design)
	}
}

func TestExtractReportSectionEmpty(t *testing.T) {
	report := AssembleReport(sampleCode, nil, nil)
	if got := ExtractReportSection(report, SectionAccessibility); got != "No issues found" {
		t.Fatalf("expected placeholder for empty section, got %q", got)
	}
	if got := ExtractReportSection(report, "NONEXISTENT SECTION"); got != "No issues found" {
		t.Fatalf("expected placeholder for missing section, got %q", got)
	}
}
