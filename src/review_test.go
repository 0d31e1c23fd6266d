package src

import (
	"strings"
	"testing"
)

func TestReviewAccessibilityImageWithoutDescription(t *testing.T) {
	findings := ReviewAccessibility("Image(painter = painterResource(R.drawable.x))")

	if !containsFinding(findings, "contentDescription") {
		t.Fatalf("expected contentDescription finding, got %v", findings)
	}
}

func TestReviewAccessibilitySmallButton(t *testing.T) {
	findings := ReviewAccessibility("Button(onClick = {}) { }")

	if !containsFinding(findings, "touch target") {
		t.Fatalf("expected touch target finding, got %v", findings)
	}

	sized := "Button(onClick = {}, modifier = Modifier.size(200.dp, 48.dp)) { }"
	if containsFinding(ReviewAccessibility(sized), "touch target") {
		t.Fatalf("did not expect touch target finding for sized button")
	}
}

func TestReviewAccessibilityNeverEmpty(t *testing.T) {
	findings := ReviewAccessibility("val x = 1")

	if len(findings) != 1 || findings[0] != "No major accessibility issues found" {
		t.Fatalf("expected all-clear finding, got %v", findings)
	}
}

func TestReviewDesignPositivesAndNegatives(t *testing.T) {
	code := strings.Join([]string{
		"Column(",
		"    modifier = Modifier.padding(16.dp),",
		"    verticalArrangement = Arrangement.Center,",
		"    horizontalAlignment = Alignment.CenterHorizontally",
		") { }",
	}, "\n")
	findings := ReviewDesign(code)

	if !containsFinding(findings, "MaterialTheme") {
		t.Fatalf("expected MaterialTheme suggestion, got %v", findings)
	}
	if !containsFinding(findings, "Good: Using padding") {
		t.Fatalf("expected padding positive, got %v", findings)
	}
	if !containsFinding(findings, "Good: Using Arrangement") {
		t.Fatalf("expected arrangement positive, got %v", findings)
	}
	if !containsFinding(findings, "Good: Using Alignment") {
		t.Fatalf("expected alignment positive, got %v", findings)
	}
}

func TestReviewDesignNeverEmpty(t *testing.T) {
	if findings := ReviewDesign("MaterialTheme { }"); len(findings) == 0 {
		t.Fatalf("expected at least one finding")
	}
}

func containsFinding(findings []string, substr string) bool {
	for _, f := range findings {
		if strings.Contains(f, substr) {
			return true
		}
	}
	return false
}
