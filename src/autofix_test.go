package src

import (
	"sort"
	"strings"
	"testing"
)

func TestAutoFixComposeCodeInsertsMissingImports(t *testing.T) {
	code := "@Composable\nfun Greeting() {\n    Text(\"Hello\")\n}"
	fixed := AutoFixComposeCode(code)

	for _, want := range []string{
		"import androidx.compose.runtime.Composable",
		"import androidx.compose.material3.Text",
	} {
		if !strings.Contains(fixed, want) {
			t.Fatalf("expected %q in fixed code:\n%s", want, fixed)
		}
	}

	// Imports land before the first declaration.
	if strings.Index(fixed, "import ") > strings.Index(fixed, "@Composable") {
		t.Fatalf("imports inserted after declarations:\n%s", fixed)
	}
}

func TestAutoFixComposeCodeIdempotent(t *testing.T) {
	code := "@Composable\nfun Screen() {\n    Column {\n        Text(\"Hi\")\n    }\n}"

	once := AutoFixComposeCode(code)
	twice := AutoFixComposeCode(once)

	if once != twice {
		t.Fatalf("second fix changed the code:\nfirst:\n%s\nsecond:\n%s", once, twice)
	}
}

func TestAutoFixComposeCodeNothingMissing(t *testing.T) {
	code := strings.Join([]string{
		"import androidx.compose.material3.Text",
		"",
		"fun Greeting() {",
		"    Text(\"Hello\")",
		"}",
	}, "\n")

	if fixed := AutoFixComposeCode(code); fixed != code {
		t.Fatalf("expected byte-identical output, got:\n%s", fixed)
	}
}

func TestAutoFixComposeCodeSortedImports(t *testing.T) {
	code := "fun S() {\n    Row {\n        Button(onClick = {}) {}\n        Image(painter)\n    }\n}"
	fixed := AutoFixComposeCode(code)

	var imports []string
	for _, line := range strings.Split(fixed, "\n") {
		if strings.HasPrefix(line, "import ") {
			imports = append(imports, line)
		}
	}
	if len(imports) < 3 {
		t.Fatalf("expected at least three imports, got %v", imports)
	}
	if !sort.StringsAreSorted(imports) {
		t.Fatalf("imports not sorted: %v", imports)
	}
}

func TestAutoFixThenValidateComplete(t *testing.T) {
	// Whatever the validator flags, one fixer pass must resolve.
	code := "@Composable\nfun X() { Text(\"Hi\"); Button(onClick = {}) {}; Modifier }"
	fixed := AutoFixComposeCode(code)

	if findings := ValidateComposeCode(fixed); len(findings) != 0 {
		t.Fatalf("validator still unhappy after fix: %#v", findings)
	}
}

func TestMissingImportsDeduplicated(t *testing.T) {
	code := "Text(\"a\")\nText(\"b\")\nText(\"c\")"
	missing := missingImports(code)

	if len(missing) != 1 {
		t.Fatalf("expected one missing import, got %v", missing)
	}
}
