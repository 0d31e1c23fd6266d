package src

import (
	"sort"
	"strings"
)

// fixerRules is the full trigger table the auto-fixer repairs: the
// validator's component rules plus the annotation and layout containers.
var fixerRules = []importRule{
	{"@Composable", "import androidx.compose.runtime.Composable"},
	{"Text(", "import androidx.compose.material3.Text"},
	{"Button(", "import androidx.compose.material3.Button"},
	{"Image(", "import androidx.compose.foundation.Image"},
	{"Modifier", "import androidx.compose.ui.Modifier"},
	{"Column", "import androidx.compose.foundation.layout.Column"},
	{"Row", "import androidx.compose.foundation.layout.Row"},
	{"Box", "import androidx.compose.foundation.layout.Box"},
}

// structural keywords marking the first real declaration line, where
// missing imports get inserted.
var insertionKeywords = []string{"package", "@", "fun", "class"}

// AutoFixComposeCode inserts any missing import lines implied by symbol
// usage. Deterministic and idempotent: fixing already-fixed code returns it
// byte-identical, and so does code with nothing missing.
func AutoFixComposeCode(code string) string {
	missing := missingImports(code)
	if len(missing) == 0 {
		return code
	}

	lines := strings.Split(code, "\n")

	// Insert before the first non-blank, non-comment line that carries a
	// structural keyword; fall back to the top of the file.
	insertAt := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		if containsAny(line, insertionKeywords) {
			insertAt = i
			break
		}
	}

	out := make([]string, 0, len(lines)+len(missing)+1)
	out = append(out, lines[:insertAt]...)
	out = append(out, missing...)
	after := lines[insertAt:]
	if len(after) > 0 && strings.TrimSpace(after[0]) != "" {
		out = append(out, "")
	}
	out = append(out, after...)

	return strings.Join(out, "\n")
}

// missingImports returns the deduplicated, lexicographically sorted import
// lines whose triggers appear in code without their import.
func missingImports(code string) []string {
	seen := map[string]bool{}
	var missing []string
	for _, rule := range fixerRules {
		if !strings.Contains(code, rule.Trigger) || strings.Contains(code, rule.Import) {
			continue
		}
		if seen[rule.Import] {
			continue
		}
		seen[rule.Import] = true
		missing = append(missing, rule.Import)
	}
	sort.Strings(missing)
	return missing
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
