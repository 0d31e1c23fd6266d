package src

import (
	"strings"
	"testing"
)

func TestGenerateTemplateCodeColumn(t *testing.T) {
	plan := &LayoutPlan{
		Root: ContainerColumn,
		Children: []PlanChild{
			{Component: UIElement{Kind: "Text", Content: "Welcome", Style: "headlineLarge"}},
			{Component: UIElement{Kind: "Button", Content: "Login"}},
			{Component: UIElement{Kind: "Image", Content: "logo"}},
		},
		Modifiers:   []string{"fillMaxSize", "padding(16.dp)"},
		Arrangement: "Center",
	}
	code := GenerateTemplateCode(plan)

	for _, want := range []string{
		"fun GeneratedUI()",
		"Column(",
		"modifier = Modifier.fillMaxSize.padding(16.dp)",
		"verticalArrangement = Arrangement.Center",
		"horizontalAlignment = Alignment.CenterHorizontally",
		"text = \"Welcome\"",
		"MaterialTheme.typography.headlineLarge",
		"Button(onClick = {",
		"Text(\"Login\")",
		".size(200.dp)",
		".background(Color.LightGray)",
	} {
		if !strings.Contains(code, want) {
			t.Fatalf("template missing %q:\n%s", want, code)
		}
	}

	// Template output must always be self-contained.
	if !strings.HasPrefix(code, "import ") {
		t.Fatalf("template missing import block:\n%s", code)
	}
}

func TestGenerateTemplateCodeRow(t *testing.T) {
	plan := &LayoutPlan{
		Root:      ContainerRow,
		Modifiers: []string{"fillMaxSize"},
	}
	code := GenerateTemplateCode(plan)

	if !strings.Contains(code, "Row(") {
		t.Fatalf("expected Row container:\n%s", code)
	}
	if !strings.Contains(code, "horizontalArrangement = Arrangement.SpaceBetween") {
		t.Fatalf("expected SpaceBetween arrangement:\n%s", code)
	}
}

func TestGenerateTemplateCodeDefaults(t *testing.T) {
	plan := &LayoutPlan{
		Children: []PlanChild{
			{Component: UIElement{Kind: "Text"}},
		},
	}
	code := GenerateTemplateCode(plan)

	if !strings.Contains(code, "Column(") {
		t.Fatalf("expected Column default for empty root:\n%s", code)
	}
	if !strings.Contains(code, "\"Sample Text\"") {
		t.Fatalf("expected placeholder text:\n%s", code)
	}
	if !strings.Contains(code, "MaterialTheme.typography.bodyLarge") {
		t.Fatalf("expected bodyLarge default style:\n%s", code)
	}
}

func TestGenerateTemplateCodeDeterministic(t *testing.T) {
	plan := &LayoutPlan{
		Root: ContainerColumn,
		Children: []PlanChild{
			{Component: UIElement{Kind: "Button", Text: "Go"}},
		},
	}
	if GenerateTemplateCode(plan) != GenerateTemplateCode(plan) {
		t.Fatalf("template generation is not deterministic")
	}
}

func TestGenerateTemplateCodeBalanced(t *testing.T) {
	plan := &LayoutPlan{
		Root: ContainerBox,
		Children: []PlanChild{
			{Component: UIElement{Kind: "Image"}},
		},
		Modifiers: []string{"fillMaxSize"},
	}
	code := GenerateTemplateCode(plan)

	if strings.Count(code, "{") != strings.Count(code, "}") {
		t.Fatalf("unbalanced braces in template output:\n%s", code)
	}
	if strings.Count(code, "(") != strings.Count(code, ")") {
		t.Fatalf("unbalanced parentheses in template output:\n%s", code)
	}
}
