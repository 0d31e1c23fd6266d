package src

import (
	"fmt"
	"strings"
)

// templateImports head every template-generated file.
var templateImports = []string{
	"import androidx.compose.runtime.Composable",
	"import androidx.compose.ui.Modifier",
	"import androidx.compose.material3.*",
	"import androidx.compose.foundation.layout.*",
	"import androidx.compose.foundation.background",
	"import androidx.compose.ui.graphics.Color",
	"import androidx.compose.ui.unit.dp",
	"import androidx.compose.ui.Alignment",
}

// GenerateTemplateCode builds Compose code deterministically from a layout
// plan, with no backend involved. It covers the Text, Button and Image
// component kinds and is the fallback whenever backend generation fails or
// is disabled for reproducible runs.
func GenerateTemplateCode(plan *LayoutPlan) string {
	var b strings.Builder
	for _, imp := range templateImports {
		b.WriteString(imp)
		b.WriteByte('\n')
	}
	b.WriteString("\n@Composable\nfun GeneratedUI() {\n")

	root := plan.Root
	if root == "" {
		root = ContainerColumn
	}
	modifierChain := strings.Join(plan.Modifiers, ".")

	switch root {
	case ContainerColumn:
		arrangement := plan.Arrangement
		if arrangement == "" {
			arrangement = "Center"
		}
		fmt.Fprintf(&b, "    %s(\n", root)
		if modifierChain != "" {
			fmt.Fprintf(&b, "        modifier = Modifier.%s,\n", modifierChain)
		}
		fmt.Fprintf(&b, "        verticalArrangement = Arrangement.%s,\n", arrangement)
		b.WriteString("        horizontalAlignment = Alignment.CenterHorizontally\n")
		b.WriteString("    ) {\n")
	case ContainerRow:
		fmt.Fprintf(&b, "    %s(\n", root)
		if modifierChain != "" {
			fmt.Fprintf(&b, "        modifier = Modifier.%s,\n", modifierChain)
		}
		b.WriteString("        horizontalArrangement = Arrangement.SpaceBetween\n")
		b.WriteString("    ) {\n")
	default:
		if modifierChain != "" {
			fmt.Fprintf(&b, "    %s(modifier = Modifier.%s) {\n", root, modifierChain)
		} else {
			fmt.Fprintf(&b, "    %s() {\n", root)
		}
	}

	for _, child := range plan.Children {
		writeTemplateChild(&b, child)
	}

	b.WriteString("    }\n}")
	return b.String()
}

func writeTemplateChild(b *strings.Builder, child PlanChild) {
	props := child.Component
	switch child.Component.Kind {
	case "Button":
		text := props.Label()
		if text == "" {
			text = "Button"
		}
		b.WriteString("        Button(onClick = { /* TODO: Add action */ }) {\n")
		fmt.Fprintf(b, "            Text(%q)\n", text)
		b.WriteString("        }\n")
	case "Image":
		b.WriteString("        // Image placeholder\n")
		b.WriteString("        Box(\n")
		b.WriteString("            modifier = Modifier\n")
		b.WriteString("                .size(200.dp)\n")
		b.WriteString("                .background(Color.LightGray)\n")
		b.WriteString("        )\n")
	default: // Text and anything unrecognized
		text := props.Label()
		if text == "" {
			text = "Sample Text"
		}
		style := props.Style
		if style == "" {
			style = "bodyLarge"
		}
		b.WriteString("        Text(\n")
		fmt.Fprintf(b, "            text = %q,\n", text)
		fmt.Fprintf(b, "            style = MaterialTheme.typography.%s\n", style)
		b.WriteString("        )\n")
	}
}
