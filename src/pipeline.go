package src

import (
	"context"
	"fmt"
	"strings"
)

// baselineImports are prepended when backend output arrives without its
// import block.
var baselineImports = []string{
	"import androidx.compose.runtime.Composable",
	"import androidx.compose.ui.Modifier",
	"import androidx.compose.material3.*",
	"import androidx.compose.foundation.layout.*",
	"import androidx.compose.foundation.clickable",
	"import androidx.compose.material.icons.Icons",
	"import androidx.compose.material.icons.filled.*",
	"import androidx.compose.ui.unit.dp",
	"import androidx.compose.runtime.remember",
	"import androidx.compose.runtime.mutableStateOf",
	"import androidx.compose.runtime.getValue",
	"import androidx.compose.runtime.setValue",
	"import androidx.compose.ui.Alignment",
	"import androidx.compose.ui.graphics.Color",
	"import androidx.compose.ui.text.font.FontWeight",
	"import androidx.compose.ui.text.input.PasswordVisualTransformation",
	"import androidx.compose.ui.text.input.VisualTransformation",
	"import androidx.compose.ui.text.style.TextAlign",
}

// Pipeline runs one generation request through the fixed stage sequence.
// Every backend-delegated stage owns its own fallback, so a run always
// reaches StageComplete no matter how the backend misbehaves.
type Pipeline struct {
	Backend Backend

	// TemplateOnly skips backend code generation entirely, producing
	// reproducible template output. Intent parsing still consults the
	// backend when one is present.
	TemplateOnly bool

	// Log receives stage progress lines. Nil disables logging.
	Log func(format string, args ...any)
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.Log != nil {
		p.Log(format, args...)
	}
}

// Run drives state through every stage in order and returns the same state
// for convenience. The sequence is total: no stage can abort it.
func (p *Pipeline) Run(ctx context.Context, state *PipelineState) *PipelineState {
	p.parseIntent(ctx, state)
	p.planLayout(state)
	p.generateCode(ctx, state)
	p.reviewAccessibility(state)
	p.reviewDesign(state)
	p.assembleOutput(state)
	return state
}

// Generate is the whole-request entry point: build a state, run it, return
// the assembled report.
func (p *Pipeline) Generate(ctx context.Context, userInput string) *PipelineState {
	return p.Run(ctx, NewPipelineState(userInput))
}

// parseIntent asks the backend for a structured intent. Any failure along
// the way, from transport to JSON shape, substitutes the fixed fallback
// intent instead of aborting.
func (p *Pipeline) parseIntent(ctx context.Context, state *PipelineState) {
	p.logf("[Intent Parser] Analyzing: %q", state.UserInput)

	intent, err := p.requestIntent(ctx, state.UserInput)
	if err != nil {
		p.logf("[Intent Parser] ⚠️ %v, using fallback intent", err)
		intent = fallbackIntent()
	}
	if intent.Layout == "" {
		intent.Layout = ContainerColumn
	}

	p.logf("[Intent Parser] Extracted %d UI elements, layout %s", len(intent.Elements), intent.Layout)
	state.ParsedIntent = intent
	state.advance(StageIntentParsed)
}

func (p *Pipeline) requestIntent(ctx context.Context, userInput string) (*Intent, error) {
	if p.Backend == nil {
		return nil, fmt.Errorf("no backend configured")
	}
	raw, err := p.Backend.Invoke(ctx, IntentParserSystemPrompt, userInput)
	if err != nil {
		return nil, err
	}
	var intent Intent
	if err := DecodeJSON(raw, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

func fallbackIntent() *Intent {
	return &Intent{
		Elements: []UIElement{
			{Kind: "Text", Content: "Error parsing intent", Style: "bodyLarge"},
		},
		Layout:  ContainerColumn,
		Styles:  map[string]string{},
		Actions: []string{},
	}
}

// planLayout is a pure transform: each intent element becomes one plan
// child, in the original order, under a default modifier set.
func (p *Pipeline) planLayout(state *PipelineState) {
	intent := state.ParsedIntent
	if intent == nil {
		intent = fallbackIntent()
		state.ParsedIntent = intent
	}

	arrangement := "Start"
	if intent.Layout == ContainerColumn {
		arrangement = "Center"
	}

	plan := &LayoutPlan{
		Root:        intent.Layout,
		Children:    make([]PlanChild, 0, len(intent.Elements)),
		Modifiers:   []string{"fillMaxSize", "padding(16.dp)"},
		Arrangement: arrangement,
	}
	for _, el := range intent.Elements {
		plan.Children = append(plan.Children, PlanChild{
			Component:  el,
			Properties: el.Attrs,
			Modifiers:  []string{},
		})
	}

	p.logf("[Layout Planner] Planned %d components under %s", len(plan.Children), plan.Root)
	state.LayoutPlan = plan
	state.advance(StageLayoutPlanned)
}

// generateCode produces Compose code from the plan, delegating to the
// backend by default and falling back to the deterministic template on any
// backend failure.
func (p *Pipeline) generateCode(ctx context.Context, state *PipelineState) {
	p.logf("[UI Generator] Generating Jetpack Compose code...")

	var code string
	if p.TemplateOnly || p.Backend == nil {
		p.logf("[UI Generator] Using template generation")
		code = GenerateTemplateCode(state.LayoutPlan)
	} else {
		raw, err := p.Backend.Invoke(ctx, p.codegenSystemPrompt(state), p.codegenUserMessage(state))
		if err != nil {
			p.logf("[UI Generator] ⚠️ backend generation failed: %v, falling back to template", err)
			code = GenerateTemplateCode(state.LayoutPlan)
		} else {
			code = ExtractCode(raw)
			if !strings.HasPrefix(code, "import") && !strings.HasPrefix(code, "@Composable") {
				p.logf("[UI Generator] Response missing import block, prepending baseline imports")
				code = strings.Join(baselineImports, "\n") + "\n\n" + code
			}
		}
	}

	if state.ValidateRequested {
		p.logf("[UI Generator] Applying validation and auto-fix...")
		code = AutoFixComposeCode(code)
	}

	state.GeneratedCode = code
	state.advance(StageCodeGenerated)
}

func (p *Pipeline) codegenSystemPrompt(state *PipelineState) string {
	if state.MultiFile {
		return CodegenSystemPrompt + "\n\n" + MultiFileInstruction
	}
	return CodegenSystemPrompt
}

// codegenUserMessage assembles the structured task message: exact
// requirements, a per-component checklist, reference snippets, and any
// composables that already exist in the target project.
func (p *Pipeline) codegenUserMessage(state *PipelineState) string {
	var b strings.Builder

	b.WriteString("=== USER'S EXACT REQUIREMENTS ===\n")
	b.WriteString(state.UserInput)
	b.WriteString("\n\n=== YOUR TASK ===\n")
	b.WriteString("Generate Jetpack Compose code that implements EVERY SINGLE ITEM listed above.\n")
	if state.ParsedIntent != nil && len(state.ParsedIntent.Elements) > 0 {
		fmt.Fprintf(&b, "You MUST include ALL %d components mentioned.\n", len(state.ParsedIntent.Elements))
	}

	if state.LayoutPlan != nil {
		fmt.Fprintf(&b, "\n=== MAIN CONTAINER ===\n%s with modifiers %s, arrangement %s\n",
			state.LayoutPlan.Root, strings.Join(state.LayoutPlan.Modifiers, "."), state.LayoutPlan.Arrangement)
	}

	if state.ParsedIntent != nil && len(state.ParsedIntent.Elements) > 0 {
		b.WriteString("\n=== COMPONENT CHECKLIST ===\n")
		for i, el := range state.ParsedIntent.Elements {
			fmt.Fprintf(&b, "%d) %s", i+1, el.Kind)
			if label := el.Label(); label != "" {
				fmt.Fprintf(&b, ": %q", label)
			}
			if el.Style != "" {
				fmt.Fprintf(&b, " (style %s)", el.Style)
			}
			b.WriteByte('\n')
		}
	}

	if len(state.Examples) > 0 {
		b.WriteString("\n=== REFERENCE EXAMPLES ===\n")
		for i, ex := range state.Examples {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "\nExample %d: %s\n```kotlin\n%s\n```\n", i+1, ex.Description, trimExample(ex.Code, 500))
		}
	}

	if len(state.ExistingComponents) > 0 {
		names := make([]string, 0, 5)
		for i, c := range state.ExistingComponents {
			if i == 5 {
				break
			}
			names = append(names, c.Name)
		}
		fmt.Fprintf(&b, "\nExisting composables in project: %s\n", strings.Join(names, ", "))
	}

	b.WriteString("\n=== OUTPUT FORMAT ===\n")
	if state.MultiFile {
		b.WriteString("Return one fenced kotlin code block per file, each starting with its // path: comment.")
	} else {
		b.WriteString("Return ONLY the complete Kotlin code. Start with imports, end with closing brace. NO explanations, NO markdown fences.")
	}

	return b.String()
}

func trimExample(code string, n int) string {
	if len(code) <= n {
		return code
	}
	return code[:n] + "..."
}

func (p *Pipeline) reviewAccessibility(state *PipelineState) {
	p.logf("[Accessibility Reviewer] Checking accessibility...")
	state.AccessibilityFindings = append(state.AccessibilityFindings, ReviewAccessibility(state.GeneratedCode)...)
	state.advance(StageAccessibilityReviewed)
}

func (p *Pipeline) reviewDesign(state *PipelineState) {
	p.logf("[UI Reviewer] Evaluating against Material 3 guidelines...")
	state.DesignFindings = append(state.DesignFindings, ReviewDesign(state.GeneratedCode)...)
	state.advance(StageUIReviewed)
}

func (p *Pipeline) assembleOutput(state *PipelineState) {
	p.logf("[Output] Preparing final output...")
	state.FinalReport = AssembleReport(state.GeneratedCode, state.AccessibilityFindings, state.DesignFindings)
	state.advance(StageComplete)
}
