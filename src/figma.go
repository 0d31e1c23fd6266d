package src

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

// TextStyle is one typography token from a design file.
type TextStyle struct {
	FontSize   int `json:"fontSize"`
	FontWeight int `json:"fontWeight"`
	LineHeight int `json:"lineHeight"`
}

// DesignComponent is one node of a design file's component tree.
type DesignComponent struct {
	Name       string
	Kind       string
	Properties map[string]any
	Children   []DesignComponent
}

// DesignSpec is the extracted design specification: tokens plus components.
type DesignSpec struct {
	FileKey    string
	Name       string
	Colors     map[string]string
	Typography map[string]TextStyle
	Spacing    map[string]int
	Components []DesignComponent
}

const figmaBaseURL = "https://api.figma.com/v1"

// FigmaClient fetches design specifications from the Figma REST API. Any
// failure, transport to decode, degrades to a fixed mock design so callers
// always get a usable spec.
type FigmaClient struct {
	AccessToken string
	HTTPClient  *http.Client
	BaseURL     string
}

func NewFigmaClient(accessToken string) *FigmaClient {
	return &FigmaClient{
		AccessToken: accessToken,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
		BaseURL:     figmaBaseURL,
	}
}

// FetchDesign returns the design spec for a file key, or the mock design
// when the API is unreachable, unauthorized, or returns garbage.
func (c *FigmaClient) FetchDesign(ctx context.Context, fileKey string) *DesignSpec {
	data, err := c.fetchFile(ctx, fileKey)
	if err != nil {
		return MockDesign(fileKey)
	}

	name := "Untitled"
	if data.Name != "" {
		name = data.Name
	}

	return &DesignSpec{
		FileKey:    fileKey,
		Name:       name,
		Colors:     extractColors(data.Styles),
		Typography: extractTypography(data.Styles),
		Spacing:    defaultSpacing(),
		Components: parseDesignNode(data.Document),
	}
}

type figmaFile struct {
	Name     string                `json:"name"`
	Styles   map[string]figmaStyle `json:"styles"`
	Document *figmaNode            `json:"document"`
}

type figmaStyle struct {
	Name      string `json:"name"`
	StyleType string `json:"styleType"`
}

type figmaNode struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	LayoutMode  string      `json:"layoutMode"`
	BoundingBox *figmaBox   `json:"absoluteBoundingBox"`
	Children    []figmaNode `json:"children"`
}

type figmaBox struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (c *FigmaClient) fetchFile(ctx context.Context, fileKey string) (*figmaFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/files/"+fileKey, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Figma-Token", c.AccessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("figma API status %d", resp.StatusCode)
	}

	var data figmaFile
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// extractColors maps fill styles to color tokens. Style values are not in
// the file payload, so fills get the default primary.
func extractColors(styles map[string]figmaStyle) map[string]string {
	colors := map[string]string{}
	for id, style := range styles {
		if style.StyleType != "FILL" {
			continue
		}
		name := style.Name
		if name == "" {
			name = "color_" + id
		}
		colors[name] = "#6200EE"
	}
	if len(colors) == 0 {
		colors["primary"] = "#6200EE"
		colors["secondary"] = "#03DAC6"
	}
	return colors
}

func extractTypography(styles map[string]figmaStyle) map[string]TextStyle {
	typography := map[string]TextStyle{}
	for id, style := range styles {
		if style.StyleType != "TEXT" {
			continue
		}
		name := style.Name
		if name == "" {
			name = "text_" + id
		}
		typography[name] = TextStyle{FontSize: 16, FontWeight: 400, LineHeight: 24}
	}
	if len(typography) == 0 {
		typography["body"] = TextStyle{FontSize: 16, FontWeight: 400, LineHeight: 24}
	}
	return typography
}

func defaultSpacing() map[string]int {
	return map[string]int{"small": 8, "medium": 16, "large": 24}
}

func parseDesignNode(node *figmaNode) []DesignComponent {
	if node == nil {
		return nil
	}
	var components []DesignComponent
	switch node.Type {
	case "COMPONENT", "FRAME", "GROUP":
		var children []DesignComponent
		for i := range node.Children {
			children = append(children, parseDesignNode(&node.Children[i])...)
		}
		width, height := 100.0, 100.0
		if node.BoundingBox != nil {
			width, height = node.BoundingBox.Width, node.BoundingBox.Height
		}
		layout := node.LayoutMode
		if layout == "" {
			layout = "NONE"
		}
		name := node.Name
		if name == "" {
			name = "Unnamed"
		}
		components = append(components, DesignComponent{
			Name: name,
			Kind: node.Type,
			Properties: map[string]any{
				"width":      width,
				"height":     height,
				"layoutMode": layout,
			},
			Children: children,
		})
	default:
		for i := range node.Children {
			components = append(components, parseDesignNode(&node.Children[i])...)
		}
	}
	return components
}

// MockDesign is the fixed fallback payload used whenever the design API is
// unavailable.
func MockDesign(fileKey string) *DesignSpec {
	return &DesignSpec{
		FileKey: fileKey,
		Name:    "Mock Design",
		Colors: map[string]string{
			"primary":    "#6200EE",
			"secondary":  "#03DAC6",
			"background": "#FFFFFF",
		},
		Typography: map[string]TextStyle{
			"heading1": {FontSize: 32, FontWeight: 700, LineHeight: 40},
			"body":     {FontSize: 16, FontWeight: 400, LineHeight: 24},
		},
		Spacing: defaultSpacing(),
		Components: []DesignComponent{
			{
				Name:       "Button",
				Kind:       "COMPONENT",
				Properties: map[string]any{"width": 200.0, "height": 48.0},
			},
		},
	}
}

// ComposeThemeFromDesign renders a design spec's tokens as Compose theme
// declarations, used to enrich generation prompts with real palette values.
func ComposeThemeFromDesign(spec *DesignSpec) string {
	var b strings.Builder
	b.WriteString("import androidx.compose.ui.graphics.Color\n")
	b.WriteString("import androidx.compose.ui.unit.sp\n\n")

	b.WriteString("// Colors\n")
	for _, name := range sortedKeys(spec.Colors) {
		value := spec.Colors[name]
		if strings.HasPrefix(value, "#") {
			value = "0xFF" + strings.TrimPrefix(value, "#")
		}
		fmt.Fprintf(&b, "val %s = Color(%s)\n", safeTokenName(name), value)
	}

	b.WriteString("\n// Typography\n")
	for _, name := range sortedKeys(spec.Typography) {
		style := spec.Typography[name]
		fmt.Fprintf(&b, "val %sStyle = TextStyle(fontSize = %d.sp, fontWeight = FontWeight(%d), lineHeight = %d.sp)\n",
			safeTokenName(name), style.FontSize, style.FontWeight, style.LineHeight)
	}

	return b.String()
}

func safeTokenName(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	return strings.ReplaceAll(name, " ", "_")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
