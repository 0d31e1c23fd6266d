package src

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrExtractionFailed is returned when every fallback tier is exhausted and
// no anchor for the requested field can be located in the payload.
var ErrExtractionFailed = errors.New("extraction failed")

var (
	fenceRe             = regexp.MustCompile("(?s)```([a-zA-Z0-9_+\\.-]*)\\s*\\n(.*?)\\n```")
	jsonRe              = regexp.MustCompile("(?is)```(?:json[c5]?|json5)?\\s*([{\\[].*?[}\\]])\\s*```")
	trailingArrayComma  = regexp.MustCompile(`,\s*\]`)
	trailingObjectComma = regexp.MustCompile(`,\s*\}`)
	backtickStringRe    = regexp.MustCompile("`([^`\\\\]*(?:\\\\.[^`\\\\]*)*)`")
)

// knownLangs are fence tags we treat as real language aliases. A fence
// tagged with anything else still yields its interior, but a bare first
// line that is exactly a language name gets dropped.
var knownLangs = map[string]bool{
	"kotlin": true, "kt": true, "java": true, "json": true,
	"xml": true, "go": true, "golang": true,
}

// ExtractCode pulls the code payload out of a free-form model response.
// Fenced blocks win; with no fence the payload is returned unchanged.
func ExtractCode(payload string) string {
	matches := fenceRe.FindAllStringSubmatch(payload, -1)
	if len(matches) == 0 {
		return strings.TrimSpace(payload)
	}

	// Prefer the first block carrying a known language tag.
	for _, m := range matches {
		if knownLangs[strings.ToLower(m[1])] {
			return strings.TrimSpace(m[2])
		}
	}

	// Otherwise take the first block, dropping a first line that is just a
	// bare language name.
	body := matches[0][2]
	if idx := strings.IndexByte(body, '\n'); idx > 0 {
		first := strings.TrimSpace(body[:idx])
		if knownLangs[strings.ToLower(first)] {
			body = body[idx+1:]
		}
	}
	return strings.TrimSpace(body)
}

// ExtractJSON finds the first JSON object or array in a response, handling
// optional markdown fences and the usual provider quirks (trailing commas,
// backticks standing in for quotes).
func ExtractJSON(raw string) ([]byte, error) {
	candidate := raw

	if matches := jsonRe.FindStringSubmatch(raw); len(matches) > 1 {
		candidate = matches[1]
	} else {
		// No fence; fall back to the outermost bracket range.
		start := strings.IndexAny(raw, "[{")
		if start == -1 {
			return nil, errors.New("no JSON object or array found")
		}
		end := strings.LastIndexAny(raw, "}]")
		if end == -1 || end < start {
			return nil, errors.New("no JSON object or array found")
		}
		candidate = raw[start : end+1]
	}

	jsonStr := strings.TrimSpace(candidate)
	if jsonStr == "" {
		return nil, errors.New("empty JSON payload")
	}

	jsonStr = trailingArrayComma.ReplaceAllString(jsonStr, "]")
	jsonStr = trailingObjectComma.ReplaceAllString(jsonStr, "}")

	if strings.Contains(jsonStr, "`") {
		jsonStr = backtickStringRe.ReplaceAllString(jsonStr, "\"$1\"")
	}

	first := jsonStr[0]
	if first != '{' && first != '[' {
		return nil, errors.New("response did not contain JSON object or array")
	}

	return []byte(jsonStr), nil
}

// DecodeJSON unmarshals a model response into v, trying strict decoding of
// the extracted payload first and a control-character-tolerant pass second.
func DecodeJSON(raw string, v any) error {
	data, err := ExtractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err == nil {
		return nil
	}
	// Models sometimes emit raw newlines and tabs inside string values.
	lenient := escapeControlChars(string(data))
	if err := json.Unmarshal([]byte(lenient), v); err != nil {
		return fmt.Errorf("decode JSON response: %w", err)
	}
	return nil
}

// escapeControlChars escapes raw control characters that appear inside
// JSON string values, leaving structural whitespace alone.
func escapeControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inString := false
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		switch {
		case inString && r == '\\':
			b.WriteRune(r)
			escaped = true
		case r == '"':
			inString = !inString
			b.WriteRune(r)
		case inString && r == '\n':
			b.WriteString(`\n`)
		case inString && r == '\t':
			b.WriteString(`\t`)
		case inString && r == '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExtractJSONField recovers a single string field from a possibly-malformed
// JSON response. Tiers: strict/lenient extraction, then a gjson lookup over
// the raw payload, then a manual anchor scan. Only ErrExtractionFailed
// escapes, and only when the field name cannot be found at all.
func ExtractJSONField(raw, field string) (string, error) {
	if data, err := ExtractJSON(raw); err == nil {
		var obj map[string]any
		if json.Unmarshal(data, &obj) == nil {
			if v, ok := obj[field].(string); ok {
				return v, nil
			}
		}
		// Structure survived extraction even if full decoding did not.
		if res := gjson.GetBytes(data, field); res.Exists() {
			return res.String(), nil
		}
	}
	if res := gjson.Get(raw, field); res.Exists() {
		return res.String(), nil
	}
	return scanJSONField(raw, field)
}

// scanJSONField is the last-resort recovery: locate the quoted field name,
// skip past its colon, and copy characters from the first quote until an
// unescaped closing quote, unescaping \n and \" on the way.
func scanJSONField(raw, field string) (string, error) {
	anchor := `"` + field + `"`
	idx := strings.Index(raw, anchor)
	if idx == -1 {
		return "", fmt.Errorf("%w: field %q not found", ErrExtractionFailed, field)
	}
	rest := raw[idx+len(anchor):]
	colon := strings.IndexByte(rest, ':')
	if colon == -1 {
		return "", fmt.Errorf("%w: field %q has no value", ErrExtractionFailed, field)
	}
	rest = rest[colon+1:]
	open := strings.IndexByte(rest, '"')
	if open == -1 {
		return "", fmt.Errorf("%w: field %q has no string value", ErrExtractionFailed, field)
	}
	rest = rest[open+1:]

	var b strings.Builder
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == '\\' && i+1 < len(rest) {
			switch rest[i+1] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(rest[i+1])
			}
			i++
			continue
		}
		if c == '"' {
			return b.String(), nil
		}
		b.WriteByte(c)
	}
	// Unterminated string; return what was recovered.
	return b.String(), nil
}

// ExtractStringList reads an array of strings from a possibly-malformed
// JSON response, best-effort. Missing or unreadable arrays yield nil.
func ExtractStringList(raw, field string) []string {
	var res gjson.Result
	if data, err := ExtractJSON(raw); err == nil {
		res = gjson.GetBytes(data, field)
	}
	if !res.Exists() {
		res = gjson.Get(raw, field)
	}
	if !res.IsArray() {
		return nil
	}
	var out []string
	for _, item := range res.Array() {
		out = append(out, item.String())
	}
	return out
}
