package src

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// GeneratedFile is one file parsed out of a multi-file generation response.
type GeneratedFile struct {
	Path string
	Code string
}

var pathCommentRe = regexp.MustCompile(`(?i)^\s*(?:\/\/|#|--|;|@|<!--)\s*path:?\s*([^\s>]+)`)

// ParseMultiFileOutput splits a multi-file response into its files. Each
// fenced block whose first line is a path comment becomes one file; blocks
// without a path comment get a generated name. With no fences at all the
// whole payload becomes a single screen file.
func ParseMultiFileOutput(response string) []GeneratedFile {
	blocks := fenceRe.FindAllStringSubmatch(response, -1)
	if len(blocks) == 0 {
		code := strings.TrimSpace(response)
		if code == "" {
			return nil
		}
		return []GeneratedFile{{Path: "GeneratedUI.kt", Code: code}}
	}

	var files []GeneratedFile
	for i, m := range blocks {
		path, body := splitPathComment(m[2])
		if path == "" {
			path = fmt.Sprintf("generated/Screen%d.kt", i+1)
		}
		files = append(files, GeneratedFile{Path: path, Code: strings.TrimSpace(body)})
	}
	return files
}

// splitPathComment peels a leading path comment off a code block.
func splitPathComment(code string) (string, string) {
	lines := strings.Split(code, "\n")
	if len(lines) == 0 {
		return "", code
	}
	if m := pathCommentRe.FindStringSubmatch(lines[0]); len(m) > 1 {
		return filepath.ToSlash(strings.TrimSpace(m[1])), strings.Join(lines[1:], "\n")
	}
	return "", code
}

// WriteGeneratedFiles writes parsed files under root, creating parent
// directories. It returns the count written; the first write error aborts.
// Paths are model-supplied, so anything absolute or escaping root is
// rejected.
func WriteGeneratedFiles(root string, files []GeneratedFile) (int, error) {
	written := 0
	for _, f := range files {
		rel := filepath.FromSlash(f.Path)
		if !filepath.IsLocal(rel) {
			return written, fmt.Errorf("refusing path outside target directory: %s", f.Path)
		}
		abs := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return written, fmt.Errorf("create directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(abs, []byte(f.Code), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", f.Path, err)
		}
		written++
	}
	return written, nil
}

// FileTreePreview renders generated file paths as an indented tree, for
// display before anything touches disk.
func FileTreePreview(files []GeneratedFile) string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	sort.Strings(paths)

	var lines []string
	shown := map[string]bool{}
	for _, p := range paths {
		parts := strings.Split(p, "/")
		for i := 0; i < len(parts)-1; i++ {
			dir := strings.Join(parts[:i+1], "/")
			if shown[dir] {
				continue
			}
			shown[dir] = true
			lines = append(lines, strings.Repeat("  ", i)+"├── "+parts[i]+"/")
		}
		lines = append(lines, strings.Repeat("  ", len(parts)-1)+"├── "+parts[len(parts)-1])
	}
	return strings.Join(lines, "\n")
}
