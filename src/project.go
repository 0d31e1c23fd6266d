package src

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

func isIgnoredDir(name string) bool {
	ignored := map[string]struct{}{
		".git": {}, "node_modules": {}, "dist": {}, "build": {}, "out": {}, "target": {}, "vendor": {},
		".gradle": {}, ".idea": {}, ".vscode": {}, ".DS_Store": {},
	}
	_, ok := ignored[name]
	return ok
}

// ReadProjectStructure walks an Android project and collects its existing
// composable functions plus whether a manifest is present. A missing root
// yields an empty structure, not an error; unreadable files are skipped.
func ReadProjectStructure(root string) (*ProjectStructure, error) {
	structure := &ProjectStructure{}

	if _, err := os.Stat(root); err != nil {
		return structure, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if isIgnoredDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".kt") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		content := string(data)
		if !strings.Contains(content, "@Composable") {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		for _, m := range composableFuncRe.FindAllStringSubmatch(content, -1) {
			structure.Components = append(structure.Components, ProjectComponent{
				Name: m[1],
				File: rel,
			})
		}
		return nil
	})
	if err != nil {
		return structure, fmt.Errorf("walk project: %w", err)
	}

	manifest := filepath.Join(root, "app", "src", "main", "AndroidManifest.xml")
	if _, err := os.Stat(manifest); err == nil {
		structure.HasManifest = true
	}

	return structure, nil
}

// IsAndroidProject reports whether a directory looks like an Android
// project root.
func IsAndroidProject(root string) bool {
	for _, name := range []string{"build.gradle", "build.gradle.kts", "settings.gradle", "settings.gradle.kts"} {
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			return true
		}
	}
	return false
}
