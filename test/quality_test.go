package test

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// getProjectRoot returns the project root directory based on this test file's location.
func getProjectRoot() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	// Go up one level from test/ to project root
	return filepath.Dir(filepath.Dir(filename))
}

// walkGoFiles calls fn for every .go file in the module, skipping hidden,
// vendor and underscore-prefixed directories like the go tool does.
func walkGoFiles(t *testing.T, fn func(path string)) {
	t.Helper()

	root := getProjectRoot()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".go") {
			fn(path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk directory: %v", err)
	}
}

// TestNoSkippedTests ensures no test files contain t.Skip() calls.
func TestNoSkippedTests(t *testing.T) {
	forbiddenPatterns := []string{
		"t.Skip(",
		"t.SkipNow(",
		"testing.Short()",
	}

	var violations []string

	walkGoFiles(t, func(path string) {
		if !strings.HasSuffix(path, "_test.go") || strings.HasSuffix(path, "quality_test.go") {
			return
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("Failed to open %s: %v", path, err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			line := scanner.Text()

			if strings.HasPrefix(strings.TrimSpace(line), "//") {
				continue
			}

			for _, pattern := range forbiddenPatterns {
				if strings.Contains(line, pattern) {
					violations = append(violations, fmt.Sprintf("%s:%d: contains forbidden pattern %q", path, lineNum, pattern))
				}
			}
		}

		if err := scanner.Err(); err != nil {
			t.Fatalf("Error scanning %s: %v", path, err)
		}
	})

	for _, v := range violations {
		t.Errorf("  %s", v)
	}
}

// TestEveryPackageHasTests ensures each library package ships tests.
func TestEveryPackageHasTests(t *testing.T) {
	sources := make(map[string]bool)
	tests := make(map[string]bool)

	walkGoFiles(t, func(path string) {
		dir := filepath.Dir(path)
		if strings.HasSuffix(path, "_test.go") {
			tests[dir] = true
		} else {
			sources[dir] = true
		}
	})

	if len(sources) == 0 {
		t.Fatal("No packages found - something is wrong with package discovery")
	}

	root := getProjectRoot()
	for dir := range sources {
		rel, _ := filepath.Rel(root, dir)
		if strings.HasPrefix(rel, "cmd"+string(filepath.Separator)) {
			continue
		}
		if !tests[dir] {
			t.Errorf("package %s has no tests", rel)
		}
	}
}
