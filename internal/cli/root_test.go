package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	want := []string{"lines", "parse", "grid", "list", "validate", "version"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Missing subcommand: %s", name)
		}
	}

	for _, flag := range []string{"config", "base-dir", "output", "verbose", "quiet", "color"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("Missing persistent flag: %s", flag)
		}
	}
}

func TestRootCommand_PersistentFlagsReachSubcommands(t *testing.T) {
	t.Setenv("FIXTURES_BASE_DIR", "")

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "day01.txt"), []byte("1\n2\n3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	root := NewRootCommand()
	root.SetArgs([]string{"--base-dir", dir, "--quiet", "parse", "day01"})

	var buf bytes.Buffer
	root.SetOut(&buf)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, want := buf.String(), "fixtures: 1 read, 0 failed, 3 lines\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
