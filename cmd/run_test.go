package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/docfmt/docfmt/internal/format"
)

func TestFormatSourceDispatch(t *testing.T) {
	opts := format.Default()

	out, err := formatSource("README.md", "# hello\n\n\n\nworld\n", opts)
	if err != nil {
		t.Fatalf("markdown: %v", err)
	}
	if out != "# hello\n\nworld\n" {
		t.Fatalf("markdown out=%q", out)
	}

	out, err = formatSource("config.YAML", "a:   1\n", opts)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if out != "a: 1\n" {
		t.Fatalf("yaml out=%q", out)
	}

	if _, err := formatSource("script.sh", "", opts); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestIsFormattable(t *testing.T) {
	cases := map[string]bool{
		"a.md":       true,
		"a.markdown": true,
		"a.yaml":     true,
		"a.yml":      true,
		"a.YML":      true,
		"a.txt":      false,
		"Makefile":   false,
	}
	for path, want := range cases {
		if got := isFormattable(path); got != want {
			t.Errorf("isFormattable(%q)=%v, want %v", path, got, want)
		}
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("README.md", "# hi\n")
	write("docs/guide.markdown", "text\n")
	write("config.yaml", "a: 1\n")
	write("notes.txt", "skip\n")
	write("node_modules/pkg/x.md", "skip\n")
	write("drafts/wip.md", "skip\n")
	write(".docfmtignore", "drafts/\n")

	files, err := collectFiles([]string{dir})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(dir, "README.md"),
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "docs", "guide.markdown"),
	}
	if len(files) != len(want) {
		t.Fatalf("files=%v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("files[%d]=%q, want %q", i, files[i], want[i])
		}
	}
}

func TestCollectFilesExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := collectFiles([]string{path})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0] != path {
		t.Fatalf("files=%v", files)
	}
}
