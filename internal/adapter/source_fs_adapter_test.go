package adapter

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	m "github.com/leriomaggio/pyre-check/internal/model"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLocalSourceFSAdapter_GetRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.py"), "x = 1\n")
	writeFile(t, filepath.Join(root, "pkg", "util.py"), "y = 2\n")
	writeFile(t, filepath.Join(root, "pkg", "notes.txt"), "not python\n")
	writeFile(t, filepath.Join(root, "__pycache__", "main.cpython-311.py"), "cached\n")

	adapter := NewLocalSourceFSAdapter()

	paths, err := adapter.Get([]m.Path{m.Path(root + "/...")}, nil)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	want := []m.Path{
		m.Path(filepath.ToSlash(filepath.Join(root, "main.py"))),
		m.Path(filepath.ToSlash(filepath.Join(root, "pkg", "util.py"))),
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("Get() = %v, want %v", paths, want)
	}
}

func TestLocalSourceFSAdapter_GetNonRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.py"), "x = 1\n")
	writeFile(t, filepath.Join(root, "pkg", "util.py"), "y = 2\n")

	adapter := NewLocalSourceFSAdapter()

	paths, err := adapter.Get([]m.Path{m.Path(root)}, nil)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if len(paths) != 1 {
		t.Fatalf("expected only the root directory's files, got %v", paths)
	}
}

func TestLocalSourceFSAdapter_GetSingleFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "main.py")
	writeFile(t, file, "x = 1\n")

	adapter := NewLocalSourceFSAdapter()

	paths, err := adapter.Get([]m.Path{m.Path(file), m.Path(file)}, nil)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if len(paths) != 1 {
		t.Fatalf("duplicate roots must be deduplicated, got %v", paths)
	}
}

func TestLocalSourceFSAdapter_GetMissingRoot(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	if _, err := adapter.Get([]m.Path{"does-not-exist"}, nil); err == nil {
		t.Fatalf("expected error for missing root")
	}
}

func TestLocalSourceFSAdapter_ExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.py"), "x = 1\n")
	writeFile(t, filepath.Join(root, "migrations", "0001_init.py"), "pass\n")

	adapter := NewLocalSourceFSAdapter()

	paths, err := adapter.Get([]m.Path{m.Path(root + "/...")}, []string{"**/migrations/**"})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if len(paths) != 1 || filepath.Base(string(paths[0])) != "main.py" {
		t.Fatalf("exclude pattern not honored, got %v", paths)
	}
}

func TestLocalSourceFSAdapter_PyreIgnoreFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.py"), "x = 1\n")
	writeFile(t, filepath.Join(root, "generated", "client.py"), "pass\n")
	writeFile(t, filepath.Join(root, pyreIgnoreFile), "generated/\n")

	adapter := NewLocalSourceFSAdapter()

	paths, err := adapter.Get([]m.Path{m.Path(root + "/...")}, nil)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if len(paths) != 1 || filepath.Base(string(paths[0])) != "main.py" {
		t.Fatalf(".pyreignore not honored, got %v", paths)
	}
}

func TestLocalSourceFSAdapter_ReadLinesFromExamples(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	lines, err := adapter.ReadLines(m.Path(filepath.Join("..", "..", "examples", "ignores", "legacy.py")))
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}

	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %v", len(lines), lines)
	}

	if lines[0] != "#!/usr/bin/env python2" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty file", content: "", want: nil},
		{name: "single newline", content: "\n", want: []string{""}},
		{name: "trailing newline dropped", content: "a\nb\n", want: []string{"a", "b"}},
		{name: "no trailing newline", content: "a\nb", want: []string{"a", "b"}},
		{name: "blank line kept", content: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "crlf normalized", content: "a\r\nb\r\n", want: []string{"a", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitLines([]byte(tc.content))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitLines(%q) = %v, want %v", tc.content, got, tc.want)
			}
		})
	}
}
