// Package adapter contains filesystem and persistence adapters for the CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	m "github.com/leriomaggio/pyre-check/internal/model"
)

const pythonFileExt = ".py"

// pyreIgnoreFile lists exclude patterns per scan root, gitignore syntax.
const pyreIgnoreFile = ".pyreignore"

var skipDirs = map[string]struct{}{
	"__pycache__":   {},
	"node_modules":  {},
	".git":          {},
	".hg":           {},
	".svn":          {},
	"venv":          {},
	".venv":         {},
	".tox":          {},
	".mypy_cache":   {},
	".pytest_cache": {},
}

// SourceFSAdapter abstracts filesystem operations the domain layer relies on
// when scanning user projects. It hides direct os access so the workflow
// logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get collects Python source files under the provided roots, honoring
	// exclude patterns (gitignore syntax) and each root's .pyreignore file.
	// Returned paths keep the root-relative form the qualifier deriver
	// expects and preserve walk order.
	Get(roots []m.Path, exclude []string) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// ReadLines loads a file and splits it into lines for the extractor.
	ReadLines(path m.Path) ([]string, error)

	// FileInfo returns metadata for a path so the domain can check existence
	// or distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the local
// filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects Python source files for the provided roots.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, exclude []string) ([]m.Path, error) {
	if len(roots) == 0 {
		return []m.Path{}, nil
	}

	var matcher *ignore.GitIgnore
	if len(exclude) > 0 {
		matcher = ignore.CompileIgnoreLines(exclude...)
	}

	seen := make(map[string]struct{})

	var paths []m.Path

	for _, root := range roots {
		rootPath, recursive := parseRootPath(string(root))
		if rootPath == "" {
			rootPath = "."
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			collectPath(rootPath, matcher, nil, seen, &paths)

			continue
		}

		rootMatcher := loadPyreIgnore(rootPath)

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if _, skip := skipDirs[info.Name()]; skip && path != rootPath {
					return filepath.SkipDir
				}

				return nil
			}

			collectPath(path, matcher, rootMatcher, seen, &paths)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// Walk iterates over files under root, optionally descending into
// subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// ReadLines loads a file and splits it into lines. A trailing newline does
// not produce a final empty line, so an empty file yields zero lines.
func (a *LocalSourceFSAdapter) ReadLines(path m.Path) ([]string, error) {
	content, err := a.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return SplitLines(content), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// SplitLines splits raw file content into lines for the extractor, normalizing
// CRLF endings.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	text := strings.TrimSuffix(string(content), "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func collectPath(path string, matcher, rootMatcher *ignore.GitIgnore, seen map[string]struct{}, paths *[]m.Path) {
	if filepath.Ext(path) != pythonFileExt {
		return
	}

	cleaned := filepath.ToSlash(filepath.Clean(path))

	if matcher != nil && matcher.MatchesPath(cleaned) {
		return
	}

	if rootMatcher != nil && rootMatcher.MatchesPath(cleaned) {
		return
	}

	if _, exists := seen[cleaned]; exists {
		return
	}

	seen[cleaned] = struct{}{}
	*paths = append(*paths, m.Path(cleaned))
}

func loadPyreIgnore(root string) *ignore.GitIgnore {
	matcher, err := ignore.CompileIgnoreFile(filepath.Join(root, pyreIgnoreFile))
	if err != nil {
		return nil
	}

	return matcher
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
