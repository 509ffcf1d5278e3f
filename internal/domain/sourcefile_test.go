package domain

import (
	"errors"
	"reflect"
	"testing"

	m "github.com/leriomaggio/pyre-check/internal/model"
)

func TestBuildSourceFile(t *testing.T) {
	lines := []string{
		"# pyre-strict",
		"x = 1  # pyre-ignore[9]",
	}
	statements := []m.Statement{"assign"}
	docstring := "module docs"

	sourceFile, err := BuildSourceFile("project/module.py", lines, statements, &docstring)
	if err != nil {
		t.Fatalf("BuildSourceFile() error = %v", err)
	}

	if !reflect.DeepEqual(sourceFile.Qualifier, []string{"project", "module"}) {
		t.Fatalf("expected qualifier [project module], got %v", sourceFile.Qualifier)
	}
	if !sourceFile.Metadata.Strict {
		t.Fatalf("expected strict metadata")
	}
	if len(sourceFile.Metadata.Suppressions) != 1 {
		t.Fatalf("expected 1 suppression, got %d", len(sourceFile.Metadata.Suppressions))
	}
	if !reflect.DeepEqual(sourceFile.Statements, statements) {
		t.Fatalf("statements must be carried unmodified")
	}
	if sourceFile.Docstring == nil || *sourceFile.Docstring != docstring {
		t.Fatalf("docstring must be carried unmodified")
	}
}

func TestBuildSourceFile_InvalidPath(t *testing.T) {
	_, err := BuildSourceFile("", nil, nil, nil)
	if !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
}
