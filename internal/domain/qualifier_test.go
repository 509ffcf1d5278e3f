package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestDeriveQualifier_NestedModule(t *testing.T) {
	qualifier, err := DeriveQualifier("project/module/thing.py")
	if err != nil {
		t.Fatalf("DeriveQualifier() error = %v", err)
	}

	if !reflect.DeepEqual(qualifier, []string{"project", "module", "thing"}) {
		t.Fatalf("expected [project module thing], got %v", qualifier)
	}
}

func TestDeriveQualifier_InitIsInvisible(t *testing.T) {
	fromInit, err := DeriveQualifier("project/module/__init__.py")
	if err != nil {
		t.Fatalf("DeriveQualifier() error = %v", err)
	}

	fromFile, err := DeriveQualifier("project/module.py")
	if err != nil {
		t.Fatalf("DeriveQualifier() error = %v", err)
	}

	if !reflect.DeepEqual(fromInit, fromFile) {
		t.Fatalf("__init__ must be invisible: %v vs %v", fromInit, fromFile)
	}
}

func TestDeriveQualifier_BuiltinsIsInvisible(t *testing.T) {
	qualifier, err := DeriveQualifier("project/builtins.py")
	if err != nil {
		t.Fatalf("DeriveQualifier() error = %v", err)
	}

	if !reflect.DeepEqual(qualifier, []string{"project"}) {
		t.Fatalf("expected [project], got %v", qualifier)
	}
}

func TestDeriveQualifier_EmptyPath(t *testing.T) {
	_, err := DeriveQualifier("")
	if !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
}

func TestDeriveQualifier_AbsoluteAndDotPrefixed(t *testing.T) {
	absolute, err := DeriveQualifier("/a/b/c.py")
	if err != nil {
		t.Fatalf("DeriveQualifier() error = %v", err)
	}

	relative, err := DeriveQualifier("./a/b/c.py")
	if err != nil {
		t.Fatalf("DeriveQualifier() error = %v", err)
	}

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(absolute, want) || !reflect.DeepEqual(relative, want) {
		t.Fatalf("expected %v, got %v and %v", want, absolute, relative)
	}
}

func TestDeriveQualifier_NoExtension(t *testing.T) {
	qualifier, err := DeriveQualifier("scripts/helper")
	if err != nil {
		t.Fatalf("DeriveQualifier() error = %v", err)
	}

	if !reflect.DeepEqual(qualifier, []string{"scripts", "helper"}) {
		t.Fatalf("expected [scripts helper], got %v", qualifier)
	}
}

func TestDeriveQualifier_DottedSegmentSplits(t *testing.T) {
	qualifier, err := DeriveQualifier("pkg/tool.v2.py")
	if err != nil {
		t.Fatalf("DeriveQualifier() error = %v", err)
	}

	if !reflect.DeepEqual(qualifier, []string{"pkg", "tool", "v2"}) {
		t.Fatalf("expected [pkg tool v2], got %v", qualifier)
	}
}
