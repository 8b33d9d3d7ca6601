package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestToolsCmd_ListsAll(t *testing.T) {
	cmd := newToolsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, name := range []string{"read_file", "list_directory", "create_file", "create_directory"} {
		if !strings.Contains(got, name) {
			t.Errorf("expected %q in listing, got:\n%s", name, got)
		}
	}
}

func TestToolsCmd_CategoryFilter(t *testing.T) {
	cmd := newToolsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Flags().Set("category", "network"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No tools registered") {
		t.Errorf("expected empty listing for unknown category, got:\n%s", out.String())
	}
}

func TestRunCmd_InvokesTool(t *testing.T) {
	tmpDir, _ := filepath.EvalSymlinks(t.TempDir())
	os.WriteFile(filepath.Join(tmpDir, "hello.txt"), []byte("hi"), 0644)

	cmd := newRunCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.RunE(cmd, []string{"list_directory", tmpDir}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "hello.txt") {
		t.Errorf("expected directory entry in output, got:\n%s", out.String())
	}
}

func TestRunCmd_UnknownTool(t *testing.T) {
	cmd := newRunCmd()
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.RunE(cmd, []string{"no_such_tool"}); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestRunCmd_ToolErrorPropagates(t *testing.T) {
	tmpDir, _ := filepath.EvalSymlinks(t.TempDir())
	filePath := filepath.Join(tmpDir, "f.txt")
	os.WriteFile(filePath, []byte("x"), 0644)

	cmd := newRunCmd()
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.RunE(cmd, []string{"list_directory", filePath})
	if err == nil {
		t.Fatal("expected 'not a directory' error")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("unexpected error: %v", err)
	}
}
