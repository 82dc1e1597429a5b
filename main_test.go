package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestCLI_Structure(t *testing.T) {
	// Test that the CLI struct has the expected commands
	var cli CLI

	// This is a compile-time check - if the struct changes, this will fail
	_ = cli.UI
	_ = cli.Compress
	_ = cli.Decompress
	_ = cli.Debug
}

func TestKongParsing(t *testing.T) {
	// Test that Kong can parse the CLI structure without errors
	var cli CLI

	parser := kong.Must(&cli)

	if parser == nil {
		t.Error("Kong parser should not be nil")
	}
}

func TestKongParsing_DefaultCommand(t *testing.T) {
	// With no arguments the interactive UI is the selected command
	var cli CLI
	parser := kong.Must(&cli)

	ctx, err := parser.Parse([]string{})
	if err != nil {
		t.Fatalf("Unexpected error parsing empty args: %v", err)
	}

	if !strings.Contains(ctx.Command(), "ui") {
		t.Errorf("Expected 'ui' command by default, got %q", ctx.Command())
	}
}

func TestKongParsing_CompressCommand(t *testing.T) {
	// Create a temporary test file
	testDir := t.TempDir()
	testFile := filepath.Join(testDir, "report.txt")

	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	testCases := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{
			name:        "Compress with single file",
			args:        []string{"compress", testFile},
			expectError: false,
		},
		{
			name:        "Compress with level flag",
			args:        []string{"compress", "--level", "best", testFile},
			expectError: false,
		},
		{
			name:        "Compress with output flag",
			args:        []string{"compress", "-o", filepath.Join(testDir, "out.zst"), testFile},
			expectError: false,
		},
		{
			name:        "Compress with invalid level",
			args:        []string{"compress", "--level", "maximum", testFile},
			expectError: true,
		},
		{
			name:        "Compress with no file",
			args:        []string{"compress"},
			expectError: true,
		},
		{
			name:        "Compress with missing file",
			args:        []string{"compress", filepath.Join(testDir, "does-not-exist.txt")},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var cli CLI
			parser := kong.Must(&cli)

			ctx, err := parser.Parse(tc.args)

			if tc.expectError {
				if err == nil {
					t.Errorf("Expected error for args %v, but parsing succeeded", tc.args)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for args %v: %v", tc.args, err)
				} else if !strings.Contains(ctx.Command(), "compress") {
					t.Errorf("Expected 'compress' command, got %q", ctx.Command())
				}
			}
		})
	}
}

func TestKongParsing_CompressDefaults(t *testing.T) {
	testDir := t.TempDir()
	testFile := filepath.Join(testDir, "report.txt")

	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	var cli CLI
	parser := kong.Must(&cli)

	if _, err := parser.Parse([]string{"compress", testFile}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cli.Compress.Level != "normal" {
		t.Errorf("Expected default level 'normal', got %q", cli.Compress.Level)
	}
	if cli.Compress.File != testFile {
		t.Errorf("Expected file %q, got %q", testFile, cli.Compress.File)
	}
	if cli.Compress.Output != "" {
		t.Errorf("Expected empty default output, got %q", cli.Compress.Output)
	}
}

func TestKongParsing_DecompressCommand(t *testing.T) {
	// Create a temporary test file
	testDir := t.TempDir()
	testFile := filepath.Join(testDir, "report.txt.zst")

	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	testCases := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{
			name:        "Decompress with single file",
			args:        []string{"decompress", testFile},
			expectError: false,
		},
		{
			name:        "Decompress with output flag",
			args:        []string{"decompress", "-o", filepath.Join(testDir, "report.txt"), testFile},
			expectError: false,
		},
		{
			name:        "Decompress with no file",
			args:        []string{"decompress"},
			expectError: true,
		},
		{
			name:        "Decompress with missing file",
			args:        []string{"decompress", filepath.Join(testDir, "does-not-exist.zst")},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var cli CLI
			parser := kong.Must(&cli)

			ctx, err := parser.Parse(tc.args)

			if tc.expectError {
				if err == nil {
					t.Errorf("Expected error for args %v, but parsing succeeded", tc.args)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for args %v: %v", tc.args, err)
				} else if !strings.Contains(ctx.Command(), "decompress") {
					t.Errorf("Expected 'decompress' command, got %q", ctx.Command())
				}
			}
		})
	}
}

func TestKongParsing_DebugFlag(t *testing.T) {
	var cli CLI
	parser := kong.Must(&cli)

	if _, err := parser.Parse([]string{"--debug"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !cli.Debug {
		t.Error("Expected Debug to be set")
	}
}

func TestVersion(t *testing.T) {
	// Test that Version variable exists and has expected default
	if Version == "" {
		t.Error("Version should not be empty")
	}

	// Default version should be "dev"
	if Version != "dev" {
		t.Logf("Version is %q (expected 'dev' for development builds)", Version)
	}
}
