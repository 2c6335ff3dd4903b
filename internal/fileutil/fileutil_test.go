package fileutil

import (
	"testing"

	"github.com/waxworks/stylus/internal/testutil"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"colon", "OK Computer: OKNOTOK", "OK Computer - OKNOTOK"},
		{"slash", "AC/DC - Back in Black", "AC-DC - Back in Black"},
		{"backslash", `weird\name`, "weird-name"},
		{"clean", "Blue Train", "Blue Train"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRecordFilename(t *testing.T) {
	got := RecordFilename("AC/DC", "Back in Black")
	if got != "AC-DC - Back in Black" {
		t.Errorf("RecordFilename() = %q", got)
	}
}

func TestWriteFileWithOverwrite(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.Path("out", "note.md")

	written, err := WriteFileWithOverwrite(path, []byte("first"), 0644, false)
	if err != nil {
		t.Fatalf("WriteFileWithOverwrite() error = %v", err)
	}
	if !written {
		t.Error("expected first write to happen")
	}

	written, err = WriteFileWithOverwrite(path, []byte("second"), 0644, false)
	if err != nil {
		t.Fatalf("WriteFileWithOverwrite() error = %v", err)
	}
	if written {
		t.Error("expected skip without overwrite flag")
	}
	env.AssertFileContains("out/note.md", "first")

	written, err = WriteFileWithOverwrite(path, []byte("second"), 0644, true)
	if err != nil {
		t.Fatalf("WriteFileWithOverwrite() error = %v", err)
	}
	if !written {
		t.Error("expected overwrite to happen")
	}
	env.AssertFileContains("out/note.md", "second")
}

func TestWriteJSONFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.Path("records.json")

	data := map[string]any{"artist": "Can", "title": "Future Days"}
	written, err := WriteJSONFile(data, path, false)
	if err != nil {
		t.Fatalf("WriteJSONFile() error = %v", err)
	}
	if !written {
		t.Error("expected JSON file to be written")
	}
	env.AssertFileContains("records.json", `"artist": "Can"`)
}
