package tabs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "tabs.yaml")

	yamlContent := `---
- title: Inbox
  category: work
- title: Reading List
  category: PMB
- category: other
`

	err := os.WriteFile(yamlPath, []byte(yamlContent), 0o644)
	if err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	loader := NewLoader(yamlPath)
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(config) != 3 {
		t.Fatalf("Load() returned %d entries, want 3", len(config))
	}
	if config[0].Title == nil || *config[0].Title != "Inbox" {
		t.Errorf("first title = %v, want Inbox", config[0].Title)
	}
	if config[2].Title != nil {
		t.Errorf("third title should be missing, got %q", *config[2].Title)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/tabs.yaml")
	_, err := loader.Load()
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLen   int
		wantError bool
	}{
		{name: "empty document", input: "", wantLen: 0},
		{name: "empty sequence", input: "[]", wantLen: 0},
		{name: "flow sequence", input: `[{title: Inbox, category: work}]`, wantLen: 1},
		{name: "null item", input: "- title: A\n  category: work\n-\n", wantLen: 2},
		{name: "mapping instead of sequence", input: "title: Inbox\ncategory: work\n", wantError: true},
		{name: "quoted padded category", input: "- title: A\n  category: \" work \"\n", wantLen: 1},
		{name: "malformed yaml", input: "- title: [unclosed\n", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Parse([]byte(tt.input))
			if tt.wantError {
				if err == nil {
					t.Fatalf("Parse() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(config) != tt.wantLen {
				t.Errorf("Parse() len = %d, want %d", len(config), tt.wantLen)
			}
		})
	}
}
