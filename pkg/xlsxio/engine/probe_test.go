package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsLegacyWorkbook(t *testing.T) {
	dir := t.TempDir()

	textFile := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(textFile, []byte("just text, no container"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	empty := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	tests := []struct {
		path     string
		expected bool
	}{
		{textFile, false},
		{empty, false},
		{filepath.Join(dir, "missing.xls"), false},
	}

	for _, tt := range tests {
		if got := IsLegacyWorkbook(tt.path); got != tt.expected {
			t.Errorf("IsLegacyWorkbook(%q) = %v, expected %v", tt.path, got, tt.expected)
		}
	}
}
