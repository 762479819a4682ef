package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
)

func TestDotenvSourceList(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "DATA_SOURCE='./dados.json, https://example.org/export?fmt=\"json\"'\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	env, err := godotenv.Read(path)
	if err != nil {
		t.Fatalf("Error reading env: %v", err)
	}

	sources := splitList(env["DATA_SOURCE"])
	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources, got %v", sources)
	}
	expected := `https://example.org/export?fmt="json"`
	if sources[1] != expected {
		t.Errorf("Expected %s, got %s", expected, sources[1])
	}
}
