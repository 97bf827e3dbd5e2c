package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestNewFileInputSource(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "vitrine.yaml")
	if err := os.WriteFile(path, []byte("server: http://example.com:3003\n"), 0o600); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	source, err := NewFileInputSource(path)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	server, err := source.String(paramServer)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "http://example.com:3003", server; e != g {
		t.Errorf("server: expected %v, got %v", e, g)
	}

	if _, err := NewFileInputSource(filepath.Join(dir, "vitrine.toml")); err == nil {
		t.Error("expected an error for unsupported extension")
	}
}
