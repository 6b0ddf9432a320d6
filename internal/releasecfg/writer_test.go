package releasecfg

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWrite_RoundTrip(t *testing.T) {
	cfg := NewBuilder().
		WithReleaseType(Minor).
		WithTarget(Node, "./package.json").
		WithTarget(Deno, "./deno.json").
		Build()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := Write(cfg, path); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	rendered, err := cfg.Render()
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(onDisk, rendered) {
		t.Errorf("written file differs from Render() output:\n%s\nvs\n%s", onDisk, rendered)
	}
}

func TestWrite_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("stale content"), ConfigFilePerm); err != nil {
		t.Fatal(err)
	}

	cfg := NewBuilder().WithTarget(Node, "./package.json").Build()
	if err := Write(cfg, path); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(onDisk, []byte("stale content")) {
		t.Error("Write() did not overwrite the existing file")
	}
}

func TestWrite_UnwritablePath(t *testing.T) {
	err := Write(NewBuilder().Build(), filepath.Join(t.TempDir(), "missing", DefaultFileName))
	if err == nil {
		t.Fatal("Write() to a missing directory expected error, got nil")
	}
}
