package releasecfg

import (
	"bytes"
	"testing"
)

func TestConfig_Render_Golden(t *testing.T) {
	cfg := NewBuilder().
		WithReleaseType(Minor).
		WithTarget(Node, "./package.json").
		WithTarget(Deno, "./deno.json").
		Build()

	got, err := cfg.Render()
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	want := `{
  "$schema": "https://unpkg.com/release-hub/schema.json",
  "defaultReleaseType": "minor",
  "targets": {
    "node": true,
    "deno": true
  },
  "targetsPath": {
    "node": "./package.json",
    "deno": "./deno.json"
  },
  "sync": true
}
`
	if string(got) != want {
		t.Errorf("Render() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestConfig_Render_SyncVariants(t *testing.T) {
	tests := []struct {
		name  string
		build func() Config
		want  string
	}{
		{
			name: "sync none renders false",
			build: func() Config {
				return NewBuilder().WithSyncMode(SyncNone).Build()
			},
			want: `"sync": false`,
		},
		{
			name: "sync all renders true",
			build: func() Config {
				return NewBuilder().WithSyncMode(SyncAll).Build()
			},
			want: `"sync": true`,
		},
		{
			name: "groups render as nested arrays",
			build: func() Config {
				return NewBuilder().
					WithSyncMode(SyncGroups).
					WithGroup([]Target{Node, Deno}).
					Build()
			},
			want: "\"sync\": [\n    [\n      \"node\",\n      \"deno\"\n    ]\n  ]",
		},
		{
			name: "groups mode with no groups renders empty list",
			build: func() Config {
				return NewBuilder().WithSyncMode(SyncGroups).Build()
			},
			want: `"sync": []`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build().Render()
			if err != nil {
				t.Fatalf("Render() returned error: %v", err)
			}
			if !bytes.Contains(got, []byte(tt.want)) {
				t.Errorf("Render() = %s, want to contain %s", got, tt.want)
			}
		})
	}
}

func TestConfig_Render_NoTargets(t *testing.T) {
	got, err := NewBuilder().Build().Render()
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	for _, want := range []string{`"targets": {}`, `"targetsPath": {}`} {
		if !bytes.Contains(got, []byte(want)) {
			t.Errorf("Render() = %s, want to contain %s", got, want)
		}
	}
}

func TestConfig_Render_TargetOrderFollowsSelection(t *testing.T) {
	cfg := NewBuilder().
		WithTarget(WebExt, "./manifest.json").
		WithTarget(Node, "./package.json").
		Build()

	got, err := cfg.Render()
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	webext := bytes.Index(got, []byte(`"webext"`))
	node := bytes.Index(got, []byte(`"node"`))
	if webext < 0 || node < 0 || webext > node {
		t.Errorf("Render() lost selection order: webext at %d, node at %d\n%s", webext, node, got)
	}
}

func TestConfig_Render_IsStable(t *testing.T) {
	cfg := NewBuilder().
		WithReleaseType(Major).
		WithTarget(JSR, "./jsr.json").
		WithTarget(Node, "./package.json").
		WithSyncMode(SyncGroups).
		WithGroup([]Target{JSR, Node}).
		Build()

	first, err := cfg.Render()
	if err != nil {
		t.Fatal(err)
	}
	second, err := cfg.Render()
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("Render() is not deterministic:\n%s\nvs\n%s", first, second)
	}
}

func TestConfig_Render_TrailingNewline(t *testing.T) {
	got, err := NewBuilder().Build().Render()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 || got[len(got)-1] != '\n' {
		t.Error("Render() output missing trailing newline")
	}
}
