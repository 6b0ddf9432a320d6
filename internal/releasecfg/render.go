package releasecfg

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/sjson"
)

// Render serializes the config to pretty-printed JSON with a trailing
// newline. The document is built field by field with sjson, which appends
// new keys in insertion order: top-level keys come out as constructed and
// the sparse target maps keep selection order. Serializing the same config
// twice yields identical bytes.
func (c Config) Render() ([]byte, error) {
	doc := []byte(`{}`)
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}
	setRaw := func(path string, raw string) {
		if err != nil {
			return
		}
		doc, err = sjson.SetRawBytes(doc, path, []byte(raw))
	}

	set("$schema", SchemaURL)
	set("defaultReleaseType", c.ReleaseType.String())

	setRaw("targets", "{}")
	for _, t := range c.Targets {
		set("targets."+t.String(), true)
	}

	setRaw("targetsPath", "{}")
	for _, t := range c.Targets {
		set("targetsPath."+t.String(), c.Paths[t])
	}

	switch c.SyncMode {
	case SyncNone:
		set("sync", false)
	case SyncGroups:
		groups := make([][]string, len(c.Groups))
		for i, g := range c.Groups {
			groups[i] = make([]string, len(g))
			for j, t := range g {
				groups[i][j] = t.String()
			}
		}
		set("sync", groups)
	default:
		set("sync", true)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent config: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
