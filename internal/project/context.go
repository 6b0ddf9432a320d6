package project

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/gjson"
)

// ManifestFile is the project manifest consulted for all detection logic.
const ManifestFile = "package.json"

// LibraryName is the package this tool scaffolds configuration for.
const LibraryName = "release-hub"

// Context holds the project directory and a lazily-read copy of its
// package.json manifest. The manifest is read at most once per run; a
// missing or unparseable manifest is reported as absent, never as an error.
type Context struct {
	dir string

	manifestOnce sync.Once
	manifest     []byte
	manifestOK   bool
}

// NewContext creates a Context rooted at dir. An empty dir means the
// current working directory.
func NewContext(dir string) *Context {
	if dir == "" {
		dir = "."
	}
	return &Context{dir: dir}
}

// Dir returns the project directory.
func (c *Context) Dir() string {
	return c.dir
}

// Join returns name joined under the project directory.
func (c *Context) Join(name string) string {
	return filepath.Join(c.dir, name)
}

// HasFile reports whether a regular file exists directly under the project
// directory.
func (c *Context) HasFile(name string) bool {
	info, err := os.Stat(c.Join(name))
	return err == nil && !info.IsDir()
}

// Manifest returns the parsed package.json root and whether a usable
// manifest is present.
func (c *Context) Manifest() (gjson.Result, bool) {
	c.load()
	if !c.manifestOK {
		return gjson.Result{}, false
	}
	return gjson.ParseBytes(c.manifest), true
}

// ManifestField returns a manifest value by gjson path, reporting whether
// the field exists.
func (c *Context) ManifestField(path string) (gjson.Result, bool) {
	root, ok := c.Manifest()
	if !ok {
		return gjson.Result{}, false
	}
	value := root.Get(path)
	return value, value.Exists()
}

func (c *Context) load() {
	c.manifestOnce.Do(func() {
		data, err := os.ReadFile(c.Join(ManifestFile))
		if err != nil {
			return
		}
		if !gjson.ValidBytes(data) {
			return
		}
		c.manifest = data
		c.manifestOK = true
	})
}
