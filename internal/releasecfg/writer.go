package releasecfg

import (
	"fmt"
	"os"
)

// ConfigFilePerm is the permission mode for generated config files.
const ConfigFilePerm = 0o644

// Write renders the config and writes it to path, overwriting any existing
// file at that location.
func Write(cfg Config, path string) error {
	data, err := cfg.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config file %q: %w", path, err)
	}
	return nil
}
