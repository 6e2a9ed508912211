package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithDir loads {lang}/{namespace}.json, .yaml and .yml files from fsys.
func WithDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}

			var unmarshal func([]byte, any) error
			switch strings.ToLower(path.Ext(name)) {
			case ".json":
				unmarshal = json.Unmarshal
			case ".yaml", ".yml":
				unmarshal = yaml.Unmarshal
			default:
				return nil
			}

			dir := path.Dir(name)
			if dir == "." {
				return fmt.Errorf("%w: %q must be inside a language directory", ErrInvalidFile, name)
			}

			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("read %q: %w", name, err)
			}
			var entries map[string]any
			if err := unmarshal(data, &entries); err != nil {
				return fmt.Errorf("%w: parse %q: %s", ErrInvalidFile, name, err)
			}

			c.add(path.Base(dir), strings.TrimSuffix(path.Base(name), path.Ext(name)), entries)
			return nil
		})
	}
}
