// Package yaml reads and writes sitesearch configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/sitesearch"
	"gopkg.in/yaml.v3"
)

// LoadConfig overlays the settings in the YAML file at path onto cfg.
// Keys absent from the file keep their current value. A missing file is
// ENOTFOUND; malformed YAML or an unknown key is EINVALID.
func LoadConfig(path string, cfg *sitesearch.Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return sitesearch.Errorf(sitesearch.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return sitesearch.Errorf(sitesearch.EINVALID, "read config %q: %v", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return sitesearch.Errorf(sitesearch.EINVALID, "parse config %q: %v", path, err)
	}
	return nil
}

// WriteConfig writes cfg as YAML in the format LoadConfig reads.
func WriteConfig(w io.Writer, cfg *sitesearch.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
