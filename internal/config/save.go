package config

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// SaveAtomic writes the config via tmp+rename, keeping the previous file as
// .bak. A file lock guards against a second engine process saving at the
// same time.
func SaveAtomic(path string, cfg Config) error {
	if _, res := NormalizeAndValidate(cfg); !res.OK() {
		return &InvalidConfigError{Validation: res}
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}

type InvalidConfigError struct {
	Validation Validation
}

func (e *InvalidConfigError) Error() string {
	out := "config validation failed:"
	for _, s := range e.Validation.Errors {
		out += "\n- " + s
	}
	return out
}
