package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// AppConfig is the `app` block of the config file.
type AppConfig struct {
	Name  string `json:"name"`
	Debug bool   `json:"debug"`
}

type Config struct {
	App AppConfig `json:"app"`
}

// Current holds the last configuration loaded with LoadFile. Before any
// successful load it carries the zero defaults (debug off).
var Current Config

// Load reads a JSON file into v.
func Load(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// LoadFile loads the config file at path into Current.
func LoadFile(path string) error {
	return Load(path, &Current)
}

// MustLoad is LoadFile but panics on failure.
func MustLoad(path string) {
	if err := LoadFile(path); err != nil {
		panic(err)
	}
}
