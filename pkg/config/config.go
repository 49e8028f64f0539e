//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads the optional lined configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds user settings. Fields missing from the file keep their defaults.
type Config struct {
	LogFile      string `toml:"log_file"`
	Filler       string `toml:"filler"`
	InfoBar      bool   `toml:"info_bar"`
	SplitOnEnter bool   `toml:"split_on_enter"`
}

func Default() *Config {
	home := os.Getenv("HOME")
	return &Config{
		LogFile: filepath.Join(home, ".linedlog"),
		Filler:  "~",
		InfoBar: true,
	}
}

// DefaultPath is the configuration file used when none is named.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".lined.toml")
}

// Load reads the file at path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(b, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML into c.
func Parse(b []byte, c *Config) error {
	d := toml.NewDecoder(bytes.NewReader(b))
	d.DisallowUnknownFields()
	if err := d.Decode(c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
