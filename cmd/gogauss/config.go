/*
 * config.go, part of gogauss.
 *
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosdotutadotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	gauss "github.com/rmera/gogauss"
	"github.com/rmera/gogauss/qm"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable with the config file to use when
// --config is not given.
const ConfigEnv = "GOGAUSS_CONFIG"

// defaultConfigFiles are looked for, in order, in the current directory.
var defaultConfigFiles = []string{"gogauss.toml", "gogauss.yaml", "gogauss.yml"}

// Config holds the settings read from the config file.
type Config struct {
	GaussianExe         string `mapstructure:"gaussian_exe"`
	GaussianPath        string `mapstructure:"gaussian_path"`
	GaussianRoot        string `mapstructure:"gaussian_root"`
	GaussianEnvironment string `mapstructure:"gaussian_environment"`
	Formchk             string `mapstructure:"formchk"`
	NCores              int    `mapstructure:"ncores"` // 0 means all
	Memory              string `mapstructure:"memory"`
	Method              string `mapstructure:"method"`
	Basis               string `mapstructure:"basis"`
	Workers             int    `mapstructure:"workers"` // 0 means one per CPU
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		GaussianExe: "g16",
		Formchk:     "formchk",
		Memory:      "available",
	}
}

// LoadConfig reads the configuration in name. If name is empty, the file in
// $GOGAUSS_CONFIG is used, and if that is unset, the default files are
// searched for. With no file at all, the defaults are returned.
// TOML and YAML are accepted, chosen by extension. Values are weakly typed,
// so ncores = "4" is fine, but unknown keys are an error.
func LoadConfig(name string) (*Config, error) {
	errid := "LoadConfig"
	cfg := DefaultConfig()
	if name == "" {
		name = os.Getenv(ConfigEnv)
	}
	if name == "" {
		for _, v := range defaultConfigFiles {
			if _, err := os.Stat(v); err == nil {
				name = v
				break
			}
		}
	}
	if name == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errid, err)
	}
	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		_, err = toml.Decode(string(data), &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = fmt.Errorf("unknown config format %q: %w", filepath.Ext(name), gauss.ErrInvalidArgument)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse config file %s: %w", errid, name, err)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errid, err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%s: config file %s: %w", errid, name, err)
	}
	return cfg, nil
}

// Handle returns a Gaussian handle set up with the config, working in dir.
func (C *Config) Handle(dir string) *qm.GaussianHandle {
	H := qm.NewGaussianHandle()
	if C.GaussianExe != "" {
		H.SetCommand(C.GaussianExe, C.GaussianPath)
	}
	if C.Formchk != "" {
		H.SetFormchk(C.Formchk)
	}
	H.SetRoot(C.GaussianRoot)
	H.SetEnvironment(C.GaussianEnvironment)
	if C.NCores > 0 {
		H.SetnCPU(C.NCores)
	}
	H.SetMemory(C.Memory)
	H.SetWorkDir(dir)
	return H
}
