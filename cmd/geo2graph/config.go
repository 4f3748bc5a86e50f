/*
 * config.go, part of gomol.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	chem "github.com/rmera/gomol"
	"gopkg.in/yaml.v3"
)

// Config is the content of the optional YAML configuration file.
// Fields missing from the file keep their default values.
type Config struct {
	Cutoffs chem.BondCutoffs `yaml:"cutoffs"`
	Catalog string           `yaml:"catalog"`
	Format  string           `yaml:"format" validate:"oneof=text json"`
}

var validate = validator.New()

func defaultConfig() Config {
	return Config{Cutoffs: chem.DefaultBondCutoffs(), Format: "text"}
}

// readConfig decodes a YAML configuration from r, on top of the defaults.
func readConfig(r io.Reader) (Config, error) {
	cfg := defaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding configuration")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadConfig reads the configuration file fname. An empty fname gives the defaults.
func loadConfig(fname string) (Config, error) {
	if fname == "" {
		return defaultConfig(), nil
	}
	f, err := os.Open(fname)
	if err != nil {
		return Config{}, errors.Wrap(err, "loadConfig")
	}
	defer f.Close()
	cfg, err := readConfig(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loadConfig: %s", fname)
	}
	return cfg, nil
}

// Validate checks the values in the configuration.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return errors.Wrap(c.Cutoffs.Validate(), "invalid configuration")
}

func formatValidationError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			field := strings.ToLower(e.Namespace())
			switch e.Tag() {
			case "gt":
				msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, e.Param()))
			case "oneof":
				msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
			default:
				msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
			}
		}
		return errors.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}
	return err
}
