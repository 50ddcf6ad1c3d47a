// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package crosscheck runs randomized trials that compare the scalar and
// simd implementations of Vec4 and Mat4x4 and reports how far they drift.
//
// Operations whose rounding does not depend on evaluation order (component
// arithmetic, clamping, transposes, products of small integers) must match
// exactly. Dot products and matrix products are compared relative to the
// magnitude of the terms they sum.
package crosscheck

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
	ErrInvalidConfig = errors.New("crosscheck: invalid config")

	// ErrMismatch matches the error returned by Report.Err.
	ErrMismatch = errors.New("crosscheck: scalar and simd results differ")
)

// Config controls a Run.
type Config struct {
	// Trials is the number of random inputs per operation.
	Trials int `yaml:"trials"`
	// Seed makes runs reproducible.
	Seed uint64 `yaml:"seed"`
	// Tolerance bounds the relative error of the inexact operations.
	Tolerance float64 `yaml:"tolerance"`
	// Ops restricts the run to the named operations; empty means all.
	Ops []string `yaml:"ops,omitempty"`
}

// DefaultConfig returns 1000 trials, seed 1 and a tolerance of 1e-6.
func DefaultConfig() Config {
	return Config{Trials: 1000, Seed: 1, Tolerance: 1e-6}
}

// Validate checks the ranges of every field.
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	}
	if math.IsNaN(c.Tolerance) || c.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must be non-negative, got %g", ErrInvalidConfig, c.Tolerance)
	}
	if unknown := lo.Without(c.Ops, OpNames()...); len(unknown) > 0 {
		return fmt.Errorf("%w: unknown ops %q", ErrInvalidConfig, unknown)
	}
	return nil
}

// LoadConfig decodes a YAML document on top of DefaultConfig and validates
// the result. Unknown keys are rejected and an empty document yields the
// defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg, err := DecodeConfig(r, DefaultConfig())
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile is LoadConfig on the named file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}

// DecodeConfig decodes a YAML document on top of base without validating
// it. Keys absent from the document keep their value from base.
func DecodeConfig(r io.Reader, base Config) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&base); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return base, nil
}

// DecodeConfigFile is DecodeConfig on the named file.
func DecodeConfigFile(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return DecodeConfig(f, base)
}
