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

package ml

import (
	"os"
	"strconv"
	"strings"

	"github.com/viterin/vek/vek32"
)

// DispatchLevel represents the widest vector instruction set detected at
// startup. It selects the slice kernels used by package stream and is
// reported by Info; the Vec4 and Mat4x4 value types are fixed at build time.
type DispatchLevel int

const (
	// DispatchScalar indicates plain Go loops.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2, the x86-64 baseline.
	DispatchSSE2

	// DispatchSSE3 adds horizontal adds and lane duplication.
	DispatchSSE3

	// DispatchSSE41 adds the dot product and blend instructions.
	DispatchSSE41

	// DispatchAVX indicates 256-bit float registers.
	DispatchAVX

	// DispatchNEON indicates ARM Advanced SIMD.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchSSE3:
		return "sse3"
	case DispatchSSE41:
		return "sse4.1"
	case DispatchAVX:
		return "avx"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth = 16
)

// CurrentLevel returns the instruction set used by the slice kernels.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes for the current level.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the current level, e.g. "avx" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv reports whether the ML_NO_SIMD environment variable is set.
// When it is, detection is skipped and the level stays DispatchScalar.
func NoSimdEnv() bool {
	val := os.Getenv("ML_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true unless it parses as false.
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// RuntimeInfo describes how the library is running on this machine.
type RuntimeInfo struct {
	Backend       string   `yaml:"backend"`
	Level         string   `yaml:"level"`
	Width         int      `yaml:"width"`
	HardwareLanes bool     `yaml:"hardware_lanes"`
	Accelerated   bool     `yaml:"accelerated"`
	CPUFeatures   []string `yaml:"cpu_features"`
}

// Info reports the selected backend, the dispatch level and the CPU
// features the slice kernels can use.
func Info() RuntimeInfo {
	vi := vek32.Info()
	return RuntimeInfo{
		Backend:       Backend,
		Level:         CurrentName(),
		Width:         CurrentWidth(),
		HardwareLanes: hardwareLanes(),
		Accelerated:   currentLevel != DispatchScalar && vi.Acceleration,
		CPUFeatures:   vi.CPUFeatures,
	}
}

// String formats the info on a single line.
func (ri RuntimeInfo) String() string {
	features := "none"
	if len(ri.CPUFeatures) > 0 {
		features = strings.Join(ri.CPUFeatures, ",")
	}
	return "backend=" + ri.Backend + " level=" + ri.Level + " width=" + strconv.Itoa(ri.Width) +
		" hardware_lanes=" + strconv.FormatBool(ri.HardwareLanes) +
		" accelerated=" + strconv.FormatBool(ri.Accelerated) + " features=" + features
}
