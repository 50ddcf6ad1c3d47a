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

package crosscheck

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// OpStats summarizes the trials of one operation.
type OpStats struct {
	Op         string `yaml:"op"`
	Exact      bool   `yaml:"exact"`
	Trials     int    `yaml:"trials"`
	Mismatches int    `yaml:"mismatches"`
	// MaxRelErr is the largest difference seen, relative to the magnitude
	// of the summed terms.
	MaxRelErr float64 `yaml:"max_rel_err"`
	// FirstFailedTrial is -1 when every trial matched.
	FirstFailedTrial int `yaml:"first_failed_trial"`
}

// Report is the result of Run.
type Report struct {
	Backend       string    `yaml:"backend"`
	Level         string    `yaml:"level"`
	HardwareLanes bool      `yaml:"hardware_lanes"`
	Config        Config    `yaml:"config"`
	Ops           []OpStats `yaml:"ops"`
}

// MismatchError names the first operation that failed.
type MismatchError struct {
	Op         string
	Trial      int
	Mismatches int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("crosscheck: %s differs in %d trials (first at trial %d)", e.Op, e.Mismatches, e.Trial)
}

// Is reports whether target is ErrMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

// Mismatches returns the total number of failed trials.
func (r *Report) Mismatches() int {
	n := 0
	for _, op := range r.Ops {
		n += op.Mismatches
	}
	return n
}

// Err returns nil if every trial matched and a *MismatchError otherwise.
func (r *Report) Err() error {
	for _, op := range r.Ops {
		if op.Mismatches > 0 {
			return &MismatchError{Op: op.Op, Trial: op.FirstFailedTrial, Mismatches: op.Mismatches}
		}
	}
	return nil
}

// YAML encodes the report.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteText writes a header line and one row per operation.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "backend=%s level=%s hardware_lanes=%t trials=%d seed=%d tolerance=%g\n",
		r.Backend, r.Level, r.HardwareLanes, r.Config.Trials, r.Config.Seed, r.Config.Tolerance); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OP\tMODE\tTRIALS\tMISMATCHES\tMAX REL ERR")
	for _, op := range r.Ops {
		mode := "tolerance"
		if op.Exact {
			mode = "exact"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.3g\n", op.Op, mode, op.Trials, op.Mismatches, op.MaxRelErr)
	}
	return tw.Flush()
}
