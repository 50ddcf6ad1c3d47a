package crosscheck

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	for name, cfg := range map[string]Config{
		"zero trials":        {Trials: 0, Tolerance: 1e-6},
		"negative tolerance": {Trials: 1, Tolerance: -1},
		"unknown op":         {Trials: 1, Ops: []string{"cross"}},
	} {
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrInvalidConfig, name)
	}
}

func TestRunMatches(t *testing.T) {
	report, err := Run(DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, report.Err())
	assert.Zero(t, report.Mismatches())
	require.Len(t, report.Ops, len(OpNames()))

	for _, op := range report.Ops {
		assert.Equal(t, 1000, op.Trials, op.Op)
		assert.Equal(t, -1, op.FirstFailedTrial, op.Op)
		if op.Exact {
			assert.Zero(t, op.MaxRelErr, op.Op)
		} else {
			assert.LessOrEqual(t, op.MaxRelErr, 1e-6, op.Op)
		}
	}
}

func TestRunSubset(t *testing.T) {
	cfg := Config{Trials: 10, Seed: 42, Tolerance: 1e-6, Ops: []string{"dot", "transposed"}}
	report, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, report.Ops, 2)
	assert.Equal(t, "dot", report.Ops[0].Op)
	assert.Equal(t, "transposed", report.Ops[1].Op)

	again, err := Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, report, again, "same seed must reproduce")
}

func TestRunInvalid(t *testing.T) {
	_, err := Run(Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestZeroToleranceFlagsInexactOps(t *testing.T) {
	report, err := Run(Config{Trials: 200, Seed: 7, Tolerance: 0, Ops: []string{"mat_mul"}})
	require.NoError(t, err)
	if report.Mismatches() == 0 {
		t.Skip("matrix products agreed bit for bit on this platform")
	}
	err = report.Err()
	require.ErrorIs(t, err, ErrMismatch)
	var mm *MismatchError
	require.True(t, errors.As(err, &mm))
	assert.Equal(t, "mat_mul", mm.Op)
	assert.GreaterOrEqual(t, mm.Trial, 0)
	assert.Contains(t, mm.Error(), "mat_mul")
}

func TestMismatchError(t *testing.T) {
	r := &Report{Ops: []OpStats{
		{Op: "add", Exact: true, Trials: 5, FirstFailedTrial: -1},
		{Op: "dot", Trials: 5, Mismatches: 2, FirstFailedTrial: 3},
	}}
	assert.Equal(t, 2, r.Mismatches())
	err := r.Err()
	assert.ErrorIs(t, err, ErrMismatch)
	assert.EqualError(t, err, "crosscheck: dot differs in 2 trials (first at trial 3)")
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("trials: 25\nops: [dot, mul]\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{Trials: 25, Seed: 1, Tolerance: 1e-6, Ops: []string{"dot", "mul"}}, cfg)

	cfg, err = LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = LoadConfig(strings.NewReader("trails: 3\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(strings.NewReader("trials: -3\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crosscheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\ntolerance: 1e-5\n"), 0o644))
	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, 1e-5, cfg.Tolerance)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeConfigKeepsBase(t *testing.T) {
	base := Config{Trials: 9, Seed: 5, Tolerance: 1e-4}
	cfg, err := DecodeConfig(strings.NewReader("seed: 2\n"), base)
	require.NoError(t, err)
	assert.Equal(t, Config{Trials: 9, Seed: 2, Tolerance: 1e-4}, cfg)

	// not validated
	cfg, err = DecodeConfig(strings.NewReader("trials: 0\n"), base)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Trials)

	_, err = DecodeConfig(strings.NewReader("trails: 3\n"), base)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestReportOutput(t *testing.T) {
	report, err := Run(Config{Trials: 3, Seed: 1, Tolerance: 1e-6, Ops: []string{"add", "dot"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "trials=3")
	assert.True(t, strings.HasPrefix(lines[2], "add"))
	assert.Contains(t, lines[2], "exact")
	assert.Contains(t, lines[3], "tolerance")

	out, err := report.YAML()
	require.NoError(t, err)
	var decoded Report
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, *report, decoded)
}
