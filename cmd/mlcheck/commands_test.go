package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-ml/crosscheck"
	"github.com/ajroetker/go-ml/ml"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mlcheck dev")
	assert.Contains(t, out, "backend="+ml.Backend)
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "level="+ml.CurrentName())

	out, err = execute(t, "info", "--format", "yaml")
	require.NoError(t, err)
	var info ml.RuntimeInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &info))
	assert.Equal(t, ml.Backend, info.Backend)

	_, err = execute(t, "info", "--format", "json")
	assert.Error(t, err)
}

func TestCrosscheckText(t *testing.T) {
	out, err := execute(t, "crosscheck", "--trials", "20", "--ops", "add,dot")
	require.NoError(t, err)
	assert.Contains(t, out, "trials=20")
	assert.Contains(t, out, "add")
	assert.NotContains(t, out, "mat_mul")
}

func TestCrosscheckYAML(t *testing.T) {
	out, err := execute(t, "crosscheck", "--trials", "5", "--seed", "11", "--format", "yaml")
	require.NoError(t, err)
	var report crosscheck.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, uint64(11), report.Config.Seed)
	assert.Len(t, report.Ops, len(crosscheck.OpNames()))
}

func TestCrosscheckConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials: 7\nseed: 3\nops: [transposed]\n"), 0o644))

	cmd := newRootCmd()
	sub, _, err := cmd.Find([]string{"crosscheck"})
	require.NoError(t, err)
	require.NoError(t, sub.ParseFlags([]string{"--config", path, "--seed", "4"}))
	cfg, err := crosscheckConfig(sub)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Trials)
	assert.Equal(t, uint64(4), cfg.Seed, "explicit flag wins over the file")
	assert.Equal(t, []string{"transposed"}, cfg.Ops)
}

func TestCrosscheckEnvDefaults(t *testing.T) {
	t.Setenv("MLCHECK_TRIALS", "9")
	t.Setenv("MLCHECK_TOLERANCE", "1e-4")
	out, err := execute(t, "crosscheck", "--ops", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "trials=9")
	assert.Contains(t, out, "tolerance=0.0001")
}

func TestCrosscheckEnvUnderConfigFile(t *testing.T) {
	t.Setenv("MLCHECK_TRIALS", "9")
	path := filepath.Join(t.TempDir(), "cc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 3\n"), 0o644))

	cmd := newRootCmd()
	sub, _, err := cmd.Find([]string{"crosscheck"})
	require.NoError(t, err)
	require.NoError(t, sub.ParseFlags([]string{"--config", path}))
	cfg, err := crosscheckConfig(sub)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Trials, "keys missing from the file keep the environment value")
	assert.Equal(t, uint64(3), cfg.Seed)
	assert.Equal(t, 1e-6, cfg.Tolerance)

	require.NoError(t, os.WriteFile(path, []byte("trials: 0\n"), 0o644))
	sub, _, err = newRootCmd().Find([]string{"crosscheck"})
	require.NoError(t, err)
	require.NoError(t, sub.ParseFlags([]string{"--config", path, "--trials", "4"}))
	cfg, err = crosscheckConfig(sub)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Trials)
}

func TestCrosscheckErrors(t *testing.T) {
	_, err := execute(t, "crosscheck", "--trials", "0")
	assert.ErrorIs(t, err, crosscheck.ErrInvalidConfig)

	_, err = execute(t, "crosscheck", "--ops", "cross")
	assert.ErrorIs(t, err, crosscheck.ErrInvalidConfig)

	_, err = execute(t, "crosscheck", "--format", "csv")
	assert.Error(t, err)

	_, err = execute(t, "crosscheck", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
