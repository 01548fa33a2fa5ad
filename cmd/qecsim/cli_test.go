package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunCommand_Noiseless(t *testing.T) {
	out, err := execute(t, "run", "--trials", "4", "--workers", "2",
		"--error-rate", "0", "--measurement-error-rate", "0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "logical_error_rate")
	fields := strings.Fields(lines[1])
	require.Len(t, fields, 8)
	assert.Equal(t, []string{"3", "5", "0", "4", "0", "0", "0.000000"}, fields[:7])
}

func TestRunCommand_ConfigFileWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"distance: 5\nrounds: 2\nerror_rate: 0\nmeasurement_error_rate: 0\ntrials: 10\nworkers: 1\n"), 0o600))

	out, err := execute(t, "run", "--config", path, "--trials", "3")
	require.NoError(t, err)
	fields := strings.Fields(strings.Split(strings.TrimSpace(out), "\n")[1])
	assert.Equal(t, "5", fields[0])
	assert.Equal(t, "2", fields[1])
	assert.Equal(t, "3", fields[3])
}

func TestRunCommand_Errors(t *testing.T) {
	_, err := execute(t, "run", "--distance", "4")
	require.Error(t, err)

	_, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "run", "extra")
	require.Error(t, err)
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep", "--distances", "3", "--rates", "0,0.001",
		"--trials", "2", "--workers", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "3", strings.Fields(lines[1])[1], "rounds follow distance")
	assert.Equal(t, "0.001", strings.Fields(lines[2])[2])
}

func TestBellCommand(t *testing.T) {
	out, err := execute(t, "bell", "--shots", "200", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "00: ")
	assert.Contains(t, out, "11: ")

	_, err = execute(t, "bell", "--shots", "0")
	require.Error(t, err)
}

func TestBellShot_Correlated(t *testing.T) {
	seen := map[uint8]bool{}
	for seed := uint64(0); seed < 64; seed++ {
		a, b, err := bellShot(seed)
		require.NoError(t, err)
		require.Equal(t, a, b)
		seen[a] = true
	}
	assert.Len(t, seen, 2, "both outcomes occur")
}
