package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/sat"
	"github.com/soypat/sat/wire"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFormatOf(t *testing.T) {
	require.Equal(t, wire.JSON, formatOf("", "a.json"))
	require.Equal(t, wire.YAML, formatOf("", "a.YML"))
	require.Equal(t, wire.YAML, formatOf("", "dir/a.yaml"))
	require.Equal(t, wire.JSON, formatOf("", "noext"))
	require.Equal(t, wire.YAML, formatOf("yaml", "a.json"))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
		return p
	}
	a := write("a.yaml", "points: [{x: 0, y: 0}, {x: 40, y: 0}, {x: 40, y: 40}, {x: 0, y: 40}]\n")
	b := write("b.yaml", "position: {x: 30, y: 0}\npoints: [{x: 0, y: 0}, {x: 30, y: 0}, {x: 0, y: 30}]\n")
	cfg := write("sat.yaml", "comparator: fixed1000\n")
	plotFile := filepath.Join(dir, "out.svg")

	err := run(zap.NewNop(), options{fileA: a, fileB: b, cfgFile: cfg, plotFile: plotFile})
	require.NoError(t, err)
	info, err := os.Stat(plotFile)
	require.NoError(t, err)
	require.NotZero(t, info.Size())

	err = run(zap.NewNop(), options{fileA: a})
	require.Error(t, err)

	batch := write("pairs.json", `[{"a":{"points":[{"x":0,"y":0},{"x":1,"y":0},{"x":0,"y":1}]},"b":{"points":[{"x":0,"y":0},{"x":1,"y":0},{"x":0,"y":1}]}}]`)
	require.NoError(t, run(zap.NewNop(), options{batch: batch, jobs: 2}))
}

func TestRunScene(t *testing.T) {
	p := filepath.Join(t.TempDir(), "scene.yaml")
	scene := "- points: [{x: 0, y: 0}, {x: 2, y: 0}, {x: 0, y: 2}]\n" +
		"- position: {x: 1, y: 0}\n  points: [{x: 0, y: 0}, {x: 2, y: 0}, {x: 0, y: 2}]\n"
	require.NoError(t, os.WriteFile(p, []byte(scene), 0o644))
	require.NoError(t, run(zap.NewNop(), options{scene: p}))
}

func TestConfigKeepsValidation(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
		return p
	}
	line := write("line.json", `{"points":[{"x":0,"y":0},{"x":1,"y":1}]}`)
	tri := write("tri.json", `{"points":[{"x":0,"y":0},{"x":1,"y":0},{"x":0,"y":1}]}`)
	cfg := write("sat.yaml", "comparator: fixed1000\n")

	err := run(zap.NewNop(), options{fileA: line, fileB: tri, cfgFile: cfg})
	require.ErrorIs(t, err, sat.ErrTooFewPoints)

	off := write("off.yaml", "validate: false\n")
	require.NoError(t, run(zap.NewNop(), options{fileA: line, fileB: tri, cfgFile: off}))
}
