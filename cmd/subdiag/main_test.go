package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dwhensley/subdiag"
	"github.com/dwhensley/subdiag/codec"
	"github.com/dwhensley/subdiag/readings"
	"github.com/dwhensley/subdiag/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleText = "Part one | (gamma, epsilon) (22, 9); multiplication: 198\n" +
	"Part two | oxygen generator rating: 23, CO2 scrubber rating: 10; multiplication: 230\n"

func exampleInput() string {
	return strings.Join(testutil.ExampleReadings, "\n") + "\n"
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReport_Text(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "day3.txt", exampleInput())

	out, err := run(t, nil, "report", "--root", dir, "day3.txt")
	require.NoError(t, err)
	assert.Equal(t, exampleText, out)
}

func TestReport_AbsolutePath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "day3.txt", exampleInput())

	out, err := run(t, nil, "report", path)
	require.NoError(t, err)
	assert.Equal(t, exampleText, out)
}

func TestReport_StdinCompressedJSON(t *testing.T) {
	var buf bytes.Buffer
	w, err := readings.NewWriter(&buf, readings.Zstd)
	require.NoError(t, err)
	_, err = io.WriteString(w, exampleInput())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := run(t, &buf, "report", "--format", "json", "-")
	require.NoError(t, err)

	var r subdiag.Report
	require.NoError(t, codec.JSON{}.Unmarshal([]byte(out), &r))
	assert.Equal(t, uint64(198), r.PowerConsumption)
	assert.Equal(t, uint64(230), r.LifeSupport)
	assert.Equal(t, 12, r.Rows)
}

func TestReport_Save(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "day3.txt", exampleInput())

	_, err := run(t, nil, "report", "--root", dir, "--codec", "cbor", "--out", "out/day3.cbor", "day3.txt")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out", "day3.cbor"))
	require.NoError(t, err)

	var r subdiag.Report
	require.NoError(t, codec.CBOR{}.Unmarshal(data, &r))
	assert.Equal(t, "day3.txt", r.Source)
	assert.Equal(t, uint64(23), r.OxygenGenerator)
	assert.Equal(t, uint64(10), r.CO2Scrubber)
}

func TestReport_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.txt", "0101\n01a1\n")

	_, err := run(t, nil, "report", "--root", dir, "bad.txt")
	assert.ErrorIs(t, err, subdiag.ErrMalformedInput)

	_, err = run(t, nil, "report", "--root", dir, "missing.txt")
	assert.ErrorIs(t, err, subdiag.ErrNotFound)

	_, err = run(t, strings.NewReader(exampleInput()), "report", "--format", "xml", "-")
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, nil, "report", "--store", "ftp", "x")
	assert.ErrorContains(t, err, "store.kind")
}

func TestExplain(t *testing.T) {
	out, err := run(t, strings.NewReader(exampleInput()), "explain", "--rating", "co2", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "step 1: column 0, 12 readings, 7 ones -> keep 0, 5 remain, removed [1 2 3 4 7 8 9]", lines[0])
	assert.Equal(t, "co2-scrubber rating: 01010 = 10 (reading 11, 3 steps)", lines[3])
}

func TestExplain_NotConverged(t *testing.T) {
	out, err := run(t, strings.NewReader("11\n11\n"), "explain", "-r", "co2")
	assert.ErrorIs(t, err, subdiag.ErrNotConverged)
	assert.Contains(t, out, "unanimous")
	assert.NotContains(t, out, "rating:")
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sub/a.txt", exampleInput())
	writeFile(t, dir, "sub/b.txt", "110\n011\n")
	writeFile(t, dir, "other.txt", exampleInput())

	out, err := run(t, nil, "batch", "--root", dir, "--workers", "2", "--prefix", "sub/")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"sub/a.txt", "22", "9", "198", "23", "10", "230"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"sub/b.txt", "2", "5", "10", "6", "3", "18"}, strings.Fields(lines[2]))
}

func TestBatch_ReportsFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", exampleInput())
	writeFile(t, dir, "b.txt", "12\n")

	out, err := run(t, nil, "batch", "--root", dir, "a.txt", "b.txt")
	assert.ErrorContains(t, err, "1 of 2 reports failed")
	assert.Contains(t, out, "b.txt")
	assert.Contains(t, out, "error:")
}

func TestMetricsServer(t *testing.T) {
	_, err := run(t, strings.NewReader(exampleInput()), "report", "--metrics-addr", "127.0.0.1:0", "-")
	require.NoError(t, err)
}
