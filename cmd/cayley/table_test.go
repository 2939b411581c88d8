package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dasa.cc/ga/gma"
)

func fields(s string) [][]string {
	var rows [][]string
	for _, ln := range strings.Split(s, "\n") {
		if f := strings.Fields(ln); len(f) != 0 {
			rows = append(rows, f)
		}
	}
	return rows
}

func TestBlades(t *testing.T) {
	assert.Equal(t, []gma.Blade{0}, blades(0))
	assert.Equal(t, []gma.Blade{
		0,
		gma.E1, gma.E2, gma.E3,
		gma.E1 | gma.E2, gma.E1 | gma.E3, gma.E2 | gma.E3,
		gma.E1 | gma.E2 | gma.E3,
	}, blades(3))
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, 2, false, false))
	t.Logf("\n%s", buf.String())

	assert.Equal(t, [][]string{
		{"*", "1", "e1", "e2", "e1e2"},
		{"1", "1", "e1", "e2", "e1e2"},
		{"e1", "e1", "1", "e1e2", "e2"},
		{"e2", "e2", "-e1e2", "1", "-e1"},
		{"e1e2", "e1e2", "-e2", "e1", "-1"},
	}, fields(buf.String()))
}

func TestWriteTableReverseDual(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, 2, true, true))
	rows := fields(buf.String())
	require.Len(t, rows, 5+5+5)

	assert.Equal(t, [][]string{
		{"blade", "reverse"},
		{"1", "1"},
		{"e1", "e1"},
		{"e2", "e2"},
		{"e1e2", "-e1e2"},
	}, rows[5:10])
	assert.Equal(t, [][]string{
		{"blade", "dual"},
		{"1", "-e1e2"},
		{"e1", "-e2"},
		{"e2", "e1"},
		{"e1e2", "1"},
	}, rows[10:])
}

func TestWriteTableDimension3(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, 3, false, false))
	rows := fields(buf.String())
	require.Len(t, rows, 9)

	// every blade of a Euclidean algebra is invertible: each row holds
	// every blade exactly once up to sign
	for _, row := range rows[1:] {
		seen := make(map[string]bool)
		for _, s := range row[1:] {
			s = strings.TrimPrefix(s, "-")
			assert.False(t, seen[s], "row %v repeats %s", row[0], s)
			seen[s] = true
		}
		assert.Len(t, seen, 8)
	}
	// (e1e2e3)^2 = -1
	assert.Equal(t, "-1", rows[8][8])
}

func TestWriteExpansion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeExpansion(&buf, 2))
	t.Logf("\n%s", buf.String())

	lines := make(map[string]string)
	for _, ln := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		i := strings.Index(ln, "=")
		require.NotEqual(t, -1, i, ln)
		lines[strings.TrimSpace(ln[:i])] = strings.TrimSpace(ln[i+1:])
	}
	assert.Equal(t, "a1*e1 + a2*e2", lines["a"])
	assert.Equal(t, "a1*b1 + a2*b2", lines["a.b"])
	assert.Equal(t, "(a1*b2 - a2*b1)*e1e2", lines["a^b"])
	assert.Equal(t, "a1^2 + a2^2", lines["|a|^2"])
	assert.Equal(t, "a1*b1 + a2*b2 + (a1*b2 - a2*b1)*e1e2", lines["a*b"])

	assert.ErrorIs(t, writeExpansion(&buf, 0), errExpandDim)
}
