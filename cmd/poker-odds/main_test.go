package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	base := []string{"--no-color", "--config", filepath.Join(t.TempDir(), "missing.hcl")}
	err := run(context.Background(), append(base, args...), &stdout, &stderr)
	return stdout.String(), err
}

func TestParseHoles(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected int
		hasError bool
	}{
		{name: "Single hole", input: []string{"AcKh"}, expected: 1},
		{name: "Multiple holes", input: []string{"AcKh", "KdQs"}, expected: 2},
		{name: "Hole with spaces", input: []string{"Ac Kh"}, expected: 1},
		{name: "Suit first", input: []string{"CAHK"}, expected: 1},
		{name: "Invalid hole - too many cards", input: []string{"AcKhQd"}, hasError: true},
		{name: "Invalid hole - too few cards", input: []string{"Ac"}, hasError: true},
		{name: "Invalid card format", input: []string{"AcXy"}, hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			holes, err := parseHoles(tt.input)
			if tt.hasError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, holes, tt.expected)
		})
	}
}

func TestParseBoard(t *testing.T) {
	board, err := parseBoard("")
	require.NoError(t, err)
	assert.Empty(t, board)

	board, err = parseBoard("Td7s8h")
	require.NoError(t, err)
	assert.Len(t, board, 3)

	_, err = parseBoard("2c3c4c5c6c7c")
	require.Error(t, err)
}

func TestOddsExhaustive(t *testing.T) {
	out, err := runCLI(t, "odds", "AsKs", "2d3d", "--board", "4d5d6d", "--method", "exhaustive")
	require.NoError(t, err)

	assert.Contains(t, out, "4d 5d 6d")
	assert.Contains(t, out, "As Ks")
	assert.Contains(t, out, "Premium")
	assert.Contains(t, out, "99.9%")
	assert.Contains(t, out, "990 boards enumerated")
	assert.NotContains(t, out, "±")
}

func TestOddsIsDefaultCommand(t *testing.T) {
	out, err := runCLI(t, "AhAs", "KdKc", "-b", "2c7d9hJsQc")
	require.NoError(t, err)
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "1 boards enumerated")
}

func TestOddsMonteCarlo(t *testing.T) {
	out, err := runCLI(t, "odds", "AsAh", "TdTc", "-m", "monte-carlo", "-n", "2000", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "±")
	assert.Contains(t, out, "2000 samples")

	again, err := runCLI(t, "odds", "AsAh", "TdTc", "-m", "monte-carlo", "-n", "2000", "--seed", "7", "-w", "1")
	require.NoError(t, err)
	third, err := runCLI(t, "odds", "AsAh", "TdTc", "-m", "monte-carlo", "-n", "2000", "--seed", "7", "-w", "1")
	require.NoError(t, err)
	assert.Equal(t, firstLines(again, 3), firstLines(third, 3), "seeded runs repeat")
}

func TestOddsHybridUsesThreshold(t *testing.T) {
	out, err := runCLI(t, "odds", "AsAh", "TdTc", "-b", "2c3c4h", "-t", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "samples")

	out, err = runCLI(t, "odds", "AsAh", "TdTc", "-b", "2c3c4h")
	require.NoError(t, err)
	assert.Contains(t, out, "990 boards enumerated")
}

func TestOddsPossibilities(t *testing.T) {
	out, err := runCLI(t, "odds", "AsKs", "QhQd", "-b", "2s3s4d5c", "-p")
	require.NoError(t, err)
	assert.Contains(t, out, "Straight")
	assert.Contains(t, out, "Flush")
	assert.Contains(t, out, "Pair")
	assert.NotContains(t, out, "Royal Flush")
}

func TestOddsReadsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odds.hcl")
	require.NoError(t, os.WriteFile(path, []byte("equity {\n  sample_size = 500\n  seed = 3\n}\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(),
		[]string{"--no-color", "--config", path, "odds", "AsAh", "TdTc", "-m", "mc"},
		&stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "500 samples")
}

func TestOddsMethodAliases(t *testing.T) {
	tests := []struct {
		method string
		footer string
	}{
		{"exact", "990 boards enumerated"},
		{"exhaustive", "990 boards enumerated"},
		{"mc", "300 samples"},
		{"montecarlo", "300 samples"},
		{"monte-carlo", "300 samples"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			out, err := runCLI(t, "odds", "AsKs", "2d3d", "-b", "4d5d6d", "-m", tt.method, "-n", "300")
			require.NoError(t, err)
			assert.Contains(t, out, tt.footer)
		})
	}
}

func TestOddsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"duplicate card", []string{"odds", "AsKs", "AsQd"}},
		{"bad hole", []string{"odds", "AsK"}},
		{"board too large", []string{"odds", "AsKs", "-b", "2c3c4c5c6c7c"}},
		{"unknown method", []string{"odds", "AsKs", "-m", "guess"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestBest(t *testing.T) {
	out, err := runCLI(t, "best", "KhKd5s5cKs2d9h")
	require.NoError(t, err)
	assert.Contains(t, out, "Full House, Kings full of Fives")
	assert.NotContains(t, out, "kickers")

	out, err = runCLI(t, "best", "AhKd", "7s2c9h")
	require.NoError(t, err)
	assert.Contains(t, out, "High Card, Ace high")
	assert.Contains(t, out, "kickers  Kd 9h 7s 2c")

	_, err = runCLI(t, "best", "AhAh")
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, err := runCLI(t, "compare", "AsAd", "KsKd", "-b", "2c7d9h")
	require.NoError(t, err)
	assert.Contains(t, out, "AsAd wins")
	assert.Contains(t, out, "(A vs K)")

	out, err = runCLI(t, "compare", "2s3d", "2h3c", "-b", "AcKcQhJsTd")
	require.NoError(t, err)
	assert.Contains(t, out, "hands tie")
}

func TestPercentages(t *testing.T) {
	out, err := runCLI(t, "percentages", "AsKs", "-b", "2d3d4d5d")
	require.NoError(t, err)
	assert.Contains(t, out, "Royal Flush")
	assert.Contains(t, out, "46 boards")
}

func firstLines(s string, n int) string {
	lines := bytes.SplitN([]byte(s), []byte("\n"), n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return string(bytes.Join(lines, []byte("\n")))
}

func TestOddsOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odds.json")
	_, err := runCLI(t, "odds", "AsKs", "2d3d", "-b", "4d5d6d", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report struct {
		Method  string `json:"method"`
		Board   []string
		Results []struct {
			Hole []string `json:"hole"`
			Wins int      `json:"wins"`
			Ties int      `json:"ties"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "exhaustive", report.Method)
	assert.Equal(t, []string{"4d", "5d", "6d"}, report.Board)
	require.Len(t, report.Results, 2)
	assert.Equal(t, []string{"2d", "3d"}, report.Results[1].Hole)
	assert.Equal(t, 989, report.Results[1].Wins)
	assert.Equal(t, 1, report.Results[1].Ties)
}
