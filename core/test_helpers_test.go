// Package core_test contains test helpers for busroute/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/busroute/core"
)

// Common vertex indices used across core tests.
const (
	V0 = 0
	V1 = 1
	V2 = 2
	V3 = 3

	VOutside = 99
	VNeg     = -1
)

// Common weights used across core tests.
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight5 = 5
	Weight7 = 7
)

// Concurrency sizes.
const (
	NReaders = 50
	NRounds  = 100
)

// SchoolBusEdges is the reference 8-stop topology.
var SchoolBusEdges = []core.EdgeSpec{
	{U: 0, V: 1, Weight: 24},
	{U: 1, V: 4, Weight: 19},
	{U: 1, V: 5, Weight: 32},
	{U: 3, V: 0, Weight: 16},
	{U: 3, V: 1, Weight: 14},
	{U: 3, V: 4, Weight: 11},
	{U: 4, V: 6, Weight: 21},
	{U: 4, V: 7, Weight: 23},
	{U: 5, V: 7, Weight: 7},
	{U: 6, V: 7, Weight: 10},
	{U: 2, V: 3, Weight: 17},
}

// MustGraph builds a graph or aborts the test.
func MustGraph(t *testing.T, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(n, opts...)
	MustNoError(t, err, "NewGraph")

	return g
}

// MustNoError fails the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs fails the test unless errors.Is(err, want).
func MustErrorIs(t *testing.T, err, want error, op string) {
	t.Helper()

	if errors.Is(err, want) {
		return
	}

	t.Fatalf("%s: error = %v; want %v", op, err, want)
}

// MustEqualInt fails the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got != want {
		t.Fatalf("%s: got %d; want %d", op, got, want)
	}
}

// MustEqualWeight fails the test if got != want.
func MustEqualWeight(t *testing.T, got, want int64, op string) {
	t.Helper()

	if got != want {
		t.Fatalf("%s: got %d; want %d", op, got, want)
	}
}

// MustEqualBool fails the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()

	if got != want {
		t.Fatalf("%s: got %v; want %v", op, got, want)
	}
}
