// SPDX-License-Identifier: NONE
package linescan

import (
	"context"
	"errors"
	"testing"
)

func TestPuzzle_SolveFiles(t *testing.T) {
	p, err := Lookup("day03a")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	cfg, _ := testConfig()
	cfg.Workers = 2

	paths := []string{"testdata/day03.txt", "testdata/missing.txt", "testdata/day01a.txt", "testdata/day03.txt"}
	results, err := p.SolveFiles(context.Background(), cfg, paths...)
	if err != nil {
		t.Fatalf("Puzzle.SolveFiles() error = %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("Puzzle.SolveFiles() returned %d results, want %d", len(results), len(paths))
	}

	wantTotals := []int{4361, 0, 36, 4361}
	for index, resl := range results {
		if resl.Path != paths[index] {
			t.Errorf("result %d path = %s, want %s", index, resl.Path, paths[index])
		}
		if resl.Total != wantTotals[index] {
			t.Errorf("result %d total = %d, want %d", index, resl.Total, wantTotals[index])
		}
	}

	if !errors.Is(results[1].Err, ErrOpenInput) {
		t.Errorf("result 1 error = %v, want %v", results[1].Err, ErrOpenInput)
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("unexpected errors: %v, %v", results[0].Err, results[2].Err)
	}
}
