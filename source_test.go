// SPDX-License-Identifier: NONE
package linescan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

func collectWindows(t *testing.T, input string) (windows []Window) {
	t.Helper()

	err := NewSource(strings.NewReader(input)).Each(context.Background(), func(w Window) error {
		windows = append(windows, w)
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("Source.Each() error = %v", err)
	}

	return
}

func TestSource_Each(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantWindows []Window
	}{
		{
			name:  "three lines",
			input: "a\nb\nc\n",
			wantWindows: []Window{
				{Curr: Line{"a", 1}, Next: &Line{"b", 2}},
				{Prev: &Line{"a", 1}, Curr: Line{"b", 2}, Next: &Line{"c", 3}},
				{Prev: &Line{"b", 2}, Curr: Line{"c", 3}},
			},
		},
		{
			name:        "single line without newline",
			input:       "only",
			wantWindows: []Window{{Curr: Line{"only", 1}}},
		},
		{
			name:  "blank lines are ignored",
			input: "\na\n\n  \nb\r\n\n",
			wantWindows: []Window{
				{Curr: Line{"a", 2}, Next: &Line{"b", 5}},
				{Prev: &Line{"a", 2}, Curr: Line{"b", 5}},
			},
		},
		{
			name:        "empty input",
			input:       "",
			wantWindows: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.wantWindows, collectWindows(t, tt.input)); diff != "" {
				t.Errorf("Source.Each() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSource_Each_skip(t *testing.T) {
	var skipped, seen []int

	err := NewSource(strings.NewReader("1\n2\n3\n")).Each(context.Background(), func(w Window) error {
		if w.Curr.Text == "2" {
			return fmt.Errorf("%w: bad line", ErrSkipLine)
		}
		seen = append(seen, w.Curr.Number)

		return nil
	}, func(w Window, _ error) { skipped = append(skipped, w.Curr.Number) })
	if err != nil {
		t.Fatalf("Source.Each() error = %v", err)
	}

	if diff := cmp.Diff([]int{1, 3}, seen); diff != "" {
		t.Errorf("processed lines mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2}, skipped); diff != "" {
		t.Errorf("skipped lines mismatch (-want +got):\n%s", diff)
	}
}

func TestSource_Each_abort(t *testing.T) {
	errAbort := errors.New("abort")

	calls := 0
	err := NewSource(strings.NewReader("1\n2\n3\n")).Each(context.Background(), func(w Window) error {
		calls++
		return errAbort
	}, nil)
	if !errors.Is(err, errAbort) {
		t.Errorf("Source.Each() error = %v, want %v", err, errAbort)
	}
	if calls != 1 {
		t.Errorf("Source.Each() called fn %d times, want 1", calls)
	}
}

func TestSource_Each_readFailure(t *testing.T) {
	src := NewSource(iotest.ErrReader(errors.New("disk on fire")))

	err := src.Each(context.Background(), func(Window) error { return nil }, nil)
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("Source.Each() error = %v, want %v", err, ErrReadInput)
	}
}

func TestSource_Each_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSource(strings.NewReader("1\n2\n")).Each(ctx, func(Window) error { return nil }, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Source.Each() error = %v, want %v", err, context.Canceled)
	}
}

func TestOpenFile(t *testing.T) {
	if _, err := OpenFile("testdata/missing.txt"); !errors.Is(err, ErrOpenInput) {
		t.Errorf("OpenFile() error = %v, want %v", err, ErrOpenInput)
	}

	f, err := OpenFile("testdata/day03.txt")
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	f.Close()
}
