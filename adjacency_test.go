// SPDX-License-Identifier: NONE
package linescan

import (
	"testing"
)

func strPtr(s string) *string { return &s }

func TestIsSymbol(t *testing.T) {
	for r, want := range map[rune]bool{'.': false, '0': false, '9': false, '*': true, '#': true, 'a': true, ' ': true} {
		if got := IsSymbol(r); got != want {
			t.Errorf("IsSymbol(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestHasSymbolAround(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		from, to int
		want     bool
	}{
		{name: "inside", line: "..*..", from: 1, to: 3, want: true},
		{name: "outside", line: "*...*", from: 1, to: 3, want: false},
		{name: "clamped left", line: "*..", from: -1, to: 0, want: true},
		{name: "clamped right", line: "..#", from: 2, to: 3, want: true},
		{name: "beyond line", line: "..", from: 3, to: 5, want: false},
		{name: "empty line", line: "", from: -1, to: 2, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasSymbolAround(tt.line, tt.from, tt.to); got != tt.want {
				t.Errorf("HasSymbolAround() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindow_IsAdjacent(t *testing.T) {
	tok := Token{Start: 3, End: 5, Value: 12}

	tests := []struct {
		name   string
		window Window
		want   bool
	}{
		{
			name:   "symbol left of start",
			window: NewWindow(nil, "..$12....", nil),
			want:   true,
		},
		{
			name:   "symbol right after end",
			window: NewWindow(nil, "...12*...", nil),
			want:   true,
		},
		{
			name:   "symbol two columns left",
			window: NewWindow(nil, ".#.12....", nil),
			want:   false,
		},
		{
			name:   "symbol two columns right",
			window: NewWindow(nil, "...12.#..", nil),
			want:   false,
		},
		{
			name:   "diagonal two columns away",
			window: NewWindow(strPtr("......+.."), "...12....", nil),
			want:   false,
		},
		{
			name:   "diagonal below",
			window: NewWindow(nil, "...12....", strPtr(".....+...")),
			want:   true,
		},
		{
			name:   "short neighbour",
			window: NewWindow(strPtr(".."), "...12....", strPtr("...")),
			want:   false,
		},
		{
			name:   "no neighbours",
			window: NewWindow(nil, "...12....", nil),
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.IsAdjacent(tok); got != tt.want {
				t.Errorf("Window.IsAdjacent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindow_IsAdjacent_example(t *testing.T) {
	w := NewWindow(nil, "467..114..", strPtr("...*......"))

	if !w.IsAdjacent(Token{Start: 0, End: 3, Value: 467}) {
		t.Error("467 should be adjacent to the symbol below")
	}
	if w.IsAdjacent(Token{Start: 5, End: 8, Value: 114}) {
		t.Error("114 should not be adjacent to any symbol")
	}
}
