// SPDX-License-Identifier: MIT
package linescan

// IsSymbol checks for a rune that is neither a decimal digit nor a period.
func IsSymbol(r rune) bool { return r != '.' && (r < '0' || r > '9') }

// HasSymbolAround checks whether any column in [from, to] of line holds a symbol.
//
// The range is clamped to the line's bounds; columns outside the line never match.
func HasSymbolAround(line string, from, to int) bool {
	runes := []rune(line)

	from = max(from, 0)
	to = min(to, len(runes)-1)
	for column := from; column <= to; column++ {
		if IsSymbol(runes[column]) {
			return true
		}
	}

	return false
}

// IsAdjacent checks whether a symbol lies within one column of the Token on the Window's
// current line or either of its present neighbours.
//
// The adjacency range is [Start-1, End] inclusive, End being the exclusive token bound. A
// missing neighbour contributes nothing.
func (w Window) IsAdjacent(t Token) bool {
	for _, line := range w.Lines() {
		if HasSymbolAround(line.Text, t.Start-1, t.End) {
			return true
		}
	}

	return false
}
