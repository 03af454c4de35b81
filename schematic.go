// SPDX-License-Identifier: MIT
package linescan

import (
	"context"
	"errors"
	"strings"

	"gitlab.com/fisherprime/linescan/lexer"
)

// GearSymbol marks a potential gear on a schematic line.
const GearSymbol = '*'

// Gear is a GearSymbol touching exactly two part numbers.
type Gear struct {
	Column int
	Parts  [2]int
}

// Ratio multiplies the Gear's part numbers.
func (g Gear) Ratio() int { return Product(g.Parts[:]...) }

// PartNumbers obtains the Tokens of the Window's current line that are adjacent to a symbol.
func (w Window) PartNumbers(ctx context.Context, opts ...lexer.Option) (parts []Token, err error) {
	tokens, err := ScanTokens(ctx, w.Curr.Text, opts...)
	if err != nil {
		return
	}

	parts = make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if w.IsAdjacent(tok) {
			parts = append(parts, tok)
		}
	}

	return
}

// Gears obtains the GearSymbols of the Window's current line touching exactly two Tokens across
// the Window's lines.
//
// A neighbour holding an overflowing number contributes no Tokens & is reported in skipped; only
// a failure on the current line is returned as err.
func (w Window) Gears(ctx context.Context, opts ...lexer.Option) (gears []Gear, skipped []Line, err error) {
	if !strings.ContainsRune(w.Curr.Text, GearSymbol) {
		return
	}

	var tokens []Token
	for _, line := range w.Lines() {
		lineTokens, scanErr := ScanTokens(ctx, line.Text, opts...)
		if scanErr != nil {
			if line.Number != w.Curr.Number && errors.Is(scanErr, ErrNumberOverflow) {
				skipped = append(skipped, line)
				continue
			}
			err = scanErr
			return
		}
		tokens = append(tokens, lineTokens...)
	}

	for column, r := range []rune(w.Curr.Text) {
		if r != GearSymbol {
			continue
		}

		var touching []int
		for _, tok := range tokens {
			if tok.Touches(column) {
				touching = append(touching, tok.Value)
			}
		}
		if len(touching) == 2 {
			gears = append(gears, Gear{Column: column, Parts: [2]int{touching[0], touching[1]}})
		}
	}

	return
}
