// SPDX-License-Identifier: MIT
package linescan

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gitlab.com/fisherprime/linescan/lexer"
)

// Token is a maximal digit run of a line.
//
// Start & End are columns, End is exclusive.
type Token struct {
	Start int
	End   int
	Value int
}

// Token scanning errors.
var (
	ErrNumberOverflow = errors.New("number overflows int")
	ErrInvalidNumber  = errors.New("invalid number")
)

// ScanTokens obtains every maximal digit run of a line, left to right.
//
// A line lacking digits yields an empty slice.
func ScanTokens(ctx context.Context, line string, opts ...lexer.Option) (tokens []Token, err error) {
	items, err := lexer.Items(ctx, append(opts, lexer.WithLine(line))...)
	if err != nil {
		return
	}

	tokens = make([]Token, 0, len(items)/2)
	for _, item := range items {
		if item.ID != lexer.ItemNumber {
			continue
		}

		var value int
		if value, err = ParseNumber(item.Val); err != nil {
			err = fmt.Errorf("%w at column %d", err, item.Pos)
			tokens = nil
			return
		}

		tokens = append(tokens, Token{Start: item.Pos, End: item.End(), Value: value})
	}

	return
}

// ParseNumber converts a digit run to an int, reporting overflow distinctly.
func ParseNumber(digits string) (value int, err error) {
	if value, err = strconv.Atoi(digits); err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = fmt.Errorf("%w: %s", ErrNumberOverflow, digits)
			return
		}
		err = fmt.Errorf("%w: %q", ErrInvalidNumber, digits)
	}

	return
}

// Touches checks whether column lies within the Token's adjacency range [Start-1, End].
func (t Token) Touches(column int) bool { return column >= t.Start-1 && column <= t.End }
