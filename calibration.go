// SPDX-License-Identifier: MIT
package linescan

import (
	"context"
	"strings"

	"gitlab.com/fisherprime/linescan/lexer"
)

// numberWords holds the spelled out digits; a word's value is its index + 1.
var numberWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Calibration is the pair of digits recovered from a line.
type Calibration struct {
	First int
	Last  int
}

// Value combines the digits into a two digit number.
func (c Calibration) Value() int { return c.First*10 + c.Last }

// DigitCalibration obtains the first & last decimal digits of a line.
//
// ok is false for a line lacking digits.
func DigitCalibration(ctx context.Context, line string, opts ...lexer.Option) (c Calibration, ok bool, err error) {
	items, err := lexer.Items(ctx, append(opts, lexer.WithLine(line))...)
	if err != nil {
		return
	}

	var first, last string
	for _, item := range items {
		if item.ID != lexer.ItemNumber {
			continue
		}
		if first == "" {
			first = item.Val
		}
		last = item.Val
	}
	if first == "" {
		return
	}

	c = Calibration{First: digitValue(first[0]), Last: digitValue(last[len(last)-1])}
	ok = true

	return
}

// WordCalibration obtains the first & last digits of a line, a spelled out digit counting as one.
//
// Both ends are searched independently so overlapping words ("twone") resolve to the word found
// first from each direction. ok is false for a line lacking digits & number words.
func WordCalibration(line string) (c Calibration, ok bool) {
	var found bool

	// Left to right: the text up to the cursor either ends in a digit or a number word.
	for cursor := 1; cursor <= len(line); cursor++ {
		if c.First, found = digitOrWordEndingAt(line, cursor); found {
			break
		}
	}
	if !found {
		return
	}

	// Right to left: the text from the cursor either starts with a digit or a number word.
	for cursor := len(line) - 1; cursor >= 0; cursor-- {
		if c.Last, found = digitOrWordStartingAt(line, cursor); found {
			break
		}
	}
	ok = found

	return
}

func digitOrWordEndingAt(line string, end int) (value int, ok bool) {
	if b := line[end-1]; isDigit(b) {
		return digitValue(b), true
	}

	for index, word := range numberWords {
		if strings.HasSuffix(line[:end], word) {
			return index + 1, true
		}
	}

	return
}

func digitOrWordStartingAt(line string, start int) (value int, ok bool) {
	if b := line[start]; isDigit(b) {
		return digitValue(b), true
	}

	for index, word := range numberWords {
		if strings.HasPrefix(line[start:], word) {
			return index + 1, true
		}
	}

	return
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func digitValue(b byte) int { return int(b - '0') }
