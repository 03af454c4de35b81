// SPDX-License-Identifier: MIT
package lexer

import "unicode/utf8"

type (
	// ItemID int holding an identifier for the Item tokens
	ItemID int

	// Item type holding the value, column & item type of a scanned rune sequence.
	Item struct {
		Err error
		Val string // The value of this Item
		ID  ItemID // The type of this Item
		Pos int    // The starting column, (in runes) of this Item
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_          ItemID = iota // Consume 0 to start actual numbering at 1.
	ItemError                // Notify occurrence of an `error`.
	ItemEOF                  // End of the line.
	ItemNumber               // Maximal run of decimal digits.
	ItemWord                 // Maximal run of letters.
	ItemFiller               // Maximal run of the filler rune, '.' by default.
	ItemSpace                // Maximal run of spaces & tabs.
	ItemSymbol               // Any other single rune.
)

var itemNames = map[ItemID]string{
	ItemError:  "error",
	ItemEOF:    "EOF",
	ItemNumber: "number",
	ItemWord:   "word",
	ItemFiller: "filler",
	ItemSpace:  "space",
	ItemSymbol: "symbol",
}

// String is the fmt.Stringer implementation for ItemID.
func (i ItemID) String() string {
	if name, ok := itemNames[i]; ok {
		return name
	}

	return "unknown"
}

// End obtains the column following the last rune of the Item.
func (i Item) End() int { return i.Pos + utf8.RuneCountInString(i.Val) }
