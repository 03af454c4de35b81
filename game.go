// SPDX-License-Identifier: MIT
package linescan

import (
	"context"
	"errors"
	"fmt"

	"gitlab.com/fisherprime/linescan/lexer"
)

type (
	// Color identifies a cube color.
	Color int

	// Round is a single reveal of a game, holding the cube count per Color.
	Round map[Color]int

	// Limits holds the maximum cube count available per Color.
	Limits map[Color]int

	// Game is a record of the form "Game <id>: <count> <color>, ...; <count> <color> ...".
	Game struct {
		ID     int
		Rounds []Round
	}

	// recordParser walks the lexed Items of a record.
	recordParser struct {
		items []lexer.Item
		index int
	}
)

// Cube colors.
const (
	Red Color = iota
	Green
	Blue
)

const (
	gameKeyword    = "Game"
	idSeparator    = ":"
	drawSeparator  = ","
	roundSeparator = ";"
)

var colors = [...]Color{Red, Green, Blue}

var colorNames = [...]string{Red: "red", Green: "green", Blue: "blue"}

// Record errors.
var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrUnknownColor    = errors.New("unknown color")
	ErrImpossibleGame  = errors.New("impossible game")
)

// DefaultLimits obtains the bag contents the games are checked against.
func DefaultLimits() Limits { return Limits{Red: 12, Green: 13, Blue: 14} }

// String is the fmt.Stringer implementation for Color.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("color(%d)", int(c))
	}

	return colorNames[c]
}

// ParseColor obtains the Color named by s.
func ParseColor(s string) (c Color, err error) {
	for _, c = range colors {
		if colorNames[c] == s {
			return
		}
	}
	err = fmt.Errorf("%w: %q", ErrUnknownColor, s)

	return
}

// ParseGame parses a single game record.
//
// Counts of a color repeated within a round are added. A trailing round separator is ignored.
func ParseGame(ctx context.Context, line string, opts ...lexer.Option) (g Game, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
	}()

	items, err := lexer.Items(ctx, append(opts, lexer.WithLine(line))...)
	if err != nil {
		return
	}

	p := &recordParser{items: make([]lexer.Item, 0, len(items))}
	for _, item := range items {
		if item.ID != lexer.ItemSpace {
			p.items = append(p.items, item)
		}
	}

	if _, err = p.expect(lexer.ItemWord, gameKeyword); err != nil {
		return
	}
	if g.ID, err = p.number(); err != nil {
		return
	}
	if _, err = p.expect(lexer.ItemSymbol, idSeparator); err != nil {
		return
	}

	round := make(Round)
	for {
		var count int
		if count, err = p.number(); err != nil {
			return
		}

		var item lexer.Item
		if item, err = p.expect(lexer.ItemWord, ""); err != nil {
			return
		}

		var c Color
		if c, err = ParseColor(item.Val); err != nil {
			return
		}
		round[c] += count

		item, ok := p.next()
		switch {
		case !ok:
			g.Rounds = append(g.Rounds, round)
			return
		case item.ID == lexer.ItemSymbol && item.Val == drawSeparator:
		case item.ID == lexer.ItemSymbol && item.Val == roundSeparator:
			g.Rounds = append(g.Rounds, round)
			round = make(Round)

			// Tolerate an empty trailing round.
			if p.index >= len(p.items) {
				return
			}
		default:
			err = fmt.Errorf("unexpected %s %q at column %d", item.ID, item.Val, item.Pos)
			return
		}
	}
}

// Check validates every Round of the Game against limits.
func (g Game) Check(limits Limits) (err error) {
	for index, round := range g.Rounds {
		for _, c := range colors {
			if round[c] > limits[c] {
				err = fmt.Errorf("%w: round %d has %d %s out of %d", ErrImpossibleGame, index+1, round[c], c, limits[c])
				return
			}
		}
	}

	return
}

// Minimum obtains the fewest cubes per Color that make the Game possible.
func (g Game) Minimum() (m Limits) {
	m = Limits{Red: 0, Green: 0, Blue: 0}
	for _, round := range g.Rounds {
		for c, count := range round {
			m[c] = max(m[c], count)
		}
	}

	return
}

// Power multiplies the Game's per Color minimums; an absent Color yields 0.
func (g Game) Power() int {
	m := g.Minimum()
	return Product(m[Red], m[Green], m[Blue])
}

func (p *recordParser) next() (item lexer.Item, ok bool) {
	if p.index >= len(p.items) {
		return
	}
	item, ok = p.items[p.index], true
	p.index++

	return
}

// expect consumes an Item of the given type, matching val unless empty.
func (p *recordParser) expect(id lexer.ItemID, val string) (item lexer.Item, err error) {
	item, ok := p.next()
	if !ok {
		err = fmt.Errorf("expected %s, found end of line", id)
		return
	}
	if item.ID != id || (val != "" && item.Val != val) {
		err = fmt.Errorf("expected %s %q, found %s %q at column %d", id, val, item.ID, item.Val, item.Pos)
	}

	return
}

func (p *recordParser) number() (value int, err error) {
	item, err := p.expect(lexer.ItemNumber, "")
	if err != nil {
		return
	}

	return ParseNumber(item.Val)
}
