// SPDX-License-Identifier: MIT
package linescan

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/linescan/lexer"
)

type (
	// Config defines configuration options for the [Puzzle] operations.
	Config struct {
		// Logger for trace messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool

		// Limits the games are checked against.
		Limits Limits

		// Workers bounds the number of inputs solved at once by [SolveFiles].
		Workers int
	}

	// SolveFunc computes a puzzle's answer from a Source.
	SolveFunc func(ctx context.Context, cfg *Config, src *Source) (int, error)

	// Puzzle is a named line scanning rule.
	Puzzle struct {
		Name        string
		Description string

		solve SolveFunc
	}
)

const defWorkers = 4

// Puzzle errors.
var (
	ErrUnknownPuzzle = errors.New("unknown puzzle")
)

var puzzles = []Puzzle{
	{Name: "day01a", Description: "sum of the first & last digit of each line", solve: solveDigitCalibration},
	{Name: "day01b", Description: "sum of the first & last digit or number word of each line", solve: solveWordCalibration},
	{Name: "day02a", Description: "sum of the IDs of games possible within the cube limits", solve: solvePossibleGames},
	{Name: "day02b", Description: "sum of the power of the minimum cube set of each game", solve: solveGamePower},
	{Name: "day03a", Description: "sum of the numbers adjacent to a symbol", solve: solvePartNumbers},
	{Name: "day03b", Description: "sum of the gear ratios", solve: solveGearRatios},
}

// DefConfig obtains the package's default [Config].
func DefConfig() *Config {
	return &Config{
		Logger:  logrus.New(),
		Debug:   false,
		Limits:  DefaultLimits(),
		Workers: defWorkers,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.Limits == nil {
		c.Limits = DefaultLimits()
	}
	if c.Workers < 1 {
		c.Workers = defWorkers
	}
}

// LexerOptions obtains the lexer options sharing the Config's logger & debug setting.
func (c *Config) LexerOptions() []lexer.Option {
	return []lexer.Option{lexer.WithLogger(c.Logger), lexer.WithDebug(c.Debug)}
}

// Puzzles lists the registered Puzzles.
func Puzzles() (list []Puzzle) {
	list = make([]Puzzle, len(puzzles))
	copy(list, puzzles)

	return
}

// Lookup obtains a registered Puzzle by name.
func Lookup(name string) (p Puzzle, err error) {
	for _, p = range puzzles {
		if p.Name == name {
			return
		}
	}
	err = fmt.Errorf("%w: %s", ErrUnknownPuzzle, name)

	return
}

// Solve runs the Puzzle over the lines of r.
func (p Puzzle) Solve(ctx context.Context, cfg *Config, r io.Reader) (total int, err error) {
	cfg.Validate()

	if total, err = p.solve(ctx, cfg, NewSource(r)); err != nil {
		err = fmt.Errorf("%s: %w", p.Name, err)
	}

	return
}

// SolveFile runs the Puzzle over the file at path.
func (p Puzzle) SolveFile(ctx context.Context, cfg *Config, path string) (total int, err error) {
	f, err := OpenFile(path)
	if err != nil {
		return
	}
	defer f.Close()

	return p.Solve(ctx, cfg, f)
}

// skipper traces lines dropped by a per-line failure.
func skipper(cfg *Config) func(Window, error) {
	return func(w Window, err error) {
		cfg.Logger.WithFields(logrus.Fields{"line": w.Curr.Number, "text": w.Curr.Text}).Warn(err)
	}
}

func skipLine(err error) error { return fmt.Errorf("%w: %w", ErrSkipLine, err) }

func solveDigitCalibration(ctx context.Context, cfg *Config, src *Source) (total int, err error) {
	var sum Sum[int]

	err = src.Each(ctx, func(w Window) error {
		c, ok, err := DigitCalibration(ctx, w.Curr.Text, cfg.LexerOptions()...)
		if err != nil {
			return skipLine(err)
		}
		if !ok {
			cfg.Logger.WithField("line", w.Curr.Number).Info("no digits, ignoring")
			return nil
		}

		sum.Add(c.Value())
		cfg.Logger.WithFields(logrus.Fields{
			"line": w.Curr.Number, "number": c.Value(), "counter": sum.Total(),
		}).Info(w.Curr.Text)

		return nil
	}, skipper(cfg))
	total = sum.Total()

	return
}

func solveWordCalibration(ctx context.Context, cfg *Config, src *Source) (total int, err error) {
	var sum Sum[int]

	err = src.Each(ctx, func(w Window) error {
		c, ok := WordCalibration(w.Curr.Text)
		if !ok {
			cfg.Logger.WithField("line", w.Curr.Number).Info("no digits or number words, ignoring")
			return nil
		}

		sum.Add(c.Value())
		cfg.Logger.WithFields(logrus.Fields{
			"line": w.Curr.Number, "number": c.Value(), "counter": sum.Total(),
		}).Info(w.Curr.Text)

		return nil
	}, skipper(cfg))
	total = sum.Total()

	return
}

func solvePossibleGames(ctx context.Context, cfg *Config, src *Source) (total int, err error) {
	var sum Sum[int]

	err = src.Each(ctx, func(w Window) error {
		g, err := ParseGame(ctx, w.Curr.Text, cfg.LexerOptions()...)
		if err != nil {
			return skipLine(err)
		}
		if cfg.Debug {
			cfg.Logger.Debugf("game: %s", spew.Sdump(g))
		}

		fields := logrus.Fields{"line": w.Curr.Number, "game": g.ID, "rounds": len(g.Rounds)}
		if err = g.Check(cfg.Limits); err != nil {
			cfg.Logger.WithFields(fields).Info(err)
			return nil
		}

		sum.Add(g.ID)
		cfg.Logger.WithFields(fields).Info("game is possible")

		return nil
	}, skipper(cfg))
	total = sum.Total()

	cfg.Logger.Infof("%d games are possible", sum.Count())

	return
}

func solveGamePower(ctx context.Context, cfg *Config, src *Source) (total int, err error) {
	var sum Sum[int]

	err = src.Each(ctx, func(w Window) error {
		g, err := ParseGame(ctx, w.Curr.Text, cfg.LexerOptions()...)
		if err != nil {
			return skipLine(err)
		}

		power := g.Power()
		sum.Add(power)
		cfg.Logger.WithFields(logrus.Fields{
			"line": w.Curr.Number, "game": g.ID, "minimum": g.Minimum(), "power": power,
		}).Info("game power")

		return nil
	}, skipper(cfg))
	total = sum.Total()

	return
}

func solvePartNumbers(ctx context.Context, cfg *Config, src *Source) (total int, err error) {
	var sum Sum[int]

	err = src.Each(ctx, func(w Window) error {
		if w.Prev == nil {
			cfg.Logger.WithField("line", w.Curr.Number).Debug("has no previous line")
		}
		if w.Next == nil {
			cfg.Logger.WithField("line", w.Curr.Number).Debug("has no next line")
		}

		parts, err := w.PartNumbers(ctx, cfg.LexerOptions()...)
		if err != nil {
			return skipLine(err)
		}
		if cfg.Debug {
			cfg.Logger.Debugf("part numbers: %s", spew.Sdump(parts))
		}

		for _, part := range parts {
			sum.Add(part.Value)
			cfg.Logger.WithFields(logrus.Fields{
				"line": w.Curr.Number, "start": part.Start, "end": part.End,
			}).Infof("number %d is a valid part number", part.Value)
		}

		return nil
	}, skipper(cfg))
	total = sum.Total()

	return
}

func solveGearRatios(ctx context.Context, cfg *Config, src *Source) (total int, err error) {
	var sum Sum[int]

	err = src.Each(ctx, func(w Window) error {
		gears, skipped, err := w.Gears(ctx, cfg.LexerOptions()...)
		if err != nil {
			return skipLine(err)
		}
		for _, line := range skipped {
			cfg.Logger.WithFields(logrus.Fields{
				"line": w.Curr.Number, "neighbour": line.Number,
			}).Warn("neighbour has an overflowing number, ignoring its numbers")
		}

		for _, gear := range gears {
			sum.Add(gear.Ratio())
			cfg.Logger.WithFields(logrus.Fields{
				"line": w.Curr.Number, "column": gear.Column, "parts": gear.Parts,
			}).Infof("gear ratio %d", gear.Ratio())
		}

		return nil
	}, skipper(cfg))
	total = sum.Total()

	return
}
