// SPDX-License-Identifier: MIT
package linescan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

type (
	// Line is a single non-blank line of an input along with its 1-based line number.
	Line struct {
		Text   string
		Number int
	}

	// Window is the neighbourhood of a Line.
	//
	// Prev & Next are nil at the input's boundaries.
	Window struct {
		Prev *Line
		Curr Line
		Next *Line
	}

	// Source yields the lines of an input in order, in a single forward pass.
	Source struct {
		scanner *bufio.Scanner
		number  int
	}

	// WindowComm defines the value communicated by [Source.Walk].
	WindowComm struct {
		window Window
		err    error
	}

	// LineFunc processes a single Window.
	LineFunc func(Window) error
)

const walkBufferSize = 10

// Input errors.
var (
	ErrOpenInput = errors.New("failed to open input")
	ErrReadInput = errors.New("failed to read input")

	// ErrSkipLine marks a per-line failure; the line is dropped & processing continues.
	ErrSkipLine = errors.New("skipping line")
)

// OpenFile opens an input file for reading.
func OpenFile(path string) (f *os.File, err error) {
	if f, err = os.Open(path); err != nil {
		err = fmt.Errorf("%w %s: %v", ErrOpenInput, path, err)
	}

	return
}

// NewSource instantiates a Source reading from r.
func NewSource(r io.Reader) *Source {
	return &Source{scanner: bufio.NewScanner(r)}
}

// next obtains the next non-blank line, false at the end of the input.
func (s *Source) next() (line Line, ok bool, err error) {
	for s.scanner.Scan() {
		s.number++

		text := strings.TrimRight(s.scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			// Ignore blank lines.
			continue
		}

		return Line{Text: text, Number: s.number}, true, nil
	}

	if err = s.scanner.Err(); err != nil {
		err = fmt.Errorf("%w after line %d: %v", ErrReadInput, s.number, err)
	}

	return
}

// Walk slides a three line Window over the input, pushing each to its channel argument.
//
// A read failure is sent as the final value. The channel is closed on return.
func (s *Source) Walk(ctx context.Context, comm chan<- WindowComm) {
	defer close(comm)

	curr, ok, err := s.next()
	if err != nil {
		comm <- WindowComm{err: err}
		return
	}

	var prev *Line
	for ok {
		select {
		case <-ctx.Done():
			comm <- WindowComm{err: ctx.Err()}
			return
		default:
		}

		var next Line
		var hasNext bool
		if next, hasNext, err = s.next(); err != nil {
			comm <- WindowComm{err: err}
			return
		}

		w := Window{Prev: prev, Curr: curr}
		if hasNext {
			lookahead := next
			w.Next = &lookahead
		}
		comm <- WindowComm{window: w}

		behind := curr
		prev = &behind
		curr, ok = next, hasNext
	}
}

// Each calls fn for every Window of the input, in order.
//
// An fn error wrapping ErrSkipLine is handed to skip & processing continues; any other error
// stops the calls & is returned once the walk completes.
func (s *Source) Each(ctx context.Context, fn LineFunc, skip func(Window, error)) (err error) {
	comm := make(chan WindowComm, walkBufferSize)
	go s.Walk(ctx, comm)

	// Drain the channel so the walking goroutine always terminates.
	for {
		resl, proceed := <-comm
		if !proceed {
			break
		}
		if err != nil {
			continue
		}
		if resl.err != nil {
			err = resl.err
			continue
		}

		if fnErr := fn(resl.window); fnErr != nil {
			if errors.Is(fnErr, ErrSkipLine) {
				if skip != nil {
					skip(resl.window, fnErr)
				}
				continue
			}
			err = fnErr
		}
	}

	return
}

// NewWindow builds a Window over literal lines, numbering them 1 to 3.
func NewWindow(prev *string, curr string, next *string) (w Window) {
	w.Curr = Line{Text: curr, Number: 2}
	if prev != nil {
		w.Prev = &Line{Text: *prev, Number: 1}
	}
	if next != nil {
		w.Next = &Line{Text: *next, Number: 3}
	}

	return
}

// Lines returns the present lines of the Window, top to bottom.
func (w Window) Lines() (lines []Line) {
	lines = make([]Line, 0, 3)
	if w.Prev != nil {
		lines = append(lines, *w.Prev)
	}
	lines = append(lines, w.Curr)
	if w.Next != nil {
		lines = append(lines, *w.Next)
	}

	return
}
