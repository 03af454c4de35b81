// SPDX-License-Identifier: MIT
package lexer

// REF: https://github.com/sh4t/sql-parser
// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

type (
	// NextOperation type for the next function to be executed
	NextOperation func(context.Context) NextOperation

	// ValidationFunction type for functions that validate rune identities
	ValidationFunction func(rune) bool

	// Lexer defines a type to capture positioned items from a single line.
	Lexer struct {
		debug  bool
		filler rune
		logger logrus.FieldLogger

		// c is a channel for communicating lexed Items.
		c chan Item

		// source is the input source.
		source io.RuneReader

		// buffer is a slice of runes being lexed.
		buffer []rune
		// bufferIndex is the current buffer position.
		//
		// When this value reaches the length of buffer, the buffer is populated from the source.
		bufferIndex int

		// column is the position of buffer[0] within the line.
		column int

		numberCounter int
	}

	// Option defines the Lexer functional option type
	Option func(*Lexer)
)

const (
	defBufferSize = 10

	// DefaultFiller is the rune treated as blank space between items of a line.
	DefaultFiller = '.'
)

// Lexing errors.
var (
	ErrInvalidBackupAmount = fmt.Errorf("invalid backup amount")
)

var blanks = [256]bool{
	' ':  true,
	'\t': true,
	'\r': true,
}

// New creates a new lexer for a line.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		filler: DefaultFiller,
		logger: logrus.New(),

		c: make(chan Item, defBufferSize),

		buffer: make([]rune, 0, defBufferSize),
		source: strings.NewReader(""),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithFiller configures the filler rune.
func WithFiller(r rune) Option { return func(l *Lexer) { l.filler = r } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithSource configures the source option.
func WithSource(source io.RuneReader) Option { return func(l *Lexer) { l.source = source } }

// WithLine configures a string source.
func WithLine(line string) Option { return WithSource(strings.NewReader(line)) }

// NumberCounter obtains the count of emitted ItemNumber Items.
func (l *Lexer) NumberCounter() int { return l.numberCounter }

// Lex lexes the input by executing state functions.
func (l *Lexer) Lex(ctx context.Context) {
	for stateFunction := l.LexAny; stateFunction != nil; {
		stateFunction = stateFunction(ctx)
	}

	// Close channel
	close(l.c)
}

// LexAny dispatches on the next rune of the line.
func (l *Lexer) LexAny(ctx context.Context) NextOperation {
	select {
	case <-ctx.Done():
		l.EmitError(ctx.Err())
		return nil
	default:
	}

	next, ok := l.Next()
	switch {
	case !ok:
		l.EmitEOF()
		return nil
	case isNumeric(next):
		return l.LexNumber
	case next == l.filler:
		l.AcceptWhile(func(r rune) bool { return r == l.filler })
		l.Emit(ItemFiller)
	case isAlpha(next):
		l.AcceptWhile(isAlpha)
		l.Emit(ItemWord)
	case isBlank(next):
		l.AcceptWhile(isBlank)
		l.Emit(ItemSpace)
	default:
		l.Emit(ItemSymbol)
	}

	return l.LexAny
}

// LexNumber consumes the remainder of a digit run.
func (l *Lexer) LexNumber(_ context.Context) NextOperation {
	l.AcceptWhile(isNumeric)

	l.numberCounter++
	l.Emit(ItemNumber)

	return l.LexAny
}

// Next return the Next rune in the input; ok is false at the end of the input.
func (l *Lexer) Next() (r rune, ok bool) {
	if l.bufferIndex >= len(l.buffer) {
		var err error
		if r, _, err = l.source.ReadRune(); err != nil {
			return
		}

		l.buffer = append(l.buffer, r)
	}

	r, ok = l.buffer[l.bufferIndex], true
	l.bufferIndex++

	return
}

// Backup step back one rune.
func (l *Lexer) Backup() error { return l.BackupN(1) }

// BackupN step back N runes.
func (l *Lexer) BackupN(n int) (err error) {
	if l.bufferIndex < n {
		err = fmt.Errorf("%w: amount %d index: %d", ErrInvalidBackupAmount, n, l.bufferIndex)
		return
	}
	l.bufferIndex -= n

	return
}

// Discard the buffer content before the current buffer index.
func (l *Lexer) Discard() {
	l.column += l.bufferIndex
	l.buffer = l.buffer[l.bufferIndex:]
	l.bufferIndex = 0
}

// AcceptWhile consumes runes while condition is true.
//
// The end of the input terminates the run without error.
func (l *Lexer) AcceptWhile(fn ValidationFunction) {
	for {
		r, ok := l.Next()
		if !ok {
			return
		}

		if !fn(r) {
			// Cannot fail, Next has just advanced the index.
			_ = l.Backup()
			return
		}
	}
}

// Emit sends the runes consumed so far as an Item over the communication channel.
func (l *Lexer) Emit(t ItemID) {
	item := Item{
		ID:  t,
		Pos: l.column,
		Val: string(l.buffer[:l.bufferIndex]),
	}

	if l.debug {
		l.logger.Debugf("lexer Emit: %s %q at %d", t, item.Val, item.Pos)
	}

	l.c <- item
	l.Discard()
}

// EmitEOF sends an ItemEOF Item over the communication channel.
func (l *Lexer) EmitEOF() {
	l.c <- Item{ID: ItemEOF, Pos: l.column}
}

// EmitError sends an error over the `Lexer`'s channel.
//
// This terminates the scan process with an error or an ItemEOF for io.EOF.
func (l *Lexer) EmitError(err error) {
	if err == io.EOF {
		l.EmitEOF()
		return
	}

	l.c <- Item{
		ID:  ItemError,
		Pos: l.column,
		Err: err,
	}
}

// Item return a lexed Item from the input.
func (l *Lexer) Item() (i Item, ok bool) {
	i, ok = <-l.c
	return
}

// Items lexes the whole input, collecting every Item up to & excluding the terminal ItemEOF.
//
// An ItemError stops the collection & is returned as err.
func Items(ctx context.Context, opts ...Option) (items []Item, err error) {
	l := New(opts...)
	go l.Lex(ctx)

	// Drain the channel so the lexing goroutine always terminates.
	for {
		item, proceed := l.Item()
		if !proceed {
			break
		}

		switch item.ID {
		case ItemEOF:
		case ItemError:
			if err == nil {
				err = item.Err
			}
		default:
			if err == nil {
				items = append(items, item)
			}
		}
	}

	return
}

// isBlank return true for space, tab & carriage return.
func isBlank(r rune) bool { return r < 256 && blanks[r] }

// isAlpha return true for a letter.
func isAlpha(r rune) bool { return unicode.IsLetter(r) }

// isNumeric return true for a decimal digit.
func isNumeric(r rune) bool { return r >= '0' && r <= '9' }
